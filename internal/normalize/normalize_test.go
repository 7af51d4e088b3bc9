package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "uppercases", raw: "tesco stores", want: "TESCO STORES"},
		{name: "strips punctuation", raw: "Tesco Stores #123!", want: "TESCO STORES"},
		{name: "digits become word boundaries", raw: "TESCO3028EXPRESS", want: "TESCO EXPRESS"},
		{name: "collapses whitespace", raw: "  UBER   *TRIP\t HELP ", want: "UBER TRIP HELP"},
		{name: "empty input", raw: "", want: ""},
		{name: "only noise", raw: "1234 #!@", want: ""},
		{name: "ampersand removed", raw: "H&M LONDON", want: "H M LONDON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Description(tt.raw))
		})
	}
}

func TestDescriptionIdempotent(t *testing.T) {
	in := "McDonald's 01223 - Cambridge"
	once := Description(in)
	assert.Equal(t, once, Description(once))
}
