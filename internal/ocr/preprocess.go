package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// binarizeThreshold is the fixed intensity cut for the binarized variant.
// Thermal receipt paper scans cluster around it.
const binarizeThreshold = 140

// contrastStretch converts the image to grayscale and linearly stretches
// its intensity range to the full 0-255 span.
func contrastStretch(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)

	lo, hi := uint8(255), uint8(0)
	bounds := gray.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := gray.NRGBAAt(x, y).R
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi <= lo {
		return gray
	}

	span := float64(hi) - float64(lo)
	return imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		var v uint8
		if c.R > lo {
			v = uint8((float64(c.R-lo)/span)*255 + 0.5)
		}
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})
}

// binarize maps every pixel above the threshold to white and the rest to
// black.
func binarize(img *image.NRGBA, threshold uint8) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		v := uint8(0)
		if c.R > threshold {
			v = 255
		}
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})
}
