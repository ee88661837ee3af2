package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales img down so that neither side exceeds maxSize, keeping the
// aspect ratio. Smaller images are returned unchanged.
func Fit(img *image.NRGBA, maxSize int) *image.NRGBA {
	b := img.Bounds()
	if maxSize <= 0 || (b.Dx() <= maxSize && b.Dy() <= maxSize) {
		return img
	}

	w, h := maxSize, maxSize
	if b.Dx() > b.Dy() {
		h = max(1, b.Dy()*maxSize/b.Dx())
	} else {
		w = max(1, b.Dx()*maxSize/b.Dy())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
