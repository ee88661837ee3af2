package imaging

import (
	"crypto/cipher"
	"encoding/binary"
	"image"
)

// EncryptPixels returns a copy of img whose RGB bytes, taken row by row,
// have been encrypted in 8-byte blocks. With chained set the blocks are
// CBC-chained starting from iv; otherwise every block is encrypted on its
// own. Trailing bytes that do not fill a block are copied as is. Alpha is
// forced to opaque so the result shows every encrypted byte.
func EncryptPixels(img *image.NRGBA, blk cipher.Block, chained bool, iv uint64) *image.NRGBA {
	b := img.Bounds()
	rgb := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			rgb = append(rgb, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		}
	}

	bs := blk.BlockSize()
	prev := make([]byte, bs)
	binary.BigEndian.PutUint64(prev, iv)
	buf := make([]byte, bs)
	for i := 0; i+bs <= len(rgb); i += bs {
		chunk := rgb[i : i+bs]
		copy(buf, chunk)
		if chained {
			for j := range buf {
				buf[j] ^= prev[j]
			}
		}
		blk.Encrypt(chunk, buf)
		prev = chunk
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	p := 0
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := dst.PixOffset(x, y)
			dst.Pix[i] = rgb[p]
			dst.Pix[i+1] = rgb[p+1]
			dst.Pix[i+2] = rgb[p+2]
			dst.Pix[i+3] = 255
			p += 3
		}
	}
	return dst
}
