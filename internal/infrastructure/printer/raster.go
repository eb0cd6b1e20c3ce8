package printer

import (
	"fmt"
	"image"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
)

const (
	// Порог яркости: всё темнее печатается чёрным.
	blackThreshold = 128
	maxRasterDim   = 0xFFFF
)

// encodeRaster кодирует изображение командой GS v 0: 1 бит на пиксель, старший бит слева.
// Прозрачные пиксели накладываются на белый фон.
func encodeRaster(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, e.Wrap("nil image", e.ErrUnsupportedBitmap)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, e.Wrap("empty image", e.ErrUnsupportedBitmap)
	}

	widthBytes := (w + 7) / 8
	if widthBytes > maxRasterDim || h > maxRasterDim {
		return nil, e.Wrap(fmt.Sprintf("image %dx%d is too large", w, h), e.ErrUnsupportedBitmap)
	}

	out := make([]byte, 0, 8+widthBytes*h)
	out = append(out,
		gs, 'v', '0', 0x00,
		byte(widthBytes), byte(widthBytes>>8),
		byte(h), byte(h>>8),
	)

	row := make([]byte, widthBytes)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		clear(row)
		for x := b.Min.X; x < b.Max.X; x++ {
			if isBlack(img, x, y) {
				i := x - b.Min.X
				row[i/8] |= 0x80 >> uint(i%8)
			}
		}
		out = append(out, row...)
	}

	return out, nil
}

func isBlack(img image.Image, x, y int) bool {
	r, g, bl, a := img.At(x, y).RGBA()

	// Значения премультиплицированы по альфе: добавляем белый фон под прозрачную часть.
	white := 0xFFFF - a
	r += white
	g += white
	bl += white

	lum := (299*r + 587*g + 114*bl) / 1000
	return lum>>8 < blackThreshold
}
