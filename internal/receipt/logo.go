package receipt

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	xdraw "golang.org/x/image/draw"
)

// DefaultPaperWidthPx — ширина печатающей головки 58/80 мм принтера при 203 DPI.
const DefaultPaperWidthPx = 384

// PrepareLogo декодирует PNG/JPEG, масштабирует до половины ширины головки с сохранением пропорций
// и центрирует на белом холсте полной ширины. Прозрачность накладывается на белый.
func PrepareLogo(r io.Reader, paperWidth int) (image.Image, error) {
	const op = "receipt.PrepareLogo"

	if paperWidth <= 0 {
		paperWidth = DefaultPaperWidthPx
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrAsset))
	}

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return nil, e.Wrap(op, e.Wrap("empty image", e.ErrAsset))
	}

	targetW := paperWidth / 2
	targetH := sb.Dy() * targetW / sb.Dx()
	if targetH < 1 {
		targetH = 1
	}

	canvas := image.NewRGBA(image.Rect(0, 0, paperWidth, targetH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	offsetX := (paperWidth - targetW) / 2
	dst := image.Rect(offsetX, 0, offsetX+targetW, targetH)
	xdraw.CatmullRom.Scale(canvas, dst, src, sb, xdraw.Over, nil)

	return canvas, nil
}
