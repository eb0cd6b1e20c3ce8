package infrastructure

import (
	"net/http"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
)

// DetectImageMIME определяет MIME-тип логотипа по содержимому.
// Поддерживаются только форматы, которые умеет декодировать печать: png и jpeg.
func DetectImageMIME(data []byte) (string, error) {
	mime := http.DetectContentType(data[:min(len(data), 512)])
	switch mime {
	case "image/jpeg", "image/png":
		return mime, nil
	default:
		return "", e.Wrap(mime, e.ErrUnsupportedBitmap)
	}
}
