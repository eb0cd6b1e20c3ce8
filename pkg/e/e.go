package e

import "fmt"

var (
	// Ошибки печати чека
	ErrParse             = fmt.Errorf("parse error")
	ErrDeviceUnavailable = fmt.Errorf("printer device unavailable")
	ErrAsset             = fmt.Errorf("logo asset error")
	ErrFormatFallback    = fmt.Errorf("format fallback")
	ErrDeviceCommand     = fmt.Errorf("printer command error")

	// Внутренние ошибки устройства
	ErrDeviceClosed      = fmt.Errorf("printer device closed")
	ErrUnsupportedBitmap = fmt.Errorf("unsupported bitmap")

	// Ошибки хранилищ
	ErrPrintJobNotFound = fmt.Errorf("print job not found")
	ErrLogoNotFound     = fmt.Errorf("logo not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrRequiredEnvVariable  = fmt.Errorf("required environment variable is missing")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrEmptyContent     = fmt.Errorf("empty content")

	// 404 Not Found
	ErrStatusNotFound = fmt.Errorf("not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
