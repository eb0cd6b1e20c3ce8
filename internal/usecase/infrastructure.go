package usecase

import (
	"context"
	"image"
	"io"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
)

// ResultCallback получает асинхронный ответ устройства на одну команду.
// Вызывается из горутины драйвера принтера.
type ResultCallback func(result domain.CommandResult)

// PrinterDevice — возможности термопринтера. Команды выполняются в порядке отправки,
// ошибка возврата означает, что команда не была принята устройством.
type PrinterDevice interface {
	PrinterInit(cb ResultCallback) error
	PrintText(text string, cb ResultCallback) error
	PrintBitmap(img image.Image, cb ResultCallback) error
	LineWrap(lines int, cb ResultCallback) error
	CutPaper(cb ResultCallback) error
	SendRAWData(data []byte, cb ResultCallback) error
	Connected() bool
}

// DeviceListener получает события жизненного цикла подключения принтера.
type DeviceListener interface {
	OnConnected(device PrinterDevice)
	OnDisconnected()
}

// LogoProvider возвращает подготовленный к печати логотип.
type LogoProvider interface {
	Logo(ctx context.Context) (image.Image, error)
}

// LogoSource отдаёт исходные байты логотипа (файл, объект в MinIO).
type LogoSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// OrderParser декодирует JSON заказа.
type OrderParser interface {
	Parse(content string) (*domain.Order, error)
}

// ReceiptBuilder превращает заказ в команды печати.
type ReceiptBuilder interface {
	Build(order *domain.Order, logo image.Image) []domain.PrintCommand
}

// EventProducer публикует события заданий печати.
type EventProducer interface {
	WritePrintJobEvent(ctx context.Context, event *PrintJobEvent) error
}

// SoundPlayer проигрывает стандартный звук уведомления.
type SoundPlayer interface {
	Play(ctx context.Context) error
}
