package usecase

import "context"

type PrintUC interface {
	DeviceListener
	Print(ctx context.Context, content string) string
	IsConnected() bool
	GetPrintJob(ctx context.Context, id string) (*PrintJobInfo, error)
}

type SoundUC interface {
	PlayNotificationSound()
}

type KioskUC interface {
	Config() *KioskConfig
	AutofillScript(pageURL string) (string, bool)
}
