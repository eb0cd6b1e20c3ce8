package printer

import (
	"context"
	"net"
	"time"

	"github.com/DRSN-tech/kiosk-printer/internal/cfg"
	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/jitter"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/jimlawless/whereami"
)

// DialFunc открывает соединение с принтером.
type DialFunc func(ctx context.Context) (net.Conn, error)

// Binder держит одно соединение с принтером: подключается, сообщает слушателю о подключении
// и отключении и переподключается с экспоненциальной задержкой.
type Binder struct {
	dial     DialFunc
	cfg      *cfg.PrinterCfg
	listener usecase.DeviceListener
	logger   logger.Logger
	stopped  chan struct{}
}

func NewBinder(cfg *cfg.PrinterCfg, listener usecase.DeviceListener, logger logger.Logger) *Binder {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}
	return NewBinderWithDialer(func(ctx context.Context) (net.Conn, error) {
		return dialer.DialContext(ctx, cfg.NetworkMode, cfg.Addr)
	}, cfg, listener, logger)
}

func NewBinderWithDialer(dial DialFunc, cfg *cfg.PrinterCfg, listener usecase.DeviceListener, logger logger.Logger) *Binder {
	return &Binder{
		dial:     dial,
		cfg:      cfg,
		listener: listener,
		logger:   logger,
		stopped:  make(chan struct{}),
	}
}

// Run блокируется до отмены ctx. При выходе текущее соединение закрывается.
func (b *Binder) Run(ctx context.Context) {
	defer close(b.stopped)

	backoff := jitter.NewBackoff(b.cfg.ReconnectBase, b.cfg.ReconnectMax)

	for {
		conn, err := b.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			delay := backoff.Next()
			b.logger.Warnf("Error binding printer service: %v, retrying in %v (attempt %d)",
				e.Wrap(whereami.WhereAmI(), err), delay, backoff.Attempt())

			select {
			case <-time.After(delay):
				continue
			case <-ctx.Done():
				return
			}
		}

		backoff.Reset()
		device := NewDevice(conn, b.cfg.WriteTimeout, b.logger)
		b.logger.Infof("Printer bound at %s", b.cfg.Addr)
		b.listener.OnConnected(device)

		select {
		case <-device.Done():
			b.listener.OnDisconnected()
			_ = device.Close()

			select {
			case <-time.After(b.cfg.ReconnectBase):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			b.listener.OnDisconnected()
			if err := device.Close(); err != nil {
				b.logger.Warnf("Printer close error: %v", err)
			}
			return
		}
	}
}

// Wait ждёт выхода из Run.
func (b *Binder) Wait(ctx context.Context) error {
	select {
	case <-b.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
