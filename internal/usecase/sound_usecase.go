package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
)

// SoundUseCase проигрывает звук уведомления. Вызов не блокирует и ничего не возвращает.
type SoundUseCase struct {
	player  SoundPlayer
	timeout time.Duration
	logger  logger.Logger
	wg      sync.WaitGroup
}

func NewSoundUC(player SoundPlayer, timeout time.Duration, logger logger.Logger) *SoundUseCase {
	const defaultTimeout = 5 * time.Second

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &SoundUseCase{
		player:  player,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *SoundUseCase) PlayNotificationSound() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.player.Play(ctx); err != nil {
			s.logger.Warnf("Failed to play notification sound: %v", err)
		}
	}()
}

// Wait ждёт окончания проигрывания.
func (s *SoundUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
