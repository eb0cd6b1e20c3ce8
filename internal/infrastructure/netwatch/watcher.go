// Package netwatch следит за доступностью веб-панели и завершает приложение при потере сети.
package netwatch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Watcher периодически запрашивает адрес панели. Любой HTTP-ответ считается доступностью,
// сбоем считается только транспортная ошибка.
type Watcher struct {
	client      *http.Client
	url         string
	interval    time.Duration
	maxFailures int
	onLost      func()
	logger      logger.Logger
}

func NewWatcher(url string, interval time.Duration, maxFailures int, onLost func(), logger logger.Logger) *Watcher {
	if maxFailures < 1 {
		maxFailures = 1
	}

	return &Watcher{
		client:      &http.Client{Timeout: interval},
		url:         url,
		interval:    interval,
		maxFailures: maxFailures,
		onLost:      onLost,
		logger:      logger,
	}
}

// Run блокируется до отмены ctx или до потери сети. При потере сети вызывается onLost.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := w.probe(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}

			failures++
			w.logger.Warnf("Dashboard unreachable (%d/%d): %v", failures, w.maxFailures, err)
			if failures >= w.maxFailures {
				w.logger.Warnf("Network lost, closing app")
				w.onLost()
				return
			}
			continue
		}

		if failures > 0 {
			w.logger.Infof("Dashboard reachable again")
		}
		failures = 0
	}
}

func (w *Watcher) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	return nil
}
