// Package logo готовит логотип ресторана к печати и кэширует результат.
package logo

import (
	"context"
	"image"
	"sync"

	"github.com/DRSN-tech/kiosk-printer/internal/receipt"
	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
)

// Provider загружает логотип из источника и держит подготовленное изображение в памяти.
// Неудачная загрузка не кэшируется: следующий чек попробует снова.
type Provider struct {
	source     usecase.LogoSource
	paperWidth int

	mu     sync.Mutex
	cached image.Image
}

func NewProvider(source usecase.LogoSource, paperWidth int) *Provider {
	return &Provider{source: source, paperWidth: paperWidth}
}

func (p *Provider) Logo(ctx context.Context) (image.Image, error) {
	const op = "logo.Provider.Logo"

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	rc, err := p.source.Open(ctx)
	if err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrAsset))
	}
	defer rc.Close()

	img, err := receipt.PrepareLogo(rc, p.paperWidth)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.cached = img
	return img, nil
}
