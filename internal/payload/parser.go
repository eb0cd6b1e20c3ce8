// Package payload декодирует JSON-заказ, пришедший из веб-панели, в domain.Order.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
)

// SchemaMode определяет, какие формы JSON принимает парсер.
type SchemaMode string

const (
	// SchemaOrder принимает только объект заказа.
	SchemaOrder SchemaMode = "order"
	// SchemaAuto дополнительно принимает устаревший плоский список строк заказа.
	SchemaAuto SchemaMode = "auto"
)

// ParseSchemaMode разбирает строковое значение режима. Пустая строка означает SchemaAuto.
func ParseSchemaMode(s string) (SchemaMode, error) {
	switch SchemaMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemaAuto:
		return SchemaAuto, nil
	case SchemaOrder:
		return SchemaOrder, nil
	default:
		return "", fmt.Errorf("unknown schema mode %q", s)
	}
}

type Parser struct {
	mode   SchemaMode
	logger logger.Logger
}

func NewParser(mode SchemaMode, logger logger.Logger) *Parser {
	if mode == "" {
		mode = SchemaAuto
	}
	return &Parser{mode: mode, logger: logger}
}

// Parse декодирует content в заказ. Форма определяется по первому значимому символу:
// '{' означает заказ, '[' плоский список строк. Все ошибки оборачивают e.ErrParse.
func (p *Parser) Parse(content string) (*domain.Order, error) {
	const op = "Parser.Parse"

	trimmed := strings.TrimSpace(strings.TrimPrefix(content, "\ufeff"))
	if trimmed == "" {
		return nil, e.Wrap(op, fmt.Errorf("%w: %w", e.ErrParse, e.ErrEmptyContent))
	}

	var (
		order *domain.Order
		err   error
	)

	switch trimmed[0] {
	case '{':
		order, err = p.parseOrder(trimmed)
	case '[':
		if p.mode != SchemaAuto {
			return nil, e.Wrap(op, e.Wrap(fmt.Sprintf("array payload not accepted in %q schema", p.mode), e.ErrParse))
		}
		order, err = p.parseLines(trimmed)
	default:
		return nil, e.Wrap(op, e.Wrap(fmt.Sprintf("unexpected payload start %q", trimmed[0]), e.ErrParse))
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.warnAnomalies(order)
	return order, nil
}

func (p *Parser) parseOrder(content string) (*domain.Order, error) {
	var model orderModel
	if err := json.Unmarshal([]byte(content), &model); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrParse)
	}
	return toOrder(&model)
}

func (p *Parser) parseLines(content string) (*domain.Order, error) {
	var models []orderLineModel
	if err := json.Unmarshal([]byte(content), &models); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrParse)
	}

	lines, err := toOrderLines(models, "")
	if err != nil {
		return nil, err
	}
	return domain.NewLegacyOrder(lines), nil
}

// warnAnomalies логирует строки с неположительным количеством. Такие строки печатаются как есть.
func (p *Parser) warnAnomalies(order *domain.Order) {
	for i, line := range order.Lines {
		if line.Quantity <= 0 {
			p.logger.Warnf("order %q line %d (%s): non-positive quantity %d", order.ID, i, line.Product.Name, line.Quantity)
		}
	}
}
