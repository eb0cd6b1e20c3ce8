// Package receipt превращает заказ в упорядоченный список команд термопринтера.
package receipt

import (
	"image"
	"strconv"
	"strings"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/shopspring/decimal"
)

var (
	alignCenterRaw = []byte{0x1B, 0x61, 0x01}
	alignLeftRaw   = []byte{0x1B, 0x61, 0x00}
)

const (
	logoFeedLines    = 2
	addressFeedLines = 2
	cutterFeedLines  = 5
)

// Builder формирует команды печати чека. Результат зависит только от заказа и логотипа.
type Builder struct {
	policy FormatPolicy
	logger logger.Logger
}

func NewBuilder(policy FormatPolicy, logger logger.Logger) *Builder {
	return &Builder{policy: policy, logger: logger}
}

// Build возвращает команды в строгом порядке: инициализация, логотип, метаданные заказа,
// клиент, адрес, шапка таблицы, группы товаров, итог, прогон и отрезка. logo может быть nil.
func (b *Builder) Build(order *domain.Order, logo image.Image) []domain.PrintCommand {
	cmds := make([]domain.PrintCommand, 0, 32+2*len(order.Lines))

	cmds = append(cmds, domain.InitCommand())

	if logo != nil {
		cmds = append(cmds,
			domain.RawCommand(alignCenterRaw),
			domain.BitmapCommand(logo),
			domain.RawCommand(alignLeftRaw),
			domain.LineWrapCommand(logoFeedLines),
		)
	}

	if !order.Legacy {
		cmds = b.appendMetadata(cmds, order)
		cmds = b.appendCustomer(cmds, order.Customer)
		if order.Address != nil {
			cmds = b.appendAddress(cmds, order.Address, order.AddressExtra)
		}
	}

	cmds = b.appendItems(cmds, order.Lines)

	cmds = append(cmds,
		domain.LineWrapCommand(cutterFeedLines),
		domain.CutCommand(),
	)

	return cmds
}

func (b *Builder) appendMetadata(cmds []domain.PrintCommand, order *domain.Order) []domain.PrintCommand {
	labels := b.policy.Labels

	payment := labels.Unpaid
	if order.Payment != nil {
		payment = order.Payment.Status
	}

	cmds = append(cmds,
		domain.TextCommand(b.policy.OrderTypeLabel(order.Type)),
		domain.TextCommand(payment),
		domain.LineWrapCommand(1),
		domain.TextCommand(b.timestamp(order.ID, order.CreatedAt)),
	)

	ready := labels.ASAP
	if order.PreferredReadyTime != nil {
		ready = b.timestamp(order.ID, *order.PreferredReadyTime)
	}

	return append(cmds,
		domain.TextCommand(ready),
		domain.LineWrapCommand(1),
	)
}

func (b *Builder) timestamp(orderID, raw string) string {
	s, err := b.policy.FormatTimestamp(raw)
	if err != nil {
		b.logger.Warnf("order %s: printing raw timestamp: %v", orderID, err)
	}
	return s
}

func (b *Builder) appendCustomer(cmds []domain.PrintCommand, c domain.Customer) []domain.PrintCommand {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	cmds = append(cmds, domain.TextCommand(b.policy.Labels.Customer+name))

	if c.PhoneNumber != nil && strings.TrimSpace(*c.PhoneNumber) != "" {
		cmds = append(cmds, domain.TextCommand(b.policy.Labels.Phone+*c.PhoneNumber))
	}

	return cmds
}

func (b *Builder) appendAddress(cmds []domain.PrintCommand, a *domain.Address, extra *string) []domain.PrintCommand {
	cmds = append(cmds, domain.TextCommand(b.policy.Labels.Address))

	street := a.StreetName + " " + a.HouseNumber
	if a.BoxNumber != nil && strings.TrimSpace(*a.BoxNumber) != "" {
		street += " / " + *a.BoxNumber
	}
	city := a.Postcode + " " + a.MunicipalityName

	cmds = appendWrapped(cmds, street)
	cmds = appendWrapped(cmds, city)
	if extra != nil && strings.TrimSpace(*extra) != "" {
		cmds = appendWrapped(cmds, *extra)
	}

	return append(cmds, domain.LineWrapCommand(addressFeedLines))
}

func appendWrapped(cmds []domain.PrintCommand, text string) []domain.PrintCommand {
	for _, line := range wordWrap(text, LineWidth) {
		cmds = append(cmds, domain.TextCommand(line))
	}
	return cmds
}

func (b *Builder) appendItems(cmds []domain.PrintCommand, lines []domain.OrderLine) []domain.PrintCommand {
	labels := b.policy.Labels

	cmds = append(cmds,
		domain.TextCommand(itemRow(labels.HeaderCode, labels.HeaderName, labels.HeaderQty, labels.HeaderPrice)),
		domain.TextCommand(separator()),
	)

	total := decimal.Zero
	for _, group := range groupByCategory(lines) {
		cmds = append(cmds, domain.TextCommand(banner(group.name)))

		for _, line := range sortLines(group.lines) {
			cmds = append(cmds, domain.TextCommand(itemRow(
				line.Product.Code,
				line.Product.Name,
				strconv.Itoa(line.Quantity),
				b.policy.FormatMoney(line.TotalPrice),
			)))
			total = total.Add(line.TotalPrice)
		}

		cmds = append(cmds, domain.LineWrapCommand(1))
	}

	return append(cmds,
		domain.TextCommand(separator()),
		domain.TextCommand(totalRow(labels.Total, b.policy.FormatMoney(total))),
	)
}
