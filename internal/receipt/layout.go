package receipt

import (
	"strings"
	"unicode/utf8"
)

// Ширина печати в символах для головки 384 px и ширины колонок строки товара.
const (
	LineWidth = 32

	codeWidth  = 5
	nameWidth  = 16
	qtyWidth   = 4
	priceWidth = 7

	totalLabelWidth = LineWidth - priceWidth

	bannerFill    = "*"
	separatorFill = "-"
)

// truncate обрезает строку до width рун.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// itemRow собирает строку из четырёх колонок. Каждая колонка обрезается, а не переносится.
func itemRow(code, name, qty, price string) string {
	var b strings.Builder
	b.WriteString(padRight(truncate(code, codeWidth), codeWidth))
	b.WriteString(padRight(truncate(name, nameWidth), nameWidth))
	b.WriteString(padLeft(truncate(qty, qtyWidth), qtyWidth))
	b.WriteString(padLeft(truncate(price, priceWidth), priceWidth))
	return b.String()
}

func totalRow(label, amount string) string {
	return padRight(truncate(label, totalLabelWidth), totalLabelWidth) + padLeft(truncate(amount, priceWidth), priceWidth)
}

func separator() string {
	return strings.Repeat(separatorFill, LineWidth)
}

// banner центрирует название категории между звёздочками. При нечётном остатке лишняя звёздочка справа.
func banner(name string) string {
	name = truncate(name, LineWidth)
	fill := LineWidth - utf8.RuneCountInString(name)
	left := fill / 2
	right := fill - left
	return strings.Repeat(bannerFill, left) + name + strings.Repeat(bannerFill, right)
}

// wordWrap жадно упаковывает слова в строки не длиннее width.
// Слово длиннее width разбивается на куски, текст никогда не теряется.
func wordWrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return nil
	}

	var (
		lines   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range words {
		runes := []rune(word)

		if len(runes) > width {
			flush()
			for len(runes) > width {
				lines = append(lines, string(runes[:width]))
				runes = runes[width:]
			}
			current = append(current, runes...)
			continue
		}

		switch {
		case len(current) == 0:
			current = append(current, runes...)
		case len(current)+1+len(runes) <= width:
			current = append(current, ' ')
			current = append(current, runes...)
		default:
			flush()
			current = append(current, runes...)
		}
	}
	flush()

	return lines
}
