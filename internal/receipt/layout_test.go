package receipt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestItemRow(t *testing.T) {
	tests := []struct {
		name                    string
		code, title, qty, price string
		want                    string
	}{
		{name: "header", code: "Code", title: "Nom", qty: "Qté", price: "Prix", want: "Code Nom              Qté   Prix"},
		{name: "plain", code: "A1", title: "Edamame", qty: "2", price: "12,00", want: "A1   Edamame            2  12,00"},
		{name: "truncated", code: "B12345", title: "Poulet croustillant sauce", qty: "10", price: "1234,50", want: "B1234Poulet croustill  101234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := itemRow(tt.code, tt.title, tt.qty, tt.price)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, LineWidth, utf8.RuneCountInString(got))
		})
	}
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "************Entrées*************", banner("Entrées"))
	assert.Equal(t, "*************Sushi**************", banner("Sushi"))
	assert.Equal(t, strings.Repeat("*", LineWidth), banner(""))
	assert.Equal(t, strings.Repeat("x", LineWidth), banner(strings.Repeat("x", 40)))
}

func TestTotalRow(t *testing.T) {
	assert.Equal(t, "TOTAL:                     18,50", totalRow("TOTAL:", "18,50"))
	assert.Equal(t, "TOTAL:                   12345,6", totalRow("TOTAL:", "12345,67"))
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "empty", text: "   ", width: 32, want: nil},
		{name: "fits", text: "Rue de la Loi 16", width: 32, want: []string{"Rue de la Loi 16"}},
		{
			name:  "greedy",
			text:  "Avenue du Port de Bruxelles-Ville 86C / boîte 204",
			width: 32,
			want:  []string{"Avenue du Port de", "Bruxelles-Ville 86C / boîte 204"},
		},
		{
			name:  "long word is split",
			text:  "ab cdefghijkl mn",
			width: 5,
			want:  []string{"ab", "cdefg", "hijkl", "mn"},
		},
		{name: "collapses spaces", text: "a   b\tc", width: 32, want: []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wordWrap(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.LessOrEqual(t, utf8.RuneCountInString(line), tt.width)
			}
		})
	}
}

func TestWordWrap_KeepsAllText(t *testing.T) {
	text := "Résidence Les Jardins de Woluwe, entrée arrière, troisième étage, code porte 4821"
	lines := wordWrap(text, LineWidth)

	assert.Greater(t, len(lines), 1)
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "))
}
