package printer

import "golang.org/x/text/encoding/charmap"

// Управляющие последовательности ESC/POS.
const (
	esc = 0x1B
	gs  = 0x1D

	// codePageCP858 — номер таблицы PC858 (Latin-1 с €) в командах ESC t.
	codePageCP858 = 19
)

func cmdInit() []byte {
	return []byte{esc, '@', esc, 't', codePageCP858}
}

func cmdAlign(n byte) []byte {
	return []byte{esc, 'a', n}
}

func cmdFeed(lines int) []byte {
	if lines < 0 {
		lines = 0
	}
	if lines > 255 {
		lines = 255
	}
	return []byte{esc, 'd', byte(lines)}
}

func cmdCut() []byte {
	return []byte{gs, 'V', 0x00}
}

// encodeText переводит UTF-8 в CP858. Символы вне таблицы заменяются на '?'.
func encodeText(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.CodePage858.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
