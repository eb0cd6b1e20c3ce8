package receipt

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DRSN-tech/kiosk-printer/internal/domain"
)

// codeKey — ключ сортировки кода продукта: буквенный префикс без учёта регистра и числовой суффикс.
type codeKey struct {
	prefix string
	number int
}

// parseCodeKey берёт ведущие буквы как префикс и завершающие цифры как номер ("A-12" → a, 12).
// Без суффикса или при переполнении номер равен 0. Коды без префикса и без суффикса сортируются по строке целиком.
func parseCodeKey(code string) codeKey {
	end := len(code)
	for end > 0 && code[end-1] >= '0' && code[end-1] <= '9' {
		end--
	}
	digits := code[end:]

	prefixEnd := 0
	for i, r := range code[:end] {
		if !unicode.IsLetter(r) {
			break
		}
		prefixEnd = i + utf8.RuneLen(r)
	}

	if prefixEnd == 0 && digits == "" {
		return codeKey{prefix: strings.ToLower(code)}
	}

	key := codeKey{prefix: strings.ToLower(code[:prefixEnd])}
	if n, err := strconv.Atoi(digits); err == nil {
		key.number = n
	}
	return key
}

func compareCodes(a, b string) int {
	ka, kb := parseCodeKey(a), parseCodeKey(b)
	if c := cmp.Compare(ka.prefix, kb.prefix); c != 0 {
		return c
	}
	return cmp.Compare(ka.number, kb.number)
}

// sortLines возвращает копию строк, отсортированную по коду продукта. Равные ключи сохраняют исходный порядок.
func sortLines(lines []domain.OrderLine) []domain.OrderLine {
	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, func(a, b domain.OrderLine) int {
		return compareCodes(a.Product.Code, b.Product.Code)
	})
	return sorted
}

// lineGroup — строки одной категории
type lineGroup struct {
	name  string
	lines []domain.OrderLine
}

// groupByCategory группирует строки по названию категории в порядке первого появления.
func groupByCategory(lines []domain.OrderLine) []lineGroup {
	index := make(map[string]int)
	var groups []lineGroup

	for _, line := range lines {
		name := line.Product.Category.Name
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, lineGroup{name: name})
		}
		groups[i].lines = append(groups[i].lines, line)
	}

	return groups
}
