package sin

import "strings"

const DefaultSeparator = '-'

type FormatStyle struct {
	grouped   bool
	separator rune
}

var (
	Plain   = FormatStyle{}
	Grouped = FormatStyle{grouped: true, separator: DefaultSeparator}
)

// GroupedWith groups digits 3-3-3 around sep.
func GroupedWith(sep rune) FormatStyle {
	return FormatStyle{grouped: true, separator: sep}
}

// ParseFormatStyle maps "plain" and "grouped" (or "") to a style.
func ParseFormatStyle(s string) (FormatStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grouped":
		return Grouped, true
	case "plain":
		return Plain, true
	default:
		return FormatStyle{}, false
	}
}

func Format(n Number, style FormatStyle) string {
	s := n.digits.String()
	if !style.grouped {
		return s
	}
	sep := string(style.separator)
	return s[0:3] + sep + s[3:6] + sep + s[6:9]
}
