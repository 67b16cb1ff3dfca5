package delimited

import (
	"strings"

	"github.com/typerow/typerow/errors"
)

// EncodeField renders a raw value as a delimiter-safe field. The result
// never contains an unescaped separator or line terminator, and
// DecodeField(EncodeField(s)) == s for every string s.
func EncodeField(s string, cfg Config) string {
	cfg = cfg.withDefaults()
	if cfg.Escape != 0 {
		return encodeEscaped(s, cfg)
	}
	return encodeQuoted(s, cfg)
}

// DecodeField reverses EncodeField for a single field.
func DecodeField(s string, cfg Config) (string, error) {
	cfg = cfg.withDefaults()
	if cfg.Escape != 0 {
		return decodeEscaped(s, cfg)
	}
	return decodeQuoted(s, cfg)
}

// Escape discipline. Line terminators map to the escape sequences n and r
// so encoded fields stay on one physical line; everything else after the
// escape character decodes to itself.

func encodeEscaped(s string, cfg Config) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case cfg.Sep, cfg.Escape:
			b.WriteRune(cfg.Escape)
			b.WriteRune(r)
		case '\n':
			b.WriteRune(cfg.Escape)
			b.WriteRune('n')
		case '\r':
			b.WriteRune(cfg.Escape)
			b.WriteRune('r')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func decodeEscaped(s string, cfg Config) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		if esc {
			switch r {
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(r)
			}
			esc = false
			continue
		}
		if r == cfg.Escape {
			esc = true
			continue
		}
		b.WriteRune(r)
	}
	if esc {
		return "", errors.MalformedEscape(0, "escape character at end of field")
	}
	return b.String(), nil
}

// Quoting discipline. A field is wrapped when it contains the separator,
// the quote character, or a line terminator; embedded quotes are doubled.

func encodeQuoted(s string, cfg Config) string {
	needs := strings.ContainsRune(s, cfg.Sep) ||
		strings.ContainsRune(s, cfg.Quote) ||
		strings.ContainsAny(s, "\n\r")
	if !needs {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteRune(cfg.Quote)
	for _, r := range s {
		if r == cfg.Quote {
			b.WriteRune(cfg.Quote)
		}
		b.WriteRune(r)
	}
	b.WriteRune(cfg.Quote)
	return b.String()
}

func decodeQuoted(s string, cfg Config) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	inQuote := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != cfg.Quote {
			b.WriteRune(r)
			continue
		}
		if inQuote && i+1 < len(runes) && runes[i+1] == cfg.Quote {
			b.WriteRune(cfg.Quote)
			i++
			continue
		}
		inQuote = !inQuote
	}
	if inQuote {
		return "", errors.MalformedEscape(0, "unterminated quoted field")
	}
	return b.String(), nil
}

// splitFields splits one logical line into decoded fields. Under the
// quoting discipline a line may end inside an open quote (a quoted field
// carrying a literal line terminator); needMore reports that the caller
// must append the next physical line and retry.
func splitFields(line string, cfg Config) (fields []string, needMore bool, err error) {
	if cfg.Escape != 0 {
		return splitEscaped(line, cfg)
	}
	return splitQuoted(line, cfg)
}

func splitEscaped(line string, cfg Config) ([]string, bool, error) {
	var fields []string
	var b strings.Builder
	esc := false
	for _, r := range line {
		if esc {
			switch r {
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(r)
			}
			esc = false
			continue
		}
		switch r {
		case cfg.Escape:
			esc = true
		case cfg.Sep:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if esc {
		return nil, false, errors.MalformedEscape(0, "escape character at end of line")
	}
	fields = append(fields, b.String())
	return fields, false, nil
}

func splitQuoted(line string, cfg Config) ([]string, bool, error) {
	var fields []string
	var b strings.Builder
	runes := []rune(line)
	inQuote := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inQuote {
			if r == cfg.Quote {
				if i+1 < len(runes) && runes[i+1] == cfg.Quote {
					b.WriteRune(cfg.Quote)
					i++
					continue
				}
				inQuote = false
				continue
			}
			b.WriteRune(r)
			continue
		}
		switch r {
		case cfg.Sep:
			fields = append(fields, b.String())
			b.Reset()
		case cfg.Quote:
			inQuote = true
		default:
			b.WriteRune(r)
		}
	}
	if inQuote {
		return nil, true, nil
	}
	fields = append(fields, b.String())
	return fields, false, nil
}

// joinFields encodes every field and joins them with the separator.
func joinFields(fields []string, cfg Config) string {
	encoded := make([]string, len(fields))
	for i, f := range fields {
		encoded[i] = EncodeField(f, cfg)
	}
	return strings.Join(encoded, string(cfg.Sep))
}
