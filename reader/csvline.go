package reader

// SplitLine splits one line of comma-delimited text into column strings.
//
// The scanner has two states, normal and inside-quotes. An opening or
// closing quote is consumed rather than copied; a doubled quote inside a
// quoted field collapses to a single literal quote; commas inside quotes
// belong to the field; carriage returns outside quotes are discarded so
// Windows line endings are tolerated. At end of line the accumulated
// field is always pushed, so an unterminated quote yields everything
// gathered so far instead of an error.
//
// The fields slice is reset and reused to keep per-line allocation down
// on multi-gigabyte inputs; pass nil on first use.
func SplitLine(line string, fields []string) []string {
	fields = fields[:0]

	buf := make([]byte, 0, 64)
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					// Doubled quote: one literal quote.
					buf = append(buf, '"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				buf = append(buf, c)
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			fields = append(fields, string(buf))
			buf = buf[:0]
		case '\r':
			// Tolerate Windows line endings.
		default:
			buf = append(buf, c)
		}
	}

	// The last field has no trailing comma.
	fields = append(fields, string(buf))
	return fields
}

// TrimQuotes strips one pair of wrapping double quotes from a raw field.
// It is the quote-stripping policy for pass-through callers that split
// without quote awareness; SplitLine output does not need it.
func TrimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
