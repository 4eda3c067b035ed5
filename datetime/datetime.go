// Package datetime implements the compact timestamp representation used
// throughout the 311 dataset.
//
// Timestamps in the raw data use the textual pattern "M/D/YYYY H:MM:SS AM"
// or are empty. Parse converts that pattern into a DateTime; an empty or
// malformed field simply yields an invalid DateTime, which is a normal
// outcome rather than an error (millions of rows have no closed date).
//
// DateTime is small enough to embed by value in every record: six integer
// fields plus a validity flag. Ordering is defined through a single packed
// uint64 key so range predicates compare in O(1).
package datetime

import "fmt"

// DateTime is a parsed timestamp. The zero value is the invalid DateTime.
//
// Ordering: an invalid DateTime sorts before every valid one. Two invalid
// values are never Equal, yet neither is Less than the other; this
// asymmetry is deliberate and load-bearing for query semantics; do not
// "fix" it.
type DateTime struct {
	Year   uint16 // e.g. 2015
	Month  uint8  // 1-12
	Day    uint8  // 1-31
	Hour   uint8  // 0-23, converted from AM/PM
	Minute uint8  // 0-59
	Second uint8  // 0-59
	Valid  bool   // false when the source field was empty or malformed
}

// minParseLen is the shortest input that can carry all seven tokens,
// e.g. "1/1/1 0:0:0 AM" trimmed to its bare minimum.
const minParseLen = 11

// Parse converts a raw "M/D/YYYY H:MM:SS AM" field into a DateTime.
//
// Month, day, hour, minute and second may be one or two digits; the year
// may be one to four digits. The meridiem token is case-insensitive and
// anything not starting with 'P' is treated as AM. Empty, short, or
// otherwise malformed input returns the invalid zero DateTime, never an
// error, since an absent timestamp is ordinary in this dataset.
func Parse(s string) DateTime {
	var dt DateTime
	if len(s) < minParseLen {
		return dt
	}

	p := parser{s: s}
	mm, ok := p.uint(2)
	if !ok || !p.expect('/') {
		return dt
	}
	dd, ok := p.uint(2)
	if !ok || !p.expect('/') {
		return dt
	}
	yyyy, ok := p.uint(4)
	if !ok || !p.expect(' ') {
		return dt
	}
	hh, ok := p.uint(2)
	if !ok || !p.expect(':') {
		return dt
	}
	mi, ok := p.uint(2)
	if !ok || !p.expect(':') {
		return dt
	}
	ss, ok := p.uint(2)
	if !ok || !p.expect(' ') {
		return dt
	}
	ampm, ok := p.word()
	if !ok {
		return dt
	}

	dt.Year = uint16(yyyy)
	dt.Month = uint8(mm)
	dt.Day = uint8(dd)
	dt.Minute = uint8(mi)
	dt.Second = uint8(ss)
	dt.Hour = to24h(uint8(hh), ampm == 'P' || ampm == 'p')
	dt.Valid = true
	return dt
}

// to24h converts a 12-hour clock value and meridiem into a 24-hour value.
// 12 AM is midnight (0), 12 PM is noon (12).
func to24h(h uint8, pm bool) uint8 {
	if !pm {
		if h == 12 {
			return 0
		}
		return h
	}
	if h == 12 {
		return 12
	}
	return h + 12
}

// parser is a tiny cursor over the raw field. Each method consumes on
// success and reports failure without advancing past bad input.
type parser struct {
	s string
	i int
}

// uint consumes 1..max decimal digits.
func (p *parser) uint(max int) (uint, bool) {
	var v uint
	n := 0
	for p.i < len(p.s) && n < max {
		c := p.s[p.i]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + uint(c-'0')
		p.i++
		n++
	}
	return v, n > 0
}

// expect consumes exactly one occurrence of c.
func (p *parser) expect(c byte) bool {
	if p.i < len(p.s) && p.s[p.i] == c {
		p.i++
		return true
	}
	return false
}

// word returns the first byte of the trailing meridiem token.
func (p *parser) word() (byte, bool) {
	if p.i >= len(p.s) {
		return 0, false
	}
	return p.s[p.i], true
}

// Key packs all six fields into one uint64 for O(1) ordering.
// Bit layout, most significant first: year(16) month(8) day(8) hour(8)
// minute(8) second(8). Integer comparison of keys agrees exactly with
// field-wise lexicographic comparison.
func (dt DateTime) Key() uint64 {
	return uint64(dt.Year)<<40 |
		uint64(dt.Month)<<32 |
		uint64(dt.Day)<<24 |
		uint64(dt.Hour)<<16 |
		uint64(dt.Minute)<<8 |
		uint64(dt.Second)
}

// Equal reports whether two timestamps are the same valid instant.
// An invalid DateTime is never equal to anything, including another
// invalid DateTime.
func (dt DateTime) Equal(o DateTime) bool {
	if !dt.Valid || !o.Valid {
		return false
	}
	return dt.Key() == o.Key()
}

// Less reports whether dt orders strictly before o. An invalid DateTime
// is less than every valid one; two invalid values order neither way.
func (dt DateTime) Less(o DateTime) bool {
	if !dt.Valid && !o.Valid {
		return false
	}
	if !dt.Valid {
		return true
	}
	if !o.Valid {
		return false
	}
	return dt.Key() < o.Key()
}

// LessEq reports dt <= o under the same ordering as Less.
func (dt DateTime) LessEq(o DateTime) bool {
	return !o.Less(dt)
}

// After reports dt > o.
func (dt DateTime) After(o DateTime) bool {
	return o.Less(dt)
}

// String renders "YYYY-MM-DD HH:MM:SS", or the literal "(invalid)" for
// an invalid value. The output is for display; it is not re-parseable
// by Parse.
func (dt DateTime) String() string {
	if !dt.Valid {
		return "(invalid)"
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}
