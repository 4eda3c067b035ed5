package datetime

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DateTime
	}{
		{
			"typical morning",
			"09/29/2013 9:15:42 AM",
			DateTime{Year: 2013, Month: 9, Day: 29, Hour: 9, Minute: 15, Second: 42, Valid: true},
		},
		{
			"typical afternoon",
			"01/02/2015 3:04:05 PM",
			DateTime{Year: 2015, Month: 1, Day: 2, Hour: 15, Minute: 4, Second: 5, Valid: true},
		},
		{
			"midnight 12 AM",
			"06/15/2017 12:00:00 AM",
			DateTime{Year: 2017, Month: 6, Day: 15, Hour: 0, Minute: 0, Second: 0, Valid: true},
		},
		{
			"noon 12 PM",
			"06/15/2017 12:00:00 PM",
			DateTime{Year: 2017, Month: 6, Day: 15, Hour: 12, Minute: 0, Second: 0, Valid: true},
		},
		{
			"single digit month and day",
			"3/7/2019 11:59:59 PM",
			DateTime{Year: 2019, Month: 3, Day: 7, Hour: 23, Minute: 59, Second: 59, Valid: true},
		},
		{
			"lowercase meridiem",
			"12/31/2015 11:59:59 pm",
			DateTime{Year: 2015, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "1/1/2015"},
		{"garbage", "not a date at all"},
		{"missing time", "09/29/2013      "},
		{"wrong separators", "09-29-2013 9:15:42 AM"},
		{"missing meridiem", "09/29/2013 9:15:42 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Valid {
				t.Errorf("Parse(%q) = %+v, want invalid", tt.input, got)
			}
			if got != (DateTime{}) {
				t.Errorf("Parse(%q) invalid result has non-zero fields: %+v", tt.input, got)
			}
		})
	}
}

func TestKey_OrderingAgreesWithFields(t *testing.T) {
	// In strictly ascending field-wise order; each pair must also be
	// strictly ascending by packed key.
	ordered := []DateTime{
		{Year: 2010, Month: 1, Day: 1, Valid: true},
		{Year: 2010, Month: 1, Day: 1, Second: 1, Valid: true},
		{Year: 2010, Month: 1, Day: 1, Minute: 1, Valid: true},
		{Year: 2010, Month: 1, Day: 1, Hour: 1, Valid: true},
		{Year: 2010, Month: 1, Day: 2, Valid: true},
		{Year: 2010, Month: 2, Day: 1, Valid: true},
		{Year: 2011, Month: 1, Day: 1, Valid: true},
		{Year: 2019, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Valid: true},
	}

	for i := 0; i < len(ordered)-1; i++ {
		a, b := ordered[i], ordered[i+1]
		if a.Key() >= b.Key() {
			t.Errorf("Key ordering violated: %v (key %d) >= %v (key %d)", a, a.Key(), b, b.Key())
		}
		if !a.Less(b) {
			t.Errorf("expected %v < %v", a, b)
		}
		if b.Less(a) {
			t.Errorf("expected !(%v < %v)", b, a)
		}
	}
}

func TestOrdering_TotalOverValidValues(t *testing.T) {
	a := Parse("01/01/2015 12:00:00 AM")
	b := Parse("12/31/2015 11:59:59 PM")

	pairs := []struct {
		name string
		x, y DateTime
	}{
		{"distinct", a, b},
		{"same", a, a},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			var holds int
			if p.x.Less(p.y) {
				holds++
			}
			if p.x.Equal(p.y) {
				holds++
			}
			if p.x.After(p.y) {
				holds++
			}
			if holds != 1 {
				t.Errorf("exactly one of <, ==, > must hold for %v vs %v; got %d", p.x, p.y, holds)
			}
		})
	}
}

// Two invalid values are never Equal, yet neither is Less than the other.
// This asymmetry is intentional; see the DateTime doc comment.
func TestInvalid_ComparisonQuirks(t *testing.T) {
	var inv1, inv2 DateTime
	valid := Parse("06/15/2017 12:00:00 PM")

	if inv1.Equal(inv2) {
		t.Error("two invalid values must not compare equal")
	}
	if inv1.Less(inv2) || inv2.Less(inv1) {
		t.Error("neither invalid value may order before the other")
	}
	if !inv1.Less(valid) {
		t.Error("invalid must order before every valid value")
	}
	if valid.Less(inv1) {
		t.Error("valid must not order before invalid")
	}
	if inv1.Equal(valid) || valid.Equal(inv1) {
		t.Error("invalid must not equal a valid value")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input DateTime
		want  string
	}{
		{
			"zero padded",
			DateTime{Year: 2013, Month: 9, Day: 2, Hour: 7, Minute: 5, Second: 3, Valid: true},
			"2013-09-02 07:05:03",
		},
		{
			"invalid literal",
			DateTime{},
			"(invalid)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLessEq_InclusiveBounds(t *testing.T) {
	start := Parse("01/01/2015 12:00:00 AM")
	end := Parse("12/31/2015 11:59:59 PM")

	if !start.LessEq(start) {
		t.Error("LessEq must be reflexive for valid values")
	}
	if !start.LessEq(end) {
		t.Error("start must be <= end")
	}
	if end.LessEq(start) {
		t.Error("end must not be <= start")
	}
}
