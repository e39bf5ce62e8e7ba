package period

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Periodicity
		wantErr bool
	}{
		{"daily", Daily, false},
		{"WEEKLY", Weekly, false},
		{" monthly ", Monthly, false},
		{"Yearly", Yearly, false},
		{"", "", true},
		{"fortnightly", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidPeriodicity) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidPeriodicity", tt.input, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOf_SamePeriodSameKey(t *testing.T) {
	tests := []struct {
		name string
		p    Periodicity
		a, b time.Time
	}{
		{"same day different hours", Daily, date(2024, time.March, 15), time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)},
		{"monday and sunday of one iso week", Weekly, date(2024, time.January, 1), date(2024, time.January, 7)},
		{"start and end of month", Monthly, date(2024, time.February, 1), date(2024, time.February, 29)},
		{"start and end of year", Yearly, date(2024, time.January, 1), date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Of(tt.a, tt.p) != Of(tt.b, tt.p) {
				t.Errorf("Of(%v) != Of(%v) for %s", tt.a, tt.b, tt.p)
			}
		})
	}
}

func TestDistance_ExactAcrossCalendarBoundaries(t *testing.T) {
	tests := []struct {
		name string
		p    Periodicity
		a, b time.Time
		want int
	}{
		{"consecutive days", Daily, date(2024, time.March, 15), date(2024, time.March, 16), 1},
		{"month boundary", Daily, date(2024, time.January, 31), date(2024, time.February, 1), 1},
		{"leap day", Daily, date(2024, time.February, 28), date(2024, time.February, 29), 1},
		{"after leap day", Daily, date(2024, time.February, 29), date(2024, time.March, 1), 1},
		{"non-leap february", Daily, date(2023, time.February, 28), date(2023, time.March, 1), 1},
		{"sunday to monday crosses weeks", Weekly, date(2024, time.January, 7), date(2024, time.January, 8), 1},
		{"december to january", Monthly, date(2023, time.December, 15), date(2024, time.January, 15), 1},
		{"31-day and 28-day months count equally", Monthly, date(2024, time.January, 31), date(2024, time.March, 1), 2},
		{"year boundary", Yearly, date(2023, time.June, 1), date(2024, time.June, 1), 1},
		{"same period", Daily, date(2024, time.March, 15), date(2024, time.March, 15), 0},
		{"negative when reversed", Daily, date(2024, time.March, 16), date(2024, time.March, 15), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Of(tt.a, tt.p).Distance(Of(tt.b, tt.p))
			if got != tt.want {
				t.Errorf("Distance = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdjacent(t *testing.T) {
	a := Of(date(2024, time.January, 31), Daily)
	b := Of(date(2024, time.February, 1), Daily)
	if !Adjacent(a, b) {
		t.Error("Jan 31 and Feb 1 should be adjacent days")
	}
	if Adjacent(b, a) {
		t.Error("adjacency is directional; reversed keys must not be adjacent")
	}
	if Adjacent(a, a) {
		t.Error("a period is not adjacent to itself")
	}

	weekly := Of(date(2024, time.January, 3), Weekly)
	if Adjacent(a, weekly) {
		t.Error("keys of different periodicities are never adjacent")
	}
}

func TestNextPrevious(t *testing.T) {
	for _, p := range All() {
		k := Of(date(2024, time.June, 10), p)
		if k.Next().Previous() != k {
			t.Errorf("%s: Next().Previous() should round-trip", p)
		}
		if !Adjacent(k, k.Next()) {
			t.Errorf("%s: Next() should be adjacent", p)
		}
		if !k.Previous().Before(k) {
			t.Errorf("%s: Previous() should order before", p)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		p    Periodicity
		t    time.Time
		want string
	}{
		{Daily, date(2024, time.January, 31), "2024-01-31"},
		{Weekly, date(2024, time.January, 3), "2024-W01"},
		// 2023-01-01 is a Sunday, part of ISO week 52 of 2022.
		{Weekly, date(2023, time.January, 1), "2022-W52"},
		{Monthly, date(2024, time.February, 29), "2024-02"},
		{Yearly, date(2024, time.July, 4), "2024"},
	}

	for _, tt := range tests {
		if got := Of(tt.t, tt.p).String(); got != tt.want {
			t.Errorf("Of(%v, %s).String() = %q, want %q", tt.t, tt.p, got, tt.want)
		}
	}
}

func TestStart(t *testing.T) {
	tests := []struct {
		p    Periodicity
		t    time.Time
		want time.Time
	}{
		{Daily, date(2024, time.March, 15), time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		// 2024-03-15 is a Friday; its ISO week starts Monday the 11th.
		{Weekly, date(2024, time.March, 15), time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)},
		{Monthly, date(2024, time.March, 15), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Yearly, date(2024, time.March, 15), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		if got := Of(tt.t, tt.p).Start(); !got.Equal(tt.want) {
			t.Errorf("Of(%v, %s).Start() = %v, want %v", tt.t, tt.p, got, tt.want)
		}
	}
}

func TestDatesBeforeEpoch(t *testing.T) {
	a := Of(date(1969, time.December, 31), Daily)
	b := Of(date(1970, time.January, 1), Daily)
	if !Adjacent(a, b) {
		t.Error("days on either side of 1970-01-01 should be adjacent")
	}

	m := Of(date(1969, time.December, 15), Monthly)
	if got := m.String(); got != "1969-12" {
		t.Errorf("pre-epoch monthly label = %q, want %q", got, "1969-12")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 7, 1},
		{6, 7, 0},
		{0, 7, 0},
		{-1, 7, -1},
		{-7, 7, -1},
		{-8, 7, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
