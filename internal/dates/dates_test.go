package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseCanonicalOrIso(t *testing.T) {
	tests := []struct {
		input  string
		want   time.Time
		wantOK bool
	}{
		{"30.01.2026", date(2026, time.January, 30), true},
		{"1.2.2025", date(2025, time.February, 1), true},
		{" 05.03.2024 ", date(2024, time.March, 5), true},
		{"29.02.2024", date(2024, time.February, 29), true},
		{"2026-01-30", date(2026, time.January, 30), true},
		{"2026-01-30T10:15:00Z", date(2026, time.January, 30), true},
		{"2026-01-30T23:30:00+02:00", date(2026, time.January, 30), true},
		{"2026-01-30T10:15:00", date(2026, time.January, 30), true},
		{"29.02.2025", time.Time{}, false},
		{"31.04.2025", time.Time{}, false},
		{"00.01.2025", time.Time{}, false},
		{"10.13.2025", time.Time{}, false},
		{"30.01", time.Time{}, false},
		{"30.01.2026.1", time.Time{}, false},
		{"aa.bb.cccc", time.Time{}, false},
		{"+5.01.2026", time.Time{}, false},
		{"05.+1.2026", time.Time{}, false},
		{"01.01.-5", time.Time{}, false},
		{"1.1.26", time.Time{}, false},
		{"05.01.20260", time.Time{}, false},
		{" 5 .01.2026", time.Time{}, false},
		{"005.01.2026", time.Time{}, false},
		{"2026-13-45", time.Time{}, false},
		{"not-a-date", time.Time{}, false},
		{"", time.Time{}, false},
		{"   ", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCanonicalOrIso(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	for _, s := range []string{"01.01.2026", "31.12.1999", "29.02.2024", "15.07.2025", "09.10.0999"} {
		d, ok := ParseCanonicalOrIso(s)
		require.True(t, ok, s)
		assert.Equal(t, s, FormatCanonical(d))
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"25.12.2025", 7, "01.01.2026"},
		{"28.02.2024", 7, "06.03.2024"},
		{"28.02.2025", 7, "07.03.2025"},
		{"30.01.2026", 7, "06.02.2026"},
		{"10.05.2025", 0, "10.05.2025"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			d, ok := ParseCanonicalOrIso(tt.from)
			require.True(t, ok)
			got := AddDays(d, tt.n)
			assert.Equal(t, tt.want, FormatCanonical(got))
			assert.Equal(t, time.Duration(tt.n)*24*time.Hour, got.Sub(d))
		})
	}
}

func TestExtractDisplayText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Date(2026,0,30)", "30.01.2026"},
		{"Date(2025,11,31)", "31.12.2025"},
		{"Date(2026,1,3,12,30,0)", "03.02.2026"},
		{"Date(2025, 4, 9)", "09.05.2025"},
		{"Date(2025,11,32)", "01.01.2026"},
		{"30.01.2026", "30.01.2026"},
		{"2026-01-30", "2026-01-30"},
		{"Date(abc)", "Date(abc)"},
		{"Date(2025,1)", "Date(2025,1)"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDisplayText(tt.input))
		})
	}
}
