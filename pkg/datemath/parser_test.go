package datemath_test

import (
	"testing"
	"time"

	"taskflow-pro/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Next week", relative: "Next Week", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Next week extra spaces", relative: " next \t week ", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Next Friday mixed case", relative: "NEXT  Friday", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_ResolvesInParserLocation(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*60*60)
	parser := datemath.NewParserIn(hcm)

	// 20:00 UTC on Sunday is already Monday 03:00 in ICT.
	base := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)

	got, err := parser.Parse("tomorrow", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if datemath.FormatDate(got) != "2026-10-20" || got.Location() != hcm {
		t.Errorf("Parse(tomorrow) = %v, want 2026-10-20 in ICT", got)
	}

	got, _ = parser.Parse("next monday", base)
	if datemath.FormatDate(got) != "2026-10-26" {
		t.Errorf("Parse(next monday) = %s, want 2026-10-26", datemath.FormatDate(got))
	}
}

func TestNewParserIn_NilIsUTC(t *testing.T) {
	if loc := datemath.NewParserIn(nil).Location(); loc != time.UTC {
		t.Errorf("Location() = %v, want UTC", loc)
	}
}

func TestNextWeekday(t *testing.T) {
	monday := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		target time.Weekday
		want   string
	}{
		{time.Monday, "2026-10-26"},
		{time.Tuesday, "2026-10-20"},
		{time.Sunday, "2026-10-25"},
		{time.Saturday, "2026-10-24"},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			got := datemath.FormatDate(datemath.NextWeekday(monday, tt.target))
			if got != tt.want {
				t.Errorf("NextWeekday(%s) = %s, want %s", tt.target, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := datemath.ParseDate("2026-02-28", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if datemath.FormatDate(got.AddDate(0, 0, 1)) != "2026-03-01" {
		t.Errorf("unexpected rollover: %v", got)
	}

	if _, err := datemath.ParseDate("2026-13-01", time.UTC); err == nil {
		t.Error("expected error for invalid month")
	}
}
