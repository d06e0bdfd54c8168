package calendar

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid date", input: "2026-03-15", want: "2026-03-15"},
		{name: "leap day", input: "2024-02-29", want: "2024-02-29"},
		{name: "nonexistent day", input: "2025-02-30", wantErr: true},
		{name: "nonexistent leap day", input: "2025-02-29", wantErr: true},
		{name: "month out of range", input: "2025-13-01", wantErr: true},
		{name: "unpadded month", input: "2025-3-15", wantErr: true},
		{name: "unpadded day", input: "2025-03-5", wantErr: true},
		{name: "timestamp rejected", input: "2025-03-15T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromTimeTruncatesToUTCDay(t *testing.T) {
	// 23:30 on March 31 in UTC+2 is 21:30 March 31 UTC.
	loc := time.FixedZone("UTC+2", 2*60*60)
	d := FromTime(time.Date(2026, 3, 31, 23, 30, 0, 0, loc))
	if d.String() != "2026-03-31" {
		t.Errorf("expected 2026-03-31, got %s", d)
	}

	// 00:30 on April 1 in UTC+2 is still March 31 in UTC.
	d = FromTime(time.Date(2026, 4, 1, 0, 30, 0, 0, loc))
	if d.String() != "2026-03-31" {
		t.Errorf("expected 2026-03-31, got %s", d)
	}
}

func TestAddDays(t *testing.T) {
	d := NewDate(2026, time.February, 27)

	if got := d.AddDays(2).String(); got != "2026-03-01" {
		t.Errorf("AddDays(2) = %s, want 2026-03-01", got)
	}
	if got := d.AddDays(0).String(); got != "2026-02-27" {
		t.Errorf("AddDays(0) = %s, want 2026-02-27", got)
	}
	if got := d.AddDays(365).String(); got != "2027-02-27" {
		t.Errorf("AddDays(365) = %s, want 2027-02-27", got)
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2026, time.May, 1)
	b := NewDate(2026, time.May, 2)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After ordering wrong")
	}
	if !a.Equal(NewDate(2026, time.May, 1)) {
		t.Error("Equal failed for same day")
	}
}

func TestMinDate(t *testing.T) {
	a := NewDate(2026, time.May, 1)
	b := NewDate(2026, time.May, 3)

	if got := MinDate(a, b); !got.Equal(a) {
		t.Errorf("MinDate = %s, want %s", got, a)
	}
	if got := MinDate(Date{}, b); !got.Equal(b) {
		t.Errorf("MinDate with zero first = %s, want %s", got, b)
	}
	if got := MinDate(a, Date{}); !got.Equal(a) {
		t.Errorf("MinDate with zero second = %s, want %s", got, a)
	}
	if got := MinDate(Date{}, Date{}); !got.IsZero() {
		t.Errorf("MinDate of two zeros = %s, want zero", got)
	}
}

func TestZeroDateString(t *testing.T) {
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero date String() = %q, want empty", got)
	}
}
