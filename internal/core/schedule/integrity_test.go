package schedule

import (
	"errors"
	"testing"

	"github.com/example/verdant/internal/core/calendar"
)

func fullSet() []Entry {
	return []Entry{
		{Season: calendar.Spring, WateringInterval: 3, FertilizingInterval: 30},
		{Season: calendar.Summer, WateringInterval: 2, FertilizingInterval: 14},
		{Season: calendar.Autumn, WateringInterval: 5, FertilizingInterval: 0},
		{Season: calendar.Winter, WateringInterval: 10, FertilizingInterval: 0},
	}
}

func TestValidateIntegrity_Complete(t *testing.T) {
	if err := ValidateIntegrity(fullSet()); err != nil {
		t.Fatalf("ValidateIntegrity failed on complete set: %v", err)
	}
}

func TestValidateIntegrity_MissingSeason(t *testing.T) {
	entries := fullSet()[:3] // drops winter

	err := ValidateIntegrity(entries)
	if err == nil {
		t.Fatal("expected integrity error for 3-season set")
	}

	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IntegrityError, got %T", err)
	}
	if len(ie.Missing) != 1 || ie.Missing[0] != calendar.Winter {
		t.Errorf("expected missing [winter], got %v", ie.Missing)
	}
	if len(ie.Duplicates) != 0 {
		t.Errorf("expected no duplicates, got %v", ie.Duplicates)
	}
	if len(ie.Received) != 3 {
		t.Errorf("expected 3 received seasons, got %v", ie.Received)
	}
	if len(ie.Expected) != 4 {
		t.Errorf("expected 4 expected seasons, got %v", ie.Expected)
	}
}

func TestValidateIntegrity_DuplicateSeason(t *testing.T) {
	entries := fullSet()
	entries[3].Season = calendar.Spring // winter replaced by second spring

	err := ValidateIntegrity(entries)
	if err == nil {
		t.Fatal("expected integrity error for duplicated season")
	}

	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IntegrityError, got %T", err)
	}
	if len(ie.Duplicates) != 1 || ie.Duplicates[0] != calendar.Spring {
		t.Errorf("expected duplicates [spring], got %v", ie.Duplicates)
	}
	if len(ie.Missing) != 1 || ie.Missing[0] != calendar.Winter {
		t.Errorf("expected missing [winter], got %v", ie.Missing)
	}
}

func TestValidateIntegrity_EmptySet(t *testing.T) {
	err := ValidateIntegrity(nil)
	if err == nil {
		t.Fatal("expected integrity error for empty set")
	}

	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IntegrityError, got %T", err)
	}
	if len(ie.Missing) != 4 {
		t.Errorf("expected all 4 seasons missing, got %v", ie.Missing)
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		entries   []Entry
		wantErr   bool
		wantDup   bool
		wantField string
	}{
		{name: "full set", entries: fullSet()},
		{name: "partial set", entries: fullSet()[:2]},
		{name: "empty", entries: nil, wantErr: true, wantField: "schedules"},
		{
			name: "five entries",
			entries: append(fullSet(), Entry{
				Season: calendar.Spring, WateringInterval: 1,
			}),
			wantErr:   true, // count check fires before the duplicate check
			wantField: "schedules",
		},
		{
			name: "duplicate season",
			entries: []Entry{
				{Season: calendar.Spring, WateringInterval: 3},
				{Season: calendar.Spring, WateringInterval: 4},
			},
			wantErr: true,
			wantDup: true,
		},
		{
			name:      "unknown season",
			entries:   []Entry{{Season: "monsoon", WateringInterval: 3}},
			wantErr:   true,
			wantField: "season",
		},
		{
			name:      "negative watering interval",
			entries:   []Entry{{Season: calendar.Spring, WateringInterval: -1}},
			wantErr:   true,
			wantField: "watering_interval",
		},
		{
			name:      "watering interval over max",
			entries:   []Entry{{Season: calendar.Spring, WateringInterval: 366}},
			wantErr:   true,
			wantField: "watering_interval",
		},
		{
			name:      "fertilizing interval over max",
			entries:   []Entry{{Season: calendar.Spring, FertilizingInterval: 400}},
			wantErr:   true,
			wantField: "fertilizing_interval",
		},
		{
			name:    "zero intervals are legal",
			entries: []Entry{{Season: calendar.Spring, WateringInterval: 0, FertilizingInterval: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.entries)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantDup {
				var dup *DuplicateSeasonError
				if !errors.As(err, &dup) {
					t.Errorf("expected *DuplicateSeasonError, got %T (%v)", err, err)
				}
			}
			if tt.wantField != "" {
				var in *InputError
				if !errors.As(err, &in) {
					t.Fatalf("expected *InputError, got %T (%v)", err, err)
				}
				if in.Field != tt.wantField {
					t.Errorf("expected field %q, got %q", tt.wantField, in.Field)
				}
			}
		})
	}
}

func TestSortCanonical(t *testing.T) {
	entries := []Entry{
		{Season: calendar.Winter},
		{Season: calendar.Spring},
		{Season: calendar.Autumn},
		{Season: calendar.Summer},
	}

	SortCanonical(entries)

	want := []calendar.Season{calendar.Spring, calendar.Summer, calendar.Autumn, calendar.Winter}
	for i, s := range want {
		if entries[i].Season != s {
			t.Errorf("position %d = %s, want %s", i, entries[i].Season, s)
		}
	}
}

func TestFindSeason(t *testing.T) {
	entries := fullSet()

	e, ok := FindSeason(entries, calendar.Autumn)
	if !ok {
		t.Fatal("expected autumn entry")
	}
	if e.WateringInterval != 5 {
		t.Errorf("autumn watering interval = %d, want 5", e.WateringInterval)
	}

	if _, ok := FindSeason(entries[:2], calendar.Winter); ok {
		t.Error("expected no winter entry in partial set")
	}
}
