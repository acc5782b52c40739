package validation

import (
	"strings"
	"testing"
)

func TestHabitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "simple name",
			input: "Drink water",
			want:  "Drink water",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  Read  ",
			want:  "Read",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "tabs and newlines only",
			input:   "\t\n ",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   strings.Repeat("x", MaxHabitNameLen+1),
			wantErr: true,
		},
		{
			name:  "exactly max length",
			input: strings.Repeat("x", MaxHabitNameLen),
			want:  strings.Repeat("x", MaxHabitNameLen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HabitName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("HabitName(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("HabitName(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("HabitName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	if _, err := Day("2026-08-20"); err != nil {
		t.Errorf("valid day rejected: %v", err)
	}

	for _, input := range []string{"", "08/20/2026", "2026-13-01", "yesterday"} {
		if _, err := Day(input); err == nil {
			t.Errorf("Day(%q) succeeded, want error", input)
		}
	}
}
