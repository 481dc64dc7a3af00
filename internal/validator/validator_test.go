package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestRecordDate(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	tests := []struct {
		in    string
		valid bool
	}{
		{"2024-01-01", true},
		{"2024-01-01T10:30:00Z", true},
		{"2024-01-01T10:30:00.123+02:00", true},
		{"01/02/2024", false},
		{"2024-13-01", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := v.Var(tt.in, "record_date")
			if (err == nil) != tt.valid {
				t.Errorf("record_date(%q): expected valid=%v, got err=%v", tt.in, tt.valid, err)
			}
		})
	}
}

func TestMonth(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	for in, valid := range map[string]bool{
		"2024-01":    true,
		"2024-12":    true,
		"2024-1":     false,
		"2024-01-01": false,
		"January":    false,
	} {
		if err := v.Var(in, "month"); (err == nil) != valid {
			t.Errorf("month(%q): expected valid=%v, got err=%v", in, valid, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-03-01")
	if !ok || d.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("unexpected parse result %v, %v", d, ok)
	}
	if _, ok := ParseDate("yesterday"); ok {
		t.Error("expected parse failure")
	}
}
