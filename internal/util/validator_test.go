package util

import (
	"testing"
	"time"
)

func TestValidateAmount_Valid(t *testing.T) {
	testCases := []float64{0, 0.01, 1.0, 100.5, 9999999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}
}

func TestValidateAmount_Negative(t *testing.T) {
	testCases := []float64{-0.01, -100, -9999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(100000000)

	if err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

func TestValidateCategory_Valid(t *testing.T) {
	testCases := []string{"salary", "food", "transport", "utilities", "other"}

	for _, category := range testCases {
		err := ValidateCategory(category)
		if err != nil {
			t.Errorf("ValidateCategory(%q) error = %v, want nil", category, err)
		}
	}
}

func TestValidateCategory_Invalid(t *testing.T) {
	testCases := []string{"", "groceries", "Food", "SALARY", "misc"}

	for _, category := range testCases {
		err := ValidateCategory(category)
		if err == nil {
			t.Errorf("ValidateCategory(%q) error = nil, want error", category)
		}
	}
}

func TestValidateRate(t *testing.T) {
	for _, rate := range []float64{0, 4.5, 19.99, 100} {
		if err := ValidateRate(rate); err != nil {
			t.Errorf("ValidateRate(%f) error = %v, want nil", rate, err)
		}
	}
	for _, rate := range []float64{-1, 100.01, 500} {
		if err := ValidateRate(rate); err == nil {
			t.Errorf("ValidateRate(%f) error = nil, want error", rate)
		}
	}
}

func TestValidateMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		if err := ValidateMonth(month); err != nil {
			t.Errorf("ValidateMonth(%d) error = %v, want nil", month, err)
		}
	}
	for _, month := range []int{0, -1, 13} {
		if err := ValidateMonth(month); err == nil {
			t.Errorf("ValidateMonth(%d) error = nil, want error", month)
		}
	}
}

func TestParseDate_Valid(t *testing.T) {
	testCases := []string{
		"2025-06-15",
		"2025-06-15T10:30:00",
		"2025-06-15T10:30:00+08:00",
	}

	for _, s := range testCases {
		d, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", s, err)
			continue
		}
		if d.Year() != 2025 || d.Month() != time.June || d.Day() != 15 {
			t.Errorf("ParseDate(%q) = %v, want 2025-06-15", s, d)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"2025/06/15",
		"15-06-2025",
		"not-a-date",
		"2025-13-01",
	}

	for _, s := range testCases {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", s)
		}
	}
}
