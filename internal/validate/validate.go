// Package validate holds the boundary checks applied to incoming
// requests before any repository call is made.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
)

// Email checks basic email shape
func Email(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// Phone checks the optional phone field. Spaces are ignored, matching
// the form behaviour of the boutique client.
func Phone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(strings.ReplaceAll(phone, " ", "")) {
		return fmt.Errorf("invalid phone number")
	}
	return nil
}

// Date checks that dateStr is a calendar date in YYYY-MM-DD form.
// The format matters: lexical comparison on these strings is how
// transaction date ranges and ordering work.
func Date(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date format, want YYYY-MM-DD")
	}
	return nil
}

// Required checks a required free-text field
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// Amount checks a monetary amount is non-negative
func Amount(field string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}
