package services

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxNameLength bounds inventory, category and display names.
const MaxNameLength = 255

// ValidateName enforces the rules shared by inventory, category and user
// display names:
//   - 1 to MaxNameLength characters
//   - no leading or trailing whitespace
//   - no control characters
//   - no consecutive spaces
func ValidateName(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if len(s) > MaxNameLength {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxNameLength)
	}
	if s != strings.TrimSpace(s) {
		return fmt.Errorf("%s must not have leading or trailing whitespace", field)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}
	if strings.Contains(s, "  ") {
		return fmt.Errorf("%s must not contain consecutive spaces", field)
	}
	return nil
}

// ValidateDescription is looser than ValidateName: item descriptions may
// span lines, but must not be blank and must not carry other control
// characters.
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("description must not be empty")
	}
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return fmt.Errorf("description must not contain control characters")
		}
	}
	return nil
}
