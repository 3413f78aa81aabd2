package dto

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

var dateRegex = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)

func validateReleaseDate(releaseDate string) []ValidationError {
	var errs []ValidationError
	if releaseDate != "" && !dateRegex.MatchString(releaseDate) {
		errs = append(errs, ValidationError{Field: "releaseDate", Message: "invalid date format (expected: YYYY or YYYY-MM or YYYY-MM-DD)"})
	}
	return errs
}

func validateEmail(email string) []ValidationError {
	var errs []ValidationError
	if email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email address"})
	}
	return errs
}

func validateRequired(field, value string) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(value) == "" {
		errs = append(errs, ValidationError{Field: field, Message: "is required"})
	}
	return errs
}

func validatePassword(password string) []ValidationError {
	var errs []ValidationError
	if len(password) < 6 {
		errs = append(errs, ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	return errs
}
