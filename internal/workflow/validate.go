package workflow

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldMessages maps struct field + failed tag to the inline message shown
// next to the field.
var fieldMessages = map[string]string{
	"Name/required":             "Name is required",
	"Email/required":            "Enter a valid email",
	"Email/email":               "Enter a valid email",
	"Mobile/required":           "Enter a valid 10-digit mobile number",
	"Mobile/len":                "Enter a valid 10-digit mobile number",
	"Mobile/numeric":            "Enter a valid 10-digit mobile number",
	"ConfirmPassword/required":  "Confirm your password",
	"ConfirmPassword/eqfield":   "Passwords do not match",
	"Title/required":            "Job title is required",
	"Type/required":             "Job type is required",
	"Description/required":      "Job description is required",
	"Location/required":         "Job location is required",
	"Date/required":             "Interview date is required",
	"Time/required":             "Interview time is required",
	"Duration/min":              "Duration must be at least 5 minutes",
	"LinkedIn/url":              "Enter a valid URL",
	"GitHub/url":                "Enter a valid URL",
	"MeetingLink/url":           "Enter a valid URL",
}

// checkStruct runs tag validation and converts the first failure into a
// ValidationError.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	msg, ok := fieldMessages[fe.Field()+"/"+fe.Tag()]
	if !ok {
		msg = fmt.Sprintf("Invalid value for %s", field)
	}
	return &ValidationError{Field: field, Message: msg}
}

// passwordPolicy returns the list of unmet password requirements, phrased
// so they can be joined into one inline message.
func passwordPolicy(pw string) []string {
	var missing []string
	if len(pw) < 6 {
		missing = append(missing, "be at least 6 characters")
	}
	var upper, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			special = true
		}
	}
	if !upper {
		missing = append(missing, "contain an uppercase letter")
	}
	if !digit {
		missing = append(missing, "contain a number")
	}
	if !special {
		missing = append(missing, "contain a special character")
	}
	return missing
}

// checkPassword applies the password policy to the named field.
func checkPassword(field, pw string) error {
	if missing := passwordPolicy(pw); len(missing) > 0 {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Password must %s.", strings.Join(missing, ", ")),
		}
	}
	return nil
}
