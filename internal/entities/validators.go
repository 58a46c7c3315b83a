package entities

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"hbnb/internal/apperror"
)

const (
	maxNameLength     = 50
	maxTitleLength    = 100
	minPasswordLength = 6
	// bcrypt only accepts inputs up to 72 bytes
	maxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func requiredString(v interface{}, field, label string) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", apperror.NewValidationError(field, label+" is required and must be a string")
	}
	return s, nil
}

func boundedString(v interface{}, field, label string, max int) (string, error) {
	s, err := requiredString(v, field, label)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(s) > max {
		return "", apperror.NewValidationError(field, fmt.Sprintf("%s must not exceed %d characters", label, max))
	}
	return s, nil
}

// ValidateName checks a first or last name
func ValidateName(v interface{}, field, label string) (string, error) {
	return boundedString(v, field, label, maxNameLength)
}

// ValidateEmail checks presence and format of an email address
func ValidateEmail(v interface{}) (string, error) {
	email, err := requiredString(v, "email", "Email")
	if err != nil {
		return "", err
	}
	if !emailPattern.MatchString(email) {
		return "", apperror.NewValidationError("email", "Invalid email format")
	}
	return email, nil
}

// ValidatePassword checks the plain-text password before it is hashed
func ValidatePassword(v interface{}) (string, error) {
	password, err := requiredString(v, "password", "Password")
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return "", apperror.NewValidationError("password",
			fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		return "", apperror.NewValidationError("password",
			fmt.Sprintf("Password must not exceed %d bytes", maxPasswordBytes))
	}
	return password, nil
}

// ValidateAmenityName checks a non-empty name of at most 50 characters
func ValidateAmenityName(v interface{}) (string, error) {
	return boundedString(v, "name", "Name", maxNameLength)
}

// ValidateTitle checks a non-empty place title of at most 100 characters
func ValidateTitle(v interface{}) (string, error) {
	return boundedString(v, "title", "Title", maxTitleLength)
}

// ValidateDescription accepts a missing description as empty
func ValidateDescription(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", apperror.NewValidationError("description", "Description must be a string")
	}
	return s, nil
}

// ValidatePrice coerces a strictly positive price
func ValidatePrice(v interface{}) (float64, error) {
	price, ok := toFloat(v)
	if !ok {
		return 0, apperror.NewValidationError("price", "Price must be a number")
	}
	if price <= 0 {
		return 0, apperror.NewValidationError("price", "Price must be a positive value")
	}
	return price, nil
}

// ValidateLatitude coerces a latitude within [-90, 90]
func ValidateLatitude(v interface{}) (float64, error) {
	return validateCoordinate(v, "latitude", "Latitude", 90)
}

// ValidateLongitude coerces a longitude within [-180, 180]
func ValidateLongitude(v interface{}) (float64, error) {
	return validateCoordinate(v, "longitude", "Longitude", 180)
}

func validateCoordinate(v interface{}, field, label string, bound float64) (float64, error) {
	value, ok := toFloat(v)
	if !ok {
		return 0, apperror.NewValidationError(field, label+" must be a number")
	}
	if value < -bound || value > bound {
		return 0, apperror.NewValidationError(field, fmt.Sprintf("%s must be between %g and %g", label, -bound, bound))
	}
	return value, nil
}

// ValidateReviewText rejects empty and whitespace-only text
func ValidateReviewText(v interface{}) (string, error) {
	text, err := requiredString(v, "text", "Review text")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", apperror.NewValidationError("text", "Review text cannot be empty")
	}
	return text, nil
}

// ValidateRating coerces an integral rating between 1 and 5
func ValidateRating(v interface{}) (int, error) {
	rating, ok := toInt(v)
	if !ok {
		return 0, apperror.NewValidationError("rating", "Rating must be an integer")
	}
	if rating < 1 || rating > 5 {
		return 0, apperror.NewValidationError("rating", "Rating must be between 1 and 5")
	}
	return rating, nil
}

// ValidateReference checks that a relational id is a non-empty string
func ValidateReference(v interface{}, field, label string) (string, error) {
	return requiredString(v, field, label)
}

// ValidateIDList accepts a JSON array of string ids. An explicit null is rejected.
func ValidateIDList(v interface{}, field string) ([]string, error) {
	ids, ok := toStringSlice(v)
	if !ok || v == nil {
		return nil, apperror.NewValidationError(field, fmt.Sprintf("%s must be a list of ids", field))
	}
	return ids, nil
}

// ValidateIsAdmin coerces a boolean or "true"/"false" string
func ValidateIsAdmin(v interface{}) (bool, error) {
	b, ok := toBool(v)
	if !ok {
		return false, apperror.NewValidationError("is_admin", "is_admin must be a boolean")
	}
	return b, nil
}
