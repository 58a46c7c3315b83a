package apperror

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a field fails an entity constraint
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is returned when a referenced entity does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError is returned when a uniqueness constraint would be violated
type ConflictError struct {
	Resource string
	Field    string
	Value    interface{}
}

func (e *ConflictError) Error() string {
	if e.Field == "email" {
		return "Email already registered"
	}
	return fmt.Sprintf("%s with %s '%v' already exists", e.Resource, e.Field, e.Value)
}

// BusinessError is returned when an operation breaks a domain rule
type BusinessError struct {
	Rule    string
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "business rule violation"
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewConflictError creates a new conflict error
func NewConflictError(resource, field string, value interface{}) *ConflictError {
	return &ConflictError{Resource: resource, Field: field, Value: value}
}

// NewBusinessError creates a new business rule error
func NewBusinessError(rule, message string) *BusinessError {
	return &BusinessError{Rule: rule, Message: message}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsBusiness(err error) bool {
	var target *BusinessError
	return errors.As(err, &target)
}
