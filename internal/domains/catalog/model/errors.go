package model

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeInvalidInput  = "INVALID_INPUT"
)

// CatalogError is the error kind raised by the author and book services.
type CatalogError struct {
	Code    string // NOT_FOUND, ALREADY_EXISTS, INVALID_INPUT
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewNotFound(message string) *CatalogError {
	return &CatalogError{Code: CodeNotFound, Message: message}
}

func NewAlreadyExists(message string) *CatalogError {
	return &CatalogError{Code: CodeAlreadyExists, Message: message}
}

func NewInvalidInput(message string, err error) *CatalogError {
	return &CatalogError{Code: CodeInvalidInput, Message: message, Err: err}
}

func NewAuthorNotFound(id string) *CatalogError {
	return NewNotFound("Author not found with ID: " + id)
}

func NewAuthorsNotFound() *CatalogError {
	return NewNotFound("Authors not found")
}

func NewAuthorAlreadyExists(name, surname string) *CatalogError {
	return NewAlreadyExists(fmt.Sprintf("Author already exists with name: %s and surname: %s", name, surname))
}

func NewBookNotFound(id string) *CatalogError {
	return NewNotFound("Book not found with ID: " + id)
}

func NewBookAuthorNotFound(authorID string) *CatalogError {
	return NewNotFound("Can't create book without author. Author not found with ID: " + authorID)
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func hasCode(err error, code string) bool {
	var catErr *CatalogError
	return errors.As(err, &catErr) && catErr.Code == code
}

func IsNotFound(err error) bool      { return hasCode(err, CodeNotFound) }
func IsAlreadyExists(err error) bool { return hasCode(err, CodeAlreadyExists) }
func IsInvalidInput(err error) bool  { return hasCode(err, CodeInvalidInput) }

// GetErrorMessage returns the domain message, or err.Error() for foreign errors.
func GetErrorMessage(err error) string {
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return catErr.Message
	}
	return err.Error()
}

// MapErrorToHTTP translates an error into status code, message and error code.
func MapErrorToHTTP(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusOK, "Success", ""
	case IsNotFound(err):
		return http.StatusNotFound, GetErrorMessage(err), CodeNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict, GetErrorMessage(err), CodeAlreadyExists
	case IsInvalidInput(err):
		return http.StatusBadRequest, GetErrorMessage(err), CodeInvalidInput
	default:
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
}
