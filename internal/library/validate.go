// internal/library/validate.go
package library

import (
	"strings"
)

// ValidationError is a client-detected form error. It never reaches the
// network: a request that fails validation is not submitted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validate checks the fields in a fixed order (title, author, isbn, stock)
// and reports the first violation only.
func (r CreateBookRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return invalid("title", "title is required")
	}
	if strings.TrimSpace(r.Author) == "" {
		return invalid("author", "author is required")
	}
	if strings.TrimSpace(r.ISBN) == "" {
		return invalid("isbn", "isbn is required")
	}
	if r.Stock < 0 {
		return invalid("stock", "stock cannot be negative")
	}
	return nil
}

// Validate applies the book rules to the fields present in the partial
// update, in the same order as CreateBookRequest.Validate.
func (r UpdateBookRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return invalid("title", "title is required")
	}
	if r.Author != nil && strings.TrimSpace(*r.Author) == "" {
		return invalid("author", "author is required")
	}
	if r.ISBN != nil && strings.TrimSpace(*r.ISBN) == "" {
		return invalid("isbn", "isbn is required")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return invalid("stock", "stock cannot be negative")
	}
	return nil
}

// Validate rejects the zero book id sentinel ("no book selected") and an
// empty student name.
func (r CreateLoanRequest) Validate() error {
	if r.BookID == 0 {
		return invalid("bookId", "a book must be selected")
	}
	if strings.TrimSpace(r.StudentName) == "" {
		return invalid("studentName", "student name is required")
	}
	return nil
}
