// internal/library/domain.go
package library

import "time"

// LoanStatus is the lifecycle state of a loan as reported by the remote API.
type LoanStatus string

const (
	StatusActive   LoanStatus = "ACTIVE"
	StatusReturned LoanStatus = "RETURNED"
)

// Book is a catalog record. Stock is the total number of copies; the
// remote system owns all stock arithmetic and this client only displays it.
// AvailableQuantity and TotalQuantity are populated by the available-books
// view used when creating a loan.
type Book struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	ISBN              string    `json:"isbn"`
	Stock             int       `json:"stock"`
	AvailableQuantity int       `json:"availableQuantity,omitempty"`
	TotalQuantity     int       `json:"totalQuantity,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Loan is a lending record. BookTitle is a snapshot of the book's title at
// loan time, denormalized by the server for display.
type Loan struct {
	ID          int64      `json:"id"`
	BookID      int64      `json:"bookId"`
	BookTitle   string     `json:"bookTitle"`
	StudentName string     `json:"studentName"`
	LoanDate    time.Time  `json:"loanDate"`
	ReturnDate  *time.Time `json:"returnDate"`
	Status      LoanStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Active reports whether the loan is still out. A loan is active exactly
// when its return date has not been set.
func (l Loan) Active() bool {
	return l.Status == StatusActive
}

// CreateBookRequest is the payload for registering a new book.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Stock  int    `json:"stock"`
}

// UpdateBookRequest is a partial update; nil fields are left untouched
// by the server.
type UpdateBookRequest struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	ISBN   *string `json:"isbn,omitempty"`
	Stock  *int    `json:"stock,omitempty"`
}

// CreateLoanRequest is the payload for lending a book to a student.
type CreateLoanRequest struct {
	BookID      int64  `json:"bookId"`
	StudentName string `json:"studentName"`
}
