// internal/loans/service.go
package loans

import (
	"context"
	"errors"

	"biblioteca/internal/library"
)

// ErrNoStock is the translated form of a remote out-of-stock rejection.
// The available-books list shown in the creation dialog can be stale
// against loans made concurrently by other actors, so this failure is
// expected and gets a distinct message instead of the raw server text.
var ErrNoStock = errors.New("the selected book has no stock available")

// API is the slice of the remote client the loan screens need.
type API interface {
	ListLoans(ctx context.Context) ([]library.Loan, error)
	ActiveLoans(ctx context.Context) ([]library.Loan, error)
	AvailableBooks(ctx context.Context) ([]library.Book, error)
	CreateLoan(ctx context.Context, req library.CreateLoanRequest) (*library.Loan, error)
	ReturnLoan(ctx context.Context, id int64) (*library.Loan, error)
	DeleteLoan(ctx context.Context, id int64) error
}

// Service orchestrates the loan lifecycle: ACTIVE --(return)--> RETURNED,
// with delete allowed from either state. Creation always starts a loan as
// ACTIVE; no transition leads out of RETURNED except delete.
type Service interface {
	// List fetches loans; activeOnly selects the server's active-loans
	// query, it is never a client-side filter of the full set.
	List(ctx context.Context, activeOnly bool) ([]library.Loan, error)
	// AvailableBooks is fetched fresh every time the creation dialog is
	// rendered, never cached across openings.
	AvailableBooks(ctx context.Context) ([]library.Book, error)
	Create(ctx context.Context, req library.CreateLoanRequest) (*library.Loan, error)
	Return(ctx context.Context, id int64) (*library.Loan, error)
	Delete(ctx context.Context, id int64) error
}
