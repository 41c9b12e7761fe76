// internal/loans/implementation.go
package loans

import (
	"context"
	"fmt"

	"biblioteca/internal/client"
	"biblioteca/internal/library"
)

var _ API = (*client.Client)(nil)

// service implements the Service interface.
type service struct {
	api API
}

// NewService creates a new loan service instance.
func NewService(api API) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]library.Loan, error) {
	var (
		loans []library.Loan
		err   error
	)
	if activeOnly {
		loans, err = s.api.ActiveLoans(ctx)
	} else {
		loans, err = s.api.ListLoans(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}
	return loans, nil
}

func (s *service) AvailableBooks(ctx context.Context) ([]library.Book, error) {
	books, err := s.api.AvailableBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load available books: %w", err)
	}
	return books, nil
}

// Create validates the form, submits the loan, and translates an
// out-of-stock rejection into ErrNoStock. The server is the sole authority
// on stock; a book offered by the selector can still be refused here when
// another actor took the last copy first.
func (s *service) Create(ctx context.Context, req library.CreateLoanRequest) (*library.Loan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	loan, err := s.api.CreateLoan(ctx, req)
	if err != nil {
		if client.IsOutOfStock(err) {
			return nil, ErrNoStock
		}
		return nil, err
	}
	return loan, nil
}

// Return marks the loan returned. The caller is responsible for having
// confirmed the action; only ACTIVE loans should offer it at all.
func (s *service) Return(ctx context.Context, id int64) (*library.Loan, error) {
	loan, err := s.api.ReturnLoan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to return loan %d: %w", id, err)
	}
	return loan, nil
}

// Delete removes the loan record entirely, regardless of its status.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteLoan(ctx, id)
}
