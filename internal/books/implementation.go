// internal/books/implementation.go
package books

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

// NewService creates a new catalog service instance.
func NewService(api API) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context) ([]library.Book, error) {
	books, err := s.api.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	return books, nil
}

func (s *service) Get(ctx context.Context, id int64) (*library.Book, error) {
	book, err := s.api.GetBook(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load book %d: %w", id, err)
	}
	return book, nil
}

// Create validates the form before submission; a validation failure is
// reported without any network call.
func (s *service) Create(ctx context.Context, req library.CreateBookRequest) (*library.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateBook(ctx, req)
}

func (s *service) Update(ctx context.Context, id int64, req library.UpdateBookRequest) (*library.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.api.UpdateBook(ctx, id, req)
}

// Delete is irreversible from this client's perspective; the caller is
// responsible for having confirmed the action first.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteBook(ctx, id)
}
