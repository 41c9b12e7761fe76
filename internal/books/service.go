// internal/books/service.go
package books

import (
	"context"

	"biblioteca/internal/library"
)

// API is the slice of the remote client the catalog screens need.
type API interface {
	ListBooks(ctx context.Context) ([]library.Book, error)
	CreateBook(ctx context.Context, req library.CreateBookRequest) (*library.Book, error)
	UpdateBook(ctx context.Context, id int64, req library.UpdateBookRequest) (*library.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	GetBook(ctx context.Context, id int64) (*library.Book, error)
}

// Service orchestrates the book catalog screens: it validates intents before
// they reach the network and passes remote rejections through with the
// server's message intact. It never mutates displayed state itself; after a
// successful mutation the caller re-fetches the list.
type Service interface {
	List(ctx context.Context) ([]library.Book, error)
	Get(ctx context.Context, id int64) (*library.Book, error)
	Create(ctx context.Context, req library.CreateBookRequest) (*library.Book, error)
	Update(ctx context.Context, id int64, req library.UpdateBookRequest) (*library.Book, error)
	Delete(ctx context.Context, id int64) error
}
