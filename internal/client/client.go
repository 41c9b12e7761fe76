// internal/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"biblioteca/internal/library"
)

// Client is the typed HTTP client for the remote library API. The remote
// system owns all book and loan state; this client never caches a response.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		tracer:  otel.Tracer("library.client"),
	}
}

// NewWithHTTPClient is used by tests that need to control the transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	c.http = hc
	return c
}

// ListBooks fetches the full catalog.
func (c *Client) ListBooks(ctx context.Context) ([]library.Book, error) {
	var books []library.Book
	if err := c.call(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single book by id.
func (c *Client) GetBook(ctx context.Context, id int64) (*library.Book, error) {
	var book library.Book
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// AvailableBooks fetches the books with at least one copy not out on loan.
// The list is server-computed and can go stale against concurrent loans the
// moment it is returned.
func (c *Client) AvailableBooks(ctx context.Context) ([]library.Book, error) {
	var books []library.Book
	if err := c.call(ctx, http.MethodGet, "/books/available", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) CreateBook(ctx context.Context, req library.CreateBookRequest) (*library.Book, error) {
	var book library.Book
	if err := c.call(ctx, http.MethodPost, "/books", req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, req library.UpdateBookRequest) (*library.Book, error) {
	var book library.Book
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), req, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
}

// ListLoans fetches every loan regardless of status.
func (c *Client) ListLoans(ctx context.Context) ([]library.Loan, error) {
	var loans []library.Loan
	if err := c.call(ctx, http.MethodGet, "/loans", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// ActiveLoans fetches only loans that have not been returned. This is a
// separate server-side query, not a filter over ListLoans.
func (c *Client) ActiveLoans(ctx context.Context) ([]library.Loan, error) {
	var loans []library.Loan
	if err := c.call(ctx, http.MethodGet, "/loans/active", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) CreateLoan(ctx context.Context, req library.CreateLoanRequest) (*library.Loan, error) {
	var loan library.Loan
	if err := c.call(ctx, http.MethodPost, "/loans", req, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

// ReturnLoan marks a loan returned. The server assigns the return date and
// flips the status; the transition is one-way.
func (c *Client) ReturnLoan(ctx context.Context, id int64) (*library.Loan, error) {
	var loan library.Loan
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/loans/%d/return", id), nil, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (c *Client) DeleteLoan(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/loans/%d", id), nil, nil)
}

// call performs one request against the remote API. A non-2xx response is
// returned as an *APIError carrying the server's message; out is left
// untouched on any error.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	))
	defer span.End()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return fmt.Errorf("library api unreachable: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
