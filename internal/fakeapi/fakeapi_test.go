// internal/fakeapi/fakeapi_test.go
package fakeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca/internal/library"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New().Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createBook(t *testing.T, baseURL string, stock int) library.Book {
	t.Helper()
	resp := postJSON(t, baseURL+"/books", library.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "9780441013593", Stock: stock,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[library.Book](t, resp)
}

func TestBookCRUD(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/books", library.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Stock: 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	book := decode[library.Book](t, resp)
	assert.Equal(t, int64(1), book.ID)
	assert.False(t, book.CreatedAt.IsZero())

	// Duplicate ISBN is refused.
	resp = postJSON(t, srv.URL+"/books", library.CreateBookRequest{
		Title: "Other", Author: "Else", ISBN: "123", Stock: 1,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	msg := decode[map[string]string](t, resp)
	assert.Equal(t, "El ISBN ya está registrado", msg["message"])

	// Partial update touches only the sent field.
	stock := 7
	req, _ := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/books/%d", srv.URL, book.ID), bytes.NewReader(mustJSON(t, library.UpdateBookRequest{Stock: &stock})))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	updated := decode[library.Book](t, resp)
	assert.Equal(t, 7, updated.Stock)
	assert.Equal(t, "Dune", updated.Title)

	// Delete removes it.
	req, _ = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/books/%d", srv.URL, book.ID), nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(fmt.Sprintf("%s/books/%d", srv.URL, book.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAvailableQuantityTracksActiveLoans(t *testing.T) {
	srv := newTestServer(t)
	book := createBook(t, srv.URL, 2)

	resp, err := http.Get(srv.URL + "/books/available")
	require.NoError(t, err)
	available := decode[[]library.Book](t, resp)
	require.Len(t, available, 1)
	assert.Equal(t, 2, available[0].AvailableQuantity)
	assert.Equal(t, 2, available[0].TotalQuantity)

	resp = postJSON(t, srv.URL+"/loans", library.CreateLoanRequest{BookID: book.ID, StudentName: "Ana"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/books/available")
	require.NoError(t, err)
	available = decode[[]library.Book](t, resp)
	require.Len(t, available, 1)
	assert.Equal(t, 1, available[0].AvailableQuantity)

	// Exhaust the stock; the book drops off the available view.
	resp = postJSON(t, srv.URL+"/loans", library.CreateLoanRequest{BookID: book.ID, StudentName: "Luis"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/books/available")
	require.NoError(t, err)
	available = decode[[]library.Book](t, resp)
	assert.Empty(t, available)
}

func TestLoanRejectedWithoutStock(t *testing.T) {
	srv := newTestServer(t)
	book := createBook(t, srv.URL, 1)

	resp := postJSON(t, srv.URL+"/loans", library.CreateLoanRequest{BookID: book.ID, StudentName: "Ana"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/loans", library.CreateLoanRequest{BookID: book.ID, StudentName: "Luis"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	msg := decode[map[string]string](t, resp)
	assert.Equal(t, "El libro no tiene stock disponible", msg["message"])
}

func TestReturnIsOneWay(t *testing.T) {
	srv := newTestServer(t)
	book := createBook(t, srv.URL, 1)

	resp := postJSON(t, srv.URL+"/loans", library.CreateLoanRequest{BookID: book.ID, StudentName: "Ana"})
	loan := decode[library.Loan](t, resp)
	assert.Equal(t, library.StatusActive, loan.Status)
	assert.Nil(t, loan.ReturnDate)
	assert.Equal(t, "Dune", loan.BookTitle)

	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/loans/%d/return", srv.URL, loan.ID), nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	returned := decode[library.Loan](t, resp)
	assert.Equal(t, library.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)

	// Returning again is refused; there is no way out of RETURNED but delete.
	req, _ = http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/loans/%d/return", srv.URL, loan.ID), nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The copy is back in circulation after the return.
	resp, err = http.Get(srv.URL + "/books/available")
	require.NoError(t, err)
	available := decode[[]library.Book](t, resp)
	require.Len(t, available, 1)
	assert.Equal(t, 1, available[0].AvailableQuantity)
}

func TestActiveLoansQuery(t *testing.T) {
	srv := newTestServer(t)
	book := createBook(t, srv.URL, 2)

	resp := postJSON(t, srv.URL+"/loans", library.CreateLoanRequest{BookID: book.ID, StudentName: "Ana"})
	first := decode[library.Loan](t, resp)
	postJSON(t, srv.URL+"/loans", library.CreateLoanRequest{BookID: book.ID, StudentName: "Luis"})

	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/loans/%d/return", srv.URL, first.ID), nil)
	_, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	resp, err = http.Get(srv.URL + "/loans")
	require.NoError(t, err)
	assert.Len(t, decode[[]library.Loan](t, resp), 2)

	resp, err = http.Get(srv.URL + "/loans/active")
	require.NoError(t, err)
	active := decode[[]library.Loan](t, resp)
	require.Len(t, active, 1)
	assert.Equal(t, "Luis", active[0].StudentName)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
