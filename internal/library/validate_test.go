// internal/library/validate_test.go
package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCreateBookValidation(t *testing.T) {
	testCases := []struct {
		name      string
		req       CreateBookRequest
		wantField string
	}{
		{"valid", CreateBookRequest{Title: "Dune", Author: "Herbert", ISBN: "123", Stock: 2}, ""},
		{"zero stock is valid", CreateBookRequest{Title: "Dune", Author: "Herbert", ISBN: "123", Stock: 0}, ""},
		{"empty title", CreateBookRequest{Author: "Herbert", ISBN: "123", Stock: 1}, "title"},
		{"whitespace title", CreateBookRequest{Title: "   ", Author: "Herbert", ISBN: "123", Stock: 1}, "title"},
		{"empty author", CreateBookRequest{Title: "Dune", ISBN: "123", Stock: 1}, "author"},
		{"empty isbn", CreateBookRequest{Title: "Dune", Author: "Herbert", ISBN: " ", Stock: 1}, "isbn"},
		{"negative stock", CreateBookRequest{Title: "Dune", Author: "Herbert", ISBN: "123", Stock: -1}, "stock"},
		{"title reported before author", CreateBookRequest{Stock: 1}, "title"},
		{"author reported before stock", CreateBookRequest{Title: "Dune", ISBN: "123", Stock: -5}, "author"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

// The first-violated rule in the fixed order title, author, isbn, stock is
// always the one reported, regardless of which other fields are invalid.
func TestCreateBookValidationOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blankOrWs := rapid.SampledFrom([]string{"", " ", "\t", "  \n"})
		titleOK := rapid.Bool().Draw(t, "titleOK")
		authorOK := rapid.Bool().Draw(t, "authorOK")
		isbnOK := rapid.Bool().Draw(t, "isbnOK")
		stockOK := rapid.Bool().Draw(t, "stockOK")

		req := CreateBookRequest{Title: "Dune", Author: "Herbert", ISBN: "123", Stock: 1}
		if !titleOK {
			req.Title = blankOrWs.Draw(t, "title")
		}
		if !authorOK {
			req.Author = blankOrWs.Draw(t, "author")
		}
		if !isbnOK {
			req.ISBN = blankOrWs.Draw(t, "isbn")
		}
		if !stockOK {
			req.Stock = rapid.IntRange(-1000, -1).Draw(t, "stock")
		}

		err := req.Validate()
		if titleOK && authorOK && isbnOK && stockOK {
			if err != nil {
				t.Fatalf("expected valid request, got %v", err)
			}
			return
		}

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}

		var want string
		switch {
		case !titleOK:
			want = "title"
		case !authorOK:
			want = "author"
		case !isbnOK:
			want = "isbn"
		default:
			want = "stock"
		}
		if vErr.Field != want {
			t.Fatalf("expected first violation %q, got %q", want, vErr.Field)
		}
	})
}

func TestUpdateBookValidation(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	assert.NoError(t, UpdateBookRequest{}.Validate())
	assert.NoError(t, UpdateBookRequest{Title: str("Dune"), Stock: num(0)}.Validate())

	err := UpdateBookRequest{Title: str("  ")}.Validate()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)

	err = UpdateBookRequest{Title: str("Dune"), Stock: num(-1)}.Validate()
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "stock", vErr.Field)
}

func TestCreateLoanValidation(t *testing.T) {
	var vErr *ValidationError

	err := CreateLoanRequest{BookID: 0, StudentName: "Ana"}.Validate()
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "bookId", vErr.Field)

	err = CreateLoanRequest{BookID: 7, StudentName: "   "}.Validate()
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "studentName", vErr.Field)

	assert.NoError(t, CreateLoanRequest{BookID: 7, StudentName: "Ana"}.Validate())
}

func TestLoanActive(t *testing.T) {
	assert.True(t, Loan{Status: StatusActive}.Active())
	assert.False(t, Loan{Status: StatusReturned}.Active())
}
