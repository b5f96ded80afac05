package customer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dradle/my-bike-rent/internal/sheet"
)

// ErrIdentityMismatch means the fetched sheet does not belong to the requested
// customer. The endpoint falls back to its first sheet for unknown names, so
// this is what "not found" looks like.
var ErrIdentityMismatch = errors.New("sheet identity mismatch")

// MismatchError records what the identity cell actually held.
type MismatchError struct {
	Requested string
	Observed  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: requested %q, identity cell %q", ErrIdentityMismatch, e.Requested, e.Observed)
}

func (e *MismatchError) Unwrap() error { return ErrIdentityMismatch }

// Validate checks the identity cell (F1) against the requested identifier,
// ignoring case and surrounding whitespace in the cell. It must pass before
// any other cell is read.
func Validate(t *sheet.Table, identifier string) error {
	observed := ""
	if c := t.Cell(headerRow, colIdentity); c.Truthy() {
		observed = strings.TrimSpace(c.Text())
	}

	if observed == "" || !strings.EqualFold(observed, identifier) {
		return &MismatchError{Requested: identifier, Observed: observed}
	}
	return nil
}
