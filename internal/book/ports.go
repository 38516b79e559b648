package book

import (
	"context"
)

// Repository defines the contract for book storage. Each operation is
// a single pass-through to durable storage with no business logic.
type Repository interface {
	// Save inserts the book when its ID is zero, assigning the ID,
	// and overwrites the existing record by ID otherwise. Atomic per
	// call.
	Save(ctx context.Context, b *Book) error
	// FindByID reports whether a record exists; absence is the false
	// flag, not an error.
	FindByID(ctx context.Context, id int64) (Book, bool, error)
	// Delete removes the record by ID. A missing ID surfaces as a
	// storage-level error, not a business failure.
	Delete(ctx context.Context, id int64) error
	// ExistsByISBN reports whether any record has exactly this ISBN.
	// The comparison is case-sensitive, unlike the search filter.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	// FindByExample runs the AND-combined case-insensitive substring
	// query described by the filter and returns the requested page
	// with a total count over all matches.
	FindByExample(ctx context.Context, f Filter, p PageRequest) (Page, error)
}
