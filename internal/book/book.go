package book

import (
	"errors"
)

// ErrDuplicateISBN is the business error raised when a create would
// reuse an already registered ISBN. The message is shown verbatim to
// the client.
var ErrDuplicateISBN = errors.New("Isbn already registered")

// ErrInvalidBook is raised when update or delete is called with a nil
// book or one that was never persisted (zero ID). It signals a caller
// bug, not a business rule.
var ErrInvalidBook = errors.New("Book can't be null")

// Book represents a book record. ID is zero until the record has been
// persisted; storage assigns it on first save and it never changes.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// Input is the external representation accepted on create and update.
// The ID is never client-supplied.
type Input struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
}

// ApplyTo copies the three mutable fields onto an existing record.
// The merge happens at the boundary; the service only ever sees a
// fully formed Book.
func (in Input) ApplyTo(b *Book) {
	b.Title = in.Title
	b.Author = in.Author
	b.ISBN = in.ISBN
}

// Filter is an example template for searching. Empty fields are
// wildcards; set fields must appear as a case-insensitive substring
// of the stored value, combined with AND.
type Filter struct {
	Title  string
	Author string
	ISBN   string
}

// PageRequest selects a zero-based page of a result set.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the row offset of the first element on the page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a search result plus its metadata. The page
// request is echoed back so clients can correlate responses.
type Page struct {
	Content       []Book `json:"content"`
	TotalElements int    `json:"totalElements"`
	PageNumber    int    `json:"pageNumber"`
	PageSize      int    `json:"pageSize"`
}
