package book

import (
	"context"
)

// Service holds the business rules around books: ISBN uniqueness on
// create and the persisted-record guard on update and delete. It is
// stateless apart from the injected repository.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save persists a new book. It fails with ErrDuplicateISBN when a
// record with the same ISBN already exists; otherwise the repository
// assigns the ID on the passed book.
func (s *Service) Save(ctx context.Context, b *Book) error {
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateISBN
	}
	return s.repo.Save(ctx, b)
}

// GetByID returns the book and true when it exists. Absence is a
// normal outcome, not an error.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, bool, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites the stored record identified by b.ID. The book
// must have been persisted before; ISBN uniqueness is not re-checked
// here, the unique index in storage is the backstop.
func (s *Service) Update(ctx context.Context, b *Book) error {
	if b == nil || b.ID == 0 {
		return ErrInvalidBook
	}
	return s.repo.Save(ctx, b)
}

// Delete removes the stored record identified by b.ID.
func (s *Service) Delete(ctx context.Context, b *Book) error {
	if b == nil || b.ID == 0 {
		return ErrInvalidBook
	}
	return s.repo.Delete(ctx, b.ID)
}

// Find runs an example-match search: every set filter field must
// appear as a case-insensitive substring of the stored field.
func (s *Service) Find(ctx context.Context, f Filter, p PageRequest) (Page, error) {
	return s.repo.FindByExample(ctx, f, p)
}
