package book

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Save(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (Book, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Book), args.Bool(1), args.Error(2)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	args := m.Called(ctx, isbn)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) FindByExample(ctx context.Context, f Filter, p PageRequest) (Page, error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(Page), args.Error(1)
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id on new book", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		repo.On("ExistsByISBN", ctx, "001").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*book.Book")).Run(func(args mock.Arguments) {
			args.Get(1).(*Book).ID = 11
		}).Return(nil)

		b := Book{Title: "As aventuras", Author: "Artur", ISBN: "001"}
		err := s.Save(ctx, &b)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), b.ID)
		assert.Equal(t, "As aventuras", b.Title)
		assert.Equal(t, "Artur", b.Author)
		assert.Equal(t, "001", b.ISBN)
	})

	t.Run("rejects duplicate isbn", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		repo.On("ExistsByISBN", ctx, "001").Return(true, nil)

		b := Book{Title: "As aventuras", Author: "Artur", ISBN: "001"}
		err := s.Save(ctx, &b)

		assert.ErrorIs(t, err, ErrDuplicateISBN)
		assert.EqualError(t, err, "Isbn already registered")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates storage failure from existence check", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		repo.On("ExistsByISBN", ctx, "001").Return(false, fmt.Errorf("db down"))

		err := s.Save(ctx, &Book{Title: "t", Author: "a", ISBN: "001"})

		assert.EqualError(t, err, "db down")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		stored := Book{ID: 7, Title: "As aventuras", Author: "Artur", ISBN: "001"}
		repo.On("FindByID", ctx, int64(7)).Return(stored, true, nil)

		b, found, err := s.GetByID(ctx, 7)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stored, b)
	})

	t.Run("absence is not an error", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		repo.On("FindByID", ctx, int64(999)).Return(Book{}, false, nil)

		b, found, err := s.GetByID(ctx, 999)

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, b.ID)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("nil book", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		err := s.Update(ctx, nil)

		assert.ErrorIs(t, err, ErrInvalidBook)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unset id", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		err := s.Update(ctx, &Book{Title: "t", Author: "a", ISBN: "001"})

		assert.ErrorIs(t, err, ErrInvalidBook)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("overwrites by id", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		b := &Book{ID: 3, Title: "t2", Author: "a2", ISBN: "002"}
		repo.On("Save", ctx, b).Return(nil)

		err := s.Update(ctx, b)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("is idempotent per call", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		b := &Book{ID: 3, Title: "t2", Author: "a2", ISBN: "002"}
		repo.On("Save", ctx, b).Return(nil).Twice()

		assert.NoError(t, s.Update(ctx, b))
		assert.NoError(t, s.Update(ctx, b))
		repo.AssertNumberOfCalls(t, "Save", 2)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("nil book", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		err := s.Delete(ctx, nil)

		assert.ErrorIs(t, err, ErrInvalidBook)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unset id", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		err := s.Delete(ctx, &Book{Title: "t", Author: "a", ISBN: "001"})

		assert.ErrorIs(t, err, ErrInvalidBook)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("removes by id", func(t *testing.T) {
		repo := new(mockRepository)
		s := NewService(repo)

		repo.On("Delete", ctx, int64(1)).Return(nil)

		err := s.Delete(ctx, &Book{ID: 1, Title: "t", Author: "a", ISBN: "001"})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestService_Find(t *testing.T) {
	ctx := context.Background()

	repo := new(mockRepository)
	s := NewService(repo)

	filter := Filter{Author: "Art"}
	page := PageRequest{Page: 1, Size: 10}
	result := Page{
		Content:       []Book{{ID: 1, Title: "As aventuras", Author: "Artur", ISBN: "001"}},
		TotalElements: 15,
		PageNumber:    1,
		PageSize:      10,
	}
	repo.On("FindByExample", ctx, filter, page).Return(result, nil)

	got, err := s.Find(ctx, filter, page)

	assert.NoError(t, err)
	assert.Equal(t, result, got)
	repo.AssertExpectations(t)
}
