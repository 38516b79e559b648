package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Save(ctx context.Context, b *Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if b.ID == 0 {
		const insert = `
			INSERT INTO books (title, author, isbn)
			VALUES ($1, $2, $3)
			RETURNING id`
		return r.db.QueryRow(timeoutCtx, insert, b.Title, b.Author, b.ISBN).Scan(&b.ID)
	}

	const update = `
		UPDATE books
		SET title = $1, author = $2, isbn = $3
		WHERE id = $4`
	tag, err := r.db.Exec(timeoutCtx, update, b.Title, b.Author, b.ISBN, b.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update book id=%d: no such record", b.ID)
	}
	return nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, bool, error) {
	const query = `
		SELECT id, title, author, isbn
		FROM books
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, false, nil
		}
		return Book{}, false, err
	}
	return b, true, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete book id=%d: no such record", id)
	}
	return nil
}

func (r *PostgresRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`, isbn).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) FindByExample(ctx context.Context, f Filter, p PageRequest) (Page, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.Title != "" {
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", argn))
		args = append(args, "%"+f.Title+"%")
		argn++
	}

	if f.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argn))
		args = append(args, "%"+f.Author+"%")
		argn++
	}

	if f.ISBN != "" {
		clauses = append(clauses, fmt.Sprintf("isbn ILIKE $%d", argn))
		args = append(args, "%"+f.ISBN+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return Page{}, err
	}

	// ORDER BY id keeps paging deterministic against an unchanged store.
	dataSQL := fmt.Sprintf(`
		SELECT id, title, author, isbn
		FROM books
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		where, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, p.Size, p.Offset())
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return Page{}, err
	}
	defer rows.Close()

	content := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN); err != nil {
			return Page{}, err
		}
		content = append(content, b)
	}
	if err := rows.Err(); err != nil {
		return Page{}, err
	}

	return Page{
		Content:       content,
		TotalElements: total,
		PageNumber:    p.Page,
		PageSize:      p.Size,
	}, nil
}
