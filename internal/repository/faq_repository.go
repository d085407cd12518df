package repository

import (
	"context"      // context carries deadlines and cancellation into DB calls
	"database/sql" // sql provides generic database operations
	"errors"       // errors wraps and inspects sentinel values
	"fmt"          // fmt annotates sentinel errors with ids
	"strings"      // strings builds the IN clause for bulk deletes
	"time"         // time stamps rows on create and update

	"github.com/dpang/faq-service/internal/model"
)

// Page is one bounded slice of an FAQ listing together with its paging
// metadata. TotalItems counts every row matching the query, not just the
// slice, so clients can render pagers.
type Page struct {
	Items      []*model.FAQ `json:"items"`
	Page       int          `json:"page"`
	Size       int          `json:"size"`
	TotalItems int64        `json:"total_items"`
	TotalPages int          `json:"total_pages"`
}

// FAQRepo encapsulates all database queries over the `faqs` table. It
// depends on a sql.DB connection configured elsewhere, which allows
// dependency injection of the database in tests and at startup.
type FAQRepo struct {
	db *sql.DB
}

// NewFAQRepo constructs an FAQRepo with the provided DB handle.
func NewFAQRepo(db *sql.DB) *FAQRepo {
	return &FAQRepo{db: db}
}

// faqColumns is the select list shared by every read path.
const faqColumns = "id, question, answer, category, author_id, created_at, updated_at"

// scanFAQ reads one row into a model.FAQ.
func scanFAQ(row interface{ Scan(...any) error }) (*model.FAQ, error) {
	var f model.FAQ
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.AuthorID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new FAQ entry. The caller must have resolved the
// category beforehand; this method trusts f.Category to be canonical. On
// success f.ID holds the auto-generated identifier and both timestamps are
// populated with the insert time.
func (r *FAQRepo) Create(ctx context.Context, f *model.FAQ) error {
	now := time.Now().UTC()
	const q = `INSERT INTO faqs (question, answer, category, author_id, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.Question, f.Answer, string(f.Category), f.AuthorID, now, now)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = id
	f.CreatedAt = now
	f.UpdatedAt = now
	return nil
}

// GetByID fetches an FAQ entry by its id. It returns ErrFAQNotFound when
// no row exists.
func (r *FAQRepo) GetByID(ctx context.Context, id int64) (*model.FAQ, error) {
	const q = "SELECT " + faqColumns + " FROM faqs WHERE id = ?"
	f, err := scanFAQ(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrFAQNotFound, id)
		}
		return nil, err
	}
	return f, nil
}

// List returns one page of all FAQ entries ordered by id (insertion
// order). page is 1-based; size is the maximum slice length.
func (r *FAQRepo) List(ctx context.Context, page, size int) (*Page, error) {
	return r.list(ctx, "", page, size)
}

// ListByCategory returns one page of the entries classified under the
// given category, ordered by id. The category must already be canonical;
// unknown tags simply yield an empty page.
func (r *FAQRepo) ListByCategory(ctx context.Context, category model.Category, page, size int) (*Page, error) {
	return r.list(ctx, string(category), page, size)
}

// list implements both listing paths. An empty category means no filter.
func (r *FAQRepo) list(ctx context.Context, category string, page, size int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	where := ""
	args := []any{}
	if category != "" {
		where = " WHERE category = ?"
		args = append(args, category)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM faqs"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	offset := (page - 1) * size
	q := "SELECT " + faqColumns + " FROM faqs" + where + " ORDER BY id LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, append(args, size, offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*model.FAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &Page{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// Update overwrites the content of an existing entry and refreshes its
// update timestamp. The author id and creation timestamp are never
// touched: updates are content-only by design, and no ownership comparison
// happens here (write access is enforced by the role middleware upstream,
// so admins may edit entries they did not author). Returns ErrFAQNotFound
// when the id does not resolve, before any mutation.
func (r *FAQRepo) Update(ctx context.Context, id int64, question, answer string, category model.Category) (*model.FAQ, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	const q = "UPDATE faqs SET question = ?, answer = ?, category = ?, updated_at = ? WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, question, answer, string(category), now, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a single entry. Returns ErrFAQNotFound when no row was
// deleted.
func (r *FAQRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM faqs WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: id %d", ErrFAQNotFound, id)
	}
	return nil
}

// DeleteMany removes a batch of entries after verifying that every id
// exists. If any id is missing the whole call fails with ErrFAQNotFound
// citing the first missing id and nothing is deleted. The check and the
// multi-row delete share one transaction; a row deleted concurrently
// between check and delete just lowers the affected-row count, which is
// accepted behavior.
func (r *FAQRepo) DeleteMany(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	// Validation before mutation: every id must exist or nothing is deleted.
	for _, id := range ids {
		var exists bool
		if err = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM faqs WHERE id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			err = fmt.Errorf("%w: id %d", ErrFAQNotFound, id)
			return err
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM faqs WHERE id IN ("+placeholders+")", args...)
	return err
}
