package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/serp"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ serp.HistoryService = (*HistoryService)(nil)

// HistoryService implements serp.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// SearchKey returns the key that groups repeated runs of the same query:
// the xxHash of the query's canonical form.
func SearchKey(s *serp.Search) string {
	q := serp.Query{
		Terms:    s.Terms,
		Start:    s.Start,
		Num:      s.Num,
		News:     s.News,
		TLD:      s.TLD,
		Lang:     s.Lang,
		Exact:    s.Exact,
		Duration: s.Duration,
	}
	return hashKey(q.Canonical())
}

// CreateSearch records a search together with its results in a single
// transaction. ID, Key and CreatedAt are set on the search.
func (s *HistoryService) CreateSearch(ctx context.Context, search *serp.Search) error {
	if err := search.Validate(); err != nil {
		return err
	}

	search.ID = uuid.New().String()
	search.Key = SearchKey(search)
	search.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO searches (id, key, terms, start, num, news, tld, lang, exact, duration, skipped, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, search.ID, search.Key, search.Terms, search.Start, search.Num, search.News, search.TLD,
		search.Lang, search.Exact, search.Duration, search.Skipped, formatTime(search.CreatedAt)); err != nil {
		return err
	}

	for _, r := range search.Results {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO results (search_id, position, title, url, snippet)
			VALUES (?, ?, ?, ?, ?)
		`, search.ID, r.Index, r.Title, r.URL, r.Snippet); err != nil {
			return fmt.Errorf("saving result %d: %w", r.Index, err)
		}
	}

	return tx.Commit()
}

// FindSearchByID retrieves a search and its results by ID.
func (s *HistoryService) FindSearchByID(ctx context.Context, id string) (*serp.Search, error) {
	searches, err := s.FindSearches(ctx, serp.SearchFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(searches) == 0 {
		return nil, serp.Errorf(serp.ENOTFOUND, "search not found")
	}

	search := searches[0]
	if search.Results, err = s.findResults(ctx, id); err != nil {
		return nil, err
	}
	return search, nil
}

// FindSearches retrieves searches matching the filter, newest first.
// Terms matches as a case-insensitive substring.
func (s *HistoryService) FindSearches(ctx context.Context, filter serp.SearchFilter) ([]*serp.Search, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, key, terms, start, num, news, tld, lang, exact, duration, skipped, created_at FROM searches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Key != nil {
		query.WriteString(" AND key = ?")
		args = append(args, *filter.Key)
	}
	if filter.Terms != nil {
		query.WriteString(" AND instr(lower(terms), lower(?)) > 0")
		args = append(args, *filter.Terms)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := []*serp.Search{}
	for rows.Next() {
		var search serp.Search
		var createdAt string

		if err := rows.Scan(&search.ID, &search.Key, &search.Terms, &search.Start, &search.Num,
			&search.News, &search.TLD, &search.Lang, &search.Exact, &search.Duration,
			&search.Skipped, &createdAt); err != nil {
			return nil, err
		}

		if search.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		searches = append(searches, &search)
	}

	return searches, rows.Err()
}

func (s *HistoryService) findResults(ctx context.Context, searchID string) ([]*serp.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, title, url, snippet
		FROM results
		WHERE search_id = ?
		ORDER BY position ASC
	`, searchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*serp.Result
	for rows.Next() {
		var r serp.Result
		if err := rows.Scan(&r.Index, &r.Title, &r.URL, &r.Snippet); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}

// DeleteSearch permanently removes a search and its results.
func (s *HistoryService) DeleteSearch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM searches WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return serp.Errorf(serp.ENOTFOUND, "search not found")
	}

	return nil
}

// ClearHistory removes all searches and their results.
func (s *HistoryService) ClearHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM searches")
	return err
}
