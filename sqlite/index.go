package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/xxhash"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ docbot.IndexStore = (*IndexService)(nil)
	_ docbot.Finder     = (*IndexService)(nil)
)

// Build describes a stored index.
type Build struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Keywords    int       `json:"keywords"`
	Entries     int       `json:"entries"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IndexService implements docbot.IndexStore and docbot.Finder using SQLite.
// Only the most recently saved index is kept.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// SaveIndex replaces the stored index with idx in a single transaction.
func (s *IndexService) SaveIndex(ctx context.Context, idx *docbot.Index) error {
	if idx == nil {
		return docbot.Errorf(docbot.EINVALID, "index required")
	}

	stats := idx.Stats()
	build := &Build{
		ID:          uuid.New().String(),
		Fingerprint: xxhash.Fingerprint(idx),
		Keywords:    stats.Keywords,
		Entries:     stats.Entries,
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Entries are removed explicitly in case foreign keys are disabled.
	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM builds"); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO builds (id, fingerprint, keywords, entries, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, build.ID, build.Fingerprint, build.Keywords, build.Entries,
		build.CreatedAt.Format(time.RFC3339Nano)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (build_id, seq, keyword, name, description, defined_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	seq := 0
	for _, keyword := range idx.Keywords() {
		for _, e := range idx.Lookup(keyword) {
			if _, err := stmt.ExecContext(ctx, build.ID, seq, keyword, e.Name, e.Desc, nullString(e.DefinedBy)); err != nil {
				return err
			}
			seq++
		}
	}

	return tx.Commit()
}

// LoadIndex reconstructs the stored index in its original order.
func (s *IndexService) LoadIndex(ctx context.Context) (*docbot.Index, error) {
	build, err := s.FindBuild(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT keyword, name, description, defined_by
		FROM entries
		WHERE build_id = ?
		ORDER BY seq
	`, build.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	idx := docbot.NewIndex()
	for rows.Next() {
		var keyword string
		e, err := scanEntry(rows, &keyword)
		if err != nil {
			return nil, err
		}
		idx.Add(keyword, e)
	}

	return idx, rows.Err()
}

// FindBuild returns metadata for the stored index.
// Returns ENOTFOUND if no index has been saved.
func (s *IndexService) FindBuild(ctx context.Context) (*Build, error) {
	var build Build
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, keywords, entries, created_at
		FROM builds
		ORDER BY rowid DESC
		LIMIT 1
	`).Scan(&build.ID, &build.Fingerprint, &build.Keywords, &build.Entries, &createdAt)

	if err == sql.ErrNoRows {
		return nil, docbot.Errorf(docbot.ENOTFOUND, "no index has been saved")
	}
	if err != nil {
		return nil, err
	}

	build.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &build, nil
}

// Keywords returns the keywords of the stored index in index order.
func (s *IndexService) Keywords(ctx context.Context) ([]string, error) {
	build, err := s.FindBuild(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT keyword
		FROM entries
		WHERE build_id = ?
		GROUP BY keyword
		ORDER BY MIN(seq)
	`, build.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var keyword string
		if err := rows.Scan(&keyword); err != nil {
			return nil, err
		}
		keywords = append(keywords, keyword)
	}

	return keywords, rows.Err()
}

// Find normalizes token and returns the stored entries for it.
// Returns ENOTFOUND if no index has been saved.
func (s *IndexService) Find(ctx context.Context, token string) (*docbot.Match, error) {
	build, err := s.FindBuild(ctx)
	if err != nil {
		return nil, err
	}

	keyword := docbot.Normalize(token)
	rows, err := s.db.QueryContext(ctx, `
		SELECT keyword, name, description, defined_by
		FROM entries
		WHERE build_id = ? AND keyword = ?
		ORDER BY seq
	`, build.ID, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	match := &docbot.Match{Token: token, Keyword: keyword}
	for rows.Next() {
		var k string
		e, err := scanEntry(rows, &k)
		if err != nil {
			return nil, err
		}
		match.Entries = append(match.Entries, e)
	}

	return match, rows.Err()
}

func scanEntry(rows *sql.Rows, keyword *string) (*docbot.Entry, error) {
	var e docbot.Entry
	var definedBy sql.NullString
	if err := rows.Scan(keyword, &e.Name, &e.Desc, &definedBy); err != nil {
		return nil, err
	}
	e.DefinedBy = definedBy.String
	return &e, nil
}
