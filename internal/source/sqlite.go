package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"mockview/internal/grid"
)

// SQLite reads rows from a SQLite database one page at a time. The
// configured query selects the full (unpaginated) result set; Fetch wraps
// it with LIMIT/OFFSET and a COUNT for the remote total.
//
// Row identity comes from an "id" column when the query yields one;
// otherwise each fetched row gets a synthetic identity, which makes
// selection per-fetch only. Queries feeding selectable grids should
// project a stable id column.
type SQLite struct {
	db    *sql.DB
	query string
}

// OpenSQLite opens the database read-only and prepares the source. The
// query is validated eagerly so a typo fails at load time, not on the
// first page fetch.
func OpenSQLite(path, query string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// SQLite supports one writer; this source only reads, but a single
	// connection keeps fetch ordering deterministic.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	stmt, err := db.Prepare(query)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("invalid source query: %w", err)
	}
	stmt.Close()

	return &SQLite{db: db, query: query}, nil
}

func (s *SQLite) Paged() bool { return true }

// Fetch returns one page of rows plus the remote total.
func (s *SQLite) Fetch(ctx context.Context, page, pageSize int) (Result, error) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = grid.DefaultPageSize
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM (%s)", s.query)
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return Result{}, fmt.Errorf("counting rows: %w", err)
	}

	pageQuery := fmt.Sprintf("%s LIMIT ? OFFSET ?", s.query)
	rows, err := s.db.QueryContext(ctx, pageQuery, pageSize, page*pageSize)
	if err != nil {
		return Result{}, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("reading columns: %w", err)
	}

	var out []grid.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Result{}, fmt.Errorf("scanning row: %w", err)
		}

		cells := make(map[string]any, len(cols))
		for i, name := range cols {
			cells[name] = normalizeValue(values[i])
		}
		out = append(out, grid.Row{ID: sqliteRowID(cells), Cells: cells})
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("iterating rows: %w", err)
	}

	return Result{Rows: out, TotalCount: &total}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// normalizeValue maps driver byte slices to strings so cells stringify and
// compare the way inline YAML values do.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func sqliteRowID(cells map[string]any) string {
	if id, ok := cells["id"]; ok && id != nil {
		return fmt.Sprintf("%v", id)
	}
	return grid.NewRowID()
}
