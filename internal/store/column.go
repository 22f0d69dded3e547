package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/roach88/refined/internal/document"
)

// ColumnFunc receives one cell of a scanned column.
// Returning an error stops the scan and is returned from ReadColumn.
type ColumnFunc func(rowid int64, v document.Value) error

// ReadColumn streams every value of table.column in rowid order.
//
// SQLite storage classes map to document values: INTEGER to Int, TEXT and
// BLOB to String, NULL to Null. REAL values are rejected.
func (s *Store) ReadColumn(ctx context.Context, table, column string, fn ColumnFunc) error {
	query := fmt.Sprintf(`SELECT rowid, %s FROM %s ORDER BY rowid ASC`,
		quoteIdent(column), quoteIdent(table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var n int
	for rows.Next() {
		var rowid int64
		var raw any
		if err := rows.Scan(&rowid, &raw); err != nil {
			return fmt.Errorf("scan %s.%s: %w", table, column, err)
		}
		v, err := columnValue(raw)
		if err != nil {
			return fmt.Errorf("%s.%s rowid %d: %w", table, column, rowid, err)
		}
		if err := fn(rowid, v); err != nil {
			return err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s.%s: %w", table, column, err)
	}

	s.logger.Debug("scanned column", "table", table, "column", column, "rows", n)
	return nil
}

func columnValue(raw any) (document.Value, error) {
	switch v := raw.(type) {
	case nil:
		return document.Null{}, nil
	case int64:
		return document.Int(v), nil
	case string:
		return document.String(v), nil
	case []byte:
		return document.String(v), nil
	case bool:
		return document.Bool(v), nil
	case time.Time:
		return document.String(v.UTC().Format(time.RFC3339Nano)), nil
	case float64:
		return nil, fmt.Errorf("floating point value %v is not supported", v)
	default:
		return nil, fmt.Errorf("unsupported column type %T", raw)
	}
}

// quoteIdent quotes a SQLite identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
