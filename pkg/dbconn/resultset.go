package dbconn

import (
	"database/sql"
	"encoding/base64"
	"time"
	"unicode/utf8"
)

// Resultset is one materialized result set with normalized cell values.
type Resultset struct {
	Columns []string
	Rows    [][]any
}

// Records returns the rows as one map per row, keyed by column name.
func (rs *Resultset) Records() []map[string]any {
	records := make([]map[string]any, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		record := make(map[string]any, len(rs.Columns))
		for i, c := range rs.Columns {
			record[c] = row[i]
		}
		records = append(records, record)
	}
	return records
}

// ScanRows materializes the first result set. Cells are normalized once so
// the JSON, CSV and Excel serializers all see the same values.
func ScanRows(rows *sql.Rows) (*Resultset, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &Resultset{
		Columns: cols,
		Rows:    make([][]any, 0, 64),
	}

	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		for i := range raw {
			raw[i] = normalizeValue(raw[i])
		}
		rs.Rows = append(rs.Rows, raw)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rs, nil
}

// normalizeValue converts driver values into JSON-safe ones: byte slices
// become strings (or a base64 envelope when not valid UTF-8) and timestamps
// become RFC3339Nano text. NULL stays nil.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		if utf8.Valid(x) {
			return string(x)
		}
		return map[string]any{
			"type":   "bytes",
			"base64": base64.StdEncoding.EncodeToString(x),
		}
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return x
	}
}
