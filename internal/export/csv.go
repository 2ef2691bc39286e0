package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"sqlgateway/pkg/dbconn"
)

// writeDelimited renders the result set as delimiter-separated text with a
// header row. NULL cells are empty.
func writeDelimited(rs *dbconn.Resultset, delim rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delim

	if err := w.Write(rs.Columns); err != nil {
		return nil, err
	}

	record := make([]string, len(rs.Columns))
	for _, row := range rs.Rows {
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case map[string]any:
		// binary columns arrive as the base64 envelope
		if b64, ok := x["base64"].(string); ok {
			return b64
		}
		return fmt.Sprintf("%v", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
