package extract

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// Row is one transcript record as found in the dump. Values are whatever
// the JSON carried (string, number, null); absent fields are simply absent.
// Rows are never mutated after parsing.
type Row map[string]any

// The grade export wraps its rows in a fixed envelope.
const (
	pathDatas = "datas"
	pathGrade = "xscjcx"
	pathRows  = "rows"
)

// Rows parses every embedded JSON object in text and concatenates the row
// lists found at datas.xscjcx.rows, preserving order across and within
// objects. Malformed JSON or a missing path segment fails the whole load.
func Rows(text string) ([]Row, error) {
	var rows []Row
	for i, obj := range Objects(text) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(obj), &doc); err != nil {
			return nil, errors.Wrapf(err, "parsing embedded object %d", i)
		}

		list, err := rowsAt(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		rows = append(rows, list...)
	}
	slog.Debug("rows loaded", "count", len(rows))
	return rows, nil
}

func rowsAt(doc map[string]any) ([]Row, error) {
	datas, ok := doc[pathDatas].(map[string]any)
	if !ok {
		return nil, errors.Errorf("missing %q section", pathDatas)
	}
	grade, ok := datas[pathGrade].(map[string]any)
	if !ok {
		return nil, errors.Errorf("missing %q section", pathGrade)
	}
	raw, ok := grade[pathRows].([]any)
	if !ok {
		return nil, errors.Errorf("missing %q list", pathRows)
	}

	rows := make([]Row, 0, len(raw))
	for i, v := range raw {
		r, ok := v.(map[string]any)
		if !ok {
			return nil, errors.Errorf("row %d is not an object", i)
		}
		rows = append(rows, Row(r))
	}
	return rows, nil
}

// ReadRows reads the dump file once, eagerly, and loads all rows from it.
func ReadRows(path string) ([]Row, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading dump file: %s", path)
	}
	return Rows(string(b))
}
