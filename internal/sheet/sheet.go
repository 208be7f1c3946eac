// Package sheet reads buying-group workbooks into ordered person records.
package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row as a column-name → value mapping.
type Row map[string]string

// ErrWorkbookNotFound indicates no workbook exists at any configured path.
type ErrWorkbookNotFound struct {
	Paths []string
}

func (e *ErrWorkbookNotFound) Error() string {
	return fmt.Sprintf("workbook not found at any of: %s", strings.Join(e.Paths, ", "))
}

// Load reads the workbook at the primary path, falling back to the legacy
// path. Returns ErrWorkbookNotFound when neither exists. A stat failure
// other than absence (such as a permission error) is not treated as a
// missing workbook.
func Load(primary, legacy string) ([]Row, error) {
	for _, path := range []string{primary, legacy} {
		if path == "" {
			continue
		}
		_, err := os.Stat(path)
		if err == nil {
			return ReadRows(path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat workbook %s: %w", path, err)
		}
	}
	return nil, &ErrWorkbookNotFound{Paths: []string{primary, legacy}}
}

// ReadRows reads the first sheet of the workbook at path. The first row is
// the header row; every following row becomes a Row mapping, preserving the
// workbook's row order. Rows with no values at all are dropped.
func ReadRows(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := raw[0]
	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(Row, len(header))
		empty := true
		for i, name := range header {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			if strings.TrimSpace(value) != "" {
				empty = false
			}
			row[name] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
