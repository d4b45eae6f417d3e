package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first sheet of a spreadsheet into rows keyed by its
// header row. The reader is capped at maxBytes like ReadCSV.
func ReadXLSX(r io.Reader, maxBytes int64) ([]Row, error) {
	limited := &limitedReader{r: r, remaining: maxBytes}

	f, err := excelize.OpenReader(limited)
	if err != nil {
		if limited.exceeded {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	var rows []Row
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
