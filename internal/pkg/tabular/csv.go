package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV parses CSV content into rows keyed by the header record. The
// reader is capped at maxBytes; exceeding it fails the whole file. A file
// with no data rows yields zero rows and no error.
func ReadCSV(r io.Reader, maxBytes int64) ([]Row, error) {
	limited := &limitedReader{r: r, remaining: maxBytes}

	cr := csv.NewReader(limited)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		if limited.exceeded {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if limited.exceeded {
				return nil, ErrFileTooLarge
			}
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	if limited.exceeded {
		return nil, ErrFileTooLarge
	}
	return rows, nil
}

// limitedReader reads up to remaining bytes and flags the overflow instead
// of silently truncating.
type limitedReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		// Probe one byte so a file of exactly the ceiling still passes.
		var probe [1]byte
		n, err := l.r.Read(probe[:])
		if n > 0 {
			l.exceeded = true
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
