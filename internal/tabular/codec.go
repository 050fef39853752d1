package tabular

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"audiotools/internal/curation"
)

// Format describes the delimiter and quote character of a table file.
// encoding/csv hardwires '"' as the quote character, so the codec here
// implements the minimal-quoting rules directly: fields are quoted only when
// they contain the delimiter, the quote character, or a line break, and a
// literal quote character inside a quoted field is doubled.
type Format struct {
	Delimiter rune
	Quote     rune
}

// DefaultFormat is the repository-wide table format: tab-delimited, '|' quoted.
var DefaultFormat = Format{Delimiter: '\t', Quote: '|'}

// FormatFrom builds a Format from single-character configuration strings,
// falling back to the defaults for empty values.
func FormatFrom(delimiter, quote string) Format {
	f := DefaultFormat
	if r := firstRune(delimiter); r != 0 {
		f.Delimiter = r
	}
	if r := firstRune(quote); r != 0 {
		f.Quote = r
	}
	return f
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Read parses a delimited table. The first record is the mandatory header;
// an input without one is a structural error.
func Read(r io.Reader, format Format) (*Table, error) {
	records, err := parseRecords(bufio.NewReader(r), format)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, curation.Wrap(curation.ErrInvalidInput, "read table", "missing header row", nil)
	}
	table := &Table{Header: records[0]}
	for _, record := range records[1:] {
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// ReadFile opens, parses, and closes a table file. A missing file is an
// InvalidInput failure rather than a bare I/O error.
func ReadFile(path string, format Format) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curation.Wrap(curation.ErrInvalidInput, "read table", fmt.Sprintf("no such file %q", path), nil)
		}
		return nil, fmt.Errorf("open table %q: %w", path, err)
	}
	defer file.Close()
	return Read(file, format)
}

// Write renders the table with minimal quoting and a trailing newline on
// every record, header first.
func Write(w io.Writer, table *Table, format Format) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, table.Header, format); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writeRecord(bw, row, format); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the table to path, truncating any previous content.
func WriteFile(path string, table *Table, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table %q: %w", path, err)
	}
	if err := Write(file, table, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeRecord(w *bufio.Writer, record []string, format Format) error {
	for i, field := range record {
		if i > 0 {
			if _, err := w.WriteRune(format.Delimiter); err != nil {
				return err
			}
		}
		if err := writeField(w, field, format); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func writeField(w *bufio.Writer, field string, format Format) error {
	if !needsQuoting(field, format) {
		_, err := w.WriteString(field)
		return err
	}
	if _, err := w.WriteRune(format.Quote); err != nil {
		return err
	}
	for _, r := range field {
		if r == format.Quote {
			if _, err := w.WriteRune(format.Quote); err != nil {
				return err
			}
		}
		if _, err := w.WriteRune(r); err != nil {
			return err
		}
	}
	_, err := w.WriteRune(format.Quote)
	return err
}

func needsQuoting(field string, format Format) bool {
	return strings.ContainsRune(field, format.Delimiter) ||
		strings.ContainsRune(field, format.Quote) ||
		strings.ContainsAny(field, "\r\n")
}

// parseRecords consumes the whole input. Quoted fields may contain delimiters
// and line breaks; a doubled quote inside a quoted field is a literal quote.
func parseRecords(r *bufio.Reader, format Format) ([][]string, error) {
	var (
		records  [][]string
		record   []string
		field    strings.Builder
		quoted   bool
		anything bool
	)

	flushField := func() {
		record = append(record, field.String())
		field.Reset()
	}
	flushRecord := func() {
		flushField()
		records = append(records, record)
		record = nil
	}

	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			if quoted {
				return nil, errors.New("unterminated quoted field")
			}
			if anything || field.Len() > 0 || len(record) > 0 {
				if field.Len() > 0 || len(record) > 0 {
					flushRecord()
				}
			}
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		anything = true

		if quoted {
			if ch == format.Quote {
				next, _, err := r.ReadRune()
				if err == io.EOF {
					quoted = false
					continue
				}
				if err != nil {
					return nil, err
				}
				if next == format.Quote {
					field.WriteRune(format.Quote)
					continue
				}
				if err := r.UnreadRune(); err != nil {
					return nil, err
				}
				quoted = false
				continue
			}
			field.WriteRune(ch)
			continue
		}

		switch ch {
		case format.Quote:
			if field.Len() == 0 {
				quoted = true
			} else {
				field.WriteRune(ch)
			}
		case format.Delimiter:
			flushField()
		case '\r':
			// swallowed; the following \n terminates the record
		case '\n':
			flushRecord()
		default:
			field.WriteRune(ch)
		}
	}
}
