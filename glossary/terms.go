// Package glossary maps spreadsheet rows to glossary term records and back.
package glossary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"google.golang.org/api/sheets/v4"
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

// Term is a glossary term definition read from a spreadsheet row. Domain is the
// governance domain from the row's 'domain' column (a name or a GUID) and may be
// empty, in which case the term falls back to the configured default domain.
type Term struct {
	Name            string
	Description     string
	LongDescription string
	Status          string
	Domain          string
}

// FileError wraps a spreadsheet file that is missing or cannot be parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error reading terms from %s (%v)", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Recognized column headings, normalised, mapped to the canonical column key.
var columns = map[string]string{
	"name":             "name",
	"term":             "name",
	"description":      "description",
	"shortdescription": "description",
	"definition":       "description",
	"longdescription":  "longdescription",
	"richdescription":  "longdescription",
	"status":           "status",
	"domain":           "domain",
}

// ReadFile reads glossary terms from a local TSV file.
func ReadFile(path string) ([]Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	defer f.Close()

	terms, err := ReadTSV(f)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	return terms, nil
}

// ReadTSV reads glossary terms from tab-separated values with a header row.
func ReadTSV(f io.Reader) ([]Term, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty spreadsheet")
	}

	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, v := range record {
			row[j] = v
		}

		rows[i] = row
	}

	return MakeTable(&sheets.ValueRange{Values: rows})
}

// MakeTable maps the rows of a worksheet range to glossary terms. The first row is
// the header row - recognized columns are matched by normalised name, unrecognized
// columns are ignored. Rows without a name are skipped and row order is preserved.
func MakeTable(data *sheets.ValueRange) ([]Term, error) {
	if len(data.Values) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	// .. build index
	index := map[string]int{}
	row := data.Values[0]
	for i, v := range row {
		k, ok := columns[normalise(fmt.Sprintf("%v", v))]
		if !ok {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%v'", v)
		}

		index[k] = i
	}

	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("missing 'name' column")
	}

	// ... records
	terms := []Term{}
	for _, row := range data.Values[1:] {
		name := field(row, index, "name")
		if name == "" {
			continue
		}

		term := Term{
			Name:            name,
			Description:     field(row, index, "description"),
			LongDescription: field(row, index, "longdescription"),
			Status:          status(field(row, index, "status")),
			Domain:          field(row, index, "domain"),
		}

		terms = append(terms, term)
	}

	return terms, nil
}

// WriteTSV writes glossary terms as tab-separated values with a header row.
func WriteTSV(f io.Writer, terms []Term) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write([]string{"Name", "Description", "Long Description", "Status", "Domain"})
	for _, term := range terms {
		w.Write([]string{term.Name, term.Description, term.LongDescription, term.Status, term.Domain})
	}

	w.Flush()

	return w.Error()
}

func field(row []any, index map[string]int, column string) string {
	if ix, ok := index[column]; ok && ix < len(row) {
		if v, ok := row[ix].(string); ok {
			return clean(v)
		}
	}

	return ""
}

// Terms without a status are created as drafts.
func status(v string) string {
	switch {
	case strings.EqualFold(v, StatusPublished):
		return StatusPublished

	case v == "":
		return StatusDraft

	case strings.EqualFold(v, StatusDraft):
		return StatusDraft

	default:
		return v
	}
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
