package portfolio

import (
	"bytes"

	"portfolio-api/src/utils"
)

// Record is one holding: field names in source-document order plus their
// values rendered as strings. No schema is enforced; fields are whatever the
// JSON object contains.
type Record struct {
	Fields []string
	Values map[string]string
}

func (r Record) Get(field string) string {
	return r.Values[field]
}

// Dataset is an ordered sequence of records. Fields holds the first record's
// field names and drives the CSV header.
type Dataset struct {
	Fields  []string
	Records []Record
}

// Rows renders every record in Fields order. A record missing a field yields
// an empty cell.
func (d Dataset) Rows() [][]string {
	rows := make([][]string, 0, len(d.Records))
	for _, rec := range d.Records {
		row := make([]string, len(d.Fields))
		for i, field := range d.Fields {
			row[i] = rec.Get(field)
		}
		rows = append(rows, row)
	}
	return rows
}

// CSV renders the dataset with a header row followed by one row per record.
// A dataset with no records renders empty output, since there is no first
// record to take field names from.
func (d Dataset) CSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := utils.WriteCSV(&buf, d.Fields, d.Rows()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filter keeps the records whose rendered value for field equals value.
// Fields are carried over, so an empty result still renders a header-only
// CSV.
func (d Dataset) Filter(field, value string) Dataset {
	out := Dataset{Fields: d.Fields}
	for _, rec := range d.Records {
		if rec.Get(field) == value {
			out.Records = append(out.Records, rec)
		}
	}
	return out
}
