package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"portfolio-api/src/utils"
)

// ErrDataUnavailable marks a missing or unparsable data file. Handlers map
// it to a 500 response.
var ErrDataUnavailable = errors.New("portfolio data unavailable")

// Store reads the portfolio dataset from a JSON file on disk.
type Store struct {
	filePath string
	cacheTTL time.Duration
	cache    *utils.Cache[Dataset]
}

func NewStore(filePath string, cacheTTL time.Duration) *Store {
	return &Store{
		filePath: filePath,
		cacheTTL: cacheTTL,
		cache:    utils.NewCache[Dataset](),
	}
}

// Load reads and parses the data file. With a positive cache TTL the parsed
// dataset is reused until it expires; otherwise every call reads fresh.
func (s *Store) Load(ctx context.Context) (Dataset, error) {
	if s.cacheTTL > 0 {
		if dataset, ok := s.cache.Get(); ok {
			return dataset, nil
		}
	}

	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	dataset, err := Parse(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	utils.LoggerFromContext(ctx).WithField("records", len(dataset.Records)).Debug("portfolio dataset loaded")

	if s.cacheTTL > 0 {
		s.cache.Set(dataset, s.cacheTTL)
	}
	return dataset, nil
}

// Parse decodes a JSON array of flat objects, or an object whose first
// array-valued key wraps one. Field order follows the source document, which
// a plain map decode would discard.
func Parse(raw []byte) (Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Dataset{}, err
	}

	delim, _ := tok.(json.Delim)
	switch delim {
	case '[':
		return parseRecords(dec)
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return Dataset{}, err
			}
			var value json.RawMessage
			if err := dec.Decode(&value); err != nil {
				return Dataset{}, err
			}
			if trimmed := bytes.TrimSpace(value); len(trimmed) > 0 && trimmed[0] == '[' {
				return Parse(trimmed)
			}
		}
		return Dataset{}, fmt.Errorf("no record array found in document")
	default:
		return Dataset{}, fmt.Errorf("expected a JSON array of records, got %v", tok)
	}
}

func parseRecords(dec *json.Decoder) (Dataset, error) {
	var dataset Dataset
	for dec.More() {
		record, err := parseRecord(dec)
		if err != nil {
			return Dataset{}, err
		}
		if len(dataset.Records) == 0 {
			dataset.Fields = record.Fields
		}
		dataset.Records = append(dataset.Records, record)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Dataset{}, err
	}
	return dataset, nil
}

func parseRecord(dec *json.Decoder) (Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return Record{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Record{}, fmt.Errorf("expected a record object, got %v", tok)
	}

	record := Record{Values: map[string]string{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Record{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Record{}, fmt.Errorf("expected a field name, got %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return Record{}, err
		}
		record.Fields = append(record.Fields, key)
		record.Values[key] = renderValue(value)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Record{}, err
	}
	return record, nil
}

// renderValue turns a raw JSON value into its cell text. Numbers keep their
// source formatting, null renders empty, and nested values keep their raw
// JSON text as a best effort since the data is expected to be flat.
func renderValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case 'n':
		return ""
	}
	return string(raw)
}
