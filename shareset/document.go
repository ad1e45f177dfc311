package shareset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/sharerecover/basedecode"
	"github.com/vitalvas/sharerecover/shamir"
)

const keysField = "keys"

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Order selects how entries are arranged before threshold selection.
type Order string

const (
	// OrderDocument keeps entries in the order they appear in the document.
	OrderDocument Order = "document"
	// OrderAscendingX sorts entries by x-coordinate.
	OrderAscendingX Order = "x"
)

// Entry is one undecoded share as it appears in the document.
type Entry struct {
	Key   string
	X     *big.Int
	Base  int
	Value string
}

// Decode converts the entry's digit string into a share.
func (e Entry) Decode() (shamir.Share, error) {
	y, err := basedecode.Decode(e.Value, e.Base)
	if err != nil {
		return shamir.Share{}, &EntryError{Key: e.Key, Err: err}
	}
	return shamir.Share{X: new(big.Int).Set(e.X), Y: y}, nil
}

// Document is a parsed share document: the declared share count n, the
// threshold k and the share entries in document order.
type Document struct {
	N       int
	K       int
	Entries []Entry
}

// CountMismatch reports whether n disagrees with the number of entries.
func (d *Document) CountMismatch() bool {
	return d.N != len(d.Entries)
}

// Shares decodes every entry and arranges them by order.
func (d *Document) Shares(order Order) ([]shamir.Share, error) {
	entries := slices.Clone(d.Entries)

	switch order {
	case OrderDocument, "":
	case OrderAscendingX:
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return a.X.Cmp(b.X)
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, order)
	}

	shares := make([]shamir.Share, 0, len(entries))
	for _, e := range entries {
		share, err := e.Decode()
		if err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}

	return shares, nil
}

// Threshold decodes the entries, arranges them by order and returns the
// first k shares followed by the surplus ones.
func (d *Document) Threshold(order Order) ([]shamir.Share, []shamir.Share, error) {
	shares, err := d.Shares(order)
	if err != nil {
		return nil, nil, err
	}

	selected, err := shamir.SelectThreshold(shares, d.K)
	if err != nil {
		return nil, nil, err
	}

	return selected, shares[d.K:], nil
}

// Load reads a share document, choosing the format by file extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// Parse reads a share document in the given format.
func Parse(r io.Reader, format Format) (*Document, error) {
	var (
		fields []rawField
		err    error
	)

	switch format {
	case FormatJSON:
		fields, err = readJSONFields(r)
	case FormatYAML:
		fields, err = readYAMLFields(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, err
	}

	return buildDocument(fields)
}

// rawField is a top-level key with a deferred decoder for its value.
type rawField struct {
	key    string
	decode func(v any) error
}

func readJSONFields(r io.Reader) ([]rawField, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrInvalidDocument
	}

	var fields []rawField
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, ErrInvalidDocument
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}

		fields = append(fields, rawField{
			key: key,
			decode: func(v any) error {
				return json.Unmarshal(raw, v)
			},
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return fields, nil
}

func readYAMLFields(r io.Reader) ([]rawField, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInvalidDocument
		}
		return nil, err
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return nil, ErrInvalidDocument
	}

	fields := make([]rawField, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		value := node.Content[i+1]
		fields = append(fields, rawField{
			key:    node.Content[i].Value,
			decode: value.Decode,
		})
	}

	return fields, nil
}

func buildDocument(fields []rawField) (*Document, error) {
	doc := &Document{}
	seen := make(map[string]bool, len(fields))
	haveKeys := false

	for _, field := range fields {
		if seen[field.key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, field.key)
		}
		seen[field.key] = true

		if field.key == keysField {
			var keys keysBlock
			if err := field.decode(&keys); err != nil {
				return nil, fmt.Errorf("keys: %w", err)
			}

			doc.N = int(keys.N)
			doc.K = int(keys.K)
			haveKeys = true
			continue
		}

		x, ok := new(big.Int).SetString(field.key, 10)
		if !ok {
			return nil, &EntryError{Key: field.key, Err: ErrInvalidKey}
		}

		var entry entryBlock
		if err := field.decode(&entry); err != nil {
			return nil, &EntryError{Key: field.key, Err: err}
		}

		doc.Entries = append(doc.Entries, Entry{
			Key:   field.key,
			X:     x,
			Base:  int(entry.Base),
			Value: string(entry.Value),
		})
	}

	if !haveKeys {
		return nil, ErrMissingKeys
	}

	if doc.K < 1 || doc.K > doc.N {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrInvalidThreshold, doc.N, doc.K)
	}

	if len(doc.Entries) < doc.K {
		return nil, fmt.Errorf("%w: need %d, got %d", shamir.ErrInsufficientShares, doc.K, len(doc.Entries))
	}

	return doc, nil
}
