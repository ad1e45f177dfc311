package shareset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/sharerecover/basedecode"
	"github.com/vitalvas/sharerecover/shamir"
)

// NewDocument builds a document holding shares with y encoded in base.
// Keys are the decimal x-coordinates, in the order of shares.
func NewDocument(k int, shares []shamir.Share, base int) (*Document, error) {
	if k < 1 || k > len(shares) {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrInvalidThreshold, len(shares), k)
	}

	doc := &Document{
		N:       len(shares),
		K:       k,
		Entries: make([]Entry, 0, len(shares)),
	}

	for _, share := range shares {
		key := share.X.String()

		value, err := basedecode.Encode(share.Y, base)
		if err != nil {
			return nil, &EntryError{Key: key, Err: err}
		}

		doc.Entries = append(doc.Entries, Entry{
			Key:   key,
			X:     share.X,
			Base:  base,
			Value: value,
		})
	}

	return doc, nil
}

// Encode writes the document preserving entry order.
func (d *Document) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return d.encodeJSON(w)
	case FormatYAML:
		return d.encodeYAML(w)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
}

func (d *Document) encodeJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "{\n    %q: {\n        \"n\": %d,\n        \"k\": %d\n    }", keysField, d.N, d.K)

	for _, e := range d.Entries {
		key, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}

		value, err := json.Marshal(e.Value)
		if err != nil {
			return err
		}

		fmt.Fprintf(bw, ",\n    %s: {\n        \"base\": \"%d\",\n        \"value\": %s\n    }", key, e.Base, value)
	}

	bw.WriteString("\n}\n")

	return bw.Flush()
}

func scalar(value string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: style}
}

func (d *Document) encodeYAML(w io.Writer) error {
	keys := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		scalar("n", 0), scalar(strconv.Itoa(d.N), 0),
		scalar("k", 0), scalar(strconv.Itoa(d.K), 0),
	}}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, scalar(keysField, 0), keys)

	for _, e := range d.Entries {
		entry := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
			scalar("base", 0), scalar(strconv.Itoa(e.Base), 0),
			scalar("value", 0), scalar(e.Value, yaml.DoubleQuotedStyle),
		}}

		root.Content = append(root.Content, scalar(e.Key, yaml.DoubleQuotedStyle), entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		return err
	}

	return enc.Close()
}
