package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"asciitree-cli/internal/model"
	"asciitree-cli/internal/render"
)

var ErrUnknownFormat = errors.New("unknown format")

// Document is the structured form of a node collection.
type Document struct {
	Nodes []model.Node `json:"nodes" yaml:"nodes"`
}

// Write writes nodes in the requested format.
//
// Supported formats:
// - text (default): canonical ASCII tree
// - json
// - edn
// - yaml
func Write(w io.Writer, nodes []model.Node, format string, pretty bool) error {
	if nodes == nil {
		nodes = []model.Node{}
	}
	switch normalize(format) {
	case "", "text":
		_, err := io.WriteString(w, render.Render(nodes))
		return err
	case "json":
		return WriteJSON(w, Document{Nodes: nodes}, pretty)
	case "edn":
		return WriteEDN(w, Document{Nodes: nodes}, pretty)
	case "yaml", "yml":
		return WriteYAML(w, Document{Nodes: nodes})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Read decodes a node collection. JSON and YAML accept either a bare list of
// nodes or a {"nodes": [...]} document; text is parsed as an ASCII tree.
func Read(r io.Reader, format string) ([]model.Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch normalize(format) {
	case "", "text":
		return render.Parse(string(b)), nil
	case "json":
		return decodeJSON(b)
	case "yaml", "yml":
		return decodeYAML(b)
	case "auto":
		return decodeAuto(b)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func decodeJSON(b []byte) ([]model.Node, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var nodes []model.Node
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, fmt.Errorf("decode json nodes: %w", err)
		}
		return nodes, nil
	}
	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}
	return doc.Nodes, nil
}

func decodeYAML(b []byte) ([]model.Node, error) {
	var nodes []model.Node
	if err := yaml.Unmarshal(b, &nodes); err == nil {
		return nodes, nil
	}
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml document: %w", err)
	}
	return doc.Nodes, nil
}

// decodeAuto sniffs the input: JSON when it starts with '{' or '[', an ASCII
// tree when any line carries a connector, YAML otherwise.
func decodeAuto(b []byte) ([]model.Node, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return []model.Node{}, nil
	}
	switch trimmed[0] {
	case '{', '[':
		return decodeJSON(trimmed)
	}
	s := string(b)
	if strings.Contains(s, render.ConnTee) || strings.Contains(s, render.ConnElbow) {
		return render.Parse(s), nil
	}
	return decodeYAML(b)
}

func normalize(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
