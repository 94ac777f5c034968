package network

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a network file encoding.
type Format string

// Supported network file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// document is the on-disk schema shared by every format.
type document struct {
	Nodes []nodeRecord `yaml:"nodes" toml:"nodes"`
	Edges []edgeRecord `yaml:"edges" toml:"edges"`
}

type nodeRecord struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

type edgeRecord struct {
	From   int      `yaml:"from" toml:"from"`
	To     int      `yaml:"to" toml:"to"`
	Length *float64 `yaml:"length,omitempty" toml:"length,omitempty"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads a network file, choosing the decoder by extension.
func Load(path string) (*Network, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	net, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("network: load %s: %w", path, err)
	}

	return net, nil
}

// Save writes net to path, choosing the encoder by extension.
func Save(path string, net *Network) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("network: create %s: %w", path, err)
	}
	if err := Encode(f, net, format); err != nil {
		f.Close()
		return fmt.Errorf("network: save %s: %w", path, err)
	}

	return f.Close()
}

// Decode parses a network from r. Unknown keys are rejected in both formats.
// Edges without a length get the Euclidean distance between their endpoints.
func Decode(r io.Reader, format Format) (*Network, error) {
	var doc document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return doc.build()
}

// Encode writes net to w. Every edge length is written explicitly.
func Encode(w io.Writer, net *Network, format Format) error {
	doc := newDocument(net)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func newDocument(net *Network) document {
	doc := document{
		Nodes: make([]nodeRecord, 0, net.Len()),
		Edges: make([]edgeRecord, 0, net.EdgeCount()),
	}
	for _, node := range net.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeRecord{X: node.Loc.X, Y: node.Loc.Y})
		for _, e := range node.Neighbors {
			length := e.Length
			doc.Edges = append(doc.Edges, edgeRecord{From: e.From, To: e.To, Length: &length})
		}
	}

	return doc
}

func (d document) build() (*Network, error) {
	net := New(len(d.Nodes))
	for _, n := range d.Nodes {
		net.AddNode(Point{X: n.X, Y: n.Y})
	}

	for i, e := range d.Edges {
		var err error
		if e.Length == nil {
			_, err = net.Connect(e.From, e.To)
		} else {
			_, err = net.AddEdge(e.From, e.To, *e.Length)
		}
		if err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return net, nil
}
