package network_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartins1234/netroute/network"
)

const yamlNetwork = `
nodes:
  - {x: 0, y: 0}
  - {x: 3, y: 4}
  - {x: 6, y: 8}
edges:
  - {from: 0, to: 1}
  - {from: 1, to: 2, length: 2.5}
`

const tomlNetwork = `
[[nodes]]
x = 0.0
y = 0.0

[[nodes]]
x = 3.0
y = 4.0

[[nodes]]
x = 6.0
y = 8.0

[[edges]]
from = 0
to = 1

[[edges]]
from = 1
to = 2
length = 2.5
`

func TestDecode_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format network.Format
		input  string
	}{
		{"yaml", network.FormatYAML, yamlNetwork},
		{"toml", network.FormatTOML, tomlNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := network.Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)

			require.Equal(t, 3, net.Len())
			require.Equal(t, 2, net.EdgeCount())

			n0, _ := net.Node(0)
			n1, _ := net.Node(1)
			assert.Equal(t, network.Point{X: 3, Y: 4}, n1.Loc)
			assert.InDelta(t, 5.0, n0.Neighbors[0].Length, 1e-12, "missing length falls back to distance")
			assert.InDelta(t, 2.5, n1.Neighbors[0].Length, 1e-12)
		})
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := network.Decode(strings.NewReader("nodes: []\nweights: []\n"), network.FormatYAML)
	assert.Error(t, err)

	_, err = network.Decode(strings.NewReader("[[nodes]]\nx = 1.0\ny = 1.0\nz = 1.0\n"), network.FormatTOML)
	assert.Error(t, err)
}

func TestDecode_RejectsInvalidEdges(t *testing.T) {
	in := "nodes:\n  - {x: 0, y: 0}\nedges:\n  - {from: 0, to: 0, length: -1}\n"
	_, err := network.Decode(strings.NewReader(in), network.FormatYAML)
	assert.ErrorIs(t, err, network.ErrNegativeLength)

	in = "nodes:\n  - {x: 0, y: 0}\nedges:\n  - {from: 0, to: 3}\n"
	_, err = network.Decode(strings.NewReader(in), network.FormatYAML)
	assert.ErrorIs(t, err, network.ErrNodeOutOfRange)
}

func TestDecode_EmptyYAML(t *testing.T) {
	net, err := network.Decode(strings.NewReader(""), network.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, net.Len())
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []network.Format{network.FormatYAML, network.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			src, err := network.Decode(strings.NewReader(yamlNetwork), network.FormatYAML)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, network.Encode(&buf, src, format))

			got, err := network.Decode(&buf, format)
			require.NoError(t, err)
			require.Equal(t, src.Len(), got.Len())
			require.Equal(t, src.EdgeCount(), got.EdgeCount())
			for i, node := range src.Nodes() {
				other := got.Nodes()[i]
				assert.Equal(t, node.Loc, other.Loc)
				require.Len(t, other.Neighbors, len(node.Neighbors))
				for j, e := range node.Neighbors {
					assert.Equal(t, *e, *other.Neighbors[j])
				}
			}
		})
	}
}

func TestLoadSave_ByExtension(t *testing.T) {
	src, err := network.Decode(strings.NewReader(yamlNetwork), network.FormatYAML)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"net.yaml", "net.yml", "net.toml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, network.Save(path, src))

		got, err := network.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, src.EdgeCount(), got.EdgeCount(), name)
	}

	assert.ErrorIs(t, network.Save(filepath.Join(dir, "net.json"), src), network.ErrUnknownFormat)
	_, err = network.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := network.FormatFromPath("/tmp/A.YML")
	require.NoError(t, err)
	assert.Equal(t, network.FormatYAML, f)

	_, err = network.FormatFromPath("graph.csv")
	assert.ErrorIs(t, err, network.ErrUnknownFormat)
}
