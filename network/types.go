package network

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by network construction and file decoding.
var (
	// ErrNodeOutOfRange indicates a node ID outside [0, Len()).
	ErrNodeOutOfRange = errors.New("network: node id out of range")

	// ErrNegativeLength indicates an edge length below zero.
	ErrNegativeLength = errors.New("network: negative edge length")

	// ErrBadLength indicates an edge length that is NaN or infinite.
	ErrBadLength = errors.New("network: edge length must be finite")

	// ErrUnknownFormat indicates a network file extension or format name that is not supported.
	ErrUnknownFormat = errors.New("network: unknown file format")
)

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// String renders the point as "(x,y)" with no decimal places.
func (p Point) String() string {
	return fmt.Sprintf("(%.0f,%.0f)", p.X, p.Y)
}

// Edge is a directed connection From → To.
type Edge struct {
	// From is the source node ID.
	From int

	// To is the destination node ID.
	To int

	// Length is the non-negative cost of traversing the edge.
	Length float64
}

// Node is a location in the network together with its outgoing edges.
type Node struct {
	// ID is the node's index in its Network.
	ID int

	// Loc is the node's position; used to derive edge lengths.
	Loc Point

	// Neighbors lists outgoing edges in insertion order.
	Neighbors []*Edge
}
