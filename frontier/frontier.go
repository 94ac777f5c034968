package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy indicates a strategy name ParseStrategy does not recognise.
var ErrUnknownStrategy = errors.New("frontier: unknown strategy")

// Frontier is a mutable set of (node, tentative distance) entries supporting
// minimum extraction and key decrease.
type Frontier interface {
	// Distance returns the node's tentative distance. ok is false once the
	// node has been popped.
	Distance(node int) (dist float64, ok bool)

	// DecreaseKey lowers the node's tentative distance to dist.
	DecreaseKey(node int, dist float64)

	// PopMin removes and returns the entry with the smallest distance.
	PopMin() (node int, dist float64)

	// Len returns the number of entries not yet popped.
	Len() int
}

// Strategy selects a Frontier implementation.
type Strategy int

const (
	// StrategyLinear selects Linear (array scan).
	StrategyLinear Strategy = iota

	// StrategyHeap selects Heap (binary heap with position index).
	StrategyHeap
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{StrategyLinear, StrategyHeap}

// String returns the strategy's canonical name.
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy. "array" is accepted as an alias of "linear".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "array":
		return StrategyLinear, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// New builds the frontier for strategy s over n nodes with the given source.
// Unknown strategies fall back to Heap.
func New(s Strategy, n, source int) Frontier {
	if s == StrategyLinear {
		return NewLinear(n, source)
	}

	return NewHeap(n, source)
}
