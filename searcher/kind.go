package searcher

import (
	"errors"
	"fmt"
)

// Kind selects one of the search strategies.
type Kind int

const (
	KindMinimax Kind = iota
	KindMinimaxCutoff
	KindAlphaBeta
	KindAlphaBetaCutoff
)

var (
	ErrUnknownKind  = errors.New("unknown search kind")
	ErrInvalidDepth = errors.New("depth must be at least 1")
)

var kindNames = map[Kind]string{
	KindMinimax:         "minimax",
	KindMinimaxCutoff:   "minimax-cutoff",
	KindAlphaBeta:       "alphabeta",
	KindAlphaBetaCutoff: "alphabeta-cutoff",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// HasCutoff reports whether searches of this kind stop at a depth limit.
func (k Kind) HasCutoff() bool {
	return k == KindMinimaxCutoff || k == KindAlphaBetaCutoff
}

func ParseKind(name string) (Kind, error) {
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New builds a searcher of the given kind. depth is ignored by kinds without
// a cutoff and must be at least 1 for the others.
func New(kind Kind, depth int, options ...Option) (Searcher, error) {
	if kind.HasCutoff() && depth < 1 {
		return nil, fmt.Errorf("%w: %s with depth %d", ErrInvalidDepth, kind, depth)
	}
	switch kind {
	case KindMinimax:
		return NewMinimax(options...), nil
	case KindMinimaxCutoff:
		return NewMinimaxCutoff(depth, options...), nil
	case KindAlphaBeta:
		return NewAlphaBeta(options...), nil
	case KindAlphaBetaCutoff:
		return NewAlphaBetaCutoff(depth, options...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}
