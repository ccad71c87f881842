package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = errors.New("gridgraph: start marker not found")
	// ErrMissingEnd indicates no end marker was found.
	ErrMissingEnd = errors.New("gridgraph: end marker not found")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("gridgraph: more than one start marker")
	// ErrDuplicateEnd indicates more than one end marker.
	ErrDuplicateEnd = errors.New("gridgraph: more than one end marker")
	// ErrBadMarkers indicates two roles share the same marker character.
	ErrBadMarkers = errors.New("gridgraph: wall, start and end markers must be distinct")
	// ErrBadEndpoint indicates a start or end outside the grid or on a wall.
	ErrBadEndpoint = errors.New("gridgraph: endpoint must be an open cell inside the grid")
)
