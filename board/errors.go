package board

import "errors"

// Sentinel errors surfaced by FEN parsing. The core refuses to construct a
// Board on any of these; routine move generation and make/unmake are
// infallible on a valid Board and never return an error.
var (
	ErrWrongFieldCount  = errors.New("fen: wrong number of fields")
	ErrMalformedFEN     = errors.New("fen: malformed field")
	ErrIllegalPosition  = errors.New("fen: describes an impossible position")
)
