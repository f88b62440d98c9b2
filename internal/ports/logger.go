package ports

import "github.com/bft-labs/crcsim/pkg/log"

// Logger is the structured logger used by the application layer.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported for the application layer.
var (
	String   = log.String
	Int      = log.Int
	Int64    = log.Int64
	Ints     = log.Ints
	Float64  = log.Float64
	Bool     = log.Bool
	Stringer = log.Stringer
	Err      = log.Err
)
