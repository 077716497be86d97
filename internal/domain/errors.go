package domain

import "errors"

// Error kinds surfaced by the engine. Callers match with errors.Is; the
// wrapped message carries the offending field.
var (
	// ErrInvalidInputKind reports a value of the wrong primitive type in a
	// numeric field (a boolean where an amount was expected, garbage text).
	ErrInvalidInputKind = errors.New("invalid input kind")

	// ErrOutOfRange reports a numeric value outside sane bounds (negative
	// amount, amount above MaxAmount, unsupported age).
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownEnumValue reports an unrecognized regime, occupancy status,
	// city category, donation head or relation code.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrMissingConfiguration reports that no rule set is registered for the
	// requested tax year. The engine never falls back to another year.
	ErrMissingConfiguration = errors.New("missing configuration")
)
