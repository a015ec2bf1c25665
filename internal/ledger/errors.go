package ledger

import "errors"

// Transaction validation errors.
var (
	ErrEmptyIdentifier   = errors.New("transaction identifier is empty")
	ErrMissingTimestamp  = errors.New("transaction timestamp is not set")
	ErrMissingField      = errors.New("required transaction field is empty")
	ErrWrongTypeTag      = errors.New("transaction type tag does not match variant")
	ErrUnknownTxType     = errors.New("unknown transaction type")
	ErrInvalidStatus     = errors.New("transaction carries an unrecognized product status")
)

// Chain-level errors.
var (
	ErrInvalidDifficulty = errors.New("chain difficulty must be non-negative")
	ErrEmptyProductID    = errors.New("product identifier is empty")
)
