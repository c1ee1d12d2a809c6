package envelope

import (
	"errors"
	"fmt"
)

// ErrFormat is the parent of every decoding failure. Callers match it with
// [errors.Is] to tell a garbled file from a wrong password.
var ErrFormat = errors.New("malformed vault envelope")

var (
	// ErrMalformedDocument is returned when the file is not a JSON object.
	ErrMalformedDocument = fmt.Errorf("%w: not a valid document", ErrFormat)

	// ErrMissingField is returned when one of the three members is absent.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrFormat)

	// ErrInvalidEncoding is returned when a member is not standard base64.
	ErrInvalidEncoding = fmt.Errorf("%w: invalid base64", ErrFormat)
)
