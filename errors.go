package dtoken

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Each typed error below also
// Unwraps to one of these.
var (
	ErrParityGeneration = errors.New("dtoken: reed-solomon parity generation failed")
	ErrInvalidLength    = errors.New("dtoken: input length not in any accepted range")
	ErrDecode           = errors.New("dtoken: reed-solomon correction failed")
)

// ParityGenerationError is returned by Hash when the Reed-Solomon
// encoder refuses to generate parity for the assembled frame. This is
// not expected in practice given Hash's fixed input size; the inner
// error is surfaced unchanged.
type ParityGenerationError struct {
	Err error
}

func (e *ParityGenerationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParityGeneration, e.Err)
}

func (e *ParityGenerationError) Unwrap() error {
	return ErrParityGeneration
}

// InvalidLengthError is returned by Validate when input is neither a
// valid (possibly short) binary form nor a valid (possibly short)
// textual form.
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidLength, e.Len)
}

func (e *InvalidLengthError) Unwrap() error {
	return ErrInvalidLength
}

// DecodeError is returned by Validate when the input's length was
// accepted but Reed-Solomon correction could not recover a canonical
// Token from it (too many byte errors). The inner error is the
// codec's own diagnostic, wrapped unchanged.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}
