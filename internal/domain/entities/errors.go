package entities

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/locus/internal/domain/values"
)

// ErrInvalidArgument is matched by every rejection of a domain input.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidLocationError indicates a write to a LocationCell was rejected.
type InvalidLocationError struct {
	Candidate values.Location
	Reason    string
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid location %s: %s", e.Candidate.String(), e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed.
func (e *InvalidLocationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidCircleError indicates circle construction input was rejected.
type InvalidCircleError struct {
	Field  string
	Reason string
}

func (e *InvalidCircleError) Error() string {
	return fmt.Sprintf("invalid circle %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed.
func (e *InvalidCircleError) Is(target error) bool {
	return target == ErrInvalidArgument
}
