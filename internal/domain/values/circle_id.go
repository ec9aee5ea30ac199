package values

import (
	"fmt"

	"github.com/google/uuid"
)

// CircleID uniquely identifies a circle within a repository.
type CircleID struct {
	value uuid.UUID
}

// NewCircleID creates a new random circle ID
func NewCircleID() CircleID {
	return CircleID{value: uuid.New()}
}

// ParseCircleID parses a string into a CircleID
func ParseCircleID(s string) (CircleID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CircleID{}, fmt.Errorf("invalid circle ID: %w", err)
	}
	return CircleID{value: id}, nil
}

// MustParseCircleID parses a string or panics (for tests only)
func MustParseCircleID(s string) CircleID {
	id, err := ParseCircleID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (c CircleID) String() string {
	return c.value.String()
}

// UUID returns the underlying uuid.UUID
func (c CircleID) UUID() uuid.UUID {
	return c.value
}

// IsZero returns true if this is the zero value
func (c CircleID) IsZero() bool {
	return c.value == uuid.Nil
}

// Equals checks if two CircleIDs are equal
func (c CircleID) Equals(other CircleID) bool {
	return c.value == other.value
}

// MarshalJSON implements json.Marshaler
func (c CircleID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.value.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (c *CircleID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid circle ID JSON")
	}
	id, err := ParseCircleID(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*c = id
	return nil
}
