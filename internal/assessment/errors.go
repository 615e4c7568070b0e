package assessment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteProfile is matched by every *IncompleteProfileError.
var ErrIncompleteProfile = errors.New("incomplete profile")

// IncompleteProfileError is returned when a derivation receives a percentile
// map without all eight dimensions.
type IncompleteProfileError struct {
	Missing []Dimension
}

func (e *IncompleteProfileError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, d := range e.Missing {
		names = append(names, string(d))
	}
	return fmt.Sprintf("incomplete profile: missing %s", strings.Join(names, ", "))
}

func (e *IncompleteProfileError) Is(target error) bool {
	return target == ErrIncompleteProfile
}
