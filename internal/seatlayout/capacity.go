package seatlayout

import (
	"strconv"
	"strings"

	"busexcursion/internal/domain"
)

// ValidateCapacity fails fast with domain.InvalidCapacityError outside [1,55].
func ValidateCapacity(n int) error {
	if n < domain.MinCapacity || n > domain.MaxCapacity {
		return domain.InvalidCapacityError{Value: n}
	}
	return nil
}

// ParseCapacity parses a textual capacity; "12.5", "abc" and out of range
// values are rejected rather than rounded or clamped.
func ParseCapacity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.InvalidCapacityError{Raw: raw}
	}
	if err := ValidateCapacity(n); err != nil {
		return 0, domain.InvalidCapacityError{Value: n, Raw: raw}
	}
	return n, nil
}
