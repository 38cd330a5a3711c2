package greenstar

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NotAvailable is the text form of the rating sentinel.
const NotAvailable = "NA"

// Rating is a Green Star rating: a non-negative integer, or the "not
// available" sentinel NA. The zero value is a rating of 0.
type Rating struct {
	value int
	na    bool
}

// NA is the "not available" rating.
var NA = Rating{na: true}

// R returns the known rating v.
func R(v int) Rating {
	if v < 0 {
		panic(fmt.Sprintf("negative rating %d", v))
	}
	return Rating{value: v}
}

// ParseRating parses the literal "NA" or a string of decimal digits.
func ParseRating(s string) (Rating, error) {
	if s == NotAvailable {
		return NA, nil
	}
	if s == "" {
		return Rating{}, fmt.Errorf("invalid rating %q: want a non-negative integer or %q", s, NotAvailable)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Rating{}, fmt.Errorf("invalid rating %q: want a non-negative integer or %q", s, NotAvailable)
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Rating{}, fmt.Errorf("invalid rating %q: %w", s, err)
	}
	return Rating{value: v}, nil
}

// Value returns the rating and true, or 0 and false for NA.
func (r Rating) Value() (int, bool) {
	if r.na {
		return 0, false
	}
	return r.value, true
}

// IsNA reports whether r is the "not available" rating.
func (r Rating) IsNA() bool { return r.na }

// OrZero returns the rating value, NA counting as 0.
func (r Rating) OrZero() int {
	if r.na {
		return 0
	}
	return r.value
}

func (r Rating) String() string {
	if r.na {
		return NotAvailable
	}
	return strconv.Itoa(r.value)
}

// MarshalJSON writes a known rating as a number and NA as the string "NA".
func (r Rating) MarshalJSON() ([]byte, error) {
	if r.na {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON reads either a number or the string "NA".
func (r *Rating) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		if v < 0 {
			return fmt.Errorf("invalid rating %d: negative", v)
		}
		*r = Rating{value: v}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid rating %s: %w", data, err)
	}
	parsed, err := ParseRating(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
