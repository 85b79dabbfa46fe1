package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidTimeOfDay is returned when a time of day is not formatted as HH:MM.
var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// Transaction is a single synthetic transaction record.
// swagger:model Transaction
type Transaction struct {
	// Day the transaction was made, record i lies i days before generation time
	Timestamp time.Time `json:"timestamp"`

	// Transaction value, always positive
	// example: 54.6
	Amount float64 `json:"amount"`

	// Transaction category
	// example: Purchase
	Category Category `json:"category"`

	// Region code where the transaction happened
	// example: SP
	Location Location `json:"location"`

	// Wall clock time of the transaction
	// example: 03:17
	TimeOfDay string `json:"time_of_day"`

	// Heuristic fraud label, 1 when flagged
	// example: 0
	IsFraud Flag `json:"is_fraud"`
}

// Hour returns the hour component of TimeOfDay.
func (t Transaction) Hour() (int, error) {
	h, _, err := ParseTimeOfDay(t.TimeOfDay)
	return h, err
}

// FormatTimeOfDay renders hour and minute as zero padded HH:MM.
func FormatTimeOfDay(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseTimeOfDay splits an HH:MM string and checks both components are in range.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if hour, err = strconv.Atoi(s[:2]); err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hour in %q", ErrInvalidTimeOfDay, s)
	}
	if minute, err = strconv.Atoi(s[3:]); err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute in %q", ErrInvalidTimeOfDay, s)
	}
	return hour, minute, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Flag is a boolean that travels as 0 or 1 on the wire.
type Flag bool

// MarshalJSON encodes the flag as 0 or 1.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts 0/1 as well as true/false.
func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "1", "true":
		*f = true
	case "0", "false", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s", b)
	}
	return nil
}

// Int returns 1 for a set flag and 0 otherwise.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}
