package models

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownLocation = errors.New("unknown location")
)

// Category is the closed set of transaction kinds.
type Category uint8

const (
	Purchase Category = iota
	Withdrawal
	Transfer
)

// Categories lists every category in declaration order.
var Categories = []Category{Purchase, Withdrawal, Transfer}

var categoryNames = [...]string{
	Purchase:   "Purchase",
	Withdrawal: "Withdrawal",
	Transfer:   "Transfer",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory maps a category name back to its value.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if categoryNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Location is the closed set of region codes a transaction can originate from.
type Location uint8

const (
	SP Location = iota
	RJ
	MG
	RS
	PR
)

// Locations lists every region code in declaration order.
var Locations = []Location{SP, RJ, MG, RS, PR}

var locationNames = [...]string{
	SP: "SP",
	RJ: "RJ",
	MG: "MG",
	RS: "RS",
	PR: "PR",
}

func (l Location) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return fmt.Sprintf("Location(%d)", uint8(l))
}

// ParseLocation maps a region code back to its value.
func ParseLocation(s string) (Location, error) {
	for _, l := range Locations {
		if locationNames[l] == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, s)
}

func (l Location) MarshalText() ([]byte, error) {
	if int(l) >= len(locationNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLocation, uint8(l))
	}
	return []byte(locationNames[l]), nil
}

func (l *Location) UnmarshalText(b []byte) error {
	v, err := ParseLocation(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
