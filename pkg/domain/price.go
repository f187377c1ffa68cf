package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxPrice is the largest amount a price column can hold (NUMERIC(6,2)).
const MaxPrice Price = 999999

// Price is a non-negative amount with two decimal places, stored in cents.
type Price int64

// String renders the price with exactly two decimals, e.g. "129.90".
func (p Price) String() string {
	sign := ""
	if p < 0 {
		sign, p = "-", -p
	}

	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}

// ParsePrice parses a decimal amount such as "129.9" or "129.90".
// At most two decimal places are accepted.
func ParsePrice(s string) (Price, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(s), ".")
	if len(frac) > 2 {
		return 0, fmt.Errorf("price %q has more than two decimals", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("could not parse price %q: %w", s, err)
	}
	f, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("could not parse price %q: %w", s, err)
	}

	p := Price(w*100 + f)
	if p > MaxPrice {
		return 0, fmt.Errorf("price %q exceeds %s", s, MaxPrice)
	}

	return p, nil
}
