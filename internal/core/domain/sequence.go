package domain

import (
	"fmt"
	"strconv"
)

// FormatNumber renders a correlative number zero-padded to three digits.
// Numbers of 1000 and above are not padded.
func FormatNumber(n int64) string {
	return fmt.Sprintf("%03d", n)
}

// ParseNumber reads a correlative number back into its numeric value.
func ParseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid voucher number %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid voucher number %q: must be positive", s)
	}
	return n, nil
}

// NextNumber returns the number following maxApproved, the highest number
// already approved for the (company, voucher type) pair; zero when none.
func NextNumber(maxApproved int64) string {
	return FormatNumber(maxApproved + 1)
}
