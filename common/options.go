// Package common holds the small helpers shared by the search commands.
package common

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var limitPattern = regexp.MustCompile(`^([0-9_]+)([MGTPE]?)$`)

// ParseLimit converts a count like "250", "10M" or "1_000G" into a number.
// Underscores in the digits are ignored and the suffixes M, G, T, P and E
// scale by the matching power of ten, so "10G" is ten billion.
func ParseLimit(s string) (uint64, error) {
	pieces := limitPattern.FindStringSubmatch(s)
	if pieces == nil {
		return 0, fmt.Errorf("limit %q does not match <digits>[MGTPE]", s)
	}
	limit, err := strconv.ParseUint(strings.ReplaceAll(pieces[1], "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("limit %q: %w", s, err)
	}
	switch pieces[2] {
	case "M":
		limit *= 1_000_000
	case "G":
		limit *= 1_000_000_000
	case "T":
		limit *= 1_000_000_000_000
	case "P":
		limit *= 1_000_000_000_000_000
	case "E":
		limit *= 1_000_000_000_000_000_000
	}
	return limit, nil
}

// FormatCount renders a count at the largest magnitude ParseLimit accepts,
// so logs stay readable once the limits get big.
func FormatCount(n uint64) string {
	switch {
	case n >= 1_000_000_000_000_000_000:
		return fmt.Sprintf("%.1fE", float64(n)/1e18)
	case n >= 1_000_000_000_000_000:
		return fmt.Sprintf("%.1fP", float64(n)/1e15)
	case n >= 1_000_000_000_000:
		return fmt.Sprintf("%.1fT", float64(n)/1e12)
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	default:
		return strconv.FormatUint(n, 10)
	}
}
