package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// amount is one name=value pair from the command line.
type amount struct {
	Name  string
	Value int64
}

// parseAmounts parses name=value pairs, preserving argument order.
// Duplicate names and malformed pairs are rejected.
func parseAmounts(args []string) ([]amount, error) {
	if len(args) == 0 {
		return nil, ErrNoAmounts
	}

	seen := make(map[string]bool, len(args))
	amounts := make([]amount, 0, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid amount %q (want name=value)", arg)
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %q is not an integer", arg, raw)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate amount for %q", name)
		}
		seen[name] = true
		amounts = append(amounts, amount{Name: name, Value: value})
	}
	return amounts, nil
}

// amountsMap converts parsed pairs to a lookup map.
func amountsMap(amounts []amount) map[string]int64 {
	m := make(map[string]int64, len(amounts))
	for _, a := range amounts {
		m[a.Name] = a.Value
	}
	return m
}
