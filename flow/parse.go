package flow

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errEmptyInput   = errors.New("flow: empty input")
	errBadNumber    = errors.New("flow: not a number")
	errBadStockList = errors.New("flow: malformed stock list")
)

// splitCSV splits on commas, trims whitespace, and drops empty tokens.
func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseSizes parses a comma-separated size list into distinct tokens,
// preserving first-seen order. Duplicates would otherwise produce duplicate
// variations.
func ParseSizes(input string) ([]string, error) {
	tokens := splitCSV(input)
	if len(tokens) == 0 {
		return nil, errEmptyInput
	}
	seen := make(map[string]struct{}, len(tokens))
	sizes := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		sizes = append(sizes, t)
	}
	return sizes, nil
}

// ParseTags parses a comma-separated tag list. Empty input yields no tags.
func ParseTags(input string) []string {
	return splitCSV(input)
}

// ParsePrice parses a price as a whole number.
func ParsePrice(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errBadNumber
	}
	return n, nil
}

// ParseStockQuantity parses a single uniform stock quantity.
func ParseStockQuantity(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errBadNumber
	}
	return n, nil
}

// ParseStockList parses a comma-separated quantity list. One malformed token
// rejects the whole input.
func ParseStockList(input string) ([]int, error) {
	tokens := splitCSV(input)
	if len(tokens) == 0 {
		return nil, errBadStockList
	}
	out := make([]int, 0, len(tokens))
	for _, t := range tokens {
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, errBadStockList
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseSKUList parses a comma-separated SKU list, trimmed, order preserved.
func ParseSKUList(input string) ([]string, error) {
	skus := splitCSV(input)
	if len(skus) == 0 {
		return nil, errEmptyInput
	}
	return skus, nil
}
