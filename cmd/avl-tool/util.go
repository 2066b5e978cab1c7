package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Parses integer keys from any mix of arguments and comma-separated lists: "1,2,3", "4 5", etc.
func parseKeys(args ...string) ([]int, error) {
	var out []int
	for _, arg := range args {
		for _, s := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			k, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid key %q: %w", s, err)
			}
			out = append(out, k)
		}
	}
	return out, nil
}

// Sorts and de-duplicates keys in place, for callers which accept keys in any order.
func normalizeKeys(keys []int) []int {
	slices.Sort(keys)
	return slices.Compact(keys)
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
