package main

import (
	"fmt"
	"strings"

	"github.com/Faultbox/buildmap/pkg/board"
)

// formatStats renders an attribute register as hex, or with expand set as
// the list of non-zero named ranges.
func formatStats(word uint16, fields []board.NamedRange, expand bool) string {
	if !expand {
		return fmt.Sprintf("%#04x", word)
	}

	var parts []string
	for _, f := range fields {
		if v := f.Range.Extract(word); v != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", f.Name, v))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
