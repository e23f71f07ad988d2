package accounting

import (
	"fmt"
	"strconv"
	"strings"
)

const referencePrefix = "JE"

// FormatReference renders JE-<year>-<seq> with seq left-padded to 4 digits.
func FormatReference(year int, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", referencePrefix, year, seq)
}

// NextReference returns the reference for a business that already has existingCount entries.
// Numbers can repeat after a draft is deleted; duplicates are reported by FindDuplicateReferences.
func NextReference(year int, existingCount int) string {
	return FormatReference(year, existingCount+1)
}

// ParseReference splits a generated reference back into year and sequence.
func ParseReference(ref string) (year int, seq int, ok bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 3 || parts[0] != referencePrefix {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	return year, seq, true
}
