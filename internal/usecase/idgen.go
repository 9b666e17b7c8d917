package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// nextRecordID derives a fresh identifier from the IDs already in a
// collection: take every ID carrying the entity prefix (e.g. "Q-"), parse
// its numeric suffix, and use max+1 zero-padded to three digits. Suffixes
// that fail to parse are skipped rather than treated as errors.
//
// Once max+1 passes 999 the padding stops constraining the width ("Q-1000");
// that is accepted.
func nextRecordID(prefix string, ids []string) string {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
