package dist

import (
	"time"

	"golang.org/x/exp/rand"
)

// ensureSource returns src unchanged, or a freshly time-seeded source when
// the caller does not supply one. Sources are stateful and not safe for
// concurrent use; ownership stays with the caller for the duration of a
// single call.
func ensureSource(src rand.Source) rand.Source {
	if src == nil {
		return rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return src
}
