package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generate returns a prefixed unique identifier, e.g. Generate("rw")
// -> "rw_01J8ZK7Q2M3N4P5R6S7T8V9W0X". Prefixes follow the entity
// conventions used across the store: pgm_, rw_, pn_, pge_, link_.
func Generate(prefix string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	return prefix + "_" + id.String()
}
