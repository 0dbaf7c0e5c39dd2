package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs sort lexicographically by creation
// time, which keeps notification audit rows naturally ordered under the
// user_id-created_at index.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
