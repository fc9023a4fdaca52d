package auth

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewToken returns an opaque mnet_* session token. The token is the sole
// credential for a session, so its entropy bits come from crypto/rand.
func NewToken() string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	return "mnet_" + strings.ToLower(id.String())
}

// IsValidToken reports whether the string looks like an mnet_* token.
func IsValidToken(value string) bool {
	if !strings.HasPrefix(value, "mnet_") {
		return false
	}
	_, err := ulid.Parse(strings.TrimPrefix(value, "mnet_"))
	return err == nil
}
