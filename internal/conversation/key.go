package conversation

import (
	"strings"

	"github.com/mrz1836/go-sanitize"
)

// unknownKey is used when a sender id has no path-safe characters at all.
const unknownKey = "unknown"

// Key derives the storage key for a user id. Colons become underscores and
// everything that is not safe in a file name is dropped. Key(Key(x)) == Key(x),
// so a key taken from a download URL resolves to the same log.
func Key(userID string) string {
	k := sanitize.PathName(strings.ReplaceAll(userID, ":", "_"))
	if k == "" {
		return unknownKey
	}
	return k
}
