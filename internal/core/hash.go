package core

import (
	"fmt"
	"hash/fnv"
)

// HashContent fingerprints built output for the manifest. Not
// cryptographic; only used to detect stale files between builds.
func HashContent(content []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(content)
	return fmt.Sprintf("%016x", h.Sum64())
}
