package build

import (
	"crypto/sha256"
	"encoding/hex"
)

// cacheKey hashes the build system name and the argument list. Each field
// is NUL terminated so that ["ab"] and ["a", "b"] hash differently.
func cacheKey(buildSystem string, args []string) string {
	h := sha256.New()
	h.Write([]byte(buildSystem))
	h.Write([]byte{0})
	for _, arg := range args {
		h.Write([]byte(arg))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
