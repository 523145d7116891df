package db

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checksum is the hex SHA-256 of a stored document.
func Checksum(document string) string {
	sum := sha256.Sum256([]byte(document))
	return hex.EncodeToString(sum[:])
}
