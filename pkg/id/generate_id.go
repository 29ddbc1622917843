package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var reHex24 = regexp.MustCompile(`^[a-f0-9]{24}$`)

// NewID24 returns exactly 24 hex characters (no separators/prefixes),
// the document identifier format used for every entity in this service.
func NewID24() string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid reports whether s is a well-formed 24-char lowercase hex identifier.
func Valid(s string) bool { return reHex24.MatchString(s) }
