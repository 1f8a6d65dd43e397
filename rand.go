package xdh

import (
	"crypto/rand"
	"fmt"
)

// randomBytes fills buf with cryptographically secure random bytes,
// wrapping crypto/rand.Read the way the teacher wraps its own entropy
// source: a single chokepoint so key generation never silently falls
// back to a weaker source.
func randomBytes(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("xdh: reading random bytes: %w", err)
	}
	return nil
}
