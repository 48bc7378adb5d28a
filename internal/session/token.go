package session

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// TokenLength is the fixed length of a session token.
const TokenLength = 32

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewToken generates an opaque session token: TokenLength characters
// drawn uniformly from the alphanumeric alphabet using crypto/rand.
// It is stateless and safe for concurrent use. Uniqueness is
// probabilistic; the 62^32 keyspace makes collisions negligible.
func NewToken() (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))

	buf := make([]byte, TokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("session: failed to generate token: %w", err)
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}

	return string(buf), nil
}
