package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTokenLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		token, err := NewToken()
		require.NoError(t, err)
		require.Len(t, token, TokenLength)

		for _, r := range token {
			require.True(t, strings.ContainsRune(tokenAlphabet, r),
				"unexpected character %q in token %q", r, token)
		}
	}
}

func TestNewTokenUniqueness(t *testing.T) {
	const samples = 10000

	seen := make(map[string]struct{}, samples)
	for i := 0; i < samples; i++ {
		token, err := NewToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "duplicate token %q after %d draws", token, i)
		seen[token] = struct{}{}
	}
}

func TestNewTokenConcurrent(t *testing.T) {
	const goroutines = 16

	done := make(chan string, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			token, err := NewToken()
			if err != nil {
				done <- ""
				return
			}
			done <- token
		}()
	}

	seen := make(map[string]struct{}, goroutines)
	for i := 0; i < goroutines; i++ {
		token := <-done
		require.Len(t, token, TokenLength)
		seen[token] = struct{}{}
	}
	require.Len(t, seen, goroutines)
}
