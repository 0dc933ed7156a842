package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AccountID identifies a player or creator account. The canonical form
// is "0x" followed by 40 lowercase hex characters, so byte comparison
// of two AccountIDs matches numeric address order. Key custody and
// transaction signing live in the external wallet layer; the core only
// ever sees the address.
type AccountID string

// ParseAccountID validates and normalizes an account address
func ParseAccountID(s string) (AccountID, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", fmt.Errorf("%w: missing 0x prefix", ErrInvalidAccount)
	}
	body := strings.ToLower(s[2:])
	if len(body) != 40 {
		return "", fmt.Errorf("%w: expected 40 hex characters, got %d", ErrInvalidAccount, len(body))
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAccount, s)
	}
	return AccountID("0x" + body), nil
}

// Bytes returns the 20-byte address the account encodes
func (a AccountID) Bytes() []byte {
	b, err := hex.DecodeString(strings.TrimPrefix(string(a), "0x"))
	if err != nil {
		// Non-canonical IDs only arise in tests; fall back to the raw
		// string so derivation stays deterministic
		return []byte(a)
	}
	return b
}
