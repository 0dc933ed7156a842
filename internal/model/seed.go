package model

import (
	"encoding/hex"
	"fmt"
)

// Seed is the per-game secret from which every member's rolls derive.
// It is drawn exactly once, at the start transition, from entropy no
// single party controls, and published on the game record at that point
// so any holder can audit the outcome.
type Seed [SeedLength]byte

// SeedLength is the size of a game seed in bytes
const SeedLength = 32

// SeedFromBytes builds a Seed from a 32-byte slice
func SeedFromBytes(b []byte) (Seed, error) {
	var s Seed
	if len(b) != len(s) {
		return s, fmt.Errorf("seed must be %d bytes, got %d", len(s), len(b))
	}
	copy(s[:], b)
	return s, nil
}

// IsZero returns true if the seed has not been drawn
func (s Seed) IsZero() bool {
	return s == Seed{}
}

// String renders the seed as 0x-prefixed hex
func (s Seed) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// MarshalText implements encoding.TextMarshaler (hex form for JSON)
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Seed) UnmarshalText(text []byte) error {
	return decodeFixedHex(text, s[:], "seed")
}

// Handle is an opaque reference to one privately-derived roll. The core
// issues handles at start and never branches on the clear value; the
// external decryption relayer turns a handle into its integer for a
// requester who proves their identity off-path.
type Handle [32]byte

// IsZero returns true if the handle has not been issued
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// String renders the handle as 0x-prefixed hex
func (h Handle) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// MarshalText implements encoding.TextMarshaler (hex form for JSON)
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (h *Handle) UnmarshalText(text []byte) error {
	return decodeFixedHex(text, h[:], "handle")
}

func decodeFixedHex(text []byte, dst []byte, what string) error {
	s := string(text)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid %s hex: %w", what, err)
	}
	if len(b) != len(dst) {
		return fmt.Errorf("%s must be %d bytes, got %d", what, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}
