package fairness

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// sides on a die; rolls are uniform over [1, sides]
const sides = 6

// handleDomain separates handle derivation from roll derivation so an
// issued handle never leaks the clear roll
var handleDomain = []byte("seal")

// Engine derives private rolls from a game seed. Every derivation is a
// pure function of (seed, player, slot): anyone holding the seed can
// recompute and audit every roll without contacting this service.
type Engine struct{}

// New creates a new Engine
func New() *Engine {
	return &Engine{}
}

// Roll returns the die value for a player's slot, in [1, 6].
// The value is the Keccak-256 digest of seed || address || slot,
// taken as a 256-bit unsigned integer mod 6, plus 1.
func (e *Engine) Roll(seed model.Seed, player model.AccountID, slot int) int {
	digest := keccak(seed[:], player.Bytes(), []byte{byte(slot)})

	n := new(big.Int).SetBytes(digest)
	return int(n.Mod(n, big.NewInt(sides)).Int64()) + 1
}

// Score returns a player's aggregate score: the maximum of their rolls
// across all slots.
func (e *Engine) Score(seed model.Seed, player model.AccountID) int {
	best := 0
	for slot := 0; slot < model.HandleCount; slot++ {
		if r := e.Roll(seed, player, slot); r > best {
			best = r
		}
	}
	return best
}

// Handles issues the player's opaque roll handles. Derivation is
// domain-separated from Roll, so a handle reveals nothing about its
// clear value; decryption happens in the external relayer.
func (e *Engine) Handles(seed model.Seed, player model.AccountID) [model.HandleCount]model.Handle {
	var handles [model.HandleCount]model.Handle
	for slot := range handles {
		digest := keccak(seed[:], player.Bytes(), []byte{byte(slot)}, handleDomain)
		copy(handles[slot][:], digest)
	}
	return handles
}

// keccak computes the legacy Keccak-256 digest (the EVM's hash, not
// the finalized SHA3-256) over the concatenated parts
func keccak(parts ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
