package fairness

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/sha3"

	"github.com/mcoot/numbergamble-go/internal/model"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
	seed   model.Seed
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.engine = New()
	for i := range s.seed {
		s.seed[i] = byte(i * 7)
	}
}

const (
	playerA = model.AccountID("0x00112233445566778899aabbccddeeff00112233")
	playerB = model.AccountID("0xffeeddccbbaa99887766554433221100ffeeddcc")
)

func (s *EngineSuite) TestRollInRange() {
	for slot := 0; slot < model.HandleCount; slot++ {
		r := s.engine.Roll(s.seed, playerA, slot)
		s.GreaterOrEqual(r, 1)
		s.LessOrEqual(r, 6)
	}
}

func (s *EngineSuite) TestRollIsDeterministic() {
	for slot := 0; slot < model.HandleCount; slot++ {
		first := s.engine.Roll(s.seed, playerA, slot)
		second := s.engine.Roll(s.seed, playerA, slot)
		s.Equal(first, second)
	}
}

func (s *EngineSuite) TestRollMatchesIndependentDerivation() {
	// Recompute the way an external auditor would: keccak over the
	// packed seed, 20-byte address, and slot byte, reduced mod 6.
	for slot := 0; slot < model.HandleCount; slot++ {
		h := sha3.NewLegacyKeccak256()
		h.Write(s.seed[:])
		h.Write(playerA.Bytes())
		h.Write([]byte{byte(slot)})

		n := new(big.Int).SetBytes(h.Sum(nil))
		want := int(n.Mod(n, big.NewInt(6)).Int64()) + 1

		s.Equal(want, s.engine.Roll(s.seed, playerA, slot))
	}
}

func (s *EngineSuite) TestRollVariesAcrossInputs() {
	// Different seeds, players, or slots should not all collapse to the
	// same value; collect the spread over a few dozen derivations.
	seen := map[int]bool{}
	for i := 0; i < 32; i++ {
		seed := s.seed
		seed[0] = byte(i)
		for slot := 0; slot < model.HandleCount; slot++ {
			seen[s.engine.Roll(seed, playerA, slot)] = true
			seen[s.engine.Roll(seed, playerB, slot)] = true
		}
	}
	s.Greater(len(seen), 1)
	for v := range seen {
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}
}

func (s *EngineSuite) TestScoreIsMaxOfRolls() {
	want := 0
	for slot := 0; slot < model.HandleCount; slot++ {
		if r := s.engine.Roll(s.seed, playerA, slot); r > want {
			want = r
		}
	}
	s.Equal(want, s.engine.Score(s.seed, playerA))
}

func (s *EngineSuite) TestHandlesAreNonZeroAndStable() {
	first := s.engine.Handles(s.seed, playerA)
	second := s.engine.Handles(s.seed, playerA)

	for slot := range first {
		s.False(first[slot].IsZero())
		s.Equal(first[slot], second[slot])
	}
}

func (s *EngineSuite) TestHandlesDifferPerSlotAndPlayer() {
	a := s.engine.Handles(s.seed, playerA)
	b := s.engine.Handles(s.seed, playerB)

	s.NotEqual(a[0], a[1])
	s.NotEqual(a[1], a[2])
	s.NotEqual(a[0], b[0])
}

func (s *EngineSuite) TestHandleDoesNotEqualRollDigest() {
	// The handle derivation is domain-separated: a handle must not be
	// the raw roll digest, or holders could reverse the clear value
	// without the relayer.
	h := sha3.NewLegacyKeccak256()
	h.Write(s.seed[:])
	h.Write(playerA.Bytes())
	h.Write([]byte{0})
	rollDigest := h.Sum(nil)

	handles := s.engine.Handles(s.seed, playerA)
	s.NotEqual(rollDigest, handles[0][:])
}
