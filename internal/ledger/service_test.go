package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numbergamble-go/internal/dependencies/mocks"
	"github.com/mcoot/numbergamble-go/internal/ledger"
	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/settlement"
	"github.com/mcoot/numbergamble-go/internal/storage/memory"
	"github.com/mcoot/numbergamble-go/internal/testutil"
)

const (
	testTreasury = model.AccountID("0x00000000000000000000000000000000000000fe")
	testPayer    = model.AccountID("0x1111111111111111111111111111111111111111")
	testWinner   = model.AccountID("0x2222222222222222222222222222222222222222")
)

type LedgerSuite struct {
	suite.Suite
	ctx     context.Context
	bank    *settlement.Bank
	service *ledger.Service
	clock   *mocks.MockClock
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.bank = settlement.NewBank()
	s.bank.Deposit(testPayer, model.JoinFee*10)
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = ledger.New(memory.New(), s.bank, testTreasury, s.clock, testutil.NopLogger())
}

func (s *LedgerSuite) TestCollect() {
	err := s.service.Collect(s.ctx, 1, testPayer, model.JoinFee, model.JoinFee, model.ContributionJoin)
	s.Require().NoError(err)

	pot, err := s.service.Pot(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.JoinFee, pot)

	balance, err := s.bank.Balance(s.ctx, testTreasury)
	s.Require().NoError(err)
	s.Equal(model.JoinFee, balance)
}

func (s *LedgerSuite) TestCollectWrongAmount() {
	err := s.service.Collect(s.ctx, 1, testPayer, model.JoinFee-1, model.JoinFee, model.ContributionJoin)
	s.Require().ErrorIs(err, model.ErrWrongAmount)

	// Nothing moved
	balance, err := s.bank.Balance(s.ctx, testTreasury)
	s.Require().NoError(err)
	s.Equal(uint64(0), balance)

	pot, err := s.service.Pot(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(uint64(0), pot)
}

func (s *LedgerSuite) TestCollectInsufficientFunds() {
	broke := model.AccountID("0x3333333333333333333333333333333333333333")
	err := s.service.Collect(s.ctx, 1, broke, model.JoinFee, model.JoinFee, model.ContributionJoin)
	s.Require().ErrorIs(err, settlement.ErrInsufficientFunds)

	pot, err := s.service.Pot(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(uint64(0), pot)
}

func (s *LedgerSuite) TestCollectAccumulates() {
	s.Require().NoError(s.service.Collect(s.ctx, 1, testPayer, model.JoinFee, model.JoinFee, model.ContributionJoin))
	s.clock.Advance(time.Minute)
	s.Require().NoError(s.service.Collect(s.ctx, 1, testPayer, model.ContinueFee, model.ContinueFee, model.ContributionContinue))

	record, err := s.service.Record(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.JoinFee+model.ContinueFee, record.Amount)
	s.Equal(model.JoinFee+model.ContinueFee, record.Collected)
	s.Require().Len(record.Contributions, 2)
	s.Equal(model.ContributionJoin, record.Contributions[0].Kind)
	s.Equal(model.ContributionContinue, record.Contributions[1].Kind)
	s.Equal(testPayer, record.Contributions[0].Payer)
}

func (s *LedgerSuite) TestPayout() {
	s.Require().NoError(s.service.Collect(s.ctx, 1, testPayer, model.JoinFee, model.JoinFee, model.ContributionJoin))
	s.Require().NoError(s.service.Collect(s.ctx, 1, testPayer, model.ContinueFee, model.ContinueFee, model.ContributionContinue))

	amount, err := s.service.Payout(s.ctx, 1, testWinner)
	s.Require().NoError(err)
	s.Equal(model.JoinFee+model.ContinueFee, amount)

	balance, err := s.bank.Balance(s.ctx, testWinner)
	s.Require().NoError(err)
	s.Equal(model.JoinFee+model.ContinueFee, balance)

	// Pot is drained but its collected history is preserved
	record, err := s.service.Record(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(uint64(0), record.Amount)
	s.Equal(model.JoinFee+model.ContinueFee, record.Collected)
	s.True(record.Paid)
	s.Equal(testWinner, record.PaidTo)
}

func (s *LedgerSuite) TestPayoutTwice() {
	s.Require().NoError(s.service.Collect(s.ctx, 1, testPayer, model.JoinFee, model.JoinFee, model.ContributionJoin))

	_, err := s.service.Payout(s.ctx, 1, testWinner)
	s.Require().NoError(err)

	_, err = s.service.Payout(s.ctx, 1, testWinner)
	s.Require().ErrorIs(err, model.ErrAlreadyPaid)
}

func (s *LedgerSuite) TestPayoutEmptyPot() {
	_, err := s.service.Payout(s.ctx, 42, testWinner)
	s.Require().ErrorIs(err, model.ErrAlreadyPaid)
}

func (s *LedgerSuite) TestPotsAreIndependent() {
	s.Require().NoError(s.service.Collect(s.ctx, 1, testPayer, model.JoinFee, model.JoinFee, model.ContributionJoin))
	s.Require().NoError(s.service.Collect(s.ctx, 2, testPayer, model.JoinFee, model.JoinFee, model.ContributionJoin))

	_, err := s.service.Payout(s.ctx, 1, testWinner)
	s.Require().NoError(err)

	pot, err := s.service.Pot(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(model.JoinFee, pot)
}
