package settlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numbergamble-go/internal/model"
)

type BankSuite struct {
	suite.Suite
	bank *Bank
	ctx  context.Context
}

func TestBankSuite(t *testing.T) {
	suite.Run(t, new(BankSuite))
}

func (s *BankSuite) SetupTest() {
	s.bank = NewBank()
	s.ctx = context.Background()
}

const (
	alice = model.AccountID("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	bob   = model.AccountID("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

func (s *BankSuite) TestTransferMovesFunds() {
	s.bank.Deposit(alice, 100)

	err := s.bank.Transfer(s.ctx, alice, bob, 60)
	s.Require().NoError(err)

	aliceBal, _ := s.bank.Balance(s.ctx, alice)
	bobBal, _ := s.bank.Balance(s.ctx, bob)
	s.Equal(uint64(40), aliceBal)
	s.Equal(uint64(60), bobBal)
}

func (s *BankSuite) TestTransferInsufficientFundsLeavesBalancesUnchanged() {
	s.bank.Deposit(alice, 50)

	err := s.bank.Transfer(s.ctx, alice, bob, 60)
	s.ErrorIs(err, ErrInsufficientFunds)

	aliceBal, _ := s.bank.Balance(s.ctx, alice)
	bobBal, _ := s.bank.Balance(s.ctx, bob)
	s.Equal(uint64(50), aliceBal)
	s.Equal(uint64(0), bobBal)
}

func (s *BankSuite) TestZeroTransferIsNoop() {
	err := s.bank.Transfer(s.ctx, alice, bob, 0)
	s.NoError(err)
}

func (s *BankSuite) TestDepositAccumulates() {
	s.bank.Deposit(alice, 30)
	s.bank.Deposit(alice, 70)

	bal, err := s.bank.Balance(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(uint64(100), bal)
}
