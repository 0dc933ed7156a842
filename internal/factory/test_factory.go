package factory

import (
	"time"

	"github.com/mcoot/numbergamble-go/internal/dependencies/mocks"
	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/session"
	"github.com/mcoot/numbergamble-go/internal/storage/memory"
	"github.com/mcoot/numbergamble-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(session.Config{})
}

// NewTestAppWithConfig creates a TestApp with the given session policy
func NewTestAppWithConfig(sessionCfg session.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, DefaultTreasury, sessionCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// Fund deposits funds into the given accounts
func (t *TestApp) Fund(amount uint64, accounts ...model.AccountID) {
	for _, account := range accounts {
		t.Bank.Deposit(account, amount)
	}
}
