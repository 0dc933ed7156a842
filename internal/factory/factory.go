package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/numbergamble-go/internal/api/sse"
	"github.com/mcoot/numbergamble-go/internal/dependencies/clock"
	"github.com/mcoot/numbergamble-go/internal/dependencies/random"
	"github.com/mcoot/numbergamble-go/internal/fairness"
	"github.com/mcoot/numbergamble-go/internal/ledger"
	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/registry"
	"github.com/mcoot/numbergamble-go/internal/session"
	"github.com/mcoot/numbergamble-go/internal/settlement"
	"github.com/mcoot/numbergamble-go/internal/storage"
	"github.com/mcoot/numbergamble-go/internal/storage/memory"
	redisstorage "github.com/mcoot/numbergamble-go/internal/storage/redis"
	"github.com/mcoot/numbergamble-go/internal/winner"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultTreasury is the account holding pots between collection and
// payout when no treasury is configured
const DefaultTreasury = model.AccountID("0x0000000000000000000000000000000000000001")

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Value settlement
	Bank *settlement.Bank

	// Services
	FairnessEngine     *fairness.Engine
	LedgerService      *ledger.Service
	WinnerResolver     *winner.Resolver
	RegistryController *registry.Controller
	SessionController  *session.Controller
	HubManager         *sse.HubManager
	Broadcaster        *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Treasury is the account holding collected fees until payout
	// If empty, defaults to DefaultTreasury
	Treasury model.AccountID
	// SessionConfig holds session policy settings
	SessionConfig session.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	treasury := cfg.Treasury
	if treasury == "" {
		treasury = DefaultTreasury
	}

	return newWithDependencies(store, clk, rnd, treasury, cfg.SessionConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	treasury model.AccountID,
	sessionCfg session.Config,
	logger *slog.Logger,
) *App {
	// Create services
	bank := settlement.NewBank()
	engine := fairness.New()
	resolver := winner.New(engine)
	ledgerService := ledger.New(store, bank, treasury, clk, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	registryController := registry.NewController(store, clk, broadcaster)
	sessionController := session.NewController(store, ledgerService, engine, resolver, clk, rnd, broadcaster, sessionCfg, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Bank:               bank,
		FairnessEngine:     engine,
		LedgerService:      ledgerService,
		WinnerResolver:     resolver,
		RegistryController: registryController,
		SessionController:  sessionController,
		HubManager:         hubManager,
		Broadcaster:        broadcaster,
	}
}
