package dashboard

import (
	"context"
	"errors"
	"fmt"
	"lendboard/internal/core"
	"lendboard/internal/ethereum"
	"lendboard/internal/metrics"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrOperationInProgress error = errors.New("another operation is in progress")
var ErrWalletNotConnected error = errors.New("wallet not connected")
var ErrMarketNotFound error = errors.New("market not found")
var ErrNoReserve error = errors.New("market has no reserve for the operation")

// DefaultQuickAmount is used by quick actions called without an amount.
const DefaultQuickAmount = "1.0"

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeSkipped = "skipped"
)

type Option func(*Dashboard)

// WithPublisher streams every successful operation.
func WithPublisher(p Publisher) Option {
	return func(d *Dashboard) {
		d.publisher = p
	}
}

func WithTracker(t *Tracker) Option {
	return func(d *Dashboard) {
		d.tracker = t
	}
}

// WithExplorerURL sets the prefix of transaction links, e.g. https://basescan.org/tx/.
func WithExplorerURL(url string) Option {
	return func(d *Dashboard) {
		d.explorerURL = url
	}
}

// WithErrorScheduler sets how the clear of a failed operation's error is
// scheduled. The error is shown for DisplayWindow.
func WithErrorScheduler(s Scheduler) Option {
	return func(d *Dashboard) {
		d.errSchedule = s
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) {
		d.now = now
	}
}

// Dashboard composes market data for display and runs lending operations
// for the connected wallet, one at a time.
type Dashboard struct {
	logs         *zap.SugaredLogger
	chainID      int64
	explorerURL  string
	orchestrator Orchestrator
	markets      MarketData
	wallets      WalletSource
	journal      Journal
	publisher    Publisher
	tracker      *Tracker
	now          func() time.Time

	operating atomic.Bool

	errSchedule Scheduler

	mu            sync.RWMutex
	lastErr       error
	errTimer      Timer
	errGeneration uint64
}

func New(logger *zap.SugaredLogger, chainID int64, orchestrator Orchestrator, markets MarketData, wallets WalletSource, journal Journal, opts ...Option) *Dashboard {
	d := &Dashboard{
		logs:         logger,
		chainID:      chainID,
		orchestrator: orchestrator,
		markets:      markets,
		wallets:      wallets,
		journal:      journal,
		now:          time.Now,
		errSchedule:  afterFunc,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.tracker == nil {
		d.tracker = NewTracker()
	}
	return d
}

// Execute runs kind on behalf of userID with the connected wallet. On success
// the transaction becomes the last transaction and is journaled; on failure
// the error is shown in the status for DisplayWindow and the last transaction
// is left as is. Starting an operation clears the previous error.
func (d *Dashboard) Execute(ctx context.Context, userID string, kind core.OperationKind, market, currency, amount string) (*LastTransaction, error) {
	if !d.operating.CompareAndSwap(false, true) {
		return nil, ErrOperationInProgress
	}
	defer d.operating.Store(false)
	d.setError(nil)

	done := metrics.Operations().Start(string(kind))

	var signer ethereum.Signer
	session, ok := d.wallets.Current()
	if ok {
		signer = session
	}

	hash, err := d.orchestrator.Execute(ctx, kind, signer, market, currency, amount)
	if err != nil {
		d.setError(err)
		done(outcomeFailure)
		d.logs.Errorw("operation failed", "operation", kind, "market", market, "error", err)
		return nil, err
	}
	if hash == "" {
		d.setError(ErrWalletNotConnected)
		done(outcomeSkipped)
		return nil, ErrWalletNotConnected
	}

	done(outcomeSuccess)

	tx := LastTransaction{
		Kind:        kind.Label(),
		Hash:        hash,
		Timestamp:   d.now(),
		ExplorerURL: d.explorerLink(hash),
	}
	d.tracker.Set(tx)

	record := core.JournalRecord{
		Kind:      string(kind),
		Hash:      hash,
		Market:    market,
		Currency:  currency,
		Amount:    strings.TrimSpace(amount),
		Sender:    session.Address().Hex(),
		ChainID:   d.chainID,
		CreatedAt: tx.Timestamp,
	}
	d.recordOperation(ctx, userID, record)

	return &tx, nil
}

// QuickAction supplies to or borrows from the first reserve of market. An
// empty amount means DefaultQuickAmount.
func (d *Dashboard) QuickAction(ctx context.Context, userID string, kind core.OperationKind, market, amount string) (*LastTransaction, error) {
	if kind != core.OperationSupply && kind != core.OperationBorrow {
		return nil, fmt.Errorf("%w: quick %s", core.ErrInvalidAmount, kind)
	}
	if strings.TrimSpace(amount) == "" {
		amount = DefaultQuickAmount
	}
	if !common.IsHexAddress(market) {
		return nil, fmt.Errorf("%w: market %q", core.ErrInvalidAddress, market)
	}

	var user *common.Address
	if session, ok := d.wallets.Current(); ok {
		address := session.Address()
		user = &address
	}

	markets, err := d.markets.Markets(ctx, d.chainID, user)
	if err != nil {
		return nil, fmt.Errorf("quick %s: load markets: %w", kind, err)
	}

	address := common.HexToAddress(market)
	for _, m := range markets {
		if m.Address != address {
			continue
		}
		reserves := m.SupplyReserves
		if kind == core.OperationBorrow {
			reserves = m.BorrowReserves
		}
		if len(reserves) == 0 {
			return nil, fmt.Errorf("quick %s: %w", kind, ErrNoReserve)
		}
		currency := reserves[0].UnderlyingToken.Address.Hex()
		return d.Execute(ctx, userID, kind, m.Address.Hex(), currency, amount)
	}

	return nil, fmt.Errorf("quick %s: %w: %s", kind, ErrMarketNotFound, market)
}

type Status struct {
	WalletConnected bool             `json:"walletConnected"`
	WalletAddress   string           `json:"walletAddress,omitempty"`
	ChainID         int64            `json:"chainId"`
	IsOperating     bool             `json:"isOperating"`
	OperationError  string           `json:"operationError,omitempty"`
	LastTransaction *LastTransaction `json:"lastTransaction,omitempty"`
}

func (d *Dashboard) Status() Status {
	status := Status{
		ChainID:     d.chainID,
		IsOperating: d.operating.Load(),
	}

	if session, ok := d.wallets.Current(); ok {
		status.WalletConnected = true
		status.WalletAddress = session.Address().Hex()
	}

	d.mu.RLock()
	if d.lastErr != nil {
		status.OperationError = d.lastErr.Error()
	}
	d.mu.RUnlock()

	if tx, ok := d.tracker.Current(); ok {
		status.LastTransaction = &tx
	}

	return status
}

// Close stops the pending clears of the last transaction and of the error.
func (d *Dashboard) Close() {
	d.tracker.Close()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.errTimer != nil {
		d.errTimer.Stop()
		d.errTimer = nil
	}
	d.errGeneration++
}

func (d *Dashboard) setError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.errTimer != nil {
		d.errTimer.Stop()
		d.errTimer = nil
	}
	d.errGeneration++
	d.lastErr = err
	if err == nil {
		return
	}

	generation := d.errGeneration
	d.errTimer = d.errSchedule(DisplayWindow, func() {
		d.expireError(generation)
	})
}

func (d *Dashboard) expireError(generation uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if generation != d.errGeneration {
		return
	}
	d.lastErr = nil
	d.errTimer = nil
}

func (d *Dashboard) explorerLink(hash string) string {
	if d.explorerURL == "" {
		return ""
	}
	return d.explorerURL + hash
}

// A mined transaction is recorded even when ctx is already cancelled. Journal
// and event failures are logged.
func (d *Dashboard) recordOperation(ctx context.Context, userID string, record core.JournalRecord) {
	ctx = context.WithoutCancel(ctx)

	if d.journal != nil && userID != "" {
		if err := d.journal.Record(ctx, userID, record); err != nil {
			d.logs.Errorw("journal operation", "hash", record.Hash, "error", err)
		}
	}

	if d.publisher != nil {
		if err := d.publisher.Publish(ctx, record); err != nil {
			d.logs.Errorw("publish operation", "hash", record.Hash, "error", err)
		}
	}
}
