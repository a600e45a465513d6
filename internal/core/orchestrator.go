package core

import (
	"context"
	"errors"
	"fmt"
	"lendboard/internal/aave"
	"lendboard/internal/ethereum"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidAmount error = errors.New("invalid amount")
var ErrInvalidAddress error = errors.New("invalid address")
var ErrSubmission error = errors.New("transaction submission failed")
var ErrInsufficientBalance error = errors.New("insufficient balance")
var ErrEmptyPlan error = errors.New("empty transaction plan")

// InsufficientBalanceError is returned when the protocol reports that the
// sender cannot cover the operation. No transaction is submitted.
type InsufficientBalanceError struct {
	Required decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %s required", e.Required.String())
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

type OrchestratorOption func(*Orchestrator)

// WithBalanceCheck logs the sender's token balance before every supply.
// It has no effect on the outcome of the operation.
func WithBalanceCheck(inspector BalanceInspector) OrchestratorOption {
	return func(o *Orchestrator) {
		o.balances = inspector
	}
}

// Orchestrator turns a lending operation into one or two on-chain submissions
// following the plan returned by the protocol. It keeps no state between calls.
type Orchestrator struct {
	logs      *zap.SugaredLogger
	plans     PlanProvider
	submitter Submitter
	balances  BalanceInspector
	chainID   int64
}

func NewOrchestrator(logger *zap.SugaredLogger, plans PlanProvider, submitter Submitter, chainID int64, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		logs:      logger,
		plans:     plans,
		submitter: submitter,
		chainID:   chainID,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) Supply(ctx context.Context, session ethereum.Signer, market, currency, amount string) (string, error) {
	return o.Execute(ctx, OperationSupply, session, market, currency, amount)
}

func (o *Orchestrator) Borrow(ctx context.Context, session ethereum.Signer, market, currency, amount string) (string, error) {
	return o.Execute(ctx, OperationBorrow, session, market, currency, amount)
}

// Repay accepts "max" as amount to repay the whole debt.
func (o *Orchestrator) Repay(ctx context.Context, session ethereum.Signer, market, currency, amount string) (string, error) {
	return o.Execute(ctx, OperationRepay, session, market, currency, amount)
}

func (o *Orchestrator) Withdraw(ctx context.Context, session ethereum.Signer, market, currency, amount string) (string, error) {
	return o.Execute(ctx, OperationWithdraw, session, market, currency, amount)
}

// Execute runs kind for the wallet session and returns the hash of the last
// submitted transaction. Without a connected session nothing is submitted and
// an empty hash is returned.
func (o *Orchestrator) Execute(ctx context.Context, kind OperationKind, session ethereum.Signer, market, currency, amount string) (string, error) {
	if session == nil || session.Address() == (common.Address{}) {
		o.logs.Errorw("wallet session not connected, operation skipped", "operation", kind)
		return "", nil
	}

	req, err := o.operationRequest(kind, session.Address(), market, currency, amount)
	if err != nil {
		return "", fmt.Errorf("%s: %w", kind, err)
	}

	if kind == OperationSupply && o.balances != nil {
		o.logBalance(ctx, req)
	}

	plan, err := o.plan(ctx, kind, req)
	if err != nil {
		return "", fmt.Errorf("%s: request plan: %w", kind, err)
	}
	if plan == nil {
		return "", fmt.Errorf("%s: request plan: %w", kind, ErrEmptyPlan)
	}

	executor := &planExecutor{
		ctx:     ctx,
		o:       o,
		session: session,
	}
	if err := plan.Accept(executor); err != nil {
		return "", fmt.Errorf("%s: %w", kind, err)
	}

	o.logs.Infow("operation submitted",
		"operation", kind,
		"hash", executor.hash.Hex(),
		"submissions", executor.submissions)

	return executor.hash.Hex(), nil
}

func (o *Orchestrator) operationRequest(kind OperationKind, sender common.Address, market, currency, amount string) (aave.OperationRequest, error) {
	if !common.IsHexAddress(market) {
		return aave.OperationRequest{}, fmt.Errorf("%w: market %q", ErrInvalidAddress, market)
	}
	if !common.IsHexAddress(currency) {
		return aave.OperationRequest{}, fmt.Errorf("%w: currency %q", ErrInvalidAddress, currency)
	}

	descriptor, err := parseAmount(kind, amount)
	if err != nil {
		return aave.OperationRequest{}, err
	}

	return aave.OperationRequest{
		Market:   common.HexToAddress(market),
		Currency: common.HexToAddress(currency),
		Amount:   descriptor,
		Sender:   sender,
		ChainID:  o.chainID,
	}, nil
}

// parseAmount maps user input to an amount descriptor. "max" is only valid
// for repay.
func parseAmount(kind OperationKind, amount string) (aave.Amount, error) {
	amount = strings.TrimSpace(amount)
	if strings.EqualFold(amount, "max") {
		if kind != OperationRepay {
			return aave.Amount{}, fmt.Errorf("%w: max is only accepted by repay", ErrInvalidAmount)
		}
		return aave.Max(), nil
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return aave.Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if !value.IsPositive() {
		return aave.Amount{}, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, amount)
	}

	return aave.Exact(value), nil
}

func (o *Orchestrator) plan(ctx context.Context, kind OperationKind, req aave.OperationRequest) (aave.Plan, error) {
	switch kind {
	case OperationSupply:
		return o.plans.Supply(ctx, req)
	case OperationBorrow:
		return o.plans.Borrow(ctx, req)
	case OperationRepay:
		return o.plans.Repay(ctx, req)
	case OperationWithdraw:
		return o.plans.Withdraw(ctx, req)
	}
	return nil, fmt.Errorf("unknown operation %q", kind)
}

func (o *Orchestrator) logBalance(ctx context.Context, req aave.OperationRequest) {
	balance, decimals, err := o.balances.TokenBalance(ctx, req.Currency, req.Sender)
	if err != nil {
		o.logs.Errorw("balance check failed", "error", err, "currency", req.Currency.Hex())
		return
	}
	if balance == nil {
		balance = new(big.Int)
	}

	o.logs.Infow("balance before supply",
		"currency", req.Currency.Hex(),
		"sender", req.Sender.Hex(),
		"balance", decimal.NewFromBigInt(balance, -int32(decimals)).String(),
		"requested", req.Amount.String())
}

func (o *Orchestrator) submit(ctx context.Context, session ethereum.Signer, tx aave.TransactionRequest) (common.Hash, error) {
	chainID := tx.ChainID
	if chainID == 0 {
		chainID = o.chainID
	}

	hash, err := o.submitter.Submit(ctx, session, ethereum.TxRequest{
		To:      tx.To,
		Data:    tx.Data,
		Value:   tx.Value,
		ChainID: chainID,
	})
	if err != nil {
		return hash, fmt.Errorf("%w: %w", ErrSubmission, err)
	}
	return hash, nil
}

// planExecutor submits the transactions of a plan in order and remembers the
// hash of the last one.
type planExecutor struct {
	ctx         context.Context
	o           *Orchestrator
	session     ethereum.Signer
	hash        common.Hash
	submissions int
}

func (e *planExecutor) VisitTransaction(tx aave.TransactionRequest) error {
	hash, err := e.o.submit(e.ctx, e.session, tx)
	if err != nil {
		return err
	}
	e.hash = hash
	e.submissions++
	return nil
}

func (e *planExecutor) VisitApprovalRequired(plan aave.ApprovalRequired) error {
	if err := e.VisitTransaction(plan.Approval); err != nil {
		return fmt.Errorf("approval: %w", err)
	}

	e.o.logs.Infow("approval mined", "hash", e.hash.Hex(), "reason", plan.Reason)

	return e.VisitTransaction(plan.Original)
}

func (e *planExecutor) VisitInsufficientBalance(plan aave.InsufficientBalance) error {
	return &InsufficientBalanceError{Required: plan.Required.Value}
}
