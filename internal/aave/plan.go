package aave

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

var ErrUnknownPlan error = errors.New("unknown transaction plan type")

const (
	typenameTransaction         = "TransactionRequest"
	typenameApprovalRequired    = "ApprovalRequired"
	typenameInsufficientBalance = "InsufficientBalanceError"
)

// Plan is the answer of the protocol to an operation request. The set of
// implementations is closed: TransactionRequest, ApprovalRequired and
// InsufficientBalance.
type Plan interface {
	Accept(v PlanVisitor) error
	sealed()
}

// PlanVisitor must handle every plan kind. Adding a kind adds a method here,
// so every dispatcher stops compiling until it handles the new kind.
type PlanVisitor interface {
	VisitTransaction(tx TransactionRequest) error
	VisitApprovalRequired(plan ApprovalRequired) error
	VisitInsufficientBalance(plan InsufficientBalance) error
}

// TransactionRequest is a directly submittable transaction.
type TransactionRequest struct {
	To        common.Address
	From      common.Address
	Data      []byte
	Value     *big.Int
	ChainID   int64
	Operation string
}

func (t TransactionRequest) Accept(v PlanVisitor) error { return v.VisitTransaction(t) }
func (TransactionRequest) sealed() {}

// ApprovalRequired asks for an allowance grant before the original transaction.
type ApprovalRequired struct {
	Approval         TransactionRequest
	Original         TransactionRequest
	Reason           string
	RequiredAmount   DecimalValue
	CurrentAllowance DecimalValue
}

func (a ApprovalRequired) Accept(v PlanVisitor) error { return v.VisitApprovalRequired(a) }
func (ApprovalRequired) sealed() {}

// InsufficientBalance means no submission can succeed.
type InsufficientBalance struct {
	Required  DecimalValue
	Available DecimalValue
}

func (i InsufficientBalance) Accept(v PlanVisitor) error { return v.VisitInsufficientBalance(i) }
func (InsufficientBalance) sealed() {}

type wireTransaction struct {
	To        common.Address `json:"to"`
	From      common.Address `json:"from"`
	Data      hexutil.Bytes  `json:"data"`
	Value     string         `json:"value"`
	ChainID   int64          `json:"chainId"`
	Operation string         `json:"operation"`
}

func (w wireTransaction) toRequest() (TransactionRequest, error) {
	value := new(big.Int)
	if w.Value != "" {
		if _, ok := value.SetString(w.Value, 0); !ok {
			return TransactionRequest{}, fmt.Errorf("invalid transaction value %q", w.Value)
		}
	}

	return TransactionRequest{
		To:        w.To,
		From:      w.From,
		Data:      w.Data,
		Value:     value,
		ChainID:   w.ChainID,
		Operation: w.Operation,
	}, nil
}

type wirePlan struct {
	Typename            string           `json:"__typename"`
	Approval            *wireTransaction `json:"approval"`
	OriginalTransaction *wireTransaction `json:"originalTransaction"`
	Reason              string           `json:"reason"`
	RequiredAmount      DecimalValue     `json:"requiredAmount"`
	CurrentAllowance    DecimalValue     `json:"currentAllowance"`
	Required            DecimalValue     `json:"required"`
	Available           DecimalValue     `json:"available"`
	wireTransaction
}

// decodePlan turns an ExecutionPlan union member into a Plan.
func decodePlan(raw json.RawMessage) (Plan, error) {
	var wire wirePlan
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode execution plan: %w", err)
	}

	switch wire.Typename {
	case typenameTransaction:
		return wire.wireTransaction.toRequest()
	case typenameApprovalRequired:
		if wire.Approval == nil || wire.OriginalTransaction == nil {
			return nil, fmt.Errorf("approval plan without transactions")
		}
		approval, err := wire.Approval.toRequest()
		if err != nil {
			return nil, fmt.Errorf("approval transaction: %w", err)
		}
		original, err := wire.OriginalTransaction.toRequest()
		if err != nil {
			return nil, fmt.Errorf("original transaction: %w", err)
		}
		return ApprovalRequired{
			Approval:         approval,
			Original:         original,
			Reason:           wire.Reason,
			RequiredAmount:   wire.RequiredAmount,
			CurrentAllowance: wire.CurrentAllowance,
		}, nil
	case typenameInsufficientBalance:
		return InsufficientBalance{
			Required:  wire.Required,
			Available: wire.Available,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, wire.Typename)
	}
}

// DecimalValue is a token amount as reported by the API.
type DecimalValue struct {
	Raw      string          `json:"raw,omitempty"`
	Decimals int             `json:"decimals,omitempty"`
	Value    decimal.Decimal `json:"value"`
}
