package aave

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Amount describes how much of a currency an operation moves: either an
// exact decimal value or the whole outstanding balance.
type Amount struct {
	max   bool
	value decimal.Decimal
}

// Exact returns an amount descriptor for a precise decimal value.
func Exact(value decimal.Decimal) Amount {
	return Amount{value: value}
}

// Max returns the "full balance" amount descriptor. Only repay accepts it.
func Max() Amount {
	return Amount{max: true}
}

func (a Amount) IsMax() bool {
	return a.max
}

func (a Amount) Value() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	if a.max {
		return "max"
	}
	return a.value.String()
}

// OperationRequest is the input for every plan query.
type OperationRequest struct {
	Market   common.Address
	Currency common.Address
	Amount   Amount
	Sender   common.Address
	ChainID  int64
}

// amountStyle selects how the erc20 value is laid out for an operation.
type amountStyle int

const (
	// value is a bare decimal string
	amountPlain amountStyle = iota
	// value is {"exact": ...} or {"max": true}
	amountVariant
)

func (r OperationRequest) variables(style amountStyle) map[string]any {
	var value any
	switch {
	case style == amountPlain:
		value = r.Amount.Value().String()
	case r.Amount.IsMax():
		value = map[string]any{"max": true}
	default:
		value = map[string]any{"exact": r.Amount.Value().String()}
	}

	return map[string]any{
		"request": map[string]any{
			"market": r.Market.Hex(),
			"amount": map[string]any{
				"erc20": map[string]any{
					"currency": r.Currency.Hex(),
					"value":    value,
				},
			},
			"sender":  r.Sender.Hex(),
			"chainId": r.ChainID,
		},
	}
}

// MarketInput identifies a market for user scoped queries.
type MarketInput struct {
	Address common.Address `json:"address"`
	ChainID int64          `json:"chainId"`
}
