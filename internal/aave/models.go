package aave

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type Chain struct {
	ChainID int64  `json:"chainId"`
	Name    string `json:"name"`
}

type Token struct {
	Address  common.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Name     string         `json:"name"`
	Decimals int            `json:"decimals"`
}

type PercentValue struct {
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted,omitempty"`
}

// TokenAmount is an amount of a token along with its USD equivalent.
type TokenAmount struct {
	Amount DecimalValue    `json:"amount"`
	USD    decimal.Decimal `json:"usd"`
}

type SupplyInfo struct {
	APY   PercentValue `json:"apy"`
	Total DecimalValue `json:"total"`
}

type BorrowInfo struct {
	APY                PercentValue `json:"apy"`
	Total              TokenAmount  `json:"total"`
	AvailableLiquidity TokenAmount  `json:"availableLiquidity"`
}

type Reserve struct {
	UnderlyingToken Token       `json:"underlyingToken"`
	Size            TokenAmount `json:"size"`
	SupplyInfo      SupplyInfo  `json:"supplyInfo"`
	BorrowInfo      *BorrowInfo `json:"borrowInfo"`
}

// MarketUserState holds the aggregate risk figures of a user in a market.
type MarketUserState struct {
	NetWorth             decimal.Decimal  `json:"netWorth"`
	HealthFactor         *decimal.Decimal `json:"healthFactor"`
	EModeEnabled         bool             `json:"eModeEnabled"`
	IsInIsolationMode    bool             `json:"isInIsolationMode"`
	TotalCollateralBase  decimal.Decimal  `json:"totalCollateralBase"`
	TotalDebtBase        decimal.Decimal  `json:"totalDebtBase"`
	AvailableBorrowsBase decimal.Decimal  `json:"availableBorrowsBase"`
}

type Market struct {
	Name                    string           `json:"name"`
	Address                 common.Address   `json:"address"`
	Chain                   Chain            `json:"chain"`
	TotalMarketSize         decimal.Decimal  `json:"totalMarketSize"`
	TotalAvailableLiquidity decimal.Decimal  `json:"totalAvailableLiquidity"`
	SupplyReserves          []Reserve        `json:"supplyReserves"`
	BorrowReserves          []Reserve        `json:"borrowReserves"`
	UserState               *MarketUserState `json:"userState"`
}

// Input returns the reference used by user scoped queries.
func (m Market) Input() MarketInput {
	return MarketInput{Address: m.Address, ChainID: m.Chain.ChainID}
}

type MarketRef struct {
	Name    string         `json:"name"`
	Address common.Address `json:"address"`
	Chain   Chain          `json:"chain"`
}

type UserSupplyPosition struct {
	Market       MarketRef    `json:"market"`
	Currency     Token        `json:"currency"`
	Balance      TokenAmount  `json:"balance"`
	APY          PercentValue `json:"apy"`
	IsCollateral bool         `json:"isCollateral"`
}

type UserBorrowPosition struct {
	Market   MarketRef    `json:"market"`
	Currency Token        `json:"currency"`
	Debt     TokenAmount  `json:"debt"`
	APY      PercentValue `json:"apy"`
}
