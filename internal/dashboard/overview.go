package dashboard

import (
	"context"
	"lendboard/internal/aave"
	"lendboard/internal/format"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// reservesShown caps the reserves listed per market.
const reservesShown = 5

type ReserveView struct {
	Symbol   string `json:"symbol"`
	Currency string `json:"currency"`
	APY      string `json:"apy"`
	Amount   string `json:"amount"`
}

type MarketView struct {
	Name               string        `json:"name"`
	Address            string        `json:"address"`
	Chain              string        `json:"chain"`
	TotalMarketSize    string        `json:"totalMarketSize"`
	AvailableLiquidity string        `json:"availableLiquidity"`
	NetWorth           string        `json:"netWorth,omitempty"`
	HealthFactor       string        `json:"healthFactor,omitempty"`
	SupplyReserves     []ReserveView `json:"supplyReserves"`
	BorrowReserves     []ReserveView `json:"borrowReserves"`
}

type PositionView struct {
	Market       string `json:"market"`
	MarketName   string `json:"marketName"`
	Currency     string `json:"currency"`
	Symbol       string `json:"symbol"`
	Amount       string `json:"amount"`
	USD          string `json:"usd"`
	APY          string `json:"apy"`
	IsCollateral bool   `json:"isCollateral,omitempty"`
}

type HealthView struct {
	Market        string             `json:"market"`
	HealthFactor  string             `json:"healthFactor"`
	Class         format.HealthClass `json:"class"`
	NetWorth      string             `json:"netWorth"`
	EModeEnabled  bool               `json:"eModeEnabled"`
	IsolationMode bool               `json:"isolationMode"`
	Error         string             `json:"error,omitempty"`
}

type MarketsPanel struct {
	Items []MarketView `json:"items"`
	Error string       `json:"error,omitempty"`
}

type PositionsPanel struct {
	Items []PositionView `json:"items"`
	Error string         `json:"error,omitempty"`
}

type Overview struct {
	Markets  MarketsPanel   `json:"markets"`
	Supplies PositionsPanel `json:"supplies"`
	Borrows  PositionsPanel `json:"borrows"`
	Health   HealthView     `json:"health"`
	Status   Status         `json:"status"`
}

// Overview composes every dashboard section. A failing section carries its
// own error and the others are still filled in.
func (d *Dashboard) Overview(ctx context.Context) Overview {
	overview := Overview{
		Markets:  MarketsPanel{Items: []MarketView{}},
		Supplies: PositionsPanel{Items: []PositionView{}},
		Borrows:  PositionsPanel{Items: []PositionView{}},
	}

	session, connected := d.wallets.Current()
	var user *common.Address
	if connected {
		address := session.Address()
		user = &address
	}

	markets, err := d.markets.Markets(ctx, d.chainID, user)
	if err != nil {
		d.logs.Errorw("load markets", "error", err)
		overview.Markets.Error = err.Error()
	}
	for _, m := range markets {
		overview.Markets.Items = append(overview.Markets.Items, marketView(m))
	}

	// the health panel follows the first market, or the zero address without markets
	var firstMarket common.Address
	if len(markets) > 0 {
		firstMarket = markets[0].Address
	}
	overview.Health = HealthView{
		Market:       firstMarket.Hex(),
		HealthFactor: format.HealthFactor(nil),
		Class:        format.HealthUnknown,
		NetWorth:     format.USD(nil),
	}

	if connected {
		inputs := make([]aave.MarketInput, 0, len(markets))
		for _, m := range markets {
			inputs = append(inputs, m.Input())
		}
		d.fillSupplies(ctx, &overview.Supplies, inputs, *user)
		d.fillBorrows(ctx, &overview.Borrows, inputs, *user)
		d.fillHealth(ctx, &overview.Health, firstMarket, *user)
	}

	overview.Status = d.Status()
	return overview
}

func (d *Dashboard) fillSupplies(ctx context.Context, panel *PositionsPanel, inputs []aave.MarketInput, user common.Address) {
	supplies, err := d.markets.UserSupplies(ctx, inputs, user)
	if err != nil {
		d.logs.Errorw("load user supplies", "user", user.Hex(), "error", err)
		panel.Error = err.Error()
		return
	}
	for _, s := range supplies {
		amount := s.Balance.Amount.Value
		apy := s.APY.Value
		panel.Items = append(panel.Items, PositionView{
			Market:       s.Market.Address.Hex(),
			MarketName:   s.Market.Name,
			Currency:     s.Currency.Address.Hex(),
			Symbol:       s.Currency.Symbol,
			Amount:       format.Amount(&amount, 6),
			USD:          format.USD(&s.Balance.USD),
			APY:          format.Percent(&apy),
			IsCollateral: s.IsCollateral,
		})
	}
}

func (d *Dashboard) fillBorrows(ctx context.Context, panel *PositionsPanel, inputs []aave.MarketInput, user common.Address) {
	borrows, err := d.markets.UserBorrows(ctx, inputs, user)
	if err != nil {
		d.logs.Errorw("load user borrows", "user", user.Hex(), "error", err)
		panel.Error = err.Error()
		return
	}
	for _, b := range borrows {
		amount := b.Debt.Amount.Value
		apy := b.APY.Value
		panel.Items = append(panel.Items, PositionView{
			Market:     b.Market.Address.Hex(),
			MarketName: b.Market.Name,
			Currency:   b.Currency.Address.Hex(),
			Symbol:     b.Currency.Symbol,
			Amount:     format.Amount(&amount, 6),
			USD:        format.USD(&b.Debt.USD),
			APY:        format.Percent(&apy),
		})
	}
}

func (d *Dashboard) fillHealth(ctx context.Context, view *HealthView, market, user common.Address) {
	state, err := d.markets.UserMarketState(ctx, market, user, d.chainID)
	if err != nil {
		d.logs.Errorw("load user market state", "market", market.Hex(), "user", user.Hex(), "error", err)
		view.Error = err.Error()
		return
	}
	if state == nil {
		return
	}

	view.HealthFactor = format.HealthFactor(state.HealthFactor)
	view.Class = format.ClassifyHealth(state.HealthFactor)
	view.NetWorth = format.USD(&state.NetWorth)
	view.EModeEnabled = state.EModeEnabled
	view.IsolationMode = state.IsInIsolationMode
}

func marketView(m aave.Market) MarketView {
	view := MarketView{
		Name:               m.Name,
		Address:            m.Address.Hex(),
		Chain:              m.Chain.Name,
		TotalMarketSize:    format.USD(&m.TotalMarketSize),
		AvailableLiquidity: format.USD(&m.TotalAvailableLiquidity),
		SupplyReserves:     []ReserveView{},
		BorrowReserves:     []ReserveView{},
	}
	if m.UserState != nil {
		view.NetWorth = format.USD(&m.UserState.NetWorth)
		view.HealthFactor = format.HealthFactor(m.UserState.HealthFactor)
	}

	for _, r := range first(m.SupplyReserves, reservesShown) {
		view.SupplyReserves = append(view.SupplyReserves, reserveView(r, r.SupplyInfo.APY.Value, r.Size.Amount.Value))
	}
	for _, r := range first(m.BorrowReserves, reservesShown) {
		var apy, available decimal.Decimal
		if r.BorrowInfo != nil {
			apy = r.BorrowInfo.APY.Value
			available = r.BorrowInfo.AvailableLiquidity.Amount.Value
		}
		view.BorrowReserves = append(view.BorrowReserves, reserveView(r, apy, available))
	}

	return view
}

func reserveView(r aave.Reserve, apy, amount decimal.Decimal) ReserveView {
	return ReserveView{
		Symbol:   r.UnderlyingToken.Symbol,
		Currency: r.UnderlyingToken.Address.Hex(),
		APY:      format.Percent(&apy),
		Amount:   format.Amount(&amount, 2),
	}
}

func first[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
