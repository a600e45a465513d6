package dashboard

import (
	"context"
	"lendboard/internal/aave"
	"lendboard/internal/core"
	"lendboard/internal/ethereum"
	"lendboard/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Orchestrator . Orchestrator
type Orchestrator interface {
	Execute(ctx context.Context, kind core.OperationKind, session ethereum.Signer, market, currency, amount string) (string, error)
}

//counterfeiter:generate -o fake -fake-name MarketData . MarketData
type MarketData interface {
	Markets(ctx context.Context, chainID int64, user *common.Address) ([]aave.Market, error)
	UserSupplies(ctx context.Context, markets []aave.MarketInput, user common.Address) ([]aave.UserSupplyPosition, error)
	UserBorrows(ctx context.Context, markets []aave.MarketInput, user common.Address) ([]aave.UserBorrowPosition, error)
	UserMarketState(ctx context.Context, market, user common.Address, chainID int64) (*aave.MarketUserState, error)
}

//counterfeiter:generate -o fake -fake-name WalletSource . WalletSource
type WalletSource interface {
	Current() (*wallet.Session, bool)
}

//counterfeiter:generate -o fake -fake-name Journal . Journal
type Journal interface {
	Record(ctx context.Context, userID string, record core.JournalRecord) error
}

//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	Publish(ctx context.Context, record core.JournalRecord) error
}
