package handler

import (
	"context"
	"lendboard/internal/core"
	"lendboard/internal/dashboard"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name LendService . LendService
type LendService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	UserID(token string) (string, error)
	GetUserTransactionsHistory(ctx context.Context, token string) ([]core.JournalRecord, error)
	GetTransactions(ctx context.Context, transactionHashes []string) ([]core.TransactionRecord, error)
	ParseRLP(rlphex string) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name Board . Board
type Board interface {
	Execute(ctx context.Context, userID string, kind core.OperationKind, market, currency, amount string) (*dashboard.LastTransaction, error)
	QuickAction(ctx context.Context, userID string, kind core.OperationKind, market, amount string) (*dashboard.LastTransaction, error)
	Overview(ctx context.Context) dashboard.Overview
	Status() dashboard.Status
}

//counterfeiter:generate -o fake -fake-name WalletConnector . WalletConnector
type WalletConnector interface {
	Connect(account, passphrase string) (common.Address, error)
	Disconnect()
	Accounts() []common.Address
}
