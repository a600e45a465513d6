package core

import (
	"context"
	"lendboard/internal/aave"
	"lendboard/internal/ethereum"
	"lendboard/internal/repository"
	tokenIssuer "lendboard/pkg/jwt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PlanProvider . PlanProvider
type PlanProvider interface {
	Supply(ctx context.Context, req aave.OperationRequest) (aave.Plan, error)
	Borrow(ctx context.Context, req aave.OperationRequest) (aave.Plan, error)
	Repay(ctx context.Context, req aave.OperationRequest) (aave.Plan, error)
	Withdraw(ctx context.Context, req aave.OperationRequest) (aave.Plan, error)
}

//counterfeiter:generate -o fake -fake-name Submitter . Submitter
type Submitter interface {
	Submit(ctx context.Context, signer ethereum.Signer, req ethereum.TxRequest) (common.Hash, error)
}

//counterfeiter:generate -o fake -fake-name BalanceInspector . BalanceInspector
type BalanceInspector interface {
	TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, uint8, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	GetReceiptsByHash(ctx context.Context, txHashes []string) ([]repository.Receipt, error)
	SaveReceipts(ctx context.Context, receipts []repository.Receipt) error
	SaveJournalEntry(ctx context.Context, entry repository.JournalEntry) error
	GetUserJournal(ctx context.Context, userID string) ([]repository.JournalEntry, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	LookupTransactions(ctx context.Context, hashes []string) ([]*ethereum.Receipt, error)
}
