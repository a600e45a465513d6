package core

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"lendboard/internal/ethereum"
	"lendboard/internal/repository"
	tokenIssuer "lendboard/pkg/jwt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrInvalidClaims error = errors.New("token has no subject")

// TokenTTL is how long an authentication token stays valid.
const TokenTTL = 24 * time.Hour

// Lendboard serves the user facing records of the dashboard: authentication,
// the journal of submitted operations and on-chain receipt lookups.
type Lendboard struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	chain     ChainReader
}

func NewLendboard(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, chain ChainReader) *Lendboard {
	return &Lendboard{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		chain:     chain,
	}
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it generates a JWT token for the user.
func (l *Lendboard) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := l.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName: user.Username,
		Subject:  user.ID,
		TTL:      TokenTTL,
	}
	token := l.jwtIssuer.Generate(tokenInfo)
	signed, err := l.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// UserID validates the token and returns its subject.
func (l *Lendboard) UserID(token string) (string, error) {
	claims, err := l.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidClaims
	}
	return userID, nil
}

// Record appends a successful operation to the journal of userID.
func (l *Lendboard) Record(ctx context.Context, userID string, record JournalRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	err := l.repo.SaveJournalEntry(ctx, repository.JournalEntry{
		ID:              record.ID,
		UserID:          userID,
		Kind:            record.Kind,
		TransactionHash: record.Hash,
		Market:          record.Market,
		Currency:        record.Currency,
		Amount:          record.Amount,
		Sender:          record.Sender,
		ChainID:         record.ChainID,
		CreatedAt:       record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("save journal entry: %w", err)
	}

	l.logs.Infow("operation journaled", "userId", userID, "kind", record.Kind, "hash", record.Hash)
	return nil
}

// GetUserTransactionsHistory returns the journal of the user owning token.
func (l *Lendboard) GetUserTransactionsHistory(ctx context.Context, token string) ([]JournalRecord, error) {
	userID, err := l.UserID(token)
	if err != nil {
		return nil, err
	}

	l.logs.Infow("getting user transactions history", "userId", userID)

	entries, err := l.repo.GetUserJournal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user journal: %w", err)
	}

	records := make([]JournalRecord, len(entries))
	for i, e := range entries {
		records[i] = JournalRecord{
			ID:        e.ID,
			Kind:      e.Kind,
			Hash:      e.TransactionHash,
			Market:    e.Market,
			Currency:  e.Currency,
			Amount:    e.Amount,
			Sender:    e.Sender,
			ChainID:   e.ChainID,
			CreatedAt: e.CreatedAt,
		}
	}

	l.logs.Infow("user transactions history fetched from DB", "userId", userID, "transactionsCount", len(records))

	return records, nil
}

// GetTransactions returns on-chain summaries for the hashes. Receipts already
// stored are served from the database, the rest are fetched from the node and
// stored afterwards.
func (l *Lendboard) GetTransactions(ctx context.Context, transactionsHashes []string) ([]TransactionRecord, error) {
	dbReceipts, err := l.repo.GetReceiptsByHash(ctx, transactionsHashes)
	if err != nil {
		return nil, fmt.Errorf("get receipts from db: %w", err)
	}

	l.logs.Infow("transactions fetched from db", "count", len(dbReceipts))

	records := make([]TransactionRecord, 0, len(transactionsHashes))
	found := make(map[string]struct{}, len(dbReceipts))
	for _, r := range dbReceipts {
		records = append(records, receiptToRecord(r))
		found[strings.ToLower(r.TransactionHash)] = struct{}{}
	}

	missing := make([]string, 0, len(transactionsHashes))
	for _, hash := range transactionsHashes {
		if _, ok := found[strings.ToLower(hash)]; !ok {
			missing = append(missing, hash)
		}
	}

	if len(missing) == 0 {
		l.logs.Infow("all transactions found in DB", "count", len(records))
		return records, nil
	}

	nodeReceipts, err := l.chain.LookupTransactions(ctx, missing)
	if err != nil {
		l.logs.Errorw("getting transactions from node", "error", err)
	}

	fresh := make([]repository.Receipt, 0, len(nodeReceipts))
	for _, r := range nodeReceipts {
		receipt := nodeToReceipt(r)
		fresh = append(fresh, receipt)
		records = append(records, receiptToRecord(receipt))
	}

	if len(fresh) > 0 {
		if err := l.repo.SaveReceipts(ctx, fresh); err != nil {
			l.logs.Errorw("failed to save transactions to DB", "error", err, "count", len(fresh))
		}
	}

	return records, nil
}

// GetTransactionsRLP looks up every hash of an RLP encoded list.
func (l *Lendboard) GetTransactionsRLP(ctx context.Context, rlphex string) ([]TransactionRecord, error) {
	hashes, err := l.ParseRLP(rlphex)
	if err != nil {
		return nil, fmt.Errorf("parse rlp: %w", err)
	}
	return l.GetTransactions(ctx, hashes)
}

// ParseRLP decodes a hex-encoded RLP string into a slice of transaction hashes.
func (l *Lendboard) ParseRLP(rlphex string) ([]string, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(rlphex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode hex string: %w", err)
	}

	var txHashBytes [][]byte
	if err := rlp.DecodeBytes(data, &txHashBytes); err != nil {
		return nil, fmt.Errorf("decode rlp bytes: %w", err)
	}

	txHashes := make([]string, len(txHashBytes))
	for i, b := range txHashBytes {
		txHashes[i] = fmt.Sprintf("0x%s", hex.EncodeToString(b))
	}
	return txHashes, nil
}

func nodeToReceipt(r *ethereum.Receipt) repository.Receipt {
	return repository.Receipt{
		TransactionHash:   r.TransactionHash,
		TransactionStatus: r.TransactionStatus,
		BlockHash:         r.BlockHash,
		BlockNumber:       r.BlockNumber,
		From:              r.From,
		To:                r.To,
		GasUsed:           r.GasUsed,
		LogsCount:         r.LogsCount,
		Input:             r.Input,
		Value:             r.Value,
	}
}

func receiptToRecord(r repository.Receipt) TransactionRecord {
	return TransactionRecord{
		TransactionHash:   r.TransactionHash,
		TransactionStatus: r.TransactionStatus,
		BlockHash:         r.BlockHash,
		BlockNumber:       r.BlockNumber,
		From:              r.From,
		To:                r.To,
		GasUsed:           r.GasUsed,
		LogsCount:         r.LogsCount,
		Input:             r.Input,
		Value:             r.Value,
	}
}
