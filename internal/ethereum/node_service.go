package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

type EthService struct {
	logs           *zap.SugaredLogger
	client         EthClient
	pollInterval   time.Duration
	receiptTimeout time.Duration
	gasBuffer      uint64
}

type Option func(*EthService)

// WithPollInterval sets how often receipts are polled while waiting for a
// submission to be mined.
func WithPollInterval(d time.Duration) Option {
	return func(s *EthService) {
		s.pollInterval = d
	}
}

// WithReceiptTimeout bounds the wait for a receipt. Zero waits as long as
// the caller's context allows.
// WithReceiptTimeout bounds the wait for a receipt. Non-positive values keep
// DefaultReceiptTimeout.
func WithReceiptTimeout(d time.Duration) Option {
	return func(s *EthService) {
		if d > 0 {
			s.receiptTimeout = d
		}
	}
}

// DefaultReceiptTimeout is how long a broadcast transaction is waited for.
const DefaultReceiptTimeout = 2 * time.Minute

func NewEthService(logger *zap.SugaredLogger, ethClient EthClient, opts ...Option) *EthService {
	s := &EthService{
		logs:         logger,
		client:       ethClient,
		pollInterval:   2 * time.Second,
		receiptTimeout: DefaultReceiptTimeout,
		gasBuffer:      20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LookupTransactions fetches receipts for the given hashes concurrently. The
// receipts found are returned even when some lookups fail.
func (s *EthService) LookupTransactions(ctx context.Context, hashes []string) ([]*Receipt, error) {
	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := s.lookup(ctx, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Receipt
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Receipt)
	}

	return results, aggrErr
}

func (s *EthService) lookup(ctx context.Context, hash common.Hash) *TxResult {
	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return &TxResult{nil, err}
	}

	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		return &TxResult{nil, err}
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &TxResult{
		Receipt: &Receipt{
			TransactionHash:   tx.Hash().Hex(),
			TransactionStatus: receipt.Status,
			BlockHash:         receipt.BlockHash.Hex(),
			BlockNumber:       blockNumber,
			From:              from.Hex(),
			To:                to,
			GasUsed:           receipt.GasUsed,
			LogsCount:         len(receipt.Logs),
			Input:             fmt.Sprintf("0x%x", tx.Data()),
			Value:             tx.Value().String(),
		},
	}
}
