package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrTransactionReverted error = errors.New("transaction reverted")
var ErrNoSigner error = errors.New("no signer")

// Submit signs req with signer, broadcasts it and waits until it is mined.
// A mined transaction with a failed status is reported as ErrTransactionReverted.
func (s *EthService) Submit(ctx context.Context, signer Signer, req TxRequest) (common.Hash, error) {
	if signer == nil {
		return common.Hash{}, ErrNoSigner
	}
	from := signer.Address()

	chainID, err := s.chainID(ctx, req.ChainID)
	if err != nil {
		return common.Hash{}, err
	}

	nonce, err := s.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pending nonce: %w", err)
	}

	tipCap, feeCap, err := s.fees(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	to := req.To
	gas, err := s.client.EstimateGas(ctx, geth.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  req.Data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("estimate gas: %w", err)
	}
	gas += gas * s.gasBuffer / 100

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      req.Data,
	})

	signed, err := signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	s.logs.Infow("transaction sent",
		"hash", signed.Hash().Hex(),
		"from", from.Hex(),
		"to", to.Hex(),
		"nonce", nonce,
		"gas", gas)

	receipt, err := s.waitMined(ctx, signed.Hash())
	if err != nil {
		return signed.Hash(), fmt.Errorf("wait for %s: %w", signed.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return signed.Hash(), fmt.Errorf("%w: %s", ErrTransactionReverted, signed.Hash().Hex())
	}

	s.logs.Infow("transaction mined",
		"hash", signed.Hash().Hex(),
		"block", receipt.BlockNumber,
		"gas_used", receipt.GasUsed)

	return signed.Hash(), nil
}

func (s *EthService) chainID(ctx context.Context, requested int64) (*big.Int, error) {
	if requested > 0 {
		return big.NewInt(requested), nil
	}
	id, err := s.client.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("network id: %w", err)
	}
	return id, nil
}

// fees returns the EIP-1559 tip and fee caps: the suggested tip on top of
// twice the latest base fee.
func (s *EthService) fees(ctx context.Context) (*big.Int, *big.Int, error) {
	tipCap, err := s.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("suggest gas tip: %w", err)
	}

	head, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("latest header: %w", err)
	}

	feeCap := new(big.Int).Set(tipCap)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	} else {
		feeCap.Mul(feeCap, big.NewInt(2))
	}

	return tipCap, feeCap, nil
}

// waitMined polls for the receipt of a broadcast transaction. The wait
// outlives cancellation of ctx and is bounded by the receipt timeout only.
func (s *EthService) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, geth.NotFound) {
			return nil, fmt.Errorf("fetch receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
