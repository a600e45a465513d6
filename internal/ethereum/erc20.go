package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABIJSON = `[
	{"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 abi: %v", err))
	}
	return parsed
}

// TokenBalance reads the ERC-20 balance of owner and the token decimals.
func (s *EthService) TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, uint8, error) {
	out, err := s.call(ctx, token, "balanceOf", owner)
	if err != nil {
		return nil, 0, err
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, 0, fmt.Errorf("balanceOf: unexpected output %T", out[0])
	}

	out, err = s.call(ctx, token, "decimals")
	if err != nil {
		return balance, 0, err
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return balance, 0, fmt.Errorf("decimals: unexpected output %T", out[0])
	}

	return balance, decimals, nil
}

func (s *EthService) call(ctx context.Context, contract common.Address, method string, args ...any) ([]any, error) {
	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	raw, err := s.client.CallContract(ctx, geth.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	out, err := erc20ABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty output", method)
	}
	return out, nil
}
