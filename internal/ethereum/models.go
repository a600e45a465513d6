package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type TxResult struct {
	Receipt *Receipt
	Error   error
}

// Receipt summarises a mined transaction.
type Receipt struct {
	TransactionHash   string
	TransactionStatus uint64
	BlockHash         string
	BlockNumber       uint64
	From              string
	To                *string
	GasUsed           uint64
	LogsCount         int
	Input             string
	Value             string
}

// TxRequest is an unsigned call prepared by the lending protocol.
type TxRequest struct {
	To      common.Address
	Data    []byte
	Value   *big.Int
	ChainID int64
}
