package core

import "time"

// OperationKind names one of the four lending operations.
type OperationKind string

const (
	OperationSupply   OperationKind = "supply"
	OperationBorrow   OperationKind = "borrow"
	OperationRepay    OperationKind = "repay"
	OperationWithdraw OperationKind = "withdraw"
)

// ParseOperationKind accepts the lower case operation names.
func ParseOperationKind(s string) (OperationKind, bool) {
	switch kind := OperationKind(s); kind {
	case OperationSupply, OperationBorrow, OperationRepay, OperationWithdraw:
		return kind, true
	}
	return "", false
}

// Label is the display name of the operation, e.g. "Supply".
func (k OperationKind) Label() string {
	switch k {
	case OperationSupply:
		return "Supply"
	case OperationBorrow:
		return "Borrow"
	case OperationRepay:
		return "Repay"
	case OperationWithdraw:
		return "Withdraw"
	}
	return string(k)
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TransactionRecord is the on-chain summary of a transaction.
type TransactionRecord struct {
	TransactionHash   string  `json:"transactionHash"`
	TransactionStatus uint64  `json:"transactionStatus"`
	BlockHash         string  `json:"blockHash"`
	BlockNumber       uint64  `json:"blockNumber"`
	From              string  `json:"from"`
	To                *string `json:"to"`
	GasUsed           uint64  `json:"gasUsed"`
	LogsCount         int     `json:"logsCount"`
	Input             string  `json:"input"`
	Value             string  `json:"value"`
}

// JournalRecord is a successful lending operation submitted by a dashboard user.
type JournalRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Hash      string    `json:"hash"`
	Market    string    `json:"market"`
	Currency  string    `json:"currency"`
	Amount    string    `json:"amount"`
	Sender    string    `json:"sender"`
	ChainID   int64     `json:"chainId"`
	CreatedAt time.Time `json:"createdAt"`
}
