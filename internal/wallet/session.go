package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidKey error = errors.New("invalid private key")

// Session is a connected wallet: an address and the key that signs for it.
// A nil *Session reports the zero address.
type Session struct {
	address common.Address
	key     *ecdsa.PrivateKey
}

func NewSession(key *ecdsa.PrivateKey) *Session {
	return &Session{
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

// SessionFromHex builds a session from a hex encoded secp256k1 private key,
// with or without the 0x prefix.
func SessionFromHex(hexKey string) (*Session, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return NewSession(key), nil
}

func (s *Session) Address() common.Address {
	if s == nil {
		return common.Address{}
	}
	return s.address
}

func (s *Session) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if s == nil || s.key == nil {
		return nil, errors.New("wallet session closed")
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}
