package wallet

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrNoWalletSource error = errors.New("no wallet key or keystore configured")
var ErrAccountNotFound error = errors.New("account not found in keystore")

// Manager owns the wallet session of the dashboard. The session is created by
// Connect and dropped by Disconnect; callers only ever read it.
type Manager struct {
	logs       *zap.SugaredLogger
	privateKey string
	keystore   *keystore.KeyStore

	mu      sync.RWMutex
	current *Session
}

// NewManager creates a manager that connects either with a configured private
// key or by unlocking an account of the keystore directory.
func NewManager(logger *zap.SugaredLogger, privateKey, keystoreDir string) *Manager {
	m := &Manager{
		logs:       logger,
		privateKey: privateKey,
	}
	if keystoreDir != "" {
		m.keystore = keystore.NewKeyStore(keystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	}
	return m
}

// Connect opens a session. With a configured private key account and
// passphrase are ignored; otherwise account is unlocked from the keystore.
func (m *Manager) Connect(account, passphrase string) (common.Address, error) {
	session, err := m.open(account, passphrase)
	if err != nil {
		return common.Address{}, err
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	m.logs.Infow("wallet connected", "address", session.Address().Hex())
	return session.Address(), nil
}

func (m *Manager) open(account, passphrase string) (*Session, error) {
	if m.privateKey != "" {
		return SessionFromHex(m.privateKey)
	}
	if m.keystore == nil {
		return nil, ErrNoWalletSource
	}
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, account)
	}

	acc, err := m.keystore.Find(accounts.Account{Address: common.HexToAddress(account)})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	}

	keyJSON, err := os.ReadFile(acc.URL.Path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key, err := keystore.DecryptKey(keyJSON, passphrase)
	if err != nil {
		return nil, fmt.Errorf("decrypt key: %w", err)
	}

	return NewSession(key.PrivateKey), nil
}

func (m *Manager) Disconnect() {
	m.mu.Lock()
	previous := m.current
	m.current = nil
	m.mu.Unlock()

	if previous != nil {
		m.logs.Infow("wallet disconnected", "address", previous.Address().Hex())
	}
}

// Current returns the active session, if any.
func (m *Manager) Current() (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.current != nil
}

// Accounts lists the keystore accounts that can be connected.
func (m *Manager) Accounts() []common.Address {
	if m.keystore == nil {
		return nil
	}
	list := m.keystore.Accounts()
	addresses := make([]common.Address, 0, len(list))
	for _, acc := range list {
		addresses = append(addresses, acc.Address)
	}
	return addresses
}
