package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable invalid")

const (
	apiPortEnvKey   = "API_PORT"
	ethNodeEnvKey   = "ETH_NODE_URL"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"

	chainIDEnvKey           = "CHAIN_ID"
	aaveAPIEnvKey           = "AAVE_API_URL"
	dbDriverEnvKey          = "DB_DRIVER"
	walletKeyEnvKey         = "WALLET_PRIVATE_KEY"
	walletKeystoreEnvKey    = "WALLET_KEYSTORE_DIR"
	explorerEnvKey          = "EXPLORER_TX_URL"
	kafkaBrokerEnvKey       = "KAFKA_BROKER_ADDRESS"
	kafkaTopicEnvKey        = "KAFKA_TOPIC"
	logLevelEnvKey          = "LOG_LEVEL"
	debugBalanceEnvKey      = "DEBUG_BALANCE_CHECK"
	apiRateLimitEnvKey      = "API_RATE_LIMIT"
	receiptTimeoutEnvKey    = "RECEIPT_TIMEOUT"
	marketCacheTTLEnvKey    = "MARKET_CACHE_TTL"
	upstreamRateLimitEnvKey = "AAVE_API_RATE_LIMIT"
	trustedProxiesEnvKey    = "TRUSTED_PROXIES"
)

const (
	// BaseChainID is the chain the dashboard is composed for unless CHAIN_ID says otherwise.
	BaseChainID int64 = 8453

	defaultAaveAPIURL     = "https://api.v3.aave.com/graphql"
	defaultExplorerTxURL  = "https://basescan.org/tx/"
	defaultKafkaTopic     = "lendboard-transactions"
	defaultDBDriver       = "postgres"
	defaultReceiptTimeout = 2 * time.Minute
	defaultMarketCacheTTL = 15 * time.Second
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	DBDriver        string
	JWTSecret       string

	ChainID        int64
	AaveAPIURL     string
	ExplorerTxURL  string
	MarketCacheTTL time.Duration
	// AaveAPIRateLimit is the number of upstream API requests allowed per second.
	AaveAPIRateLimit float64

	WalletPrivateKey  string
	WalletKeystoreDir string
	ReceiptTimeout    time.Duration
	DebugBalanceCheck bool

	KafkaBrokerAddress string
	KafkaTopic         string

	LogLevel string
	// APIRateLimit is the number of requests per minute allowed per client.
	APIRateLimit float64
	// TrustedProxies may name the client in forwarding headers.
	TrustedProxies []netip.Prefix
}

// NewApp loads an optional .env file and reads the application configuration
// from the environment.
func NewApp() (App, error) {
	// a missing .env file is fine, variables may be set externally
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	chainID, err := lookupInt(chainIDEnvKey, BaseChainID)
	if err != nil {
		return App{}, err
	}

	receiptTimeout, err := lookupDuration(receiptTimeoutEnvKey, defaultReceiptTimeout)
	if err != nil {
		return App{}, err
	}

	cacheTTL, err := lookupDuration(marketCacheTTLEnvKey, defaultMarketCacheTTL)
	if err != nil {
		return App{}, err
	}

	apiRateLimit, err := lookupFloat(apiRateLimitEnvKey, 120)
	if err != nil {
		return App{}, err
	}

	upstreamRateLimit, err := lookupFloat(upstreamRateLimitEnvKey, 5)
	if err != nil {
		return App{}, err
	}

	debugBalance, err := lookupBool(debugBalanceEnvKey, false)
	if err != nil {
		return App{}, err
	}

	trustedProxies, err := lookupPrefixes(trustedProxiesEnvKey)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:               port,
		NodeURL:            nodeURL,
		DBConnectionURL:    dbConn,
		DBDriver:           lookupString(dbDriverEnvKey, defaultDBDriver),
		JWTSecret:          jwtSecret,
		ChainID:            chainID,
		AaveAPIURL:         lookupString(aaveAPIEnvKey, defaultAaveAPIURL),
		ExplorerTxURL:      lookupString(explorerEnvKey, defaultExplorerTxURL),
		MarketCacheTTL:     cacheTTL,
		AaveAPIRateLimit:   upstreamRateLimit,
		WalletPrivateKey:   lookupString(walletKeyEnvKey, ""),
		WalletKeystoreDir:  lookupString(walletKeystoreEnvKey, ""),
		ReceiptTimeout:     receiptTimeout,
		DebugBalanceCheck:  debugBalance,
		KafkaBrokerAddress: lookupString(kafkaBrokerEnvKey, ""),
		KafkaTopic:         lookupString(kafkaTopicEnvKey, defaultKafkaTopic),
		LogLevel:           lookupString(logLevelEnvKey, "info"),
		APIRateLimit:       apiRateLimit,
		TrustedProxies:     trustedProxies,
	}, nil
}

func lookupString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func lookupInt(key string, fallback int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return parsed, nil
}

func lookupFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return parsed, nil
}

func lookupBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return parsed, nil
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return parsed, nil
}

// lookupPrefixes reads a comma separated list of CIDRs or single addresses.
func lookupPrefixes(key string) ([]netip.Prefix, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil, nil
	}

	var prefixes []netip.Prefix
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if !strings.Contains(item, "/") {
			addr, err := netip.ParseAddr(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
			}
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}
