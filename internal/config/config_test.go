package config_test

import (
	"net/netip"
	"os"
	"time"

	"lendboard/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	setEnv := func(key, value string) {
		previous, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, previous)
				return
			}
			os.Unsetenv(key)
		})
	}

	unsetEnv := func(key string) {
		previous, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, previous)
			}
		})
	}

	BeforeEach(func() {
		setEnv("API_PORT", "8080")
		setEnv("ETH_NODE_URL", "http://localhost:8545")
		setEnv("DB_CONNECTION_URL", "postgres://localhost/lendboard")
		setEnv("JWT_SECRET", "secret")
		unsetEnv("CHAIN_ID")
		unsetEnv("RECEIPT_TIMEOUT")
		unsetEnv("DEBUG_BALANCE_CHECK")
		unsetEnv("DB_DRIVER")
		unsetEnv("TRUSTED_PROXIES")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the required variables are set", func() {
		It("applies the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.ChainID).To(Equal(config.BaseChainID))
			Expect(app.DBDriver).To(Equal("postgres"))
			Expect(app.ReceiptTimeout).To(Equal(2 * time.Minute))
			Expect(app.DebugBalanceCheck).To(BeFalse())
			Expect(app.TrustedProxies).To(BeEmpty())
		})
	})

	When("optional variables are set", func() {
		BeforeEach(func() {
			setEnv("CHAIN_ID", "1")
			setEnv("RECEIPT_TIMEOUT", "30s")
			setEnv("DEBUG_BALANCE_CHECK", "true")
			setEnv("DB_DRIVER", "sqlite")
			setEnv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.7")
		})

		It("uses them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.ChainID).To(Equal(int64(1)))
			Expect(app.ReceiptTimeout).To(Equal(30 * time.Second))
			Expect(app.DebugBalanceCheck).To(BeTrue())
			Expect(app.DBDriver).To(Equal("sqlite"))
			Expect(app.TrustedProxies).To(Equal([]netip.Prefix{
				netip.MustParsePrefix("10.0.0.0/8"),
				netip.MustParsePrefix("192.168.1.7/32"),
			}))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			unsetEnv("JWT_SECRET")
		})

		It("returns an error naming it", func() {
			Expect(err).To(MatchError(ContainSubstring("JWT_SECRET")))
		})
	})

	When("the chain id is not a number", func() {
		BeforeEach(func() {
			setEnv("CHAIN_ID", "base")
		})

		It("returns an error", func() {
			Expect(err).To(MatchError(ContainSubstring("CHAIN_ID")))
		})
	})

	When("a trusted proxy is malformed", func() {
		BeforeEach(func() {
			setEnv("TRUSTED_PROXIES", "10.0.0.0/99")
		})

		It("returns an error", func() {
			Expect(err).To(MatchError(ContainSubstring("TRUSTED_PROXIES")))
		})
	})
})
