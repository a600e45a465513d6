package wallet_test

import (
	"math/big"

	"lendboard/internal/wallet"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Session", func() {
	It("signs transactions recoverable to its address", func() {
		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		session := wallet.NewSession(key)

		chainID := big.NewInt(8453)
		tx := types.NewTx(&types.DynamicFeeTx{ChainID: chainID, Nonce: 1, Gas: 21000, GasTipCap: big.NewInt(1), GasFeeCap: big.NewInt(2)})
		signed, err := session.SignTx(tx, chainID)
		Expect(err).NotTo(HaveOccurred())

		sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(sender).To(Equal(session.Address()))
	})

	It("reports the zero address when nil", func() {
		var session *wallet.Session
		Expect(session.Address()).To(Equal(common.Address{}))
	})

	It("rejects malformed hex keys", func() {
		_, err := wallet.SessionFromHex("0xnothex")
		Expect(err).To(MatchError(wallet.ErrInvalidKey))
	})
})

var _ = Describe("Manager", func() {
	var logger = zap.NewNop().Sugar()

	When("a private key is configured", func() {
		var (
			manager  *wallet.Manager
			expected common.Address
		)

		BeforeEach(func() {
			key, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			expected = crypto.PubkeyToAddress(key.PublicKey)
			manager = wallet.NewManager(logger, "0x"+common.Bytes2Hex(crypto.FromECDSA(key)), "")
		})

		It("starts disconnected", func() {
			_, ok := manager.Current()
			Expect(ok).To(BeFalse())
		})

		It("connects and disconnects", func() {
			address, err := manager.Connect("", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(address).To(Equal(expected))

			session, ok := manager.Current()
			Expect(ok).To(BeTrue())
			Expect(session.Address()).To(Equal(expected))

			manager.Disconnect()
			_, ok = manager.Current()
			Expect(ok).To(BeFalse())
		})
	})

	When("a keystore is configured", func() {
		var (
			manager *wallet.Manager
			account common.Address
		)

		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
			acc, err := ks.NewAccount("s3cret")
			Expect(err).NotTo(HaveOccurred())
			account = acc.Address
			manager = wallet.NewManager(logger, "", dir)
		})

		It("lists the accounts", func() {
			Eventually(manager.Accounts).Should(ContainElement(account))
		})

		It("unlocks the account with the right passphrase", func() {
			Eventually(manager.Accounts).Should(ContainElement(account))
			address, err := manager.Connect(account.Hex(), "s3cret")
			Expect(err).NotTo(HaveOccurred())
			Expect(address).To(Equal(account))
		})

		It("refuses a wrong passphrase", func() {
			Eventually(manager.Accounts).Should(ContainElement(account))
			_, err := manager.Connect(account.Hex(), "wrong")
			Expect(err).To(MatchError(keystore.ErrDecrypt))
			_, ok := manager.Current()
			Expect(ok).To(BeFalse())
		})

		It("refuses unknown accounts", func() {
			_, err := manager.Connect("0x2222222222222222222222222222222222222222", "s3cret")
			Expect(err).To(MatchError(wallet.ErrAccountNotFound))
		})
	})

	When("nothing is configured", func() {
		It("cannot connect", func() {
			_, err := wallet.NewManager(logger, "", "").Connect("", "")
			Expect(err).To(MatchError(wallet.ErrNoWalletSource))
		})
	})
})
