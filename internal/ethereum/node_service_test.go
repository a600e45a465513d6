package ethereum_test

import (
	"context"
	"errors"
	"fmt"
	"lendboard/internal/ethereum"
	"lendboard/internal/ethereum/fake"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		service = ethereum.NewEthService(zap.NewNop().Sugar(), fakeClient)
	})

	Describe("LookupTransactions", func() {
		var (
			hashes    []string
			results   []*ethereum.Receipt
			err       error
			signedTx1 *types.Transaction
			signedTx2 *types.Transaction
			chainID   *big.Int
			sender    common.Address
		)

		BeforeEach(func() {
			privateKey, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender = crypto.PubkeyToAddress(privateKey.PublicKey)

			chainID = big.NewInt(8453)
			signer := types.LatestSignerForChainID(chainID)

			to := common.HexToAddress("0x1111111111111111111111111111111111111111")
			tx1 := types.NewTransaction(0, to, big.NewInt(0), 21000, big.NewInt(1), []byte{0xca, 0xfe})
			tx2 := types.NewTransaction(1, to, big.NewInt(7), 21000, big.NewInt(1), nil)

			signedTx1, _ = types.SignTx(tx1, signer, privateKey)
			signedTx2, _ = types.SignTx(tx2, signer, privateKey)

			hashes = []string{
				signedTx1.Hash().Hex(),
				signedTx2.Hash().Hex(),
			}

			fakeClient.NetworkIDReturns(chainID, nil)
			fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				return &types.Receipt{
					Status:      types.ReceiptStatusSuccessful,
					BlockHash:   common.HexToHash("0xabc"),
					BlockNumber: big.NewInt(100),
					GasUsed:     21000,
					Logs:        []*types.Log{{}, {}},
				}, nil
			}
		})

		JustBeforeEach(func() {
			results, err = service.LookupTransactions(ctx, hashes)
		})

		When("all transactions are fetched successfully", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					if hash == signedTx1.Hash() {
						return signedTx1, false, nil
					}
					return signedTx2, false, nil
				}
			})

			It("should return all receipts", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect([]string{results[0].TransactionHash, results[1].TransactionHash}).To(ConsistOf(hashes))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(2))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})

			It("should describe the transaction", func() {
				var first *ethereum.Receipt
				for _, r := range results {
					if r.TransactionHash == signedTx1.Hash().Hex() {
						first = r
					}
				}
				Expect(first).NotTo(BeNil())
				Expect(first.From).To(Equal(sender.Hex()))
				Expect(*first.To).To(Equal("0x1111111111111111111111111111111111111111"))
				Expect(first.BlockNumber).To(Equal(uint64(100)))
				Expect(first.LogsCount).To(Equal(2))
				Expect(first.Input).To(Equal("0xcafe"))
				Expect(first.Value).To(Equal("0"))
			})
		})

		When("some transactions fail to fetch", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					if hash == signedTx1.Hash() {
						return nil, false, testErr
					}
					return signedTx2, false, nil
				}
			})

			It("should return partial results with error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("fetching transaction %q: %s", hashes[0], testErr.Error())))
				Expect(results).To(HaveLen(1))
				Expect(results[0].TransactionHash).To(Equal(signedTx2.Hash().Hex()))
			})
		})

		When("context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionByHashStub = func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					select {
					case <-ctx.Done():
						return nil, false, ctx.Err()
					case <-time.After(100 * time.Millisecond):
						return signedTx1, false, nil
					}
				}
			})

			It("should return context cancelled error", func() {
				Expect(err).To(MatchError(context.Canceled))
				Expect(results).To(BeEmpty())
			})
		})
	})
})
