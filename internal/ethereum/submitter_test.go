package ethereum_test

import (
	"context"
	"errors"
	"lendboard/internal/ethereum"
	"lendboard/internal/ethereum/fake"
	"lendboard/internal/wallet"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Submit", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		signer     ethereum.Signer
		request    ethereum.TxRequest
		hash       common.Hash
		err        error
		testErr    error
		submitCtx  context.Context
	)

	BeforeEach(func() {
		testErr = errors.New("node down")
		submitCtx = context.Background()
		fakeClient = new(fake.EthClient)
		service = ethereum.NewEthService(zap.NewNop().Sugar(), fakeClient,
			ethereum.WithPollInterval(time.Millisecond),
			ethereum.WithReceiptTimeout(time.Second))

		key, keyErr := crypto.GenerateKey()
		Expect(keyErr).NotTo(HaveOccurred())
		signer = wallet.NewSession(key)

		request = ethereum.TxRequest{
			To:      common.HexToAddress("0xA238Dd80C259a72e81d7e4664a9801593F98d1c5"),
			Data:    []byte{0x61, 0x7b, 0xa0, 0x37},
			ChainID: 8453,
		}

		fakeClient.PendingNonceAtReturns(4, nil)
		fakeClient.SuggestGasTipCapReturns(big.NewInt(1_000), nil)
		fakeClient.HeaderByNumberReturns(&types.Header{BaseFee: big.NewInt(10_000)}, nil)
		fakeClient.EstimateGasReturns(100_000, nil)
		fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(9)}, nil)
	})

	JustBeforeEach(func() {
		hash, err = service.Submit(submitCtx, signer, request)
	})

	When("the transaction is mined successfully", func() {
		It("broadcasts a signed dynamic fee transaction", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))

			_, sent := fakeClient.SendTransactionArgsForCall(0)
			Expect(sent.Hash()).To(Equal(hash))
			Expect(sent.Type()).To(Equal(uint8(types.DynamicFeeTxType)))
			Expect(sent.Nonce()).To(Equal(uint64(4)))
			Expect(sent.ChainId()).To(Equal(big.NewInt(8453)))
			Expect(*sent.To()).To(Equal(request.To))
			Expect(sent.Data()).To(Equal(request.Data))
			Expect(sent.Value().Sign()).To(BeZero())

			from, senderErr := types.Sender(types.LatestSignerForChainID(big.NewInt(8453)), sent)
			Expect(senderErr).NotTo(HaveOccurred())
			Expect(from).To(Equal(signer.Address()))
		})

		It("adds a buffer to the gas estimate", func() {
			_, sent := fakeClient.SendTransactionArgsForCall(0)
			Expect(sent.Gas()).To(Equal(uint64(120_000)))
		})

		It("prices the fee cap above twice the base fee", func() {
			_, sent := fakeClient.SendTransactionArgsForCall(0)
			Expect(sent.GasTipCap()).To(Equal(big.NewInt(1_000)))
			Expect(sent.GasFeeCap()).To(Equal(big.NewInt(21_000)))
		})

		It("estimates gas from the sender", func() {
			_, msg := fakeClient.EstimateGasArgsForCall(0)
			Expect(msg.From).To(Equal(signer.Address()))
			Expect(*msg.To).To(Equal(request.To))
		})

		It("does not ask the node for the chain id", func() {
			Expect(fakeClient.NetworkIDCallCount()).To(BeZero())
		})
	})

	When("the receipt is not yet available", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturnsOnCall(0, nil, geth.NotFound)
			fakeClient.TransactionReceiptReturnsOnCall(1, nil, geth.NotFound)
		})

		It("polls until it is mined", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(3))
		})
	})

	When("the caller goes away after the broadcast", func() {
		var receiptCtxErrs []error

		BeforeEach(func() {
			receiptCtxErrs = nil
			callerCtx, cancelCaller := context.WithCancel(context.Background())
			DeferCleanup(cancelCaller)

			fakeClient.SendTransactionStub = func(context.Context, *types.Transaction) error {
				cancelCaller()
				return nil
			}
			fakeClient.TransactionReceiptStub = func(ctx context.Context, _ common.Hash) (*types.Receipt, error) {
				receiptCtxErrs = append(receiptCtxErrs, ctx.Err())
				if len(receiptCtxErrs) < 3 {
					return nil, geth.NotFound
				}
				return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(9)}, nil
			}

			submitCtx = callerCtx
		})

		It("keeps waiting for the receipt", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(Equal(common.Hash{}))
			Expect(receiptCtxErrs).To(HaveLen(3))
			Expect(receiptCtxErrs).To(HaveEach(BeNil()))
		})
	})

	When("the receipt never shows up", func() {
		BeforeEach(func() {
			service = ethereum.NewEthService(zap.NewNop().Sugar(), fakeClient,
				ethereum.WithPollInterval(time.Millisecond),
				ethereum.WithReceiptTimeout(20*time.Millisecond))
			fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
		})

		It("gives up with the hash of the broadcast transaction", func() {
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(hash).NotTo(Equal(common.Hash{}))
		})
	})

	When("the transaction reverts", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(9)}, nil)
		})

		It("reports the revert", func() {
			Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
			Expect(hash).NotTo(Equal(common.Hash{}))
		})
	})

	When("broadcasting fails", func() {
		BeforeEach(func() {
			fakeClient.SendTransactionReturns(testErr)
		})

		It("returns the node error", func() {
			Expect(err).To(MatchError(testErr))
			Expect(fakeClient.TransactionReceiptCallCount()).To(BeZero())
		})
	})

	When("gas estimation fails", func() {
		BeforeEach(func() {
			fakeClient.EstimateGasReturns(0, testErr)
		})

		It("does not broadcast", func() {
			Expect(err).To(MatchError(testErr))
			Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
		})
	})

	When("the request carries no chain id", func() {
		BeforeEach(func() {
			request.ChainID = 0
			fakeClient.NetworkIDReturns(big.NewInt(84532), nil)
		})

		It("uses the network id of the node", func() {
			Expect(err).NotTo(HaveOccurred())
			_, sent := fakeClient.SendTransactionArgsForCall(0)
			Expect(sent.ChainId()).To(Equal(big.NewInt(84532)))
		})
	})

	When("no signer is given", func() {
		BeforeEach(func() {
			signer = nil
		})

		It("fails before touching the node", func() {
			Expect(err).To(MatchError(ethereum.ErrNoSigner))
			Expect(fakeClient.PendingNonceAtCallCount()).To(BeZero())
		})
	})
})
