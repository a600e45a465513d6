package core_test

import (
	"context"
	"errors"
	"lendboard/internal/aave"
	"lendboard/internal/core"
	"lendboard/internal/core/fake"
	"lendboard/internal/ethereum"
	"lendboard/internal/wallet"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	marketHex   = "0xA238Dd80C259a72e81d7e4664a9801593F98d1c5"
	currencyHex = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
)

var _ = Describe("Orchestrator", func() {
	var (
		fakePlans     *fake.PlanProvider
		fakeSubmitter *fake.Submitter
		orchestrator  *core.Orchestrator
		session       *wallet.Session
		ctx           context.Context
		fakeErr       error

		directTx   aave.TransactionRequest
		approvalTx aave.TransactionRequest
		hashA      common.Hash
		hashB      common.Hash
	)

	BeforeEach(func() {
		fakePlans = new(fake.PlanProvider)
		fakeSubmitter = new(fake.Submitter)
		orchestrator = core.NewOrchestrator(zap.NewNop().Sugar(), fakePlans, fakeSubmitter, 8453)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		session = wallet.NewSession(key)

		directTx = aave.TransactionRequest{
			To:      common.HexToAddress(marketHex),
			Data:    []byte{0x61, 0x7b, 0xa0, 0x37},
			Value:   big.NewInt(0),
			ChainID: 8453,
		}
		approvalTx = aave.TransactionRequest{
			To:      common.HexToAddress(currencyHex),
			Data:    []byte{0x09, 0x5e, 0xa7, 0xb3},
			Value:   big.NewInt(0),
			ChainID: 8453,
		}
		hashA = common.HexToHash("0xaaaa")
		hashB = common.HexToHash("0xbbbb")
	})

	planCalls := func() int {
		return fakePlans.SupplyCallCount() + fakePlans.BorrowCallCount() +
			fakePlans.RepayCallCount() + fakePlans.WithdrawCallCount()
	}

	Describe("without a wallet session", func() {
		DescribeTable("submits nothing and returns no hash",
			func(kind core.OperationKind, noSession func() ethereum.Signer) {
				hash, err := orchestrator.Execute(ctx, kind, noSession(), marketHex, currencyHex, "1")
				Expect(err).NotTo(HaveOccurred())
				Expect(hash).To(BeEmpty())
				Expect(planCalls()).To(BeZero())
				Expect(fakeSubmitter.SubmitCallCount()).To(BeZero())
			},
			Entry("supply, nil session", core.OperationSupply, func() ethereum.Signer { return nil }),
			Entry("borrow, nil session", core.OperationBorrow, func() ethereum.Signer { return nil }),
			Entry("repay, nil session", core.OperationRepay, func() ethereum.Signer { return nil }),
			Entry("withdraw, nil session", core.OperationWithdraw, func() ethereum.Signer { return nil }),
			Entry("supply, closed session", core.OperationSupply, func() ethereum.Signer { return (*wallet.Session)(nil) }),
			Entry("repay, closed session", core.OperationRepay, func() ethereum.Signer { return (*wallet.Session)(nil) }),
		)
	})

	Describe("Supply", func() {
		var (
			hash   string
			err    error
			amount string
		)

		BeforeEach(func() {
			amount = "1.5"
		})

		JustBeforeEach(func() {
			hash, err = orchestrator.Supply(ctx, session, marketHex, currencyHex, amount)
		})

		When("the plan is a direct transaction", func() {
			BeforeEach(func() {
				fakePlans.SupplyReturns(directTx, nil)
				fakeSubmitter.SubmitReturns(hashA, nil)
			})

			It("submits it once and returns its hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(hash).To(Equal(hashA.Hex()))
				Expect(fakeSubmitter.SubmitCallCount()).To(Equal(1))

				_, signer, req := fakeSubmitter.SubmitArgsForCall(0)
				Expect(signer).To(BeIdenticalTo(session))
				Expect(req.To).To(Equal(directTx.To))
				Expect(req.Data).To(Equal(directTx.Data))
				Expect(req.ChainID).To(Equal(int64(8453)))
			})

			It("builds the operation request from the inputs", func() {
				Expect(fakePlans.SupplyCallCount()).To(Equal(1))
				_, req := fakePlans.SupplyArgsForCall(0)
				Expect(req.Market).To(Equal(common.HexToAddress(marketHex)))
				Expect(req.Currency).To(Equal(common.HexToAddress(currencyHex)))
				Expect(req.Sender).To(Equal(session.Address()))
				Expect(req.ChainID).To(Equal(int64(8453)))
				Expect(req.Amount.IsMax()).To(BeFalse())
				Expect(req.Amount.Value().Equal(decimal.RequireFromString("1.5"))).To(BeTrue())
			})
		})

		When("the plan transaction carries no chain id", func() {
			BeforeEach(func() {
				directTx.ChainID = 0
				fakePlans.SupplyReturns(directTx, nil)
				fakeSubmitter.SubmitReturns(hashA, nil)
			})

			It("submits on the configured chain", func() {
				_, _, req := fakeSubmitter.SubmitArgsForCall(0)
				Expect(req.ChainID).To(Equal(int64(8453)))
			})
		})

		When("an approval is required", func() {
			BeforeEach(func() {
				fakePlans.SupplyReturns(aave.ApprovalRequired{Approval: approvalTx, Original: directTx}, nil)
				fakeSubmitter.SubmitReturnsOnCall(0, hashA, nil)
				fakeSubmitter.SubmitReturnsOnCall(1, hashB, nil)
			})

			It("submits the approval and then the operation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSubmitter.SubmitCallCount()).To(Equal(2))

				_, _, first := fakeSubmitter.SubmitArgsForCall(0)
				Expect(first.To).To(Equal(approvalTx.To))
				_, _, second := fakeSubmitter.SubmitArgsForCall(1)
				Expect(second.To).To(Equal(directTx.To))
			})

			It("returns the hash of the operation", func() {
				Expect(hash).To(Equal(hashB.Hex()))
			})
		})

		When("the approval fails", func() {
			BeforeEach(func() {
				fakePlans.SupplyReturns(aave.ApprovalRequired{Approval: approvalTx, Original: directTx}, nil)
				fakeSubmitter.SubmitReturnsOnCall(0, hashA, fakeErr)
				fakeSubmitter.SubmitReturnsOnCall(1, hashB, nil)
			})

			It("never submits the operation", func() {
				Expect(fakeSubmitter.SubmitCallCount()).To(Equal(1))
			})

			It("reports the failure", func() {
				Expect(hash).To(BeEmpty())
				Expect(err).To(MatchError(core.ErrSubmission))
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(HavePrefix("supply: approval: "))
			})
		})

		When("the operation fails after the approval", func() {
			BeforeEach(func() {
				fakePlans.SupplyReturns(aave.ApprovalRequired{Approval: approvalTx, Original: directTx}, nil)
				fakeSubmitter.SubmitReturnsOnCall(0, hashA, nil)
				fakeSubmitter.SubmitReturnsOnCall(1, hashB, ethereum.ErrTransactionReverted)
			})

			It("reports failure rather than the approval hash", func() {
				Expect(fakeSubmitter.SubmitCallCount()).To(Equal(2))
				Expect(hash).To(BeEmpty())
				Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
			})
		})

		When("the balance is insufficient", func() {
			BeforeEach(func() {
				fakePlans.SupplyReturns(aave.InsufficientBalance{
					Required: aave.DecimalValue{Value: decimal.RequireFromString("12.5")},
				}, nil)
			})

			It("submits nothing and names the required amount", func() {
				Expect(fakeSubmitter.SubmitCallCount()).To(BeZero())
				Expect(hash).To(BeEmpty())
				Expect(err).To(MatchError(core.ErrInsufficientBalance))
				Expect(err.Error()).To(ContainSubstring("12.5 required"))

				var balanceErr *core.InsufficientBalanceError
				Expect(errors.As(err, &balanceErr)).To(BeTrue())
				Expect(balanceErr.Required.String()).To(Equal("12.5"))
			})
		})

		When("the plan cannot be obtained", func() {
			BeforeEach(func() {
				fakePlans.SupplyReturns(nil, aave.ErrUnknownPlan)
			})

			It("wraps the error with the operation name", func() {
				Expect(err).To(MatchError(aave.ErrUnknownPlan))
				Expect(err.Error()).To(HavePrefix("supply: request plan: "))
				Expect(fakeSubmitter.SubmitCallCount()).To(BeZero())
			})
		})
	})

	Describe("Repay", func() {
		BeforeEach(func() {
			fakePlans.RepayReturns(directTx, nil)
			fakeSubmitter.SubmitReturns(hashA, nil)
		})

		DescribeTable("requests the full balance for max",
			func(amount string) {
				hash, err := orchestrator.Repay(ctx, session, marketHex, currencyHex, amount)
				Expect(err).NotTo(HaveOccurred())
				Expect(hash).To(Equal(hashA.Hex()))

				_, req := fakePlans.RepayArgsForCall(0)
				Expect(req.Amount.IsMax()).To(BeTrue())
			},
			Entry("lower case", "max"),
			Entry("upper case", "MAX"),
			Entry("padded", " max "),
		)

		It("requests an exact amount otherwise", func() {
			_, err := orchestrator.Repay(ctx, session, marketHex, currencyHex, "25")
			Expect(err).NotTo(HaveOccurred())

			_, req := fakePlans.RepayArgsForCall(0)
			Expect(req.Amount.IsMax()).To(BeFalse())
			Expect(req.Amount.Value().Equal(decimal.NewFromInt(25))).To(BeTrue())
		})
	})

	Describe("amount validation", func() {
		DescribeTable("rejects amounts before requesting a plan",
			func(kind core.OperationKind, amount string) {
				hash, err := orchestrator.Execute(ctx, kind, session, marketHex, currencyHex, amount)
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(err.Error()).To(HavePrefix(string(kind) + ": "))
				Expect(hash).To(BeEmpty())
				Expect(planCalls()).To(BeZero())
				Expect(fakeSubmitter.SubmitCallCount()).To(BeZero())
			},
			Entry("max supply", core.OperationSupply, "max"),
			Entry("max borrow", core.OperationBorrow, "max"),
			Entry("max withdraw", core.OperationWithdraw, "max"),
			Entry("words", core.OperationSupply, "lots"),
			Entry("empty", core.OperationBorrow, ""),
			Entry("zero", core.OperationWithdraw, "0"),
			Entry("negative", core.OperationRepay, "-3"),
		)

		It("rejects malformed addresses before any network call", func() {
			_, err := orchestrator.Supply(ctx, session, "0x1234", currencyHex, "1")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
			_, err = orchestrator.Supply(ctx, session, marketHex, "usdc", "1")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
			Expect(planCalls()).To(BeZero())
		})
	})

	Describe("Borrow and Withdraw", func() {
		BeforeEach(func() {
			fakePlans.BorrowReturns(directTx, nil)
			fakePlans.WithdrawReturns(directTx, nil)
			fakeSubmitter.SubmitReturns(hashA, nil)
		})

		It("asks the matching plan query", func() {
			_, err := orchestrator.Borrow(ctx, session, marketHex, currencyHex, "2")
			Expect(err).NotTo(HaveOccurred())
			_, err = orchestrator.Withdraw(ctx, session, marketHex, currencyHex, "3")
			Expect(err).NotTo(HaveOccurred())

			Expect(fakePlans.BorrowCallCount()).To(Equal(1))
			Expect(fakePlans.WithdrawCallCount()).To(Equal(1))
			Expect(fakePlans.SupplyCallCount()).To(BeZero())
			Expect(fakeSubmitter.SubmitCallCount()).To(Equal(2))
		})
	})

	Describe("balance check", func() {
		var fakeBalances *fake.BalanceInspector

		BeforeEach(func() {
			fakeBalances = new(fake.BalanceInspector)
			orchestrator = core.NewOrchestrator(zap.NewNop().Sugar(), fakePlans, fakeSubmitter, 8453,
				core.WithBalanceCheck(fakeBalances))
			fakePlans.SupplyReturns(directTx, nil)
			fakePlans.BorrowReturns(directTx, nil)
			fakeSubmitter.SubmitReturns(hashA, nil)
		})

		It("reads the balance before supply only", func() {
			_, err := orchestrator.Supply(ctx, session, marketHex, currencyHex, "1")
			Expect(err).NotTo(HaveOccurred())
			_, err = orchestrator.Borrow(ctx, session, marketHex, currencyHex, "1")
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeBalances.TokenBalanceCallCount()).To(Equal(1))
			_, token, owner := fakeBalances.TokenBalanceArgsForCall(0)
			Expect(token).To(Equal(common.HexToAddress(currencyHex)))
			Expect(owner).To(Equal(session.Address()))
		})

		It("does not change the outcome when the read fails", func() {
			fakeBalances.TokenBalanceReturns(nil, 0, fakeErr)
			hash, err := orchestrator.Supply(ctx, session, marketHex, currencyHex, "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(hashA.Hex()))
		})
	})
})
