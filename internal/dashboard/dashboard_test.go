package dashboard_test

import (
	"context"
	"errors"
	"fmt"
	"lendboard/internal/aave"
	"lendboard/internal/core"
	"lendboard/internal/dashboard"
	"lendboard/internal/dashboard/fake"
	"lendboard/internal/ethereum"
	"lendboard/internal/format"
	"lendboard/internal/wallet"
	"time"

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
	wethHex     = "0x4200000000000000000000000000000000000006"
	txHash      = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
)

var _ = Describe("Dashboard", func() {
	var (
		fakeOrchestrator *fake.Orchestrator
		fakeMarkets      *fake.MarketData
		fakeWallets      *fake.WalletSource
		fakeJournal      *fake.Journal
		fakePublisher    *fake.Publisher
		scheduler        *manualScheduler
		errScheduler     *manualScheduler
		board            *dashboard.Dashboard
		session          *wallet.Session
		ctx              context.Context
		now              time.Time
		fakeErr          error
	)

	BeforeEach(func() {
		fakeOrchestrator = new(fake.Orchestrator)
		fakeMarkets = new(fake.MarketData)
		fakeWallets = new(fake.WalletSource)
		fakeJournal = new(fake.Journal)
		fakePublisher = new(fake.Publisher)
		scheduler = &manualScheduler{}
		errScheduler = &manualScheduler{}
		ctx = context.Background()
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		fakeErr = errors.New("fake error")

		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		session = wallet.NewSession(key)
		fakeWallets.CurrentReturns(session, true)

		board = dashboard.New(zap.NewNop().Sugar(), 8453, fakeOrchestrator, fakeMarkets, fakeWallets, fakeJournal,
			dashboard.WithPublisher(fakePublisher),
			dashboard.WithTracker(dashboard.NewTracker(dashboard.WithScheduler(scheduler.schedule))),
			dashboard.WithExplorerURL("https://basescan.org/tx/"),
			dashboard.WithClock(func() time.Time { return now }),
			dashboard.WithErrorScheduler(errScheduler.schedule),
		)
	})

	Describe("Execute", func() {
		var (
			tx     *dashboard.LastTransaction
			errAct error
		)

		JustBeforeEach(func() {
			tx, errAct = board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, " 1.5 ")
		})

		When("the operation succeeds", func() {
			BeforeEach(func() {
				fakeOrchestrator.ExecuteReturns(txHash, nil)
			})

			It("passes the connected session to the orchestrator", func() {
				Expect(fakeOrchestrator.ExecuteCallCount()).To(Equal(1))
				_, kind, signer, market, currency, amount := fakeOrchestrator.ExecuteArgsForCall(0)
				Expect(kind).To(Equal(core.OperationSupply))
				Expect(signer).To(Equal(ethereum.Signer(session)))
				Expect(market).To(Equal(marketHex))
				Expect(currency).To(Equal(currencyHex))
				Expect(amount).To(Equal(" 1.5 "))
			})

			It("returns and displays the last transaction", func() {
				Expect(errAct).NotTo(HaveOccurred())
				expected := dashboard.LastTransaction{
					Kind:        "Supply",
					Hash:        txHash,
					Timestamp:   now,
					ExplorerURL: "https://basescan.org/tx/" + txHash,
				}
				Expect(*tx).To(Equal(expected))

				status := board.Status()
				Expect(status.LastTransaction).NotTo(BeNil())
				Expect(*status.LastTransaction).To(Equal(expected))
				Expect(status.OperationError).To(BeEmpty())
				Expect(status.IsOperating).To(BeFalse())
			})

			It("journals the operation for the user", func() {
				Expect(fakeJournal.RecordCallCount()).To(Equal(1))
				_, userID, record := fakeJournal.RecordArgsForCall(0)
				Expect(userID).To(Equal("user-1"))
				Expect(record).To(Equal(core.JournalRecord{
					Kind:      "supply",
					Hash:      txHash,
					Market:    marketHex,
					Currency:  currencyHex,
					Amount:    "1.5",
					Sender:    session.Address().Hex(),
					ChainID:   8453,
					CreatedAt: now,
				}))
			})

			It("publishes the operation", func() {
				Expect(fakePublisher.PublishCallCount()).To(Equal(1))
				_, record := fakePublisher.PublishArgsForCall(0)
				Expect(record.Hash).To(Equal(txHash))
			})

			When("journaling fails", func() {
				BeforeEach(func() {
					fakeJournal.RecordReturns(fakeErr)
					fakePublisher.PublishReturns(fakeErr)
				})

				It("still reports the transaction", func() {
					Expect(errAct).NotTo(HaveOccurred())
					Expect(tx.Hash).To(Equal(txHash))
				})
			})
		})

		When("the orchestrator fails", func() {
			BeforeEach(func() {
				fakeOrchestrator.ExecuteReturns("", fakeErr)
			})

			It("returns and records the error", func() {
				Expect(errAct).To(MatchError(fakeErr))
				Expect(tx).To(BeNil())
				Expect(board.Status().OperationError).To(Equal("fake error"))
			})

			It("does not journal", func() {
				Expect(fakeJournal.RecordCallCount()).To(BeZero())
				Expect(fakePublisher.PublishCallCount()).To(BeZero())
			})
		})

		When("no wallet is connected", func() {
			BeforeEach(func() {
				fakeWallets.CurrentReturns(nil, false)
				fakeOrchestrator.ExecuteReturns("", nil)
			})

			It("hands no session to the orchestrator", func() {
				_, _, signer, _, _, _ := fakeOrchestrator.ExecuteArgsForCall(0)
				Expect(signer).To(BeNil())
			})

			It("reports the wallet as not connected", func() {
				Expect(errAct).To(MatchError(dashboard.ErrWalletNotConnected))
				Expect(tx).To(BeNil())
				Expect(fakeJournal.RecordCallCount()).To(BeZero())
			})
		})
	})

	It("leaves the last transaction untouched when a later operation fails", func() {
		fakeOrchestrator.ExecuteReturnsOnCall(0, txHash, nil)
		fakeOrchestrator.ExecuteReturnsOnCall(1, "", fakeErr)

		_, err := board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
		Expect(err).NotTo(HaveOccurred())
		_, err = board.Execute(ctx, "user-1", core.OperationBorrow, marketHex, currencyHex, "1")
		Expect(err).To(MatchError(fakeErr))

		status := board.Status()
		Expect(status.LastTransaction).NotTo(BeNil())
		Expect(status.LastTransaction.Kind).To(Equal("Supply"))
		Expect(status.OperationError).To(Equal("fake error"))
	})

	It("clears the operation error after a success", func() {
		fakeOrchestrator.ExecuteReturnsOnCall(0, "", fakeErr)
		fakeOrchestrator.ExecuteReturnsOnCall(1, txHash, nil)

		_, _ = board.Execute(ctx, "user-1", core.OperationRepay, marketHex, currencyHex, "max")
		_, err := board.Execute(ctx, "user-1", core.OperationRepay, marketHex, currencyHex, "max")
		Expect(err).NotTo(HaveOccurred())
		Expect(board.Status().OperationError).To(BeEmpty())
	})

	It("clears the previous error when a new operation starts", func() {
		fakeOrchestrator.ExecuteReturnsOnCall(0, "", fmt.Errorf("supply: %w", &core.InsufficientBalanceError{Required: decimal.NewFromInt(5)}))
		_, err := board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
		Expect(err).To(HaveOccurred())
		Expect(board.Status().OperationError).NotTo(BeEmpty())

		var during dashboard.Status
		fakeOrchestrator.ExecuteCalls(func(context.Context, core.OperationKind, ethereum.Signer, string, string, string) (string, error) {
			during = board.Status()
			return txHash, nil
		})
		_, err = board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
		Expect(err).NotTo(HaveOccurred())

		Expect(during.IsOperating).To(BeTrue())
		Expect(during.OperationError).To(BeEmpty())
	})

	Describe("operation error display", func() {
		BeforeEach(func() {
			fakeOrchestrator.ExecuteReturns("", fakeErr)
		})

		It("drops the error once the display window has passed", func() {
			_, _ = board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
			Expect(board.Status().OperationError).To(Equal("fake error"))

			timer := errScheduler.timer(0)
			Expect(timer.delay).To(Equal(dashboard.DisplayWindow))
			timer.fire()

			Expect(board.Status().OperationError).To(BeEmpty())
		})

		It("keeps a newer error when an older clear fires", func() {
			_, _ = board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
			_, _ = board.Execute(ctx, "user-1", core.OperationBorrow, marketHex, currencyHex, "1")

			Expect(errScheduler.timer(0).stopped).To(BeTrue())
			errScheduler.timer(0).fire()
			Expect(board.Status().OperationError).To(Equal("fake error"))

			errScheduler.timer(1).fire()
			Expect(board.Status().OperationError).To(BeEmpty())
		})

		It("stops the pending clear on close", func() {
			_, _ = board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
			board.Close()

			Expect(errScheduler.timer(0).stopped).To(BeTrue())
		})
	})

	It("journals a mined operation after the caller went away", func() {
		callerCtx, cancel := context.WithCancel(ctx)
		fakeOrchestrator.ExecuteCalls(func(context.Context, core.OperationKind, ethereum.Signer, string, string, string) (string, error) {
			cancel()
			return txHash, nil
		})

		tx, err := board.Execute(callerCtx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(tx.Hash).To(Equal(txHash))
		Expect(board.Status().LastTransaction).NotTo(BeNil())

		Expect(fakeJournal.RecordCallCount()).To(Equal(1))
		journalCtx, _, _ := fakeJournal.RecordArgsForCall(0)
		Expect(journalCtx.Err()).NotTo(HaveOccurred())
	})

	It("does not journal anonymous operations", func() {
		fakeOrchestrator.ExecuteReturns(txHash, nil)

		_, err := board.Execute(ctx, "", core.OperationWithdraw, marketHex, currencyHex, "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(fakeJournal.RecordCallCount()).To(BeZero())
		Expect(fakePublisher.PublishCallCount()).To(Equal(1))
	})

	It("runs at most one operation at a time", func() {
		started := make(chan struct{})
		release := make(chan struct{})
		fakeOrchestrator.ExecuteCalls(func(context.Context, core.OperationKind, ethereum.Signer, string, string, string) (string, error) {
			close(started)
			<-release
			return txHash, nil
		})

		done := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			_, err := board.Execute(ctx, "user-1", core.OperationSupply, marketHex, currencyHex, "1")
			done <- err
		}()
		Eventually(started).Should(BeClosed())

		Expect(board.Status().IsOperating).To(BeTrue())
		_, err := board.Execute(ctx, "user-1", core.OperationBorrow, marketHex, currencyHex, "1")
		Expect(err).To(MatchError(dashboard.ErrOperationInProgress))
		Expect(fakeOrchestrator.ExecuteCallCount()).To(Equal(1))

		close(release)
		Eventually(done).Should(Receive(BeNil()))
		Expect(board.Status().IsOperating).To(BeFalse())
	})

	Describe("QuickAction", func() {
		var market aave.Market

		BeforeEach(func() {
			market = aave.Market{
				Name:    "AaveV3Base",
				Address: common.HexToAddress(marketHex),
				Chain:   aave.Chain{ChainID: 8453, Name: "Base"},
				SupplyReserves: []aave.Reserve{
					{UnderlyingToken: aave.Token{Address: common.HexToAddress(currencyHex), Symbol: "USDC"}},
					{UnderlyingToken: aave.Token{Address: common.HexToAddress(wethHex), Symbol: "WETH"}},
				},
				BorrowReserves: []aave.Reserve{
					{UnderlyingToken: aave.Token{Address: common.HexToAddress(wethHex), Symbol: "WETH"}},
				},
			}
			fakeMarkets.MarketsReturns([]aave.Market{market}, nil)
			fakeOrchestrator.ExecuteReturns(txHash, nil)
		})

		It("supplies the first supply reserve with the default amount", func() {
			tx, err := board.QuickAction(ctx, "user-1", core.OperationSupply, marketHex, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Hash).To(Equal(txHash))

			_, kind, _, gotMarket, currency, amount := fakeOrchestrator.ExecuteArgsForCall(0)
			Expect(kind).To(Equal(core.OperationSupply))
			Expect(gotMarket).To(Equal(common.HexToAddress(marketHex).Hex()))
			Expect(currency).To(Equal(common.HexToAddress(currencyHex).Hex()))
			Expect(amount).To(Equal(dashboard.DefaultQuickAmount))
		})

		It("borrows the first borrow reserve with the given amount", func() {
			_, err := board.QuickAction(ctx, "user-1", core.OperationBorrow, marketHex, "0.25")
			Expect(err).NotTo(HaveOccurred())

			_, _, _, _, currency, amount := fakeOrchestrator.ExecuteArgsForCall(0)
			Expect(currency).To(Equal(common.HexToAddress(wethHex).Hex()))
			Expect(amount).To(Equal("0.25"))
		})

		It("asks for markets as the connected user", func() {
			_, _ = board.QuickAction(ctx, "user-1", core.OperationSupply, marketHex, "")

			_, chainID, user := fakeMarkets.MarketsArgsForCall(0)
			Expect(chainID).To(Equal(int64(8453)))
			Expect(*user).To(Equal(session.Address()))
		})

		It("fails for an unknown market", func() {
			_, err := board.QuickAction(ctx, "user-1", core.OperationSupply, wethHex, "")
			Expect(err).To(MatchError(dashboard.ErrMarketNotFound))
			Expect(fakeOrchestrator.ExecuteCallCount()).To(BeZero())
		})

		It("fails for a market without matching reserves", func() {
			market.BorrowReserves = nil
			fakeMarkets.MarketsReturns([]aave.Market{market}, nil)

			_, err := board.QuickAction(ctx, "user-1", core.OperationBorrow, marketHex, "")
			Expect(err).To(MatchError(dashboard.ErrNoReserve))
		})

		It("fails when markets cannot be loaded", func() {
			fakeMarkets.MarketsReturns(nil, fakeErr)

			_, err := board.QuickAction(ctx, "user-1", core.OperationSupply, marketHex, "")
			Expect(err).To(MatchError(fakeErr))
		})

		It("only supports supply and borrow", func() {
			_, err := board.QuickAction(ctx, "user-1", core.OperationRepay, marketHex, "")
			Expect(err).To(HaveOccurred())
			Expect(fakeMarkets.MarketsCallCount()).To(BeZero())
		})

		It("rejects a malformed market address", func() {
			_, err := board.QuickAction(ctx, "user-1", core.OperationSupply, "0x123", "")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
		})
	})

	Describe("Overview", func() {
		var (
			overview dashboard.Overview
			health   decimal.Decimal
		)

		BeforeEach(func() {
			health = decimal.RequireFromString("1.2345")
			fakeMarkets.MarketsReturns([]aave.Market{{
				Name:                    "AaveV3Base",
				Address:                 common.HexToAddress(marketHex),
				Chain:                   aave.Chain{ChainID: 8453, Name: "Base"},
				TotalMarketSize:         decimal.RequireFromString("1234567.891"),
				TotalAvailableLiquidity: decimal.RequireFromString("1000"),
				SupplyReserves: []aave.Reserve{{
					UnderlyingToken: aave.Token{Address: common.HexToAddress(currencyHex), Symbol: "USDC"},
					Size:            aave.TokenAmount{Amount: aave.DecimalValue{Value: decimal.RequireFromString("2500.5")}},
					SupplyInfo:      aave.SupplyInfo{APY: aave.PercentValue{Value: decimal.RequireFromString("0.0451")}},
				}},
				BorrowReserves: []aave.Reserve{{
					UnderlyingToken: aave.Token{Address: common.HexToAddress(wethHex), Symbol: "WETH"},
				}},
			}}, nil)
			fakeMarkets.UserSuppliesReturns([]aave.UserSupplyPosition{{
				Market:       aave.MarketRef{Name: "AaveV3Base", Address: common.HexToAddress(marketHex)},
				Currency:     aave.Token{Address: common.HexToAddress(currencyHex), Symbol: "USDC"},
				Balance:      aave.TokenAmount{Amount: aave.DecimalValue{Value: decimal.RequireFromString("12.5")}, USD: decimal.RequireFromString("12.5")},
				APY:          aave.PercentValue{Value: decimal.RequireFromString("0.0451")},
				IsCollateral: true,
			}}, nil)
			fakeMarkets.UserBorrowsReturns(nil, fakeErr)
			fakeMarkets.UserMarketStateReturns(&aave.MarketUserState{
				NetWorth:     decimal.RequireFromString("100"),
				HealthFactor: &health,
			}, nil)
		})

		JustBeforeEach(func() {
			overview = board.Overview(ctx)
		})

		It("formats the markets", func() {
			Expect(overview.Markets.Error).To(BeEmpty())
			Expect(overview.Markets.Items).To(HaveLen(1))
			view := overview.Markets.Items[0]
			Expect(view.TotalMarketSize).To(Equal("$1,234,567.89"))
			Expect(view.AvailableLiquidity).To(Equal("$1,000.00"))
			Expect(view.SupplyReserves).To(ConsistOf(dashboard.ReserveView{
				Symbol:   "USDC",
				Currency: common.HexToAddress(currencyHex).Hex(),
				APY:      "4.51%",
				Amount:   "2,500.50",
			}))
			Expect(view.BorrowReserves[0].Amount).To(Equal("0.00"))
		})

		It("queries the positions of every market for the connected wallet", func() {
			_, inputs, user := fakeMarkets.UserSuppliesArgsForCall(0)
			Expect(inputs).To(Equal([]aave.MarketInput{{Address: common.HexToAddress(marketHex), ChainID: 8453}}))
			Expect(user).To(Equal(session.Address()))
		})

		It("formats the supplies", func() {
			Expect(overview.Supplies.Items).To(HaveLen(1))
			Expect(overview.Supplies.Items[0].Amount).To(Equal("12.500000"))
			Expect(overview.Supplies.Items[0].USD).To(Equal("$12.50"))
			Expect(overview.Supplies.Items[0].IsCollateral).To(BeTrue())
		})

		It("reports the failing section on its own", func() {
			Expect(overview.Borrows.Error).To(Equal("fake error"))
			Expect(overview.Borrows.Items).To(BeEmpty())
			Expect(overview.Supplies.Error).To(BeEmpty())
		})

		It("shows the health of the first market", func() {
			_, market, user, chainID := fakeMarkets.UserMarketStateArgsForCall(0)
			Expect(market).To(Equal(common.HexToAddress(marketHex)))
			Expect(user).To(Equal(session.Address()))
			Expect(chainID).To(Equal(int64(8453)))

			Expect(overview.Health.HealthFactor).To(Equal("1.23"))
			Expect(overview.Health.Class).To(Equal(format.HealthWarning))
			Expect(overview.Health.NetWorth).To(Equal("$100.00"))
		})

		It("includes the status", func() {
			Expect(overview.Status.WalletConnected).To(BeTrue())
			Expect(overview.Status.WalletAddress).To(Equal(session.Address().Hex()))
			Expect(overview.Status.ChainID).To(Equal(int64(8453)))
		})

		When("there are no markets", func() {
			BeforeEach(func() {
				fakeMarkets.MarketsReturns(nil, nil)
			})

			It("reads the health of the zero address market", func() {
				_, market, _, _ := fakeMarkets.UserMarketStateArgsForCall(0)
				Expect(market).To(Equal(common.Address{}))
				Expect(overview.Markets.Items).To(BeEmpty())
			})
		})

		When("the markets cannot be loaded", func() {
			BeforeEach(func() {
				fakeMarkets.MarketsReturns(nil, fakeErr)
			})

			It("keeps the error on the markets section", func() {
				Expect(overview.Markets.Error).To(Equal("fake error"))
				Expect(overview.Supplies.Items).To(HaveLen(1))
			})
		})

		When("no wallet is connected", func() {
			BeforeEach(func() {
				fakeWallets.CurrentReturns(nil, false)
			})

			It("lists markets without user data", func() {
				_, _, user := fakeMarkets.MarketsArgsForCall(0)
				Expect(user).To(BeNil())
				Expect(fakeMarkets.UserSuppliesCallCount()).To(BeZero())
				Expect(fakeMarkets.UserBorrowsCallCount()).To(BeZero())
				Expect(fakeMarkets.UserMarketStateCallCount()).To(BeZero())
			})

			It("shows zero health", func() {
				Expect(overview.Health.HealthFactor).To(Equal(format.ZeroAmount))
				Expect(overview.Health.NetWorth).To(Equal(format.ZeroUSD))
				Expect(overview.Health.Class).To(Equal(format.HealthUnknown))
				Expect(overview.Status.WalletConnected).To(BeFalse())
			})
		})
	})
})
