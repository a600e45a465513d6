package ethereum_test

import (
	"context"
	"errors"
	"lendboard/internal/ethereum"
	"lendboard/internal/ethereum/fake"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TokenBalance", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		token      common.Address
		owner      common.Address
	)

	selector := func(signature string) []byte {
		return crypto.Keccak256([]byte(signature))[:4]
	}

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		service = ethereum.NewEthService(zap.NewNop().Sugar(), fakeClient)
		token = common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
		owner = common.HexToAddress("0x2222222222222222222222222222222222222222")

		fakeClient.CallContractStub = func(_ context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
			switch string(msg.Data[:4]) {
			case string(selector("balanceOf(address)")):
				return common.LeftPadBytes(big.NewInt(2_500_000).Bytes(), 32), nil
			case string(selector("decimals()")):
				return common.LeftPadBytes([]byte{6}, 32), nil
			}
			return nil, errors.New("unknown method")
		}
	})

	It("reads balance and decimals from the token", func() {
		balance, decimals, err := service.TokenBalance(context.Background(), token, owner)
		Expect(err).NotTo(HaveOccurred())
		Expect(balance).To(Equal(big.NewInt(2_500_000)))
		Expect(decimals).To(Equal(uint8(6)))

		Expect(fakeClient.CallContractCallCount()).To(Equal(2))
		_, msg, block := fakeClient.CallContractArgsForCall(0)
		Expect(*msg.To).To(Equal(token))
		Expect(msg.Data[16:36]).To(Equal(owner.Bytes()))
		Expect(block).To(BeNil())
	})

	When("the call fails", func() {
		BeforeEach(func() {
			fakeClient.CallContractStub = nil
			fakeClient.CallContractReturns(nil, errors.New("execution reverted"))
		})

		It("returns the error", func() {
			_, _, err := service.TokenBalance(context.Background(), token, owner)
			Expect(err).To(MatchError(ContainSubstring("call balanceOf: execution reverted")))
		})
	})
})
