package payload_test

import (
	"net/http/httptest"
	"strings"

	"lendboard/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	marketHex   = "0xA238Dd80C259a72e81d7e4664a9801593F98d1c5"
	currencyHex = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
)

var _ = Describe("Payload", func() {
	Describe("OperationRequest", func() {
		DescribeTable("validates",
			func(req payload.OperationRequest, valid bool) {
				if valid {
					Expect(req.Validate()).To(Succeed())
				} else {
					Expect(req.Validate()).NotTo(Succeed())
				}
			},
			Entry("decimal amount", payload.OperationRequest{Market: marketHex, Currency: currencyHex, Amount: "0.5"}, true),
			Entry("max amount", payload.OperationRequest{Market: marketHex, Currency: currencyHex, Amount: "MAX"}, true),
			Entry("zero amount", payload.OperationRequest{Market: marketHex, Currency: currencyHex, Amount: "0"}, false),
			Entry("text amount", payload.OperationRequest{Market: marketHex, Currency: currencyHex, Amount: "abc"}, false),
			Entry("missing amount", payload.OperationRequest{Market: marketHex, Currency: currencyHex}, false),
			Entry("short currency", payload.OperationRequest{Market: marketHex, Currency: "0x83", Amount: "1"}, false),
			Entry("missing market", payload.OperationRequest{Currency: currencyHex, Amount: "1"}, false),
		)
	})

	Describe("QuickRequest", func() {
		It("accepts an empty amount", func() {
			Expect(payload.QuickRequest{}.Validate()).To(Succeed())
		})

		It("rejects a negative amount", func() {
			Expect(payload.QuickRequest{Amount: "-2"}.Validate()).NotTo(Succeed())
		})
	})

	Describe("TransactionsRequest", func() {
		It("requires full length hashes", func() {
			valid := "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
			Expect(payload.TransactionsRequest{Transactions: []string{valid}}.Validate()).To(Succeed())
			Expect(payload.TransactionsRequest{Transactions: []string{valid[:20]}}.Validate()).NotTo(Succeed())
			Expect(payload.TransactionsRequest{}.Validate()).NotTo(Succeed())
		})

		It("caps the batch size", func() {
			hashes := make([]string, payload.MaxLookupHashes+1)
			for i := range hashes {
				hashes[i] = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
			}
			Expect(payload.TransactionsRequest{Transactions: hashes}.Validate()).NotTo(Succeed())
		})

		It("drops duplicate hashes regardless of case", func() {
			lower := "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
			other := "0x9b2f6a3c5b9a2b7f5e3d6a1c0f8e2d4b6a8c0e2f4a6b8d0c2e4f6a8b0c2d4e6f"
			req := payload.TransactionsRequest{Transactions: []string{lower, other, "0x" + strings.ToUpper(lower[2:])}}
			Expect(req.Hashes()).To(Equal([]string{lower, other}))
		})
	})

	Describe("AuthRequest", func() {
		It("rejects a blank username", func() {
			Expect(payload.AuthRequest{Username: "   ", Password: "pw"}.Validate()).NotTo(Succeed())
		})

		It("trims the username", func() {
			Expect(payload.AuthRequest{Username: " alice ", Password: "pw"}.ToMessage().Username).To(Equal("alice"))
		})
	})

	Describe("Decoder", func() {
		var decoder payload.Decoder

		It("decodes and validates", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"pw"}`))
			var auth payload.AuthRequest
			Expect(decoder.DecodeJSONPayload(req, &auth)).To(Succeed())
			Expect(auth.ToMessage().Username).To(Equal("alice"))
		})

		It("rejects unknown fields", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"pw","role":"admin"}`))
			var auth payload.AuthRequest
			Expect(decoder.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("decoding json payload")))
		})

		It("validates an empty body", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(""))
			var auth payload.AuthRequest
			Expect(decoder.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("validating payload")))

			var quick payload.QuickRequest
			req = httptest.NewRequest("POST", "/", strings.NewReader(""))
			Expect(decoder.DecodeJSONPayload(req, &quick)).To(Succeed())
		})
	})
})
