package format_test

import (
	"lendboard/internal/format"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var _ = Describe("Format", func() {
	Describe("missing values", func() {
		It("render as zero", func() {
			Expect(format.Amount(nil, 2)).To(Equal("0.00"))
			Expect(format.Amount(nil, 6)).To(Equal("0.00"))
			Expect(format.USD(nil)).To(Equal("$0.00"))
			Expect(format.HealthFactor(nil)).To(Equal("0.00"))
			Expect(format.Percent(nil)).To(Equal("0.00%"))
		})
	})

	DescribeTable("Amount",
		func(value string, decimals int, expected string) {
			Expect(format.Amount(dec(value), decimals)).To(Equal(expected))
		},
		Entry("two digits", "1.5", 2, "1.50"),
		Entry("rounding", "2.345678", 2, "2.35"),
		Entry("grouping", "1234567.891", 2, "1,234,567.89"),
		Entry("token precision", "0.1234567", 6, "0.123457"),
		Entry("zero", "0", 2, "0.00"),
	)

	DescribeTable("USD",
		func(value string, expected string) {
			Expect(format.USD(dec(value))).To(Equal(expected))
		},
		Entry("small", "3.1", "$3.10"),
		Entry("large", "98765.432", "$98,765.43"),
	)

	DescribeTable("HealthFactor",
		func(value string, expected string) {
			Expect(format.HealthFactor(dec(value))).To(Equal(expected))
		},
		Entry("regular", "1.876", "1.88"),
		Entry("above the limit", "115792089237316195423570985008687907853269984665640564039457.584007913129639935", "∞"),
		Entry("just above the limit", "1000000000000000000.5", "∞"),
	)

	It("renders ratios as percentages", func() {
		Expect(format.Percent(dec("0.0451"))).To(Equal("4.51%"))
	})

	DescribeTable("ClassifyHealth",
		func(value *decimal.Decimal, expected format.HealthClass) {
			Expect(format.ClassifyHealth(value)).To(Equal(expected))
		},
		Entry("unknown", nil, format.HealthUnknown),
		Entry("healthy", dec("1.51"), format.HealthGood),
		Entry("boundary is a warning", dec("1.5"), format.HealthWarning),
		Entry("warning", dec("1.2"), format.HealthWarning),
		Entry("one is danger", dec("1"), format.HealthDanger),
		Entry("danger", dec("0.9"), format.HealthDanger),
	)
})
