package payload

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

var errAmount = errors.New("must be a positive decimal")

// OperationRequest is the body of supply, borrow, repay and withdraw.
type OperationRequest struct {
	Market   string `json:"market"`
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

func (o OperationRequest) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Market, validation.Required, validation.Match(addressRegex)),
		validation.Field(&o.Currency, validation.Required, validation.Match(addressRegex)),
		validation.Field(&o.Amount, validation.Required, validation.By(amountOrMax)),
	)
}

// QuickRequest is the optional body of a quick action.
type QuickRequest struct {
	Amount string `json:"amount"`
}

func (q QuickRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Amount, validation.By(positiveAmount)),
	)
}

type ConnectRequest struct {
	Account    string `json:"account"`
	Passphrase string `json:"passphrase"`
}

func (c ConnectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Account, validation.Match(addressRegex)),
	)
}

// "max" is only meaningful for repay, which is checked by the operation itself
func amountOrMax(value any) error {
	s, _ := value.(string)
	if strings.EqualFold(strings.TrimSpace(s), "max") {
		return nil
	}
	return positiveAmount(value)
}

func positiveAmount(value any) error {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil || !amount.IsPositive() {
		return errAmount
	}
	return nil
}
