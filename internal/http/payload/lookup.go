package payload

import (
	"regexp"
	"strings"

	"github.com/jellydator/validation"
)

// MaxLookupHashes bounds a single transaction lookup.
const MaxLookupHashes = 50

var txHashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

// TransactionsRequest carries the hashes of a transaction lookup, taken from
// the query string, the path or a decoded RLP list.
type TransactionsRequest struct {
	Transactions []string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transactions,
			validation.Required,
			validation.Length(1, MaxLookupHashes),
			validation.Each(validation.Match(txHashRegex)),
		),
	)
}

// Hashes returns the lowercased hashes without duplicates, in request order.
func (t TransactionsRequest) Hashes() []string {
	seen := make(map[string]struct{}, len(t.Transactions))
	hashes := make([]string, 0, len(t.Transactions))
	for _, h := range t.Transactions {
		h = strings.ToLower(h)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		hashes = append(hashes, h)
	}
	return hashes
}
