package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

// Decoder reads JSON request bodies and validates them.
type Decoder struct{}

// DecodeJSONPayload decodes the body into object, rejecting unknown fields,
// and validates it. An empty body leaves object as is and is only validated.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()

	err := decoder.Decode(object)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
