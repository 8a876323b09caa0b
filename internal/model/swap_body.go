package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// Amount accepts a JSON string or number and keeps the string representation.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return errors.New("amount must be a string or a number")
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a string or a number")
	}
	*a = Amount(n.String())
	return nil
}

// SwapBody is the validated create payload. It is persisted opaquely in the
// jsonb body column and never interpreted afterwards.
type SwapBody struct {
	FromChain string  `json:"fromChain"`
	FromToken string  `json:"fromToken"`
	ToChain   string  `json:"toChain"`
	ToToken   string  `json:"toToken"`
	Amount    string  `json:"amount"`
	Receiver  string  `json:"receiver"`
	Refund    *string `json:"refund,omitempty"`
	ProofHint *string `json:"proofHint,omitempty"`
}

func (b SwapBody) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *SwapBody) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return errors.Errorf("unsupported swap body column type %T", value)
	}
}
