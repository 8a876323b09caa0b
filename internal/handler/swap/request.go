package swap

import (
	"github.com/synzk/hub-backend/internal/model"
)

// CreateSwapRequest mirrors the public create payload. Validation happens
// through the binding tags; amount accepts a string or a number and is stored
// as its string form. The pointer keeps "amount must be present" separate
// from its value: an empty string is a legal amount, a missing or null one
// is not.
type CreateSwapRequest struct {
	FromChain string        `json:"fromChain" binding:"required"`
	FromToken string        `json:"fromToken" binding:"required"`
	ToChain   string        `json:"toChain" binding:"required"`
	ToToken   string        `json:"toToken" binding:"required"`
	Amount    *model.Amount `json:"amount" binding:"required"`
	Receiver  string        `json:"receiver" binding:"required,min=8"`
	Refund    *string       `json:"refund" binding:"omitempty,min=8"`
	ProofHint *string       `json:"proofHint"`
}

func (r *CreateSwapRequest) toBody() model.SwapBody {
	return model.SwapBody{
		FromChain: r.FromChain,
		FromToken: r.FromToken,
		ToChain:   r.ToChain,
		ToToken:   r.ToToken,
		Amount:    string(*r.Amount),
		Receiver:  r.Receiver,
		Refund:    r.Refund,
		ProofHint: r.ProofHint,
	}
}

type CreateSwapResponse struct {
	SwapID string           `json:"swapId"`
	Status model.SwapStatus `json:"status"`
	Mode   string           `json:"mode"`
}
