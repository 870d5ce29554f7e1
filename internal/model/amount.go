package model

// AmountRequest represents request for POST /nano/amount/{to-raw,to-nano,unit-to-raw}
type AmountRequest struct {
	Amount string `json:"amount" example:"1.5"`
}

// AmountResponse represents a converted or computed amount
type AmountResponse struct {
	Amount string `json:"amount" example:"1500000000000000000000000000000"`
}

// AmountPairRequest represents request for POST /nano/amount/{add,subtract,compare}
// Both values are raw integers.
type AmountPairRequest struct {
	Raw     string `json:"raw"`
	BaseRaw string `json:"baseRaw"`
}

// CompareResponse represents response for POST /nano/amount/compare
type CompareResponse struct {
	Cmp            int  `json:"cmp"`
	Greater        bool `json:"greater"`
	GreaterOrEqual bool `json:"greaterOrEqual"`
}
