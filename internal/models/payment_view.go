package models

// Display strings for the optional payment-view fields. Absence is
// expressed with nil pointers, never empty strings, so the serialisation
// layer can distinguish "absent" from "present but empty".
const (
	ThreeDSecureRequired    = "Required"
	ThreeDSecureNotRequired = "Not required"

	CorporateExemptionHonoured     = "Honoured"
	CorporateExemptionRejected     = "Rejected"
	CorporateExemptionOutOfScope   = "Out of scope"
	CorporateExemptionNotRequested = "Not requested"
)

type CardDetailsView struct {
	CardholderName string `json:"cardholder_name,omitempty"`
	CardBrand      string `json:"card_brand,omitempty"`
	LastDigits     string `json:"last_digits_card_number,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
}

type DisputeView struct {
	AmountFriendly  string `json:"amount_friendly"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status,omitempty"`
	EvidenceDueDate string `json:"evidence_due_date,omitempty"`
}

// PaymentView is the render-ready shape of a single payment. Constructed
// fresh per request and discarded after render.
type PaymentView struct {
	ChargeID             string `json:"charge_id"`
	GatewayTransactionID string `json:"gateway_transaction_id"`
	Amount               int64  `json:"amount"`
	AmountFriendly       string `json:"amount_friendly"`
	Reference            string `json:"reference"`
	Description          string `json:"description"`
	Email                string `json:"email"`

	CardDetails *CardDetailsView `json:"card_details,omitempty"`

	State               TransactionState `json:"state"`
	Disputed            bool             `json:"disputed"`
	CreatedDate         string           `json:"created_date"`
	CreatedDateFriendly string           `json:"created_date_friendly"`

	Refundable                    bool `json:"refundable"`
	RefundUnavailableDueToDispute bool `json:"refund_unavailable_due_to_dispute"`

	Dispute                     *DisputeView `json:"dispute,omitempty"`
	ThreeDSecure                *string      `json:"three_d_secure,omitempty"`
	CorporateExemptionRequested *string      `json:"corporate_exemption_requested,omitempty"`

	Events []TransactionEvent `json:"events,omitempty"`
}
