package models

// Field values scrubbed upstream for PII arrive as this sentinel and must
// never be rendered verbatim.
const (
	RedactionSentinel   = "<DELETED>"
	RedactedPlaceholder = "Data unavailable"
)

// Refund summary statuses reported by the ledger.
const (
	RefundStatusUnavailable = "unavailable"
	RefundStatusAvailable   = "available"
	RefundStatusError       = "error"
	RefundStatusFull        = "full"
	RefundStatusPending     = "pending"
)

// Exemption outcome results reported by the ledger.
const (
	ExemptionTypeCorporate    = "corporate"
	ExemptionResultHonoured   = "honoured"
	ExemptionResultRejected   = "rejected"
	ExemptionResultOutOfScope = "out of scope"
)

type TransactionState struct {
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

type RefundSummary struct {
	Status          string `json:"status"`
	AmountAvailable int64  `json:"amount_available,omitempty"`
	AmountSubmitted int64  `json:"amount_submitted,omitempty"`
}

type ExemptionOutcome struct {
	Result string `json:"result"`
}

type Exemption struct {
	Requested bool              `json:"requested"`
	Type      string            `json:"type,omitempty"`
	Outcome   *ExemptionOutcome `json:"outcome,omitempty"`
}

type ThreeDSecurity struct {
	Required bool `json:"required"`
}

type AuthorisationSummary struct {
	ThreeDSecurity *ThreeDSecurity `json:"three_d_security,omitempty"`
}

type CardDetails struct {
	CardholderName string `json:"cardholder_name,omitempty"`
	CardBrand      string `json:"card_brand,omitempty"`
	LastDigits     string `json:"last_digits_card_number,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
}

// Transaction is the raw ledger record. It is fetched per request and
// never persisted by this service.
type Transaction struct {
	ChargeID             string                `json:"charge_id"`
	GatewayTransactionID string                `json:"gateway_transaction_id"`
	Amount               int64                 `json:"amount"`
	Reference            string                `json:"reference"`
	Description          string                `json:"description"`
	Email                string                `json:"email"`
	CardDetails          *CardDetails          `json:"card_details,omitempty"`
	State                TransactionState      `json:"state"`
	Disputed             bool                  `json:"disputed"`
	RefundSummary        *RefundSummary        `json:"refund_summary,omitempty"`
	Exemption            *Exemption            `json:"exemption,omitempty"`
	AuthorisationSummary *AuthorisationSummary `json:"authorisation_summary,omitempty"`
	CreatedDate          string                `json:"created_date"`
}

type TransactionEvent struct {
	EventType string `json:"event_type"`
	Status    string `json:"status"`
	Finished  bool   `json:"finished"`
	Amount    int64  `json:"amount,omitempty"`
	Timestamp string `json:"timestamp"`
}

// DisputeData is the dispute record for a payment, keyed by the parent
// transaction.
type DisputeData struct {
	Amount          int64  `json:"amount"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status,omitempty"`
	EvidenceDueDate string `json:"evidence_due_date,omitempty"`
}

type TransactionSummary struct {
	Payments struct {
		Count      int64 `json:"count"`
		GrossTotal int64 `json:"gross_total"`
	} `json:"payments"`
	Refunds struct {
		Count      int64 `json:"count"`
		GrossTotal int64 `json:"gross_total"`
	} `json:"refunds"`
	NetIncome int64 `json:"net_income"`
}
