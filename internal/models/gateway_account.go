package models

// Email collection modes accepted by connector.
const (
	EmailCollectionMandatory = "MANDATORY"
	EmailCollectionOptional  = "OPTIONAL"
	EmailCollectionOff       = "OFF"
)

type EmailNotificationSetting struct {
	Enabled      bool   `json:"enabled"`
	TemplateBody string `json:"template_body,omitempty"`
}

type EmailNotifications struct {
	PaymentConfirmed EmailNotificationSetting `json:"PAYMENT_CONFIRMED"`
	RefundIssued     EmailNotificationSetting `json:"REFUND_ISSUED"`
}

// GatewayAccount is the connector record for one merchant account. The
// corporate-exemptions flag on it gates the exemption field on payment
// views.
type GatewayAccount struct {
	GatewayAccountID           string             `json:"gateway_account_id"`
	Type                       string             `json:"type"`
	PaymentProvider            string             `json:"payment_provider"`
	ServiceName                string             `json:"service_name"`
	CorporateExemptionsEnabled bool               `json:"corporate_exemptions_enabled"`
	EmailCollectionMode        string             `json:"email_collection_mode"`
	EmailNotifications         EmailNotifications `json:"email_notifications"`
}

// EmailNotificationUpdate is one JSON-patch style operation forwarded to
// connector.
type EmailNotificationUpdate struct {
	Op    string      `json:"op" validate:"required,eq=replace"`
	Path  string      `json:"path" validate:"required"`
	Value interface{} `json:"value" validate:"required"`
}

// Patch paths connector understands for email notification settings.
const (
	EmailPathCollectionMode      = "email_collection_mode"
	EmailPathConfirmationEnabled = "/payment_confirmed/enabled"
	EmailPathConfirmationBody    = "/payment_confirmed/template_body"
	EmailPathRefundEnabled       = "/refund_issued/enabled"
)
