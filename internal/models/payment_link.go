package models

// PaymentLink is a product of type ADHOC exposed through the products
// service.
type PaymentLink struct {
	ExternalID       string `json:"external_id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Price            int64  `json:"price,omitempty"`
	Language         string `json:"language,omitempty"`
	PayLinkURL       string `json:"pay_link_url,omitempty"`
	ReferenceEnabled bool   `json:"reference_enabled"`
}

type CreatePaymentLinkRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Price            int64  `json:"price" validate:"omitempty,gt=0"`
	Language         string `json:"language" validate:"omitempty,oneof=en cy"`
	ReferenceEnabled bool   `json:"reference_enabled"`
	ReferenceLabel   string `json:"reference_label" validate:"required_if=ReferenceEnabled true"`
}
