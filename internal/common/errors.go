package common

import "errors"

var (
	ErrValidation               = errors.New("validation failed")
	ErrInvalidFormatDate        = errors.New("invalid format date")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrGatewayAccountNotFound   = errors.New("gateway account not found")
	ErrServiceNotFound          = errors.New("service not found")
	ErrPaymentLinkNotFound      = errors.New("payment link not found")
	ErrDisputeNotFound          = errors.New("dispute record not found")
	ErrMissingGatewayAccountID  = errors.New("missing gateway account id")
	ErrMissingServiceExternalID = errors.New("missing service external id")
	ErrInvalidEmailPatchOp      = errors.New("unsupported email notification update")
	ErrTestAccountAlreadyExists = errors.New("psp test account request already submitted")
	ErrUpstreamResponse         = errors.New("unexpected response from upstream service")
)
