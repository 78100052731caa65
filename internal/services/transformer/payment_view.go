package transformer

import (
	"github.com/payportal/go-selfservice/internal/common/currency"
	"github.com/payportal/go-selfservice/internal/common/dateutil"
	"github.com/payportal/go-selfservice/internal/models"
)

// BuildPaymentView maps a raw ledger transaction, its event history and an
// optional dispute record into the flat shape the templates render. Pure
// function of its inputs.
func BuildPaymentView(transaction models.Transaction, events []models.TransactionEvent, disputeData *models.DisputeData, corporateExemptionsEnabled bool) models.PaymentView {
	view := models.PaymentView{
		ChargeID:             transaction.ChargeID,
		GatewayTransactionID: transaction.GatewayTransactionID,
		Amount:               transaction.Amount,
		AmountFriendly:       currency.PoundsFriendly(transaction.Amount),
		Reference:            redact(transaction.Reference),
		Description:          redact(transaction.Description),
		Email:                redact(transaction.Email),
		State:                transaction.State,
		Disputed:             transaction.Disputed,
		CreatedDate:          transaction.CreatedDate,
		Events:               events,
	}

	if created, err := dateutil.FormatDisplay(transaction.CreatedDate); err == nil {
		view.CreatedDateFriendly = created
	}

	if transaction.CardDetails != nil {
		view.CardDetails = &models.CardDetailsView{
			CardholderName: redact(transaction.CardDetails.CardholderName),
			CardBrand:      transaction.CardDetails.CardBrand,
			LastDigits:     transaction.CardDetails.LastDigits,
			ExpiryDate:     transaction.CardDetails.ExpiryDate,
		}
	}

	view.Refundable, view.RefundUnavailableDueToDispute = refundability(transaction)

	if disputeData != nil {
		view.Dispute = &models.DisputeView{
			AmountFriendly:  currency.PoundsFriendly(disputeData.Amount),
			Reason:          disputeData.Reason,
			Status:          disputeData.Status,
			EvidenceDueDate: disputeData.EvidenceDueDate,
		}
	}

	view.ThreeDSecure = threeDSecure(transaction)
	view.CorporateExemptionRequested = corporateExemption(transaction, corporateExemptionsEnabled)

	return view
}

func redact(value string) string {
	if value == models.RedactionSentinel {
		return models.RedactedPlaceholder
	}
	return value
}

// refundability derives (refundable, refund_unavailable_due_to_dispute)
// from the refund summary. For disputed payments the dispute rules win:
// an "error" status still refundable because the ledger reports transient
// gateway errors there while the money remains claimable.
func refundability(transaction models.Transaction) (refundable, unavailableDueToDispute bool) {
	if transaction.RefundSummary == nil {
		return false, false
	}

	status := transaction.RefundSummary.Status

	if !transaction.Disputed {
		return status == models.RefundStatusAvailable, false
	}

	switch status {
	case models.RefundStatusUnavailable:
		return false, true
	case models.RefundStatusAvailable, models.RefundStatusError:
		return true, false
	default:
		// full, pending: nothing left (or nothing yet) to refund
		return false, false
	}
}

func threeDSecure(transaction models.Transaction) *string {
	if transaction.AuthorisationSummary == nil || transaction.AuthorisationSummary.ThreeDSecurity == nil {
		return nil
	}
	if transaction.AuthorisationSummary.ThreeDSecurity.Required {
		return ptr(models.ThreeDSecureRequired)
	}
	return ptr(models.ThreeDSecureNotRequired)
}

// corporateExemption decides the corporate-exemption display value. The
// field only distinguishes "this was a corporate exemption outcome" from
// "corporate exemptions exist on this account but weren't used", so
// accounts without the feature never see "Not requested".
func corporateExemption(transaction models.Transaction, enabled bool) *string {
	exemption := transaction.Exemption

	if exemption != nil && exemption.Requested && exemption.Type == models.ExemptionTypeCorporate {
		if exemption.Outcome == nil {
			return nil
		}
		switch exemption.Outcome.Result {
		case models.ExemptionResultHonoured:
			return ptr(models.CorporateExemptionHonoured)
		case models.ExemptionResultRejected:
			return ptr(models.CorporateExemptionRejected)
		case models.ExemptionResultOutOfScope:
			return ptr(models.CorporateExemptionOutOfScope)
		default:
			return nil
		}
	}

	if enabled {
		return ptr(models.CorporateExemptionNotRequested)
	}
	return nil
}

func ptr(s string) *string {
	return &s
}
