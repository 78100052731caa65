package emailnotifications

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/payportal/go-selfservice/internal/common"
	"github.com/payportal/go-selfservice/internal/common/http"
	"github.com/payportal/go-selfservice/internal/common/validation"
	"github.com/payportal/go-selfservice/internal/models"
	"github.com/payportal/go-selfservice/internal/services"
)

type emailNotificationsHandler struct {
	emailSrv services.EmailService
}

func New(app *echo.Group, emailSrv services.EmailService) {
	handler := emailNotificationsHandler{emailSrv}
	app.PATCH("/email-notifications", handler.updateEmailNotifications)
}

// updateEmailNotifications applies one JSON-patch style update to the
// account's email notification settings.
func (eh *emailNotificationsHandler) updateEmailNotifications(c echo.Context) error {
	gatewayAccountID := c.QueryParam("account_id")
	if gatewayAccountID == "" {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrMissingGatewayAccountID)
	}

	update := new(models.EmailNotificationUpdate)
	if err := c.Bind(update); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(update); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()

	var err error
	switch update.Path {
	case models.EmailPathCollectionMode:
		mode, _ := update.Value.(string)
		err = eh.emailSrv.SetCollectionMode(ctx, gatewayAccountID, mode)
	case models.EmailPathConfirmationEnabled:
		enabled, _ := update.Value.(bool)
		err = eh.emailSrv.SetConfirmationEnabled(ctx, gatewayAccountID, enabled)
	case models.EmailPathConfirmationBody:
		body, _ := update.Value.(string)
		err = eh.emailSrv.SetConfirmationTemplateBody(ctx, gatewayAccountID, body)
	case models.EmailPathRefundEnabled:
		enabled, _ := update.Value.(bool)
		err = eh.emailSrv.SetRefundEmailEnabled(ctx, gatewayAccountID, enabled)
	default:
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrInvalidEmailPatchOp)
	}

	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidEmailPatchOp):
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		case errors.Is(err, common.ErrGatewayAccountNotFound):
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		default:
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}
	}

	return c.NoContent(nethttp.StatusNoContent)
}
