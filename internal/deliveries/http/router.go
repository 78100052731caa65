package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/payportal/go-selfservice/internal/common/graceful"
	commonhttp "github.com/payportal/go-selfservice/internal/common/http"
	"github.com/payportal/go-selfservice/internal/common/http/middleware"
	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/config"
	"github.com/payportal/go-selfservice/internal/deliveries/http/health"
	"github.com/payportal/go-selfservice/internal/services"

	v1emailnotifications "github.com/payportal/go-selfservice/internal/deliveries/http/v1/emailnotifications"
	v1paymentlinks "github.com/payportal/go-selfservice/internal/deliveries/http/v1/paymentlinks"
	v1psptestaccount "github.com/payportal/go-selfservice/internal/deliveries/http/v1/psptestaccount"
	v1team "github.com/payportal/go-selfservice/internal/deliveries/http/v1/team"
	v1transactions "github.com/payportal/go-selfservice/internal/deliveries/http/v1/transactions"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	transactionService services.TransactionService,
	teamService services.TeamService,
	emailService services.EmailService,
	paymentLinkService services.PaymentLinkService,
	pspTestAccountService services.PspTestAccountService,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	health.New(app.Group(""))

	v1Group := app.Group("/v1")
	v1transactions.New(v1Group, transactionService)
	v1team.New(v1Group, teamService)
	v1emailnotifications.New(v1Group, emailService)
	v1paymentlinks.New(v1Group, paymentLinkService)
	v1psptestaccount.New(v1Group, pspTestAccountService)

	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
