package main

import (
	"context"
	"sync"
	"time"

	"github.com/payportal/go-selfservice/cmd/setup"
	"github.com/payportal/go-selfservice/internal/common/graceful"
	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config,
		s.Service.Transaction,
		s.Service.Team,
		s.Service.Email,
		s.Service.PaymentLink,
		s.Service.PspTestAccount,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	log.Info(ctx, "http server stopped!")
}
