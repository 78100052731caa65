package setup

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/payportal/go-selfservice/internal/clients/adminusers"
	"github.com/payportal/go-selfservice/internal/clients/connector"
	"github.com/payportal/go-selfservice/internal/clients/ledger"
	"github.com/payportal/go-selfservice/internal/clients/products"
	"github.com/payportal/go-selfservice/internal/clients/zendesk"
	"github.com/payportal/go-selfservice/internal/common/cache"
	"github.com/payportal/go-selfservice/internal/common/graceful"
	"github.com/payportal/go-selfservice/internal/common/log"
	cMetrics "github.com/payportal/go-selfservice/internal/common/metrics"
	"github.com/payportal/go-selfservice/internal/config"
	"github.com/payportal/go-selfservice/internal/models"
	"github.com/payportal/go-selfservice/internal/services"
)

type Setup struct {
	Config  config.Config
	Redis   *redis.Client
	Service *services.Services
	Metrics cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load("/config", ".", "./config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	setup = &Setup{
		Config: cfg,
	}

	logOpts := []log.Option{log.WithLevel(cfg.App.LogLevel)}
	if config.StringToEnvironment(cfg.App.Env) == config.LOCAL_ENV {
		logOpts = append(logOpts, log.WithDevelopmentEncoder())
	}
	log.Init(fmt.Sprintf("%s-%s", cfg.App.Name, command), logOpts...)

	setup.Metrics = cMetrics.New()

	var accountCache cache.Client[models.GatewayAccount]
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return setup, stopper, fmt.Errorf("failed to connect redis: %w", err)
		}

		setup.Redis = redisClient
		stopper = append(stopper, func(ctx context.Context) error {
			return redisClient.Close()
		})

		if err := setup.Metrics.RegisterRedis(redisClient, cfg.App.Name, "cache"); err != nil {
			log.Warnf(ctx, "failed to register redis metrics: %v", err)
		}

		accountCache = cache.NewRedisClient[models.GatewayAccount](redisClient)
	} else {
		inMemory := cache.NewInMemoryClient[models.GatewayAccount]()
		stopper = append(stopper, func(ctx context.Context) error {
			inMemory.Close()
			return nil
		})
		accountCache = inMemory
	}

	ledgerClient := ledger.New(cfg.Ledger, setup.Metrics)
	connectorClient := connector.New(cfg.Connector, setup.Metrics, accountCache, cfg.GatewayAccountCacheTTL)
	adminUsersClient := adminusers.New(cfg.AdminUsers, setup.Metrics)
	zendeskClient := zendesk.New(cfg.Zendesk, setup.Metrics)
	productsClient := products.New(cfg.Products, setup.Metrics)

	setup.Service = services.New(
		cfg,
		ledgerClient,
		connectorClient,
		adminUsersClient,
		zendeskClient,
		productsClient,
		setup.Metrics,
	)

	return setup, stopper, nil
}
