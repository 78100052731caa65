package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	PrometheusRegisterer() prometheus.Registerer
	Collaborator() *CollaboratorMetrics
}

type metrics struct {
	reg                 prometheus.Registerer
	collaboratorMetrics *CollaboratorMetrics
}

func New() Metrics {
	reg := prometheus.DefaultRegisterer
	return &metrics{
		reg:                 reg,
		collaboratorMetrics: newCollaboratorMetrics(reg),
	}
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) Collaborator() *CollaboratorMetrics {
	return m.collaboratorMetrics
}
