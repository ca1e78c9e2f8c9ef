// Package tracing installs the global opentracing tracer.
package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init reports every span to the Jaeger agent. Without an agent the global
// noop tracer stays in place.
func Init(config config) (io.Closer, error) {
	if config.AgentHostPort() == "" {
		logger.Info("tracing disabled")
		return nopCloser{}, nil
	}

	cfg := jaegercfg.Configuration{
		ServiceName: config.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.AgentHostPort(),
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "create jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("agent", config.AgentHostPort()))
	return closer, nil
}
