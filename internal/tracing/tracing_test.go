package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jaegerConfig struct {
	agent string
}

func (c jaegerConfig) ServiceName() string {
	return "expense-bot-test"
}

func (c jaegerConfig) AgentHostPort() string {
	return c.agent
}

func Test_OnEmptyAgent_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(jaegerConfig{})

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
