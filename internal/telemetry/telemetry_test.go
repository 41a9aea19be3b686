package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/BaSui01/formflow/config"
)

func TestInitDisabledReturnsNoopProviders(t *testing.T) {
	providers, err := Init(config.TelemetryConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, providers)
	assert.Nil(t, providers.tp)
	assert.Nil(t, providers.mp)

	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestShutdownNilSafe(t *testing.T) {
	var providers *Providers
	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestNewResourceCarriesEngineAttributes(t *testing.T) {
	cfg := config.TelemetryConfig{ServiceName: "formflow-test"}

	res, err := newResource(context.Background(), cfg, []attribute.KeyValue{
		attribute.String("formflow.build_commit", "abc123"),
	})
	require.NoError(t, err)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range res.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "formflow-test", attrs[semconv.ServiceNameKey].AsString())
	assert.Equal(t, "formflow", attrs[semconv.ServiceNamespaceKey].AsString())
	assert.Equal(t, "abc123", attrs[attribute.Key("formflow.build_commit")].AsString())
}
