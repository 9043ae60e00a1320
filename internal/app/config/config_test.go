package config

import (
	"errors"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PERSISTENCE_SINKS", "webhook, minio")
	t.Setenv("APP_ASSESSMENT_IDLE_TIMEOUT_IN_MINUTES", "15")
	t.Setenv("PERSISTENCE_TIMEOUT_IN_SECONDS", "3")

	cfg := NewInternalConfig()

	assert.Equal(t, []string{"webhook", "minio"}, cfg.Persistence.Sinks)
	assert.True(t, cfg.SinkEnabled(constvars.SinkWebhook))
	assert.False(t, cfg.SinkEnabled(constvars.SinkMongo))
	assert.True(t, cfg.PersistenceEnabled())
	assert.Equal(t, 15*time.Minute, cfg.IdleTimeout())
	assert.Equal(t, 3*time.Second, cfg.PersistenceTimeout())
}

func TestInternalConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     InternalConfig
		wantErr bool
	}{
		{
			name: "no sinks",
			cfg:  InternalConfig{},
		},
		{
			name:    "unknown sink",
			cfg:     InternalConfig{Persistence: AppPersistence{Sinks: []string{"s3"}}},
			wantErr: true,
		},
		{
			name:    "webhook without url",
			cfg:     InternalConfig{Persistence: AppPersistence{Sinks: []string{constvars.SinkWebhook}}},
			wantErr: true,
		},
		{
			name: "webhook with url",
			cfg: InternalConfig{
				Persistence: AppPersistence{Sinks: []string{constvars.SinkWebhook}},
				Webhook:     AppWebhook{URL: "https://collector.example/outcomes"},
			},
		},
		{
			name:    "minio without bucket",
			cfg:     InternalConfig{Persistence: AppPersistence{Sinks: []string{constvars.SinkMinio}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		})
	}
}
