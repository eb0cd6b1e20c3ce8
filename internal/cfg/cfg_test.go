package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("PRINTER_ADDR", "192.168.1.100:9100")
	t.Setenv("POSTGRES_USER", "kiosk")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "kiosk")
	t.Setenv("KAFKA_BROKERS", "kafka:9092,kafka2:9092")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, "192.168.1.100:9100", c.Printer.Addr)
	assert.Equal(t, "tcp", c.Printer.NetworkMode)
	assert.Equal(t, 384, c.Printer.PaperWidthPx)
	assert.Equal(t, LogoSourceFile, c.Logo.Source)
	assert.Equal(t, "Europe/Brussels", c.Receipt.Location)
	assert.Equal(t, "auto", c.Payload.SchemaMode)
	assert.Equal(t, 24*time.Hour, c.Redis.JobResultTTL)
	assert.Equal(t, []string{"kafka:9092", "kafka2:9092"}, c.Kafka.Brokers)
	assert.True(t, c.Kafka.Async)
	assert.Equal(t, "https://admin.nuagemagique.dev/orders", c.Kiosk.DashboardURL)
	assert.Equal(t, 3, c.Kiosk.ConnectivityFailures)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LOGO_SOURCE", "MINIO")
	t.Setenv("JOB_RESULT_TTL", "1h")
	t.Setenv("KAFKA_ASYNC", "false")
	t.Setenv("CONNECTIVITY_INTERVAL", "2s")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, LogoSourceMinio, c.Logo.Source)
	assert.Equal(t, time.Hour, c.Redis.JobResultTTL)
	assert.False(t, c.Kafka.Async)
	assert.Equal(t, 2*time.Second, c.Kiosk.ConnectivityInterval)
}

func TestLoad_MissingPrinterAddr(t *testing.T) {
	setRequired(t)
	t.Setenv("PRINTER_ADDR", "")

	_, err := Load(logger.NewNopLogger())
	assert.ErrorIs(t, err, e.ErrRequiredEnvVariable)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"logo source", "LOGO_SOURCE", "ftp"},
		{"paper width", "PRINTER_PAPER_WIDTH_PX", "wide"},
		{"kafka async", "KAFKA_ASYNC", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load(logger.NewNopLogger())
			assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
		})
	}
}
