package settlement

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRates(t *testing.T) {
	t.Run("Configured Rates Win", func(t *testing.T) {
		// Arrange
		env := map[string]string{
			"COMMISSION_RATE_PRESTATION":    "12.5",
			"COMMISSION_RATE_PROPERTY_SALE": "4",
		}

		// Act
		rates := LoadRates(func(key string) string { return env[key] }, testLogger())

		// Assert
		assert.Equal(t, 12.5, rates.Rate(DomainPrestation))
		assert.Equal(t, 4.0, rates.Rate(DomainPropertySale))
		assert.Equal(t, DefaultRates[DomainVehicleRental], rates.Rate(DomainVehicleRental))
	})

	t.Run("Missing Rate Falls Back With A Warning", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		// Act
		rates := LoadRates(func(string) string { return "" }, logger)

		// Assert
		assert.Equal(t, DefaultRates[DomainPrestation], rates.Rate(DomainPrestation))
		assert.Contains(t, buf.String(), "commission rate not configured")
		assert.Contains(t, buf.String(), "COMMISSION_RATE_PRESTATION")
	})

	t.Run("Out Of Range Rate Falls Back With A Warning", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		env := map[string]string{"COMMISSION_RATE_PRESTATION": "150"}

		// Act
		rates := LoadRates(func(key string) string { return env[key] }, logger)

		// Assert
		assert.Equal(t, DefaultRates[DomainPrestation], rates.Rate(DomainPrestation))
		assert.Contains(t, buf.String(), "invalid commission rate")
	})
}
