package settlement

import (
	"log/slog"
	"strconv"
)

// Domain names a commission-bearing transaction domain.
type Domain string

const (
	DomainPrestation      Domain = "prestation"
	DomainShortTermRental Domain = "short_term_rental"
	DomainLongTermRental  Domain = "long_term_rental"
	DomainPropertySale    Domain = "property_sale"
	DomainVehicleRental   Domain = "vehicle_rental"
)

// Domains lists every commission domain in report order.
var Domains = []Domain{
	DomainPrestation,
	DomainShortTermRental,
	DomainLongTermRental,
	DomainPropertySale,
	DomainVehicleRental,
}

// RateTable maps each domain to a commission percentage (0-100). The table is
// not versioned: a rate change applies retroactively to any report computed
// after the change.
type RateTable map[Domain]float64

// DefaultRates are applied for any domain missing from configuration.
var DefaultRates = RateTable{
	DomainPrestation:      10,
	DomainShortTermRental: 10,
	DomainLongTermRental:  5,
	DomainPropertySale:    3,
	DomainVehicleRental:   10,
}

var rateEnvKeys = map[Domain]string{
	DomainPrestation:      "COMMISSION_RATE_PRESTATION",
	DomainShortTermRental: "COMMISSION_RATE_SHORT_TERM_RENTAL",
	DomainLongTermRental:  "COMMISSION_RATE_LONG_TERM_RENTAL",
	DomainPropertySale:    "COMMISSION_RATE_PROPERTY_SALE",
	DomainVehicleRental:   "COMMISSION_RATE_VEHICLE_RENTAL",
}

// LoadRates builds the current rate table from configuration, falling back to
// DefaultRates per domain. The fallback is not an error but is logged so a
// misconfigured deployment is visible.
func LoadRates(getenv func(string) string, logger *slog.Logger) RateTable {
	rates := make(RateTable, len(Domains))
	for _, domain := range Domains {
		raw := getenv(rateEnvKeys[domain])
		if raw == "" {
			logger.Warn("commission rate not configured, using default",
				slog.String("domain", string(domain)),
				slog.String("env", rateEnvKeys[domain]),
				slog.Float64("default", DefaultRates[domain]))
			rates[domain] = DefaultRates[domain]
			continue
		}
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 || rate > 100 {
			logger.Warn("invalid commission rate, using default",
				slog.String("domain", string(domain)),
				slog.String("value", raw),
				slog.Float64("default", DefaultRates[domain]))
			rates[domain] = DefaultRates[domain]
			continue
		}
		rates[domain] = rate
	}
	return rates
}

// Rate returns the configured rate for domain, falling back to the default.
func (t RateTable) Rate(domain Domain) float64 {
	if t == nil {
		return DefaultRates[domain]
	}
	if rate, ok := t[domain]; ok {
		return rate
	}
	return DefaultRates[domain]
}
