// Package settlement computes platform commission revenue from completed
// transactions across domains. The computation is a pure read-only pass over
// a best-effort snapshot: it never mutates source records, and there is no
// cross-domain atomicity requirement.
package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
)

// DefaultWindowDays is the trailing report window when the caller does not
// supply one.
const DefaultWindowDays = 30

// Recurring rentals are not occupancy-accounted; their monthly volume is
// estimated from the listed rate. A short-term (nightly) or vehicle (daily)
// rate counts for a 30-unit month, a long-term rate counts once.
const (
	shortTermNightsPerMonth = 30
	vehicleDaysPerMonth     = 30
)

// DomainReport is the per-domain breakdown of a revenue report.
type DomainReport struct {
	Domain     Domain  `json:"domain"`
	Count      int     `json:"count"`
	Volume     int64   `json:"volume"`
	Rate       float64 `json:"rate"`
	Commission int64   `json:"commission"`
}

// RevenueReport is a derived aggregate over a rolling time window. It is
// computed on demand and never persisted.
type RevenueReport struct {
	WindowDays      int            `json:"window_days"`
	WindowStart     time.Time      `json:"window_start"`
	GeneratedAt     time.Time      `json:"generated_at"`
	Domains         []DomainReport `json:"domains"`
	TotalCommission int64          `json:"total_commission"`
}

// Engine aggregates completed transactions into revenue reports. Rates are
// read fresh on every report so a configuration change is reflected
// immediately, even retroactively over the same historical window.
type Engine struct {
	store  storage.SettlementReader
	rates  func() RateTable
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates a settlement engine. rates is called once per report.
func NewEngine(store storage.SettlementReader, rates func() RateTable, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		rates:  rates,
		logger: logger,
		now:    time.Now,
	}
}

// Report computes the revenue report for the trailing windowDays. A domain
// with no matching records contributes zero; a malformed record is skipped,
// never aborting the report.
func (e *Engine) Report(ctx context.Context, windowDays int) (*RevenueReport, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	now := e.now()
	since := now.AddDate(0, 0, -windowDays)
	rates := e.rates()

	volumes := make(map[Domain]int64, len(Domains))
	counts := make(map[Domain]int, len(Domains))

	completedJobs, err := e.store.ListCompletedJobs(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("settlement: list completed jobs: %w", err)
	}
	for _, job := range completedJobs {
		if job.Amount <= 0 {
			e.skip("job", job.ID, "non-positive amount")
			continue
		}
		volumes[DomainPrestation] += job.Amount
		counts[DomainPrestation]++
	}

	soldProperties, err := e.store.ListSoldPropertySales(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("settlement: list sold properties: %w", err)
	}
	for _, sale := range soldProperties {
		if sale.Price <= 0 {
			e.skip("property_sale", sale.ID, "non-positive price")
			continue
		}
		volumes[DomainPropertySale] += sale.Price
		counts[DomainPropertySale]++
	}

	rentals, err := e.store.ListEngagedRentals(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("settlement: list engaged rentals: %w", err)
	}
	for _, rental := range rentals {
		if rental.RentalPrice <= 0 {
			e.skip("rental", rental.ID, "non-positive price")
			continue
		}
		switch rental.RentalType {
		case models.RentalShortTerm:
			volumes[DomainShortTermRental] += rental.RentalPrice * shortTermNightsPerMonth
			counts[DomainShortTermRental]++
		case models.RentalLongTerm:
			volumes[DomainLongTermRental] += rental.RentalPrice
			counts[DomainLongTermRental]++
		default:
			e.skip("rental", rental.ID, "unknown rental_type")
		}
	}

	vehicleRentals, err := e.store.ListVehicleRentals(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("settlement: list vehicle rentals: %w", err)
	}
	for _, vr := range vehicleRentals {
		if vr.DailyRate <= 0 {
			e.skip("vehicle_rental", vr.ID, "non-positive daily rate")
			continue
		}
		volumes[DomainVehicleRental] += vr.DailyRate * vehicleDaysPerMonth
		counts[DomainVehicleRental]++
	}

	report := &RevenueReport{
		WindowDays:  windowDays,
		WindowStart: since,
		GeneratedAt: now,
		Domains:     make([]DomainReport, 0, len(Domains)),
	}
	for _, domain := range Domains {
		rate := rates.Rate(domain)
		// Rounding happens here only, never in intermediate accumulation.
		commission := int64(math.Round(float64(volumes[domain]) * rate / 100))
		report.Domains = append(report.Domains, DomainReport{
			Domain:     domain,
			Count:      counts[domain],
			Volume:     volumes[domain],
			Rate:       rate,
			Commission: commission,
		})
		report.TotalCommission += commission
	}

	return report, nil
}

func (e *Engine) skip(kind, id, reason string) {
	if e.logger == nil {
		return
	}
	e.logger.Warn("skipping record in revenue report",
		slog.String("kind", kind),
		slog.String("id", id),
		slog.String("reason", reason))
}
