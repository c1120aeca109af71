package settlement

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine(store *mocks.Storage, rates RateTable) *Engine {
	e := NewEngine(store, func() RateTable { return rates }, testLogger())
	e.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func domainEntry(t *testing.T, report *RevenueReport, domain Domain) DomainReport {
	t.Helper()
	for _, entry := range report.Domains {
		if entry.Domain == domain {
			return entry
		}
	}
	t.Fatalf("domain %s missing from report", domain)
	return DomainReport{}
}

func TestReport(t *testing.T) {
	t.Run("Commission Fixture", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListCompletedJobs", mock.Anything, mock.Anything).Return([]models.Job{
			{ID: "job-1", Amount: 100_000, Status: models.JobCompleted},
		}, nil)
		mockStore.On("ListSoldPropertySales", mock.Anything, mock.Anything).Return([]models.PropertySale{
			{ID: "sale-1", Price: 10_000_000, Status: models.ApprovalSold},
		}, nil)
		mockStore.On("ListEngagedRentals", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListVehicleRentals", mock.Anything, mock.Anything).Return(nil, nil)

		engine := testEngine(mockStore, RateTable{
			DomainPrestation:   10,
			DomainPropertySale: 3,
		})

		report, err := engine.Report(context.Background(), 30)

		require.NoError(t, err)
		assert.Equal(t, int64(10_000), domainEntry(t, report, DomainPrestation).Commission)
		assert.Equal(t, int64(300_000), domainEntry(t, report, DomainPropertySale).Commission)
		assert.Equal(t, int64(310_000), report.TotalCommission)
		mockStore.AssertExpectations(t)
	})

	t.Run("Every Domain Present With Zero Activity", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListCompletedJobs", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListSoldPropertySales", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListEngagedRentals", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListVehicleRentals", mock.Anything, mock.Anything).Return(nil, nil)

		report, err := testEngine(mockStore, nil).Report(context.Background(), 30)

		require.NoError(t, err)
		require.Len(t, report.Domains, len(Domains))
		for _, entry := range report.Domains {
			assert.Zero(t, entry.Count)
			assert.Zero(t, entry.Volume)
			assert.Zero(t, entry.Commission)
		}
		assert.Zero(t, report.TotalCommission)
	})

	t.Run("Rental Monthly Approximations", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListCompletedJobs", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListSoldPropertySales", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListEngagedRentals", mock.Anything, mock.Anything).Return([]models.RentalListing{
			{ID: "r-1", RentalPrice: 1_000, RentalType: models.RentalShortTerm},
			{ID: "r-2", RentalPrice: 500_000, RentalType: models.RentalLongTerm},
		}, nil)
		mockStore.On("ListVehicleRentals", mock.Anything, mock.Anything).Return([]models.VehicleRental{
			{ID: "vr-1", DailyRate: 2_000},
		}, nil)

		report, err := testEngine(mockStore, nil).Report(context.Background(), 30)

		require.NoError(t, err)
		// Nightly and daily rates count for a 30-unit month, monthly rates once.
		assert.Equal(t, int64(30_000), domainEntry(t, report, DomainShortTermRental).Volume)
		assert.Equal(t, int64(500_000), domainEntry(t, report, DomainLongTermRental).Volume)
		assert.Equal(t, int64(60_000), domainEntry(t, report, DomainVehicleRental).Volume)
	})

	t.Run("Malformed Records Skipped", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListCompletedJobs", mock.Anything, mock.Anything).Return([]models.Job{
			{ID: "job-bad", Amount: 0},
			{ID: "job-ok", Amount: 50_000},
		}, nil)
		mockStore.On("ListSoldPropertySales", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListEngagedRentals", mock.Anything, mock.Anything).Return([]models.RentalListing{
			{ID: "r-bad", RentalPrice: 1_000, RentalType: "weekly"},
		}, nil)
		mockStore.On("ListVehicleRentals", mock.Anything, mock.Anything).Return(nil, nil)

		report, err := testEngine(mockStore, RateTable{DomainPrestation: 10}).Report(context.Background(), 30)

		require.NoError(t, err)
		prestation := domainEntry(t, report, DomainPrestation)
		assert.Equal(t, 1, prestation.Count)
		assert.Equal(t, int64(5_000), prestation.Commission)
		assert.Zero(t, domainEntry(t, report, DomainShortTermRental).Count)
	})

	t.Run("Window Defaults When Non-Positive", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListCompletedJobs", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListSoldPropertySales", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListEngagedRentals", mock.Anything, mock.Anything).Return(nil, nil)
		mockStore.On("ListVehicleRentals", mock.Anything, mock.Anything).Return(nil, nil)

		report, err := testEngine(mockStore, nil).Report(context.Background(), 0)

		require.NoError(t, err)
		assert.Equal(t, DefaultWindowDays, report.WindowDays)
	})

	t.Run("Read Failure Aborts", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListCompletedJobs", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := testEngine(mockStore, nil).Report(context.Background(), 30)

		assert.Error(t, err)
	})
}

func TestLoadRatesFallbacks(t *testing.T) {
	t.Run("Defaults When Unset", func(t *testing.T) {
		rates := LoadRates(func(string) string { return "" }, testLogger())

		assert.Equal(t, DefaultRates, rates)
	})

	t.Run("Override From Configuration", func(t *testing.T) {
		env := map[string]string{"COMMISSION_RATE_PRESTATION": "12.5"}
		rates := LoadRates(func(key string) string { return env[key] }, testLogger())

		assert.Equal(t, 12.5, rates[DomainPrestation])
		assert.Equal(t, DefaultRates[DomainPropertySale], rates[DomainPropertySale])
	})

	t.Run("Invalid Values Fall Back", func(t *testing.T) {
		env := map[string]string{
			"COMMISSION_RATE_PRESTATION":    "abc",
			"COMMISSION_RATE_PROPERTY_SALE": "150",
		}
		rates := LoadRates(func(key string) string { return env[key] }, testLogger())

		assert.Equal(t, DefaultRates[DomainPrestation], rates[DomainPrestation])
		assert.Equal(t, DefaultRates[DomainPropertySale], rates[DomainPropertySale])
	})
}
