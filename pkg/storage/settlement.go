package storage

import (
	"context"
	"time"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// SettlementReader supplies the read pass for the commission engine. All
// methods are read-only and windowed: only records whose qualifying event
// falls at or after since are returned. The pass is a best-effort snapshot;
// there is no cross-domain atomicity.
type SettlementReader interface {
	// ListCompletedJobs returns jobs that reached Completed inside the window.
	ListCompletedJobs(ctx context.Context, since time.Time) ([]models.Job, error)

	// ListSoldPropertySales returns property listings sold inside the window.
	ListSoldPropertySales(ctx context.Context, since time.Time) ([]models.PropertySale, error)

	// ListEngagedRentals returns approved rentals taken off the market inside
	// the window, partitioned later by rental_type.
	ListEngagedRentals(ctx context.Context, since time.Time) ([]models.RentalListing, error)

	// ListVehicleRentals returns vehicle rental transactions opened inside
	// the window.
	ListVehicleRentals(ctx context.Context, since time.Time) ([]models.VehicleRental, error)
}
