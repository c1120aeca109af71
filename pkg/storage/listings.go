package storage

import (
	"context"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// RentalFilter narrows public rental queries. Availability is independent of
// moderation; both nil fields mean "no filter".
type RentalFilter struct {
	RentalType  *models.RentalType
	IsAvailable *bool
}

// ListingReader serves the public and owner-facing query surface. The public
// List* methods apply the visibility gate (status == approved) at query time.
type ListingReader interface {
	GetRental(ctx context.Context, id string) (*models.RentalListing, error)
	GetPropertySale(ctx context.Context, id string) (*models.PropertySale, error)
	GetVehicleSale(ctx context.Context, id string) (*models.VehicleSale, error)

	ListPublicRentals(ctx context.Context, filter RentalFilter) ([]models.RentalListing, error)
	ListPublicPropertySales(ctx context.Context) ([]models.PropertySale, error)
	ListPublicVehicleSales(ctx context.Context) ([]models.VehicleSale, error)

	// ListPendingListings serves the moderation queue for one listing kind.
	ListPendingRentals(ctx context.Context) ([]models.RentalListing, error)

	// ListRentals returns every rental regardless of moderation status, for
	// the admin dashboard counts.
	ListRentals(ctx context.Context) ([]models.RentalListing, error)
}

// ListingWriter creates listings and mutates their non-moderated fields.
type ListingWriter interface {
	CreateRental(ctx context.Context, listing *models.RentalListing) (*models.RentalListing, error)
	CreatePropertySale(ctx context.Context, sale *models.PropertySale) (*models.PropertySale, error)
	CreateVehicleSale(ctx context.Context, sale *models.VehicleSale) (*models.VehicleSale, error)

	// SetRentalAvailability flips the availability boolean; it does not touch
	// the moderation status.
	SetRentalAvailability(ctx context.Context, id string, available bool) error
}

// ListingStore combines the reader and writer interfaces.
type ListingStore interface {
	ListingReader
	ListingWriter
}
