// Package mapping converts between domain models and API wire types.
package mapping

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// toUUID parses a stored identifier into its wire form. Identifiers are
// generated as UUIDs on creation; malformed ones map to the zero UUID.
func toUUID(id string) openapi_types.UUID {
	parsed, _ := uuid.Parse(id)
	return parsed
}

// ToApiProvider converts a domain ServiceProvider to its API view.
func ToApiProvider(p *models.ServiceProvider) *api.Provider {
	return &api.Provider{
		Id:                 toUUID(p.ID),
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		PhoneNumber:        p.PhoneNumber,
		Profession:         p.Profession,
		Location:           p.Location,
		IsOnline:           p.IsOnline,
		VerificationStatus: api.VerificationStatus(p.VerificationStatus),
		RejectionReason:    p.RejectionReason,
		CreatedAt:          p.CreatedAt,
	}
}

// ToDomainNewProvider converts a registration request to a domain model.
// The password field carries the plaintext; the caller hashes it before the
// record is stored.
func ToDomainNewProvider(np *api.NewProvider) *models.ServiceProvider {
	return &models.ServiceProvider{
		FirstName:   np.FirstName,
		LastName:    np.LastName,
		PhoneNumber: np.PhoneNumber,
		Password:    np.Password,
		Profession:  np.Profession,
		Location:    np.Location,
	}
}

// ToApiCompany converts a domain Company to its API view.
func ToApiCompany(c *models.Company) *api.Company {
	return &api.Company{
		Id:                 toUUID(c.ID),
		Name:               c.Name,
		PhoneNumber:        c.PhoneNumber,
		BusinessType:       c.BusinessType,
		Location:           c.Location,
		VerificationStatus: api.VerificationStatus(c.VerificationStatus),
		RejectionReason:    c.RejectionReason,
		CreatedAt:          c.CreatedAt,
	}
}

// ToDomainNewCompany converts a registration request to a domain model.
func ToDomainNewCompany(nc *api.NewCompany) *models.Company {
	return &models.Company{
		Name:         nc.Name,
		PhoneNumber:  nc.PhoneNumber,
		Password:     nc.Password,
		BusinessType: nc.BusinessType,
		Location:     nc.Location,
	}
}

// ToApiCustomer converts a domain Customer to its API view.
func ToApiCustomer(c *models.Customer) *api.Customer {
	return &api.Customer{
		Id:          toUUID(c.ID),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
	}
}

// ToDomainNewCustomer converts a registration request to a domain model.
func ToDomainNewCustomer(nc *api.NewCustomer) *models.Customer {
	return &models.Customer{
		FirstName:   nc.FirstName,
		LastName:    nc.LastName,
		PhoneNumber: nc.PhoneNumber,
		Password:    nc.Password,
	}
}

// ToApiAdmin converts a domain Admin to its API view.
func ToApiAdmin(a *models.Admin) *api.Admin {
	return &api.Admin{
		Id:          toUUID(a.ID),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
	}
}

// ToDomainNewAdmin converts an admin creation request to a domain model.
func ToDomainNewAdmin(na *api.NewAdmin) *models.Admin {
	return &models.Admin{
		FirstName:   na.FirstName,
		LastName:    na.LastName,
		PhoneNumber: na.PhoneNumber,
		Password:    na.Password,
	}
}

// ToApiRental converts a domain RentalListing to its API view.
func ToApiRental(l *models.RentalListing) *api.Rental {
	return &api.Rental{
		Id:              toUUID(l.ID),
		OwnerId:         toUUID(l.OwnerID),
		Title:           l.Title,
		Description:     l.Description,
		PropertyType:    l.PropertyType,
		Location:        l.Location,
		RentalPrice:     l.RentalPrice,
		RentalType:      string(l.RentalType),
		IsAvailable:     l.IsAvailable,
		Status:          api.ApprovalStatus(l.Status),
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// ToDomainNewRental converts a creation request to a domain model. Ownership
// comes from the authenticated caller, not the body.
func ToDomainNewRental(nr *api.NewRental, ownerID string) *models.RentalListing {
	return &models.RentalListing{
		OwnerID:      ownerID,
		Title:        nr.Title,
		Description:  nr.Description,
		PropertyType: nr.PropertyType,
		Location:     nr.Location,
		RentalPrice:  nr.RentalPrice,
		RentalType:   models.RentalType(nr.RentalType),
		IsAvailable:  true,
	}
}

// ToApiPropertySale converts a domain PropertySale to its API view.
func ToApiPropertySale(s *models.PropertySale) *api.PropertySale {
	return &api.PropertySale{
		Id:              toUUID(s.ID),
		OwnerId:         toUUID(s.OwnerID),
		Title:           s.Title,
		Description:     s.Description,
		PropertyType:    s.PropertyType,
		Location:        s.Location,
		Price:           s.Price,
		Status:          api.ApprovalStatus(s.Status),
		RejectionReason: s.RejectionReason,
		SoldAt:          s.SoldAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToDomainNewPropertySale converts a creation request to a domain model.
func ToDomainNewPropertySale(ns *api.NewPropertySale, ownerID string) *models.PropertySale {
	return &models.PropertySale{
		OwnerID:      ownerID,
		Title:        ns.Title,
		Description:  ns.Description,
		PropertyType: ns.PropertyType,
		Location:     ns.Location,
		Price:        ns.Price,
	}
}

// ToApiVehicleSale converts a domain VehicleSale to its API view.
func ToApiVehicleSale(s *models.VehicleSale) *api.VehicleSale {
	return &api.VehicleSale{
		Id:              toUUID(s.ID),
		OwnerId:         toUUID(s.OwnerID),
		Title:           s.Title,
		Description:     s.Description,
		VehicleType:     s.VehicleType,
		Location:        s.Location,
		Price:           s.Price,
		Status:          api.ApprovalStatus(s.Status),
		RejectionReason: s.RejectionReason,
		SoldAt:          s.SoldAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToDomainNewVehicleSale converts a creation request to a domain model.
func ToDomainNewVehicleSale(ns *api.NewVehicleSale, ownerID string) *models.VehicleSale {
	return &models.VehicleSale{
		OwnerID:     ownerID,
		Title:       ns.Title,
		Description: ns.Description,
		VehicleType: ns.VehicleType,
		Location:    ns.Location,
		Price:       ns.Price,
	}
}

// ToApiJob converts a domain Job to its API view.
func ToApiJob(j *models.Job) *api.Job {
	return &api.Job{
		Id:                toUUID(j.ID),
		ServiceProviderId: toUUID(j.ServiceProviderID),
		ClientName:        j.ClientName,
		ServiceType:       j.ServiceType,
		Description:       j.Description,
		Location:          j.Location,
		ScheduledDate:     j.ScheduledDate,
		Amount:            j.Amount,
		Status:            api.JobStatus(j.Status),
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

// ToDomainNewJob converts a job request to a domain model.
func ToDomainNewJob(nj *api.NewJob) *models.Job {
	return &models.Job{
		ServiceProviderID: nj.ServiceProviderId.String(),
		ClientName:        nj.ClientName,
		ServiceType:       nj.ServiceType,
		Description:       nj.Description,
		Location:          nj.Location,
		ScheduledDate:     nj.ScheduledDate,
		Amount:            nj.Amount,
	}
}

// ToApiMessage converts a domain ChatMessage to the counterparty view.
func ToApiMessage(m *models.ChatMessage) *api.Message {
	return &api.Message{
		Id:          toUUID(m.ID),
		ListingId:   toUUID(m.ListingID),
		SenderId:    toUUID(m.SenderID),
		SenderRole:  m.SenderRole,
		Message:     m.Message,
		WasFiltered: m.WasFiltered,
		CreatedAt:   m.CreatedAt,
	}
}

// ToApiModerationMessage converts a domain ChatMessage to the privileged
// view, which includes the raw text.
func ToApiModerationMessage(m *models.ChatMessage) *api.ModerationMessage {
	return &api.ModerationMessage{
		Message:         *ToApiMessage(m),
		OriginalMessage: m.OriginalMessage,
	}
}

// ToApiReview converts a domain Review to its API view.
func ToApiReview(r *models.Review) *api.Review {
	return &api.Review{
		Id:           toUUID(r.ID),
		ProviderId:   toUUID(r.ProviderID),
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

// ToDomainNewReview converts a review request to a domain model. The provider
// comes from the URL, not the body.
func ToDomainNewReview(nr *api.NewReview, providerID string) *models.Review {
	return &models.Review{
		ProviderID:   providerID,
		CustomerName: nr.CustomerName,
		Rating:       nr.Rating,
		Comment:      nr.Comment,
	}
}
