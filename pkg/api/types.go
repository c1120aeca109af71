// Package api defines the wire types of the HTTP surface. Domain models are
// never encoded directly; handlers translate through pkg/mapping so the wire
// shape can evolve independently of storage.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// VerificationStatus mirrors the moderation state of an actor account.
type VerificationStatus string

// ApprovalStatus mirrors the moderation state of a listing.
type ApprovalStatus string

// JobStatus mirrors the handshake state of a job.
type JobStatus string

// NewProvider is the request body for provider registration.
type NewProvider struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Profession  string `json:"profession"`
	Location    string `json:"location,omitempty"`
}

// Provider is the public view of a service provider account.
type Provider struct {
	Id                 openapi_types.UUID `json:"id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	PhoneNumber        string             `json:"phone_number"`
	Profession         string             `json:"profession"`
	Location           string             `json:"location,omitempty"`
	IsOnline           bool               `json:"is_online"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// NewCompany is the request body for company registration.
type NewCompany struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Password     string `json:"password"`
	BusinessType string `json:"business_type"`
	Location     string `json:"location,omitempty"`
}

// Company is the public view of a company account.
type Company struct {
	Id                 openapi_types.UUID `json:"id"`
	Name               string             `json:"name"`
	PhoneNumber        string             `json:"phone_number"`
	BusinessType       string             `json:"business_type"`
	Location           string             `json:"location,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// NewCustomer is the request body for customer registration.
type NewCustomer struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Customer is the view of a customer account.
type Customer struct {
	Id          openapi_types.UUID `json:"id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	PhoneNumber string             `json:"phone_number"`
	CreatedAt   time.Time          `json:"created_at"`
}

// NewAdmin is the request body for creating a stored admin account.
type NewAdmin struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Admin is the view of a stored admin account.
type Admin struct {
	Id          openapi_types.UUID `json:"id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	PhoneNumber string             `json:"phone_number"`
	CreatedAt   time.Time          `json:"created_at"`
}

// OnlineUpdate flips a provider's online flag.
type OnlineUpdate struct {
	IsOnline bool `json:"is_online"`
}

// LoginRequest carries phone-based credentials.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Session is the response to a successful login.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Id    string `json:"id"`
}

// RejectionRequest carries the optional reason for a moderation rejection.
type RejectionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// NewRental is the request body for creating a rental listing.
type NewRental struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	PropertyType string `json:"property_type"`
	Location     string `json:"location"`
	RentalPrice  int64  `json:"rental_price"`
	RentalType   string `json:"rental_type"`
}

// Rental is the view of a rental listing.
type Rental struct {
	Id              openapi_types.UUID `json:"id"`
	OwnerId         openapi_types.UUID `json:"owner_id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	PropertyType    string             `json:"property_type"`
	Location        string             `json:"location"`
	RentalPrice     int64              `json:"rental_price"`
	RentalType      string             `json:"rental_type"`
	IsAvailable     bool               `json:"is_available"`
	Status          ApprovalStatus     `json:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// AvailabilityUpdate flips a rental's availability flag.
type AvailabilityUpdate struct {
	IsAvailable bool `json:"is_available"`
}

// NewPropertySale is the request body for creating a property sale listing.
type NewPropertySale struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	PropertyType string `json:"property_type"`
	Location     string `json:"location"`
	Price        int64  `json:"price"`
}

// PropertySale is the view of a property sale listing.
type PropertySale struct {
	Id              openapi_types.UUID `json:"id"`
	OwnerId         openapi_types.UUID `json:"owner_id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	PropertyType    string             `json:"property_type"`
	Location        string             `json:"location"`
	Price           int64              `json:"price"`
	Status          ApprovalStatus     `json:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	SoldAt          *time.Time         `json:"sold_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewVehicleSale is the request body for creating a vehicle sale listing.
type NewVehicleSale struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VehicleType string `json:"vehicle_type"`
	Location    string `json:"location"`
	Price       int64  `json:"price"`
}

// VehicleSale is the view of a vehicle sale listing.
type VehicleSale struct {
	Id              openapi_types.UUID `json:"id"`
	OwnerId         openapi_types.UUID `json:"owner_id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	VehicleType     string             `json:"vehicle_type"`
	Location        string             `json:"location"`
	Price           int64              `json:"price"`
	Status          ApprovalStatus     `json:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	SoldAt          *time.Time         `json:"sold_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewJob is the request body for requesting a service engagement.
type NewJob struct {
	ServiceProviderId openapi_types.UUID `json:"service_provider_id"`
	ClientName        string             `json:"client_name"`
	ServiceType       string             `json:"service_type"`
	Description       string             `json:"description"`
	Location          string             `json:"location"`
	ScheduledDate     string             `json:"scheduled_date"`
	Amount            int64              `json:"amount"`
}

// Job is the view of a service engagement.
type Job struct {
	Id                openapi_types.UUID `json:"id"`
	ServiceProviderId openapi_types.UUID `json:"service_provider_id"`
	ClientName        string             `json:"client_name"`
	ServiceType       string             `json:"service_type"`
	Description       string             `json:"description"`
	Location          string             `json:"location"`
	ScheduledDate     string             `json:"scheduled_date"`
	Amount            int64              `json:"amount"`
	Status            JobStatus          `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NewMessage is the request body for sending a chat message.
type NewMessage struct {
	SenderId   openapi_types.UUID `json:"sender_id"`
	SenderRole string             `json:"sender_role"`
	Message    string             `json:"message"`
}

// Message is the counterparty view of a chat message: always the filtered
// text, never the raw one.
type Message struct {
	Id          openapi_types.UUID `json:"id"`
	ListingId   openapi_types.UUID `json:"listing_id"`
	SenderId    openapi_types.UUID `json:"sender_id"`
	SenderRole  string             `json:"sender_role"`
	Message     string             `json:"message"`
	WasFiltered bool               `json:"was_filtered"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ModerationMessage is the privileged view of a chat message, including the
// raw text for abuse review.
type ModerationMessage struct {
	Message
	OriginalMessage string `json:"original_message,omitempty"`
}

// NewReview is the request body for reviewing a provider.
type NewReview struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
}

// Review is the view of a provider review.
type Review struct {
	Id           openapi_types.UUID `json:"id"`
	ProviderId   openapi_types.UUID `json:"provider_id"`
	CustomerName string             `json:"customer_name"`
	Rating       int                `json:"rating"`
	Comment      string             `json:"comment,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ReviewStats is the aggregate rating view for one provider. The
// distribution always carries all five star buckets.
type ReviewStats struct {
	TotalReviews       int            `json:"total_reviews"`
	AverageRating      float64        `json:"average_rating"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// PlatformStats is the admin dashboard summary: counts per collection plus
// the job pipeline broken down by status.
type PlatformStats struct {
	TotalProviders    int `json:"total_providers"`
	PendingProviders  int `json:"pending_providers"`
	ApprovedProviders int `json:"approved_providers"`
	OnlineProviders   int `json:"online_providers"`
	TotalJobs         int `json:"total_jobs"`
	PendingJobs       int `json:"pending_jobs"`
	AcceptedJobs      int `json:"accepted_jobs"`
	CompletedJobs     int `json:"completed_jobs"`
	TotalCustomers    int `json:"total_customers"`
	TotalRentals      int `json:"total_rentals"`
}
