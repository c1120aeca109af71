package models

import (
	"time"
)

// VerificationStatus is the moderation state of a provider or company account.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// ApprovalStatus is the moderation state of a listing. Sale listings add the
// terminal "sold" state; rentals never reach it.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
	ApprovalSold     ApprovalStatus = "sold"
)

// JobStatus tracks the two-phase completion handshake of a service job.
type JobStatus string

const (
	JobPending           JobStatus = "Pending"
	JobAccepted          JobStatus = "Accepted"
	JobRejected          JobStatus = "Rejected"
	JobProviderCompleted JobStatus = "ProviderCompleted"
	JobCompleted         JobStatus = "Completed"
)

// RentalType partitions rentals for pricing and commission purposes.
type RentalType string

const (
	RentalShortTerm RentalType = "short_term"
	RentalLongTerm  RentalType = "long_term"
)

// ModeratedKind names an entity kind governed by the moderation gate.
type ModeratedKind string

const (
	KindProvider     ModeratedKind = "provider"
	KindCompany      ModeratedKind = "company"
	KindRental       ModeratedKind = "rental"
	KindPropertySale ModeratedKind = "property_sale"
	KindVehicleSale  ModeratedKind = "vehicle_sale"
)

// ServiceProvider is a verifiable actor offering prestations.
// Password holds the bcrypt hash and is never serialized to JSON.
type ServiceProvider struct {
	ID                 string             `json:"id" dynamodbav:"id"`
	FirstName          string             `json:"first_name" dynamodbav:"first_name"`
	LastName           string             `json:"last_name" dynamodbav:"last_name"`
	PhoneNumber        string             `json:"phone_number" dynamodbav:"phone_number"`
	Password           string             `json:"-" dynamodbav:"password"`
	Profession         string             `json:"profession" dynamodbav:"profession"`
	Location           string             `json:"location,omitempty" dynamodbav:"location,omitempty"`
	IsOnline           bool               `json:"is_online" dynamodbav:"is_online"`
	VerificationStatus VerificationStatus `json:"verification_status" dynamodbav:"verification_status"`
	ApprovedAt         *time.Time         `json:"approved_at,omitempty" dynamodbav:"approved_at,omitempty"`
	ApprovedBy         string             `json:"approved_by,omitempty" dynamodbav:"approved_by,omitempty"`
	RejectionReason    string             `json:"rejection_reason,omitempty" dynamodbav:"rejection_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" dynamodbav:"updated_at"`
}

// Company is a verifiable actor listing properties or vehicles.
type Company struct {
	ID                 string             `json:"id" dynamodbav:"id"`
	Name               string             `json:"name" dynamodbav:"name"`
	PhoneNumber        string             `json:"phone_number" dynamodbav:"phone_number"`
	Password           string             `json:"-" dynamodbav:"password"`
	BusinessType       string             `json:"business_type" dynamodbav:"business_type"`
	Location           string             `json:"location,omitempty" dynamodbav:"location,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status" dynamodbav:"verification_status"`
	ApprovedAt         *time.Time         `json:"approved_at,omitempty" dynamodbav:"approved_at,omitempty"`
	ApprovedBy         string             `json:"approved_by,omitempty" dynamodbav:"approved_by,omitempty"`
	RejectionReason    string             `json:"rejection_reason,omitempty" dynamodbav:"rejection_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" dynamodbav:"updated_at"`
}

// Customer is a non-verifiable account; customers can browse and book without
// passing the moderation gate.
type Customer struct {
	ID          string    `json:"id" dynamodbav:"id"`
	FirstName   string    `json:"first_name" dynamodbav:"first_name"`
	LastName    string    `json:"last_name" dynamodbav:"last_name"`
	PhoneNumber string    `json:"phone_number" dynamodbav:"phone_number"`
	Password    string    `json:"-" dynamodbav:"password"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Admin is a stored moderator account, the dynamic half of the dual admin
// authentication mode (the other half is the static access key from config).
type Admin struct {
	ID          string    `json:"id" dynamodbav:"id"`
	FirstName   string    `json:"first_name" dynamodbav:"first_name"`
	LastName    string    `json:"last_name" dynamodbav:"last_name"`
	PhoneNumber string    `json:"phone_number" dynamodbav:"phone_number"`
	Password    string    `json:"-" dynamodbav:"password"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// RentalListing is a property offered for rent. IsAvailable is orthogonal to
// moderation: an approved listing can be unavailable and vice versa.
type RentalListing struct {
	ID              string         `json:"id" dynamodbav:"id"`
	OwnerID         string         `json:"owner_id" dynamodbav:"owner_id"`
	Title           string         `json:"title" dynamodbav:"title"`
	Description     string         `json:"description" dynamodbav:"description"`
	PropertyType    string         `json:"property_type" dynamodbav:"property_type"`
	Location        string         `json:"location" dynamodbav:"location"`
	RentalPrice     int64          `json:"rental_price" dynamodbav:"rental_price"`
	RentalType      RentalType     `json:"rental_type" dynamodbav:"rental_type"`
	IsAvailable     bool           `json:"is_available" dynamodbav:"is_available"`
	Status          ApprovalStatus `json:"status" dynamodbav:"status"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty" dynamodbav:"approved_at,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty" dynamodbav:"approved_by,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty" dynamodbav:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// PropertySale is a property offered for sale; reaching "sold" is terminal.
type PropertySale struct {
	ID              string         `json:"id" dynamodbav:"id"`
	OwnerID         string         `json:"owner_id" dynamodbav:"owner_id"`
	Title           string         `json:"title" dynamodbav:"title"`
	Description     string         `json:"description" dynamodbav:"description"`
	PropertyType    string         `json:"property_type" dynamodbav:"property_type"`
	Location        string         `json:"location" dynamodbav:"location"`
	Price           int64          `json:"price" dynamodbav:"price"`
	Status          ApprovalStatus `json:"status" dynamodbav:"status"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty" dynamodbav:"approved_at,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty" dynamodbav:"approved_by,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty" dynamodbav:"rejection_reason,omitempty"`
	SoldAt          *time.Time     `json:"sold_at,omitempty" dynamodbav:"sold_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// VehicleSale is a vehicle offered for sale.
type VehicleSale struct {
	ID              string         `json:"id" dynamodbav:"id"`
	OwnerID         string         `json:"owner_id" dynamodbav:"owner_id"`
	Title           string         `json:"title" dynamodbav:"title"`
	Description     string         `json:"description" dynamodbav:"description"`
	VehicleType     string         `json:"vehicle_type" dynamodbav:"vehicle_type"`
	Location        string         `json:"location" dynamodbav:"location"`
	Price           int64          `json:"price" dynamodbav:"price"`
	Status          ApprovalStatus `json:"status" dynamodbav:"status"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty" dynamodbav:"approved_at,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty" dynamodbav:"approved_by,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty" dynamodbav:"rejection_reason,omitempty"`
	SoldAt          *time.Time     `json:"sold_at,omitempty" dynamodbav:"sold_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// VehicleRental is a rental transaction record for a vehicle (truck, tractor,
// car), priced per day. It is a commission input, not a moderated listing.
type VehicleRental struct {
	ID        string    `json:"id" dynamodbav:"id"`
	VehicleID string    `json:"vehicle_id" dynamodbav:"vehicle_id"`
	RenterID  string    `json:"renter_id" dynamodbav:"renter_id"`
	DailyRate int64     `json:"daily_rate" dynamodbav:"daily_rate"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	GSI1PK    string    `json:"-" dynamodbav:"gsi1pk"`
}

// Job is a service engagement between a client and a provider.
// Amount is the agreed price, used for prestation commission.
type Job struct {
	ID                string    `json:"id" dynamodbav:"id"`
	ServiceProviderID string    `json:"service_provider_id" dynamodbav:"service_provider_id"`
	ClientName        string    `json:"client_name" dynamodbav:"client_name"`
	ServiceType       string    `json:"service_type" dynamodbav:"service_type"`
	Description       string    `json:"description" dynamodbav:"description"`
	Location          string    `json:"location" dynamodbav:"location"`
	ScheduledDate     string    `json:"scheduled_date" dynamodbav:"scheduled_date"`
	Amount            int64     `json:"amount" dynamodbav:"amount"`
	Status            JobStatus `json:"status" dynamodbav:"status"`
	CreatedAt         time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// ChatMessage stores both the raw and the redacted text of a peer message.
// OriginalMessage is only ever returned on privileged (moderation) reads.
type ChatMessage struct {
	ID              string    `json:"id" dynamodbav:"id"`
	ListingID       string    `json:"listing_id" dynamodbav:"listing_id"`
	SenderID        string    `json:"sender_id" dynamodbav:"sender_id"`
	SenderRole      string    `json:"sender_role" dynamodbav:"sender_role"`
	Message         string    `json:"message" dynamodbav:"message"`
	OriginalMessage string    `json:"-" dynamodbav:"original_message"`
	WasFiltered     bool      `json:"was_filtered" dynamodbav:"was_filtered"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Review is customer feedback on a provider, gated on handshake evidence.
type Review struct {
	ID           string    `json:"id" dynamodbav:"id"`
	ProviderID   string    `json:"provider_id" dynamodbav:"provider_id"`
	CustomerName string    `json:"customer_name" dynamodbav:"customer_name"`
	Rating       int       `json:"rating" dynamodbav:"rating"`
	Comment      string    `json:"comment,omitempty" dynamodbav:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
}
