package storage

// ApiStore defines the complete set of operations needed by the HTTP API.
// It composes the granular interfaces to give the handlers one clear boundary
// for data access.
type ApiStore interface {
	AccountStore
	ModerationStore
	ListingStore
	JobStore
	MessageStore
	ReviewStore
}
