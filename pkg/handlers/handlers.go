// Package handlers assembles the HTTP surface. Route groups mirror the three
// trust levels: public, authenticated account, and verified moderator.
package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/accounts"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/chat"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/jobs"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/listings"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/moderation"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/reviews"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/revenue"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/middleware"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/settlement"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
)

// Config carries the dependencies of the HTTP surface.
type Config struct {
	Store      storage.Storage
	Tokens     *auth.Service
	Moderators auth.ModeratorVerifier
	Engine     *settlement.Engine
	Logger     *slog.Logger
}

// NewRouter builds the full route tree.
func NewRouter(cfg Config) chi.Router {
	accountsHandler := accounts.NewAccountsHandler(cfg.Store, cfg.Tokens)
	listingsHandler := listings.NewListingsHandler(cfg.Store)
	jobsHandler := jobs.NewJobsHandler(cfg.Store)
	chatHandler := chat.NewChatHandler(cfg.Store)
	reviewsHandler := reviews.NewReviewsHandler(cfg.Store, cfg.Store)
	moderationHandler := moderation.NewModerationHandler(cfg.Store)
	revenueHandler := revenue.NewRevenueHandler(cfg.Engine, cfg.Store, cfg.Store, cfg.Store)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Route("/api", func(r chi.Router) {
		// Public surface. Detail routes take an optional token so owners can
		// see their own pending listings.
		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalUser(cfg.Tokens))

			r.Post("/login", accountsHandler.Login)
			r.Post("/providers", accountsHandler.RegisterProvider)
			r.Post("/companies", accountsHandler.RegisterCompany)
			r.Post("/customers", accountsHandler.RegisterCustomer)

			r.Get("/providers", accountsHandler.ListPublicProviders)
			r.Get("/providers/{providerId}", accountsHandler.GetProvider)
			r.Get("/companies", accountsHandler.ListPublicCompanies)

			r.Get("/rentals", listingsHandler.ListRentals)
			r.Get("/rentals/{listingId}", listingsHandler.GetRental)
			r.Get("/property-sales", listingsHandler.ListPropertySales)
			r.Get("/property-sales/{listingId}", listingsHandler.GetPropertySale)
			r.Get("/vehicle-sales", listingsHandler.ListVehicleSales)
			r.Get("/vehicle-sales/{listingId}", listingsHandler.GetVehicleSale)

			// Booking and confirmation are open to unauthenticated customers.
			r.Post("/jobs", jobsHandler.CreateJob)
			r.Get("/jobs/confirmable", jobsHandler.ListConfirmableJobs)
			r.Get("/jobs/{jobId}", jobsHandler.GetJob)
			r.Post("/jobs/{jobId}/confirm", jobsHandler.Confirm)

			r.Get("/providers/{providerId}/reviews", reviewsHandler.ListProviderReviews)
			r.Get("/providers/{providerId}/reviews/stats", reviewsHandler.GetProviderReviewStats)
			r.Post("/providers/{providerId}/reviews", reviewsHandler.CreateReview)

			r.Post("/listings/{listingId}/messages", chatHandler.SendMessage)
			r.Get("/listings/{listingId}/messages", chatHandler.ListConversation)
		})

		// Authenticated surface.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser(cfg.Tokens))

			r.Get("/me", accountsHandler.Me)
			r.Put("/me/online", accountsHandler.SetOnline)
			r.Get("/me/jobs", jobsHandler.ListMyJobs)

			r.Post("/rentals", listingsHandler.CreateRental)
			r.Post("/property-sales", listingsHandler.CreatePropertySale)
			r.Post("/vehicle-sales", listingsHandler.CreateVehicleSale)
			r.Put("/rentals/{listingId}/availability", listingsHandler.SetAvailability)

			r.Post("/jobs/{jobId}/accept", jobsHandler.Accept)
			r.Post("/jobs/{jobId}/reject", jobsHandler.Reject)
			r.Post("/jobs/{jobId}/complete", jobsHandler.Complete)
		})

		// Moderation surface.
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireModerator(cfg.Moderators))

			r.Post("/admins", accountsHandler.RegisterAdmin)
			r.Get("/providers", accountsHandler.ListProviders)
			r.Get("/rentals/pending", listingsHandler.ListPendingRentals)

			r.Post("/{kind}/{id}/approve", moderationHandler.Approve)
			r.Post("/{kind}/{id}/reject", moderationHandler.Reject)
			r.Post("/{kind}/{id}/sold", moderationHandler.MarkSold)

			r.Get("/listings/{listingId}/messages", chatHandler.ListConversationPrivileged)

			r.Get("/revenue/report", revenueHandler.GetReport)
			r.Get("/stats", revenueHandler.GetStats)
		})
	})

	return r
}
