package storage

import (
	"context"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// ReviewStore persists provider reviews. The review-eligibility gate lives in
// the handler layer (it needs JobStore evidence), not here.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	ListReviewsByProvider(ctx context.Context, providerID string) ([]models.Review, error)
}
