package storage

import (
	"context"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// AccountStore persists the actor records: providers, companies, customers
// and stored admins. Phone numbers are unique per collection.
type AccountStore interface {
	CreateProvider(ctx context.Context, provider *models.ServiceProvider) (*models.ServiceProvider, error)
	GetProvider(ctx context.Context, id string) (*models.ServiceProvider, error)
	GetProviderByPhone(ctx context.Context, phone string) (*models.ServiceProvider, error)
	ListProviders(ctx context.Context) ([]models.ServiceProvider, error)
	// ListPublicProviders applies the visibility gate at query time.
	ListPublicProviders(ctx context.Context) ([]models.ServiceProvider, error)
	SetProviderOnline(ctx context.Context, id string, online bool) error

	CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	GetCompanyByPhone(ctx context.Context, phone string) (*models.Company, error)
	ListPublicCompanies(ctx context.Context) ([]models.Company, error)

	CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)

	CreateAdmin(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	GetAdminByPhone(ctx context.Context, phone string) (*models.Admin, error)
}
