package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/google/uuid"
)

const (
	phoneNumberIndex        = "phone_number-index"
	verificationStatusIndex = "verification_status-index"
)

// CreateProvider stores a new provider in the pending verification state.
func (s *Store) CreateProvider(ctx context.Context, provider *models.ServiceProvider) (*models.ServiceProvider, error) {
	if existing, err := s.GetProviderByPhone(ctx, provider.PhoneNumber); err == nil && existing != nil {
		return nil, storage.ErrPhoneAlreadyRegistered
	}

	now := time.Now()
	provider.ID = uuid.New().String()
	provider.VerificationStatus = models.VerificationPending
	provider.RejectionReason = ""
	provider.CreatedAt = now
	provider.UpdatedAt = now

	if err := s.putItem(ctx, s.Tables.Providers, provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	return provider, nil
}

// GetProvider retrieves a provider by id.
func (s *Store) GetProvider(ctx context.Context, id string) (*models.ServiceProvider, error) {
	var provider models.ServiceProvider
	if err := s.getItem(ctx, s.Tables.Providers, "provider", id, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetProviderByPhone looks a provider up by phone number.
func (s *Store) GetProviderByPhone(ctx context.Context, phone string) (*models.ServiceProvider, error) {
	var providers []models.ServiceProvider
	if err := s.queryByPhone(ctx, s.Tables.Providers, phone, &providers); err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, &models.NotFoundError{Kind: "provider", ID: phone}
	}
	return &providers[0], nil
}

// ListProviders returns every provider regardless of verification status, for
// the moderation dashboard.
func (s *Store) ListProviders(ctx context.Context) ([]models.ServiceProvider, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Providers),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan providers: %w", err)
	}
	var providers []models.ServiceProvider
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &providers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal providers: %w", err)
	}
	return providers, nil
}

// ListPublicProviders returns only approved providers. The visibility gate is
// evaluated here, at query time, so a revoked approval disappears on the next
// read.
func (s *Store) ListPublicProviders(ctx context.Context) ([]models.ServiceProvider, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Providers),
		IndexName:              aws.String(verificationStatusIndex),
		KeyConditionExpression: aws.String("verification_status = :approved"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(models.VerificationApproved)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query approved providers: %w", err)
	}
	var providers []models.ServiceProvider
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &providers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal providers: %w", err)
	}
	return providers, nil
}

// SetProviderOnline flips the provider's online flag.
func (s *Store) SetProviderOnline(ctx context.Context, id string, online bool) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Providers),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET is_online = :online, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":online": &types.AttributeValueMemberBOOL{Value: online},
			":now":    timeAttr(time.Now()),
		},
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return &models.NotFoundError{Kind: "provider", ID: id}
		}
		return fmt.Errorf("failed to update provider online status: %w", err)
	}
	return nil
}

// CreateCompany stores a new company in the pending verification state.
func (s *Store) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if existing, err := s.GetCompanyByPhone(ctx, company.PhoneNumber); err == nil && existing != nil {
		return nil, storage.ErrPhoneAlreadyRegistered
	}

	now := time.Now()
	company.ID = uuid.New().String()
	company.VerificationStatus = models.VerificationPending
	company.RejectionReason = ""
	company.CreatedAt = now
	company.UpdatedAt = now

	if err := s.putItem(ctx, s.Tables.Companies, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

// GetCompany retrieves a company by id.
func (s *Store) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := s.getItem(ctx, s.Tables.Companies, "company", id, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// GetCompanyByPhone looks a company up by phone number.
func (s *Store) GetCompanyByPhone(ctx context.Context, phone string) (*models.Company, error) {
	var companies []models.Company
	if err := s.queryByPhone(ctx, s.Tables.Companies, phone, &companies); err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, &models.NotFoundError{Kind: "company", ID: phone}
	}
	return &companies[0], nil
}

// ListPublicCompanies returns only approved companies.
func (s *Store) ListPublicCompanies(ctx context.Context) ([]models.Company, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Companies),
		IndexName:              aws.String(verificationStatusIndex),
		KeyConditionExpression: aws.String("verification_status = :approved"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(models.VerificationApproved)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query approved companies: %w", err)
	}
	var companies []models.Company
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &companies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal companies: %w", err)
	}
	return companies, nil
}

// CreateCustomer stores a new customer account.
func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if existing, err := s.GetCustomerByPhone(ctx, customer.PhoneNumber); err == nil && existing != nil {
		return nil, storage.ErrPhoneAlreadyRegistered
	}

	customer.ID = uuid.New().String()
	customer.CreatedAt = time.Now()

	if err := s.putItem(ctx, s.Tables.Customers, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// GetCustomerByPhone looks a customer up by phone number.
func (s *Store) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customers []models.Customer
	if err := s.queryByPhone(ctx, s.Tables.Customers, phone, &customers); err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, &models.NotFoundError{Kind: "customer", ID: phone}
	}
	return &customers[0], nil
}

// ListCustomers returns every customer account, for the admin dashboard.
func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Customers),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}
	var customers []models.Customer
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &customers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customers: %w", err)
	}
	return customers, nil
}

// CreateAdmin stores a new moderator account.
func (s *Store) CreateAdmin(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	if existing, err := s.GetAdminByPhone(ctx, admin.PhoneNumber); err == nil && existing != nil {
		return nil, storage.ErrPhoneAlreadyRegistered
	}

	admin.ID = uuid.New().String()
	admin.CreatedAt = time.Now()

	if err := s.putItem(ctx, s.Tables.Admins, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// GetAdminByPhone looks a stored admin up by phone number.
func (s *Store) GetAdminByPhone(ctx context.Context, phone string) (*models.Admin, error) {
	var admins []models.Admin
	if err := s.queryByPhone(ctx, s.Tables.Admins, phone, &admins); err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, &models.NotFoundError{Kind: "admin", ID: phone}
	}
	return &admins[0], nil
}

// putItem writes a new record, refusing to overwrite an existing id.
func (s *Store) putItem(ctx context.Context, table string, record any) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

// getItem fetches one record by id into out, returning NotFoundError when
// the id does not exist.
func (s *Store) getItem(ctx context.Context, table, kind, id string, out any) error {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if result.Item == nil {
		return &models.NotFoundError{Kind: kind, ID: id}
	}
	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", kind, err)
	}
	return nil
}

// queryByPhone queries the phone_number GSI of an account table.
func (s *Store) queryByPhone(ctx context.Context, table, phone string, out any) error {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(phoneNumberIndex),
		KeyConditionExpression: aws.String("phone_number = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to query by phone number: %w", err)
	}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, out); err != nil {
		return fmt.Errorf("failed to unmarshal phone number query: %w", err)
	}
	return nil
}

func timeAttr(t time.Time) types.AttributeValue {
	av, err := attributevalue.Marshal(t)
	if err != nil {
		// time.Time marshalling cannot fail for valid times.
		return &types.AttributeValueMemberS{Value: t.Format(time.RFC3339Nano)}
	}
	return av
}
