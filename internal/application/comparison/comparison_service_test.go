package comparison

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/comparison"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, query catalog.ProductQuery, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, query, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, term string, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, query catalog.ProductQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

// MockRecordRepository is a mock implementation of comparison.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Save(ctx context.Context, record *comparison.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]comparison.Record, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comparison.Record), args.Error(1)
}

var _ comparison.RecordRepository = (*MockRecordRepository)(nil)

func newTestComparisonService() (*ComparisonService, *MockProductRepository, *MockRecordRepository) {
	productRepo := new(MockProductRepository)
	recordRepo := new(MockRecordRepository)
	service := NewComparisonService(productRepo, recordRepo, zap.NewNop())
	return service, productRepo, recordRepo
}

func newTestProduct(t *testing.T, name string, specs map[string]string) *catalog.Product {
	product, err := catalog.NewProduct(name, "", "TestBrand", decimal.NewFromInt(100), 10)
	require.NoError(t, err)
	if specs != nil {
		product.SetSpecifications(specs)
	}
	return product
}

func TestComparisonService_Compare_UnionAndWinners(t *testing.T) {
	service, productRepo, _ := newTestComparisonService()

	left := newTestProduct(t, "Phone A", map[string]string{
		"Price":   "999.99",
		"RAM":     "8GB",
		"Storage": "256",
	})
	right := newTestProduct(t, "Phone B", map[string]string{
		"Price":  "1299.99",
		"RAM":    "12GB",
		"Camera": "48MP",
	})

	productRepo.On("FindByID", mock.Anything, left.ID).Return(left, nil)
	productRepo.On("FindByID", mock.Anything, right.ID).Return(right, nil)

	result, err := service.Compare(context.Background(), left.ID, right.ID, nil)
	require.NoError(t, err)

	// Union of {Price, RAM, Storage} and {Price, RAM, Camera}
	require.Len(t, result.Rows, 4)

	assert.Equal(t, comparison.WinnerRight, result.Rows["Price"].Winner)
	assert.Equal(t, "999.99", result.Rows["Price"].LeftValue)
	assert.Equal(t, "1299.99", result.Rows["Price"].RightValue)

	// Unit-suffixed values fail the strict numeric parse and tie
	assert.Equal(t, comparison.WinnerTie, result.Rows["RAM"].Winner)

	// Keys present on only one side show N/A on the other and tie
	assert.Equal(t, "256", result.Rows["Storage"].LeftValue)
	assert.Equal(t, comparison.NotAvailable, result.Rows["Storage"].RightValue)
	assert.Equal(t, comparison.WinnerTie, result.Rows["Storage"].Winner)
	assert.Equal(t, comparison.NotAvailable, result.Rows["Camera"].LeftValue)

	assert.Equal(t, left.ID, result.Left.ID)
	assert.Equal(t, right.ID, result.Right.ID)
}

func TestComparisonService_Compare_SelfComparisonAllTies(t *testing.T) {
	service, productRepo, _ := newTestComparisonService()

	product := newTestProduct(t, "Phone A", map[string]string{
		"Price": "999.99",
		"RAM":   "8GB",
	})

	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	result, err := service.Compare(context.Background(), product.ID, product.ID, nil)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	for key, row := range result.Rows {
		assert.Equal(t, row.LeftValue, row.RightValue, "key %s", key)
		assert.Equal(t, comparison.WinnerTie, row.Winner, "key %s", key)
	}
}

func TestComparisonService_Compare_ProductNotFound(t *testing.T) {
	service, productRepo, recordRepo := newTestComparisonService()

	left := newTestProduct(t, "Phone A", nil)
	missingID := uuid.New()

	productRepo.On("FindByID", mock.Anything, left.ID).Return(left, nil).Maybe()
	productRepo.On("FindByID", mock.Anything, missingID).Return(nil, shared.ErrNotFound)

	result, err := service.Compare(context.Background(), left.ID, missingID, nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	recordRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestComparisonService_Compare_EmptySpecifications(t *testing.T) {
	service, productRepo, _ := newTestComparisonService()

	left := newTestProduct(t, "Phone A", nil)
	right := newTestProduct(t, "Phone B", nil)
	// Corrupt blob decodes to an empty map instead of failing
	right.Specifications = "{not json"

	productRepo.On("FindByID", mock.Anything, left.ID).Return(left, nil)
	productRepo.On("FindByID", mock.Anything, right.ID).Return(right, nil)

	result, err := service.Compare(context.Background(), left.ID, right.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestComparisonService_Compare_RecordsHistoryForAuthenticatedCaller(t *testing.T) {
	service, productRepo, recordRepo := newTestComparisonService()

	left := newTestProduct(t, "Phone A", nil)
	right := newTestProduct(t, "Phone B", nil)
	userID := uuid.New()

	productRepo.On("FindByID", mock.Anything, left.ID).Return(left, nil)
	productRepo.On("FindByID", mock.Anything, right.ID).Return(right, nil)
	recordRepo.On("Save", mock.Anything, mock.MatchedBy(func(r *comparison.Record) bool {
		return r.UserID == userID && r.LeftProductID == left.ID && r.RightProductID == right.ID
	})).Return(nil)

	_, err := service.Compare(context.Background(), left.ID, right.ID, &userID)
	require.NoError(t, err)

	recordRepo.AssertExpectations(t)
}

func TestComparisonService_Compare_AnonymousCallerSkipsHistory(t *testing.T) {
	service, productRepo, recordRepo := newTestComparisonService()

	left := newTestProduct(t, "Phone A", nil)
	right := newTestProduct(t, "Phone B", nil)

	productRepo.On("FindByID", mock.Anything, left.ID).Return(left, nil)
	productRepo.On("FindByID", mock.Anything, right.ID).Return(right, nil)

	_, err := service.Compare(context.Background(), left.ID, right.ID, nil)
	require.NoError(t, err)

	recordRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestComparisonService_Compare_HistoryWriteFailureIsSwallowed(t *testing.T) {
	service, productRepo, recordRepo := newTestComparisonService()

	left := newTestProduct(t, "Phone A", map[string]string{"Price": "10"})
	right := newTestProduct(t, "Phone B", map[string]string{"Price": "20"})
	userID := uuid.New()

	productRepo.On("FindByID", mock.Anything, left.ID).Return(left, nil)
	productRepo.On("FindByID", mock.Anything, right.ID).Return(right, nil)
	recordRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db unavailable"))

	result, err := service.Compare(context.Background(), left.ID, right.ID, &userID)

	// The comparison result is the primary deliverable
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, comparison.WinnerRight, result.Rows["Price"].Winner)
	recordRepo.AssertExpectations(t)
}

func TestComparisonService_GetHistory(t *testing.T) {
	service, productRepo, recordRepo := newTestComparisonService()

	userID := uuid.New()
	left := newTestProduct(t, "Phone A", nil)
	right := newTestProduct(t, "Phone B", nil)

	record, err := comparison.NewRecord(userID, left.ID, right.ID)
	require.NoError(t, err)
	record.ComparedAt = time.Now().Add(-time.Minute)

	recordRepo.On("FindByUser", mock.Anything, userID, DefaultHistoryLimit).
		Return([]comparison.Record{*record}, nil)
	productRepo.On("FindByIDs", mock.Anything, mock.Anything).
		Return([]catalog.Product{*left, *right}, nil)

	entries, err := service.GetHistory(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Phone A", entries[0].LeftProductName)
	assert.Equal(t, "Phone B", entries[0].RightProductName)
	assert.Equal(t, record.ComparedAt, entries[0].ComparedAt)
}

func TestComparisonService_GetHistory_DeletedProductGetsPlaceholder(t *testing.T) {
	service, productRepo, recordRepo := newTestComparisonService()

	userID := uuid.New()
	left := newTestProduct(t, "Phone A", nil)
	deletedID := uuid.New()

	record, err := comparison.NewRecord(userID, left.ID, deletedID)
	require.NoError(t, err)

	recordRepo.On("FindByUser", mock.Anything, userID, DefaultHistoryLimit).
		Return([]comparison.Record{*record}, nil)
	productRepo.On("FindByIDs", mock.Anything, mock.Anything).
		Return([]catalog.Product{*left}, nil)

	entries, err := service.GetHistory(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Phone A", entries[0].LeftProductName)
	assert.Equal(t, unknownProductName, entries[0].RightProductName)
}

func TestComparisonService_GetHistory_Empty(t *testing.T) {
	service, _, recordRepo := newTestComparisonService()

	userID := uuid.New()
	recordRepo.On("FindByUser", mock.Anything, userID, DefaultHistoryLimit).
		Return([]comparison.Record{}, nil)

	entries, err := service.GetHistory(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
