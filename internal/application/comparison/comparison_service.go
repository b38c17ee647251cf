package comparison

import (
	"context"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/comparison"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultHistoryLimit caps how many history entries a single lookup returns
const DefaultHistoryLimit = 50

// unknownProductName is shown for history entries whose product was deleted
const unknownProductName = "Unknown product"

// ComparisonService compares two catalog products attribute by attribute
// and keeps a per-user history of comparisons
type ComparisonService struct {
	productRepo  catalog.ProductRepository
	recordRepo   comparison.RecordRepository
	historyLimit int
	logger       *zap.Logger
}

// NewComparisonService creates a new comparison service
func NewComparisonService(
	productRepo catalog.ProductRepository,
	recordRepo comparison.RecordRepository,
	logger *zap.Logger,
) *ComparisonService {
	return &ComparisonService{
		productRepo:  productRepo,
		recordRepo:   recordRepo,
		historyLimit: DefaultHistoryLimit,
		logger:       logger,
	}
}

// Compare resolves both products, builds the attribute comparison table and,
// for authenticated callers, appends a history record. The history write is
// best-effort: its failure is logged and never fails the comparison.
// Comparing a product with itself is legal and yields all-tie rows.
func (s *ComparisonService) Compare(ctx context.Context, leftID, rightID uuid.UUID, callerID *uuid.UUID) (*CompareResponse, error) {
	var left, right *catalog.Product

	// The two lookups are independent reads and run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.productRepo.FindByID(gctx, leftID)
		if err != nil {
			return err
		}
		left = p
		return nil
	})
	g.Go(func() error {
		p, err := s.productRepo.FindByID(gctx, rightID)
		if err != nil {
			return err
		}
		right = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	engineRows := comparison.CompareAttributes(left.GetSpecifications(), right.GetSpecifications())

	rows := make(map[string]AttributeComparison, len(engineRows))
	for _, row := range engineRows {
		rows[row.Key] = AttributeComparison{
			LeftValue:  row.LeftValue,
			RightValue: row.RightValue,
			Winner:     row.Winner,
		}
	}

	if callerID != nil {
		s.recordComparison(ctx, *callerID, leftID, rightID)
	}

	return &CompareResponse{
		Left:  ToProductSummary(left),
		Right: ToProductSummary(right),
		Rows:  rows,
	}, nil
}

// GetHistory returns the caller's own comparison history, most recent first.
// Entries referencing deleted products keep a placeholder name.
func (s *ComparisonService) GetHistory(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error) {
	records, err := s.recordRepo.FindByUser(ctx, userID, s.historyLimit)
	if err != nil {
		s.logger.Error("Failed to load comparison history",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, err
	}

	names, err := s.resolveProductNames(ctx, records)
	if err != nil {
		s.logger.Warn("Failed to resolve product names for history",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		names = map[uuid.UUID]string{}
	}

	entries := make([]HistoryEntry, len(records))
	for i, record := range records {
		entries[i] = HistoryEntry{
			ID:               record.ID,
			LeftProductID:    record.LeftProductID,
			RightProductID:   record.RightProductID,
			LeftProductName:  nameOrPlaceholder(names, record.LeftProductID),
			RightProductName: nameOrPlaceholder(names, record.RightProductID),
			ComparedAt:       record.ComparedAt,
		}
	}
	return entries, nil
}

// recordComparison appends a history record, swallowing failures
func (s *ComparisonService) recordComparison(ctx context.Context, userID, leftID, rightID uuid.UUID) {
	record, err := comparison.NewRecord(userID, leftID, rightID)
	if err != nil {
		s.logger.Warn("Failed to build comparison record",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		s.logger.Warn("Failed to persist comparison record",
			zap.String("user_id", userID.String()),
			zap.String("left_product_id", leftID.String()),
			zap.String("right_product_id", rightID.String()),
			zap.Error(err))
	}
}

// resolveProductNames batch-loads the display names referenced by records
func (s *ComparisonService) resolveProductNames(ctx context.Context, records []comparison.Record) (map[uuid.UUID]string, error) {
	if len(records) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(records)*2)
	ids := make([]uuid.UUID, 0, len(records)*2)
	for _, record := range records {
		for _, id := range []uuid.UUID{record.LeftProductID, record.RightProductID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(products))
	for i := range products {
		names[products[i].ID] = products[i].Name
	}
	return names, nil
}

func nameOrPlaceholder(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return unknownProductName
}
