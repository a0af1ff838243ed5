package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ReportReader defines read access to listing reports.
type ReportReader interface {
	GetAll(ctx context.Context) ([]models.ReportDB, error)
	GetByID(ctx context.Context, id int64) (*models.ReportDB, error)
	GetByListingID(ctx context.Context, listingID int64) ([]models.ReportDB, error)
}

// ReportWriter defines write access to listing reports.
type ReportWriter interface {
	Save(ctx context.Context, userID, listingID int64, reportReason string) (*models.ReportDB, error)
	Delete(ctx context.Context, id int64) error
}

// ReportService records user reports against listings. Append-only;
// there is no investigation workflow.
type ReportService struct {
	readRepo  ReportReader
	writeRepo ReportWriter
}

func NewReportService(readRepo ReportReader, writeRepo ReportWriter) *ReportService {
	return &ReportService{readRepo: readRepo, writeRepo: writeRepo}
}

func (s *ReportService) Create(ctx context.Context, userID, listingID int64, reportReason string) (*models.ReportDB, error) {
	if reportReason == "" {
		return nil, fmt.Errorf("%w: report reason is required", errs.ErrValidation)
	}

	report, err := s.writeRepo.Save(ctx, userID, listingID, reportReason)
	if err != nil {
		logger.Log.Errorw("failed to save report", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}

	return report, nil
}

func (s *ReportService) List(ctx context.Context) ([]models.ReportDB, error) {
	return s.readRepo.GetAll(ctx)
}

func (s *ReportService) GetByID(ctx context.Context, id int64) (*models.ReportDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

func (s *ReportService) ListByListing(ctx context.Context, listingID int64) ([]models.ReportDB, error) {
	return s.readRepo.GetByListingID(ctx, listingID)
}

func (s *ReportService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete report", "id", id, "error", err)
		return err
	}
	return nil
}
