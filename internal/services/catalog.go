package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// CategoryReader defines read access to categories.
type CategoryReader interface {
	GetAll(ctx context.Context) ([]models.CategoryDB, error)
	GetByID(ctx context.Context, id int64) (*models.CategoryDB, error)
}

// ListingReader defines read access to listings.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*models.ListingDB, error)
	GetAll(ctx context.Context) ([]models.ListingDB, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error)
	Search(ctx context.Context, term string) ([]models.ListingDB, error)
}

// ListingWriter defines write access to listings.
type ListingWriter interface {
	Save(ctx context.Context, userID, categoryID int64, title, listingType string, price float64, region, description string, imageURL *string) (*models.ListingDB, error)
	Update(ctx context.Context, id int64, upd models.ListingUpdate) (*models.ListingDB, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.ListingDB, error)
	Delete(ctx context.Context, id int64) error
}

// ListingCache serves listing-by-id reads ahead of the database.
type ListingCache interface {
	GetByID(ctx context.Context, id int64) (*models.ListingDB, error)
	Set(ctx context.Context, listing *models.ListingDB) error
	Invalidate(ctx context.Context, id int64) error
}

func validListingType(t string) bool {
	switch t {
	case models.ListingTypeSelling, models.ListingTypeBuying, models.ListingTypeFree:
		return true
	}
	return false
}

func validListingStatus(s string) bool {
	switch s {
	case models.ListingStatusActive, models.ListingStatusSold, models.ListingStatusClosed:
		return true
	}
	return false
}

// CatalogService owns listings and categories. Listing-by-id reads go
// through the cache; every listing write invalidates the entry.
type CatalogService struct {
	categories   CategoryReader
	listingRead  ListingReader
	listingWrite ListingWriter
	cache        ListingCache
}

func NewCatalogService(categories CategoryReader, listingRead ListingReader, listingWrite ListingWriter, cache ListingCache) *CatalogService {
	return &CatalogService{
		categories:   categories,
		listingRead:  listingRead,
		listingWrite: listingWrite,
		cache:        cache,
	}
}

func (s *CatalogService) GetAllCategories(ctx context.Context) ([]models.CategoryDB, error) {
	return s.categories.GetAll(ctx)
}

func (s *CatalogService) GetCategoryByID(ctx context.Context, id int64) (*models.CategoryDB, error) {
	return s.categories.GetByID(ctx, id)
}

// CreateListing stores a new listing in the active state.
func (s *CatalogService) CreateListing(ctx context.Context, userID, categoryID int64, title, listingType string, price float64, region, description string, imageURL *string) (*models.ListingDB, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrValidation)
	}
	if !validListingType(listingType) {
		return nil, fmt.Errorf("%w: unknown listing type %q", errs.ErrValidation, listingType)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", errs.ErrValidation)
	}
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %d does not exist", errs.ErrValidation, categoryID)
		}
		return nil, err
	}

	listing, err := s.listingWrite.Save(ctx, userID, categoryID, title, listingType, price, region, description, imageURL)
	if err != nil {
		logger.Log.Errorw("failed to save listing", "user_id", userID, "error", err)
		return nil, err
	}

	return listing, nil
}

// GetListing reads the cache first and falls back to the database,
// refilling the cache on a miss.
func (s *CatalogService) GetListing(ctx context.Context, id int64) (*models.ListingDB, error) {
	if s.cache != nil {
		if listing, err := s.cache.GetByID(ctx, id); err == nil {
			return listing, nil
		}
	}

	listing, err := s.listingRead.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, listing); err != nil {
			logger.Log.Warnw("failed to cache listing", "id", id, "error", err)
		}
	}

	return listing, nil
}

func (s *CatalogService) ListListings(ctx context.Context) ([]models.ListingDB, error) {
	return s.listingRead.GetAll(ctx)
}

func (s *CatalogService) ListListingsByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error) {
	return s.listingRead.GetByCategory(ctx, categoryID)
}

func (s *CatalogService) SearchListings(ctx context.Context, term string) ([]models.ListingDB, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", errs.ErrValidation)
	}
	return s.listingRead.Search(ctx, term)
}

// UpdateListing patches the present fields. Only image_url accepts an
// explicit null; every other null is rejected.
func (s *CatalogService) UpdateListing(ctx context.Context, id int64, upd models.ListingUpdate) (*models.ListingDB, error) {
	for field, opt := range map[string]bool{
		"category_id":  upd.CategoryID.Set && !upd.CategoryID.Valid,
		"title":        upd.Title.Set && !upd.Title.Valid,
		"listing_type": upd.ListingType.Set && !upd.ListingType.Valid,
		"price":        upd.Price.Set && !upd.Price.Valid,
		"region":       upd.Region.Set && !upd.Region.Valid,
		"description":  upd.Description.Set && !upd.Description.Valid,
	} {
		if opt {
			return nil, fmt.Errorf("%w: %s cannot be null", errs.ErrValidation, field)
		}
	}
	if upd.Title.Set && upd.Title.Value == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", errs.ErrValidation)
	}
	if upd.ListingType.Set && !validListingType(upd.ListingType.Value) {
		return nil, fmt.Errorf("%w: unknown listing type %q", errs.ErrValidation, upd.ListingType.Value)
	}
	if upd.Price.Set && upd.Price.Value <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", errs.ErrValidation)
	}
	if !upd.CategoryID.Set && !upd.Title.Set && !upd.ListingType.Set &&
		!upd.Price.Set && !upd.Region.Set && !upd.Description.Set && !upd.ImageURL.Set {
		return s.listingRead.GetByID(ctx, id)
	}

	listing, err := s.listingWrite.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update listing", "id", id, "error", err)
		return nil, err
	}

	s.invalidate(ctx, id)
	return listing, nil
}

// UpdateListingStatus moves a listing between active, sold and closed.
// Terminal states never go back to active.
func (s *CatalogService) UpdateListingStatus(ctx context.Context, id int64, status string) (*models.ListingDB, error) {
	if !validListingStatus(status) {
		return nil, fmt.Errorf("%w: unknown listing status %q", errs.ErrValidation, status)
	}

	current, err := s.listingRead.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.ListingStatusActive && status == models.ListingStatusActive {
		return nil, fmt.Errorf("%w: listing %d is %s and cannot return to active", errs.ErrConflict, id, current.Status)
	}

	listing, err := s.listingWrite.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to update listing status", "id", id, "status", status, "error", err)
		return nil, err
	}

	s.invalidate(ctx, id)
	return listing, nil
}

func (s *CatalogService) DeleteListing(ctx context.Context, id int64) error {
	if err := s.listingWrite.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete listing", "id", id, "error", err)
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.Log.Warnw("failed to invalidate listing cache", "id", id, "error", err)
	}
}
