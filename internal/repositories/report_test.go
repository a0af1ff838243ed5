package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
)

func TestReportRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewReportWriteRepository(db, nil)
	readRepo := NewReportReadRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	reporter := seedUser(t, db, "reporter")
	listing := seedListing(t, db, seller.ID, "Designer bag")

	report, err := writeRepo.Save(ctx, reporter.ID, listing.ID, "Counterfeit item")
	assert.NoError(t, err)
	assert.NotZero(t, report.ID)
	assert.Equal(t, "Counterfeit item", report.ReportReason)

	t.Run("SaveUnknownListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, reporter.ID, 999999, "ghost listing")
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, report.ID)
		assert.NoError(t, err)
		assert.Equal(t, reporter.ID, got.UserID)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("GetByListingID", func(t *testing.T) {
		reports, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("GetAll", func(t *testing.T) {
		reports, err := readRepo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, report.ID)
		assert.NoError(t, err)

		reports, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		err := writeRepo.Delete(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
