package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-marketplace/internal/migrate"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// setupPostgres starts a postgres container, applies the embedded
// migrations and returns a connected pool with a teardown func.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	err = migrate.Up(context.Background(), dsn)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedUser inserts a user and returns it. Usernames and emails are
// derived from the tag to stay unique within a test.
func seedUser(t *testing.T, db *sqlx.DB, tag string) *models.UserDB {
	t.Helper()

	repo := NewUserWriteRepository(db, nil)
	user, err := repo.Save(context.Background(),
		tag, tag+"@example.com", "hashed-password",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	return user
}

// seedListing inserts an active listing in the first seeded category.
func seedListing(t *testing.T, db *sqlx.DB, userID int64, title string) *models.ListingDB {
	t.Helper()

	repo := NewListingWriteRepository(db, nil)
	listing, err := repo.Save(context.Background(),
		userID, 1, title, models.ListingTypeSelling, 100.00, "Utrecht", "test listing", nil)
	assert.NoError(t, err)
	assert.NotNil(t, listing)
	return listing
}
