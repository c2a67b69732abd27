package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/adboardhq/adboard/internal/customer/domain"
	"github.com/adboardhq/adboard/internal/customer/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCustomerService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if err := db.AutoMigrate(&domain.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db
}

func TestCreateCustomerRoundTrip(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Name:     "Milanesa a la napolitana",
		Email:    "milanesa@email.com",
		Phone:    "+541 123 4567",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Milanesa a la napolitana", found.Name)
	assert.Equal(t, "milanesa@email.com", found.Email)
	assert.Equal(t, "+541 123 4567", found.Phone)
	assert.Equal(t, "secret123", found.Password)
}

func TestCreateCustomerRejectsBadInput(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  domain.CreateCustomerRequest
	}{
		{"digits in name", domain.CreateCustomerRequest{Name: "Agent 47", Email: "a@b.com"}},
		{"bad email", domain.CreateCustomerRequest{Name: "Pasta", Email: "not-an-email"}},
		{"bad phone", domain.CreateCustomerRequest{Name: "Pasta", Email: "pasta@email.com", Phone: "12"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidData)
		})
	}

	customers, err := svc.List(ctx, domain.ListCustomerRequest{})
	require.NoError(t, err)
	assert.Empty(t, customers, "rejected creations must not add rows")
}

func TestCreateCustomerMissingRequiredFieldFailsAtPersistence(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	// An absent name passes the admission patterns and is rejected by the
	// schema constraint instead.
	_, err := svc.Create(ctx, domain.CreateCustomerRequest{Email: "ghost@email.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidData)

	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Name: "Ghost"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidData)
}

func TestListCustomersNameFilter(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Milanesa", Email: "milanesa@email.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Name: "Pasta", Email: "pasta@email.com"})
	require.NoError(t, err)

	matched, err := svc.List(ctx, domain.ListCustomerRequest{Name: "milanesa"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Milanesa", matched[0].Name)

	all, err := svc.List(ctx, domain.ListCustomerRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetCustomerByIDAbsentIsNil(t *testing.T) {
	svc, _ := setupCustomerService(t)

	found, err := svc.GetByID(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdateCustomerPartialMerge(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Name:     "Milanesa",
		Email:    "milanesa@email.com",
		Phone:    "123-456-7890",
		Password: "secret123",
	})
	require.NoError(t, err)

	name := "Pasta"
	updated, err := svc.Update(ctx, created.ID, domain.UpdateCustomerRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Pasta", updated.Name)
	assert.Equal(t, "milanesa@email.com", updated.Email)
	assert.Equal(t, "123-456-7890", updated.Phone)
	assert.Equal(t, "secret123", updated.Password)
}

func TestUpdateCustomerValidatesSuppliedFields(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Milanesa", Email: "milanesa@email.com"})
	require.NoError(t, err)

	bad := "Agent 47"
	_, err = svc.Update(ctx, created.ID, domain.UpdateCustomerRequest{Name: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milanesa", found.Name)
}

func TestUpdateCustomerMissingIsNotFound(t *testing.T) {
	svc, _ := setupCustomerService(t)

	name := "Pasta"
	_, err := svc.Update(context.Background(), 424242, domain.UpdateCustomerRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCustomerCount(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Milanesa", Email: "milanesa@email.com"})
	require.NoError(t, err)

	count, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "deleting an absent id is a zero count, not an error")
}
