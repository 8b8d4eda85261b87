package inventory

import (
	"context"
	"fmt"
	"testing"

	"medcontrol/internal/database"
	"medcontrol/internal/domain"
	"medcontrol/internal/pkg/pagination"
	"medcontrol/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:inventory_test_%s?mode=memory&cache=shared", t.Name())
	dialector := gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")
	svc := NewService(repository.NewInventoryRepository(db), repository.NewMedicationRepository(db))
	return svc, db
}

func createTestMedication(t *testing.T, db *gorm.DB, userID, name string) *domain.Medication {
	t.Helper()
	m := &domain.Medication{UserID: userID, FullName: name}
	require.NoError(t, db.Create(m).Error)
	return m
}

func intPtr(v int) *int { return &v }

func TestCreateInventoryItem(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Ibuprofen")

	item, err := svc.Create(ctx, "owner-1", CreateInventoryItemRequest{
		MedicationID: med.ID,
		CurrentQty:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, item.CurrentQty)
	assert.Equal(t, defaultAlertQty, item.AlertQty, "alert threshold defaults when omitted")
	assert.False(t, item.IsLowStock())
}

func TestCreateRejectsForeignMedication(t *testing.T) {
	svc, db := setupTestService(t)
	med := createTestMedication(t, db, "owner-2", "Not yours")

	_, err := svc.Create(context.Background(), "owner-1", CreateInventoryItemRequest{MedicationID: med.ID})
	assert.ErrorIs(t, err, ErrUnknownMedication)
}

func TestCreateMergesIntoExistingRow(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Metformin")

	first, err := svc.Create(ctx, "owner-1", CreateInventoryItemRequest{
		MedicationID: med.ID,
		CurrentQty:   10,
		AlertQty:     intPtr(3),
	})
	require.NoError(t, err)

	merged, err := svc.Create(ctx, "owner-1", CreateInventoryItemRequest{
		MedicationID: med.ID,
		CurrentQty:   15,
		AlertQty:     intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID, "same medication must reuse the row")
	assert.Equal(t, 25, merged.CurrentQty, "stock is incremented")
	assert.Equal(t, 8, merged.AlertQty, "threshold is replaced")

	var count int64
	require.NoError(t, db.Model(&domain.InventoryItem{}).Where("user_id = ?", "owner-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListLowStock(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	low := createTestMedication(t, db, "owner-1", "Low med")
	ok := createTestMedication(t, db, "owner-1", "Stocked med")
	edge := createTestMedication(t, db, "owner-1", "Edge med")

	_, err := svc.Create(ctx, "owner-1", CreateInventoryItemRequest{MedicationID: low.ID, CurrentQty: 1, AlertQty: intPtr(5)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", CreateInventoryItemRequest{MedicationID: ok.ID, CurrentQty: 50, AlertQty: intPtr(5)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", CreateInventoryItemRequest{MedicationID: edge.ID, CurrentQty: 5, AlertQty: intPtr(5)})
	require.NoError(t, err)

	items, err := svc.ListLowStock(ctx, "owner-1")
	require.NoError(t, err)
	// stock equal to the threshold counts as low
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.LowStock)
	}
}

func TestUpdateAndOwnershipScoping(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Aspirin")

	item, err := svc.Create(ctx, "owner-1", CreateInventoryItemRequest{MedicationID: med.ID, CurrentQty: 10})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner-1", item.ID, UpdateInventoryItemRequest{CurrentQty: 2, AlertQty: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentQty)
	assert.True(t, updated.IsLowStock())

	_, err = svc.Update(ctx, "owner-2", item.ID, UpdateInventoryItemRequest{CurrentQty: 99})
	assert.ErrorIs(t, err, ErrInventoryItemNotFound)

	_, err = svc.Get(ctx, "owner-2", item.ID)
	assert.ErrorIs(t, err, ErrInventoryItemNotFound)
}

func TestDeleteAndList(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Vitamin D")

	item, err := svc.Create(ctx, "owner-1", CreateInventoryItemRequest{MedicationID: med.ID, CurrentQty: 10})
	require.NoError(t, err)

	page, err := svc.List(ctx, "owner-1", pagination.Params{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	assert.ErrorIs(t, svc.Delete(ctx, "owner-2", item.ID), ErrInventoryItemNotFound)
	require.NoError(t, svc.Delete(ctx, "owner-1", item.ID))

	page, err = svc.List(ctx, "owner-1", pagination.Params{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}
