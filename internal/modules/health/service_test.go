package health

import (
	"context"
	"fmt"
	"testing"
	"time"

	"medcontrol/internal/database"
	"medcontrol/internal/pkg/pagination"
	"medcontrol/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:health_test_%s?mode=memory&cache=shared", t.Name())
	dialector := gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")
	return NewService(repository.NewHealthRecordRepository(db))
}

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func boolPtr(v bool) *bool           { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func pressureRequest(systolic, diastolic int, at time.Time) CreateHealthRecordRequest {
	return CreateHealthRecordRequest{
		Type:       "pressure",
		Systolic:   intPtr(systolic),
		Diastolic:  intPtr(diastolic),
		MeasuredAt: timePtr(at),
	}
}

func TestCreatePressureRecord(t *testing.T) {
	svc := setupTestService(t)

	record, err := svc.Create(context.Background(), "owner-1", CreateHealthRecordRequest{
		Type:      "pressure",
		Systolic:  intPtr(120),
		Diastolic: intPtr(80),
		Pulse:     intPtr(65),
		Glucose:   floatPtr(5.5), // must be discarded for a pressure record
	})
	require.NoError(t, err)
	assert.Equal(t, 120, *record.Systolic)
	assert.Nil(t, record.Glucose, "glucose fields must be nulled on a pressure record")
	assert.False(t, record.MeasuredAt.IsZero(), "measurement time defaults to now")
}

func TestCreateGlucoseRecord(t *testing.T) {
	svc := setupTestService(t)

	record, err := svc.Create(context.Background(), "owner-1", CreateHealthRecordRequest{
		Type:    "glucose",
		Glucose: floatPtr(6.1),
		Fasting: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 6.1, *record.Glucose)
	assert.True(t, *record.Fasting)
	assert.Nil(t, record.Systolic)
}

func TestCreateRejectsIncompleteVariants(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", CreateHealthRecordRequest{Type: "pressure", Systolic: intPtr(120)})
	assert.ErrorIs(t, err, ErrMissingMeasurement)

	_, err = svc.Create(ctx, "owner-1", CreateHealthRecordRequest{Type: "glucose"})
	assert.ErrorIs(t, err, ErrMissingMeasurement)

	_, err = svc.Create(ctx, "owner-1", CreateHealthRecordRequest{Type: "weight"})
	assert.ErrorIs(t, err, ErrInvalidRecordType)
}

func TestListByTypeAndLatest(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, "owner-1", pressureRequest(120+i, 80, now.Add(-time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "owner-1", CreateHealthRecordRequest{
		Type: "glucose", Glucose: floatPtr(5.0), MeasuredAt: timePtr(now.Add(-30 * time.Minute)),
	})
	require.NoError(t, err)

	pressure, err := svc.ListByType(ctx, "owner-1", "pressure", pagination.Params{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(3), pressure.Total)

	latest, err := svc.ListLatest(ctx, "owner-1", 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "pressure", latest[0].Type, "newest record first")
	assert.Equal(t, "glucose", latest[1].Type)

	_, err = svc.ListByType(ctx, "owner-1", "bogus", pagination.Params{Page: 0, Size: 20})
	assert.ErrorIs(t, err, ErrInvalidRecordType)
}

func TestListByPeriod(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.Create(ctx, "owner-1", pressureRequest(110, 70, now.AddDate(0, 0, -10)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", pressureRequest(115, 75, now.AddDate(0, 0, -2)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", pressureRequest(120, 80, now))
	require.NoError(t, err)

	page, err := svc.ListByPeriod(ctx, "owner-1", now.AddDate(0, 0, -3), now.Add(time.Hour), pagination.Params{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	_, err = svc.ListByPeriod(ctx, "owner-1", now, now.AddDate(0, 0, -1), pagination.Params{Page: 0, Size: 20})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestUpdateSwitchesVariant(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, "owner-1", pressureRequest(120, 80, time.Now()))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner-1", record.ID, UpdateHealthRecordRequest{
		Type:    "glucose",
		Glucose: floatPtr(7.2),
	})
	require.NoError(t, err)
	assert.Equal(t, 7.2, *updated.Glucose)
	assert.Nil(t, updated.Systolic, "pressure fields cleared after switching type")

	_, err = svc.Update(ctx, "owner-2", record.ID, UpdateHealthRecordRequest{Type: "glucose", Glucose: floatPtr(5.0)})
	assert.ErrorIs(t, err, ErrHealthRecordNotFound)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, "owner-1", pressureRequest(120, 80, time.Now()))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "owner-2", record.ID), ErrHealthRecordNotFound)
	require.NoError(t, svc.Delete(ctx, "owner-1", record.ID))
	_, err = svc.Get(ctx, "owner-1", record.ID)
	assert.ErrorIs(t, err, ErrHealthRecordNotFound)
}
