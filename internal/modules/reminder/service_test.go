package reminder

import (
	"context"
	"fmt"
	"testing"
	"time"

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
	dsn := fmt.Sprintf("file:reminder_test_%s?mode=memory&cache=shared", t.Name())
	dialector := gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")
	svc := NewService(repository.NewReminderRepository(db), repository.NewMedicationRepository(db))
	return svc, db
}

func createTestMedication(t *testing.T, db *gorm.DB, userID, name string) *domain.Medication {
	t.Helper()
	m := &domain.Medication{UserID: userID, FullName: name}
	require.NoError(t, db.Create(m).Error)
	return m
}

func boolPtr(v bool) *bool { return &v }

func TestCreateReminderNormalizesTimes(t *testing.T) {
	svc, db := setupTestService(t)
	med := createTestMedication(t, db, "owner-1", "Insulin")

	r, err := svc.Create(context.Background(), "owner-1", CreateReminderRequest{
		MedicationID: med.ID,
		Times:        []string{"20:00", "08:00", "20:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "20:00"}, r.Times)
	assert.True(t, r.Active, "reminders are active by default")
}

func TestCreateRejectsForeignMedication(t *testing.T) {
	svc, db := setupTestService(t)
	med := createTestMedication(t, db, "owner-2", "Not yours")

	_, err := svc.Create(context.Background(), "owner-1", CreateReminderRequest{
		MedicationID: med.ID,
		Times:        []string{"08:00"},
	})
	assert.ErrorIs(t, err, ErrUnknownMedication)
}

func TestListDueTodayHonorsWeekdaySchedule(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Levothyroxine")

	today := int(time.Now().Weekday())
	otherDay := (today + 3) % 7

	everyDay, err := svc.Create(ctx, "owner-1", CreateReminderRequest{
		MedicationID: med.ID,
		Times:        []string{"08:00"},
	})
	require.NoError(t, err)

	todayOnly, err := svc.Create(ctx, "owner-1", CreateReminderRequest{
		MedicationID: med.ID,
		Times:        []string{"09:00"},
		DaysOfWeek:   []int{today},
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "owner-1", CreateReminderRequest{
		MedicationID: med.ID,
		Times:        []string{"10:00"},
		DaysOfWeek:   []int{otherDay},
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "owner-1", CreateReminderRequest{
		MedicationID: med.ID,
		Times:        []string{"11:00"},
		Active:       boolPtr(false),
	})
	require.NoError(t, err)

	due, err := svc.ListDueToday(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, due, 2)

	ids := []string{due[0].ID, due[1].ID}
	assert.Contains(t, ids, everyDay.ID)
	assert.Contains(t, ids, todayOnly.ID)
	for _, r := range due {
		assert.True(t, r.DueToday)
	}
}

func TestListActiveExcludesDisabled(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Warfarin")

	_, err := svc.Create(ctx, "owner-1", CreateReminderRequest{MedicationID: med.ID, Times: []string{"08:00"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", CreateReminderRequest{MedicationID: med.ID, Times: []string{"09:00"}, Active: boolPtr(false)})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestUpdateReminder(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Statin")

	r, err := svc.Create(ctx, "owner-1", CreateReminderRequest{MedicationID: med.ID, Times: []string{"08:00"}})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner-1", r.ID, UpdateReminderRequest{
		MedicationID: med.ID,
		Times:        []string{"21:00"},
		Instructions: "with food",
		Active:       boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"21:00"}, updated.Times)
	assert.Equal(t, "with food", updated.Instructions)
	assert.False(t, updated.Active)

	_, err = svc.Update(ctx, "owner-2", r.ID, UpdateReminderRequest{MedicationID: med.ID, Times: []string{"08:00"}})
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestDeleteAndListPagination(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	med := createTestMedication(t, db, "owner-1", "Omeprazole")

	r, err := svc.Create(ctx, "owner-1", CreateReminderRequest{MedicationID: med.ID, Times: []string{"08:00"}})
	require.NoError(t, err)

	page, err := svc.List(ctx, "owner-1", pagination.Params{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	assert.ErrorIs(t, svc.Delete(ctx, "owner-2", r.ID), ErrReminderNotFound)
	require.NoError(t, svc.Delete(ctx, "owner-1", r.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "owner-1", r.ID), ErrReminderNotFound)
}
