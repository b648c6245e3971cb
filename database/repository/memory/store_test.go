package memoryRepo

import (
	"context"
	"testing"
	"time"

	"bookingschedule/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func strPtr(s string) *string { return &s }

func TestBookings_CountsExcludeFlagged(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Bookings()

	for _, b := range []models.Booking{
		{MerchantID: "m", Date: "2026-10-12", TimeFrom: "09:00", TimeTo: "12:00"},
		{MerchantID: "m", Date: "2026-10-12", TimeFrom: "09:00", TimeTo: "12:00"},
		{MerchantID: "m", Date: "2026-10-12", TimeFrom: "09:00", TimeTo: "12:00", Deleted: true},
		{MerchantID: "m", Date: "2026-10-12", TimeFrom: "09:00", TimeTo: "12:00", Inactive: true},
		{MerchantID: "m", Date: "2026-10-13", TimeFrom: "09:00", TimeTo: "12:00"},
		{MerchantID: "x", Date: "2026-10-12", TimeFrom: "09:00", TimeTo: "12:00"},
	} {
		b := b
		require.NoError(t, repo.Create(ctx, &b))
		assert.NotEmpty(t, b.ID)
	}

	n, err := repo.CountForSlot(ctx, "m", "2026-10-12", "09:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	counts, err := repo.CountForSlotByDates(ctx, "m", "09:00", "12:00", []string{"2026-10-12", "2026-10-13", "2026-10-14"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-10-12": 2, "2026-10-13": 1}, counts)
	assert.Equal(t, 2, s.Counts())

	empty, err := repo.CountForSlotByDates(ctx, "m", "09:00", "12:00", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 2, s.Counts(), "no dates, no query")
}

func TestBookings_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Bookings()
	b := models.Booking{MerchantID: "m", Date: "2026-10-12", TimeFrom: "09:00", TimeTo: "12:00"}
	require.NoError(t, repo.Create(ctx, &b))

	at := time.Date(2026, 10, 12, 10, 0, 0, 0, time.UTC)
	updated, err := repo.Update(ctx, b.ID, models.BookingUpdate{TimeTo: strPtr("13:00")}, at)
	require.NoError(t, err)
	assert.Equal(t, "13:00", updated.TimeTo)
	assert.Equal(t, "09:00", updated.TimeFrom)
	assert.Equal(t, at, updated.UpdatedAt)

	missing, err := repo.Update(ctx, "nope", models.BookingUpdate{}, at)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.SoftDelete(ctx, b.ID, at))
	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)

	require.NoError(t, repo.Delete(ctx, b.ID))
	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), mongo.ErrNoDocuments)
	assert.ErrorIs(t, repo.SoftDelete(ctx, b.ID, at), mongo.ErrNoDocuments)
}

func TestMerchants_CopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Merchants()
	m := models.Merchant{MerchantNsID: "NS", DeliverySchedule: []models.ScheduleRule{{WeekDays: []string{"Mon"}}}}
	require.NoError(t, repo.Create(ctx, &m))
	assert.Error(t, repo.Create(ctx, &models.Merchant{MerchantNsID: "NS"}))

	got, err := repo.GetByNsID(ctx, "NS")
	require.NoError(t, err)
	got.DeliverySchedule[0].WeekDays[0] = "Sun"

	again, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mon", again.DeliverySchedule[0].WeekDays[0])

	none, err := repo.GetByNsID(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestUsers_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()
	require.NoError(t, repo.Create(ctx, &models.MerchantUser{Username: "u"}))
	assert.Error(t, repo.Create(ctx, &models.MerchantUser{Username: "u"}))

	u, err := repo.GetByUsername(ctx, "u")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	u, err = repo.GetByUsername(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, u)
}
