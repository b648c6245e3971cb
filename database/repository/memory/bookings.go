package memoryRepo

import (
	"context"
	"sort"
	"time"

	"bookingschedule/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingStore struct{ s *Store }

func live(b models.Booking, merchantID string) bool {
	return b.MerchantID == merchantID && !b.Deleted && !b.Inactive
}

func (r *bookingStore) Create(_ context.Context, booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if _, exists := r.s.bookings[booking.ID]; !exists {
		r.s.order = append(r.s.order, booking.ID)
	}
	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *bookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *bookingStore) Update(_ context.Context, id string, update models.BookingUpdate, at time.Time) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	if update.Date != nil {
		b.Date = *update.Date
	}
	if update.TimeFrom != nil {
		b.TimeFrom = *update.TimeFrom
	}
	if update.TimeTo != nil {
		b.TimeTo = *update.TimeTo
	}
	b.UpdatedAt = at
	r.s.bookings[id] = b
	return &b, nil
}

func (r *bookingStore) SoftDelete(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.Deleted = true
	b.UpdatedAt = at
	r.s.bookings[id] = b
	return nil
}

func (r *bookingStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bookings[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.s.bookings, id)
	for i, bid := range r.s.order {
		if bid == id {
			r.s.order = append(r.s.order[:i], r.s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *bookingStore) CountForSlot(_ context.Context, merchantID, date, timeFrom, timeTo string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.CountCalls++
	n := 0
	for _, b := range r.s.bookings {
		if live(b, merchantID) && b.Date == date && b.TimeFrom == timeFrom && b.TimeTo == timeTo {
			n++
		}
	}
	return n, nil
}

func (r *bookingStore) CountForSlotByDates(_ context.Context, merchantID, timeFrom, timeTo string, dates []string) (map[string]int, error) {
	counts := make(map[string]int, len(dates))
	if len(dates) == 0 {
		return counts, nil
	}
	wanted := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		wanted[d] = struct{}{}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.CountCalls++
	for _, b := range r.s.bookings {
		if !live(b, merchantID) || b.TimeFrom != timeFrom || b.TimeTo != timeTo {
			continue
		}
		if _, ok := wanted[b.Date]; ok {
			counts[b.Date]++
		}
	}
	return counts, nil
}

func (r *bookingStore) Search(_ context.Context, merchantID string, f models.BookingFilter) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.Booking{}
	for _, id := range r.s.order {
		b := r.s.bookings[id]
		if !live(b, merchantID) {
			continue
		}
		if f.Date != "" && b.Date != f.Date {
			continue
		}
		if f.TimeFrom != "" && b.TimeFrom < f.TimeFrom {
			continue
		}
		if f.TimeTo != "" && b.TimeTo > f.TimeTo {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].TimeFrom < out[j].TimeFrom
	})
	return out, nil
}

func (r *bookingStore) EnsureIndexes(context.Context) error { return nil }
