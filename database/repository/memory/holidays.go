package memoryRepo

import (
	"context"

	"bookingschedule/models"

	"github.com/google/uuid"
)

type holidayStore struct{ s *Store }

func (h *holidayStore) IsHoliday(_ context.Context, merchantID, date string) (bool, error) {
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()
	for _, hol := range h.s.holidays {
		if hol.Date != date || hol.Deleted || hol.Inactive {
			continue
		}
		if hol.MerchantID == "" || hol.MerchantID == merchantID {
			return true, nil
		}
	}
	return false, nil
}

func (h *holidayStore) Create(_ context.Context, holiday *models.PublicHoliday) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if holiday.ID == "" {
		holiday.ID = uuid.New().String()
	}
	h.s.holidays = append(h.s.holidays, *holiday)
	return nil
}

func (h *holidayStore) EnsureIndexes(context.Context) error { return nil }
