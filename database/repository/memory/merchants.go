package memoryRepo

import (
	"context"
	"fmt"

	"bookingschedule/models"

	"github.com/google/uuid"
)

type merchantStore struct{ s *Store }

func (m *merchantStore) GetByNsID(_ context.Context, merchantNsID string) (*models.Merchant, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, merchant := range m.s.merchants {
		if merchant.MerchantNsID == merchantNsID {
			out := cloneMerchant(merchant)
			return &out, nil
		}
	}
	return nil, nil
}

func (m *merchantStore) GetByID(_ context.Context, id string) (*models.Merchant, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	merchant, ok := m.s.merchants[id]
	if !ok {
		return nil, nil
	}
	out := cloneMerchant(merchant)
	return &out, nil
}

func (m *merchantStore) Create(_ context.Context, merchant *models.Merchant) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if merchant.ID == "" {
		merchant.ID = uuid.New().String()
	}
	for _, existing := range m.s.merchants {
		if existing.MerchantNsID == merchant.MerchantNsID {
			return fmt.Errorf("merchant %s already exists", merchant.MerchantNsID)
		}
	}
	m.s.merchants[merchant.ID] = cloneMerchant(*merchant)
	return nil
}

func (m *merchantStore) EnsureIndexes(context.Context) error { return nil }

func cloneMerchant(m models.Merchant) models.Merchant {
	rules := make([]models.ScheduleRule, len(m.DeliverySchedule))
	for i, r := range m.DeliverySchedule {
		r.WeekDays = append([]string(nil), r.WeekDays...)
		rules[i] = r
	}
	m.DeliverySchedule = rules
	return m
}
