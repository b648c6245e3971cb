// Package memoryRepo keeps every collection in process memory. It backs the
// "memory" storage driver and the service tests.
package memoryRepo

import (
	"sync"

	bookingRepo "bookingschedule/database/repository/booking"
	holidayRepo "bookingschedule/database/repository/holiday"
	merchantRepo "bookingschedule/database/repository/merchant"
	merchantUserRepo "bookingschedule/database/repository/merchantuser"
	"bookingschedule/models"
)

// Store holds the collections. The zero value is not usable; call NewStore.
type Store struct {
	mu        sync.RWMutex
	merchants map[string]models.Merchant // by ID
	bookings  map[string]models.Booking  // by ID
	order     []string                   // booking IDs in insertion order
	holidays  []models.PublicHoliday
	users     map[string]models.MerchantUser // by username

	// CountCalls counts ledger count queries, per-slot and batched alike.
	CountCalls int
}

func NewStore() *Store {
	return &Store{
		merchants: make(map[string]models.Merchant),
		bookings:  make(map[string]models.Booking),
		users:     make(map[string]models.MerchantUser),
	}
}

func (s *Store) Merchants() merchantRepo.MerchantRepository {
	return &merchantStore{s}
}

func (s *Store) Bookings() bookingRepo.BookingRepository {
	return &bookingStore{s}
}

func (s *Store) Holidays() holidayRepo.HolidayRepository {
	return &holidayStore{s}
}

func (s *Store) Users() merchantUserRepo.MerchantUserRepository {
	return &userStore{s}
}

// Counts returns the number of count queries served so far.
func (s *Store) Counts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.CountCalls
}

// PutUser replaces a stored user, e.g. to flip its flags in tests.
func (s *Store) PutUser(user models.MerchantUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = user
}

// PutMerchant replaces a stored merchant.
func (s *Store) PutMerchant(merchant models.Merchant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants[merchant.ID] = cloneMerchant(merchant)
}
