package repository

import (
	"context"
	"fmt"

	bookingRepo "bookingschedule/database/repository/booking"
	holidayRepo "bookingschedule/database/repository/holiday"
	memoryRepo "bookingschedule/database/repository/memory"
	merchantRepo "bookingschedule/database/repository/merchant"
	merchantUserRepo "bookingschedule/database/repository/merchantuser"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	BookingRepository      = bookingRepo.BookingRepository
	MerchantRepository     = merchantRepo.MerchantRepository
	HolidayRepository      = holidayRepo.HolidayRepository
	MerchantUserRepository = merchantUserRepo.MerchantUserRepository
)

// Repositories is the set of stores one storage driver provides.
type Repositories struct {
	Bookings  BookingRepository
	Merchants MerchantRepository
	Holidays  HolidayRepository
	Users     MerchantUserRepository
}

// NewMongoRepositories builds every repository on db.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Bookings:  bookingRepo.NewMongoBookingRepo(db),
		Merchants: merchantRepo.NewMongoMerchantRepo(db),
		Holidays:  holidayRepo.NewMongoHolidayRepo(db),
		Users:     merchantUserRepo.NewMongoMerchantUserRepo(db),
	}
}

// NewMemoryRepositories exposes store through the repository interfaces.
func NewMemoryRepositories(store *memoryRepo.Store) *Repositories {
	return &Repositories{
		Bookings:  store.Bookings(),
		Merchants: store.Merchants(),
		Holidays:  store.Holidays(),
		Users:     store.Users(),
	}
}

// EnsureIndexes creates the indexes of every collection.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"bookings", r.Bookings.EnsureIndexes},
		{"merchants", r.Merchants.EnsureIndexes},
		{"public_holidays", r.Holidays.EnsureIndexes},
		{"merchant_users", r.Users.EnsureIndexes},
	}
	for _, s := range steps {
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("failed to ensure %s indexes: %w", s.name, err)
		}
	}
	return nil
}
