package availability

import (
	"context"
	"time"

	merchantRepo "bookingschedule/database/repository/merchant"
	"bookingschedule/models"
	"bookingschedule/utils"
)

// AvailabilityService computes the open delivery slots of a merchant.
type AvailabilityService interface {
	ComputeAvailability(ctx context.Context, merchantNsID string) ([]models.AvailabilitySlot, error)
}

// SlotCounter is the read side of the booking ledger the engine needs.
type SlotCounter interface {
	CountForSlot(ctx context.Context, merchantID, date, timeFrom, timeTo string) (int, error)
	CountForSlotByDates(ctx context.Context, merchantID, timeFrom, timeTo string, dates []string) (map[string]int, error)
}

// HolidayOracle answers whether date is a holiday for the merchant.
type HolidayOracle interface {
	IsHoliday(ctx context.Context, merchantID, date string) (bool, error)
}

// DefaultAvailabilityEngine implements AvailabilityService.
type DefaultAvailabilityEngine struct {
	Merchants merchantRepo.MerchantRepository
	Ledger    SlotCounter
	Holidays  HolidayOracle
	Clock     utils.Clock
	// Location decides which calendar day "today" is. Nil means UTC.
	Location *time.Location
	// BatchCounts issues one grouped count query per rule instead of one per day.
	BatchCounts bool
}
