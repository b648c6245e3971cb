package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bookingschedule/models"
	"bookingschedule/utils"

	"go.uber.org/zap"
)

// ComputeAvailability derives the open slots of every schedule rule of the
// merchant, sorted by date. Rules are evaluated independently and overlapping
// rules each emit their own slots.
func (se *DefaultAvailabilityEngine) ComputeAvailability(ctx context.Context, merchantNsID string) ([]models.AvailabilitySlot, error) {
	logger := utils.GetLogger()

	merchant, err := se.Merchants.GetByNsID(ctx, merchantNsID)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant: %w", err)
	}
	if merchant == nil {
		return nil, utils.NewAppError(utils.ErrNotFound, "Merchant not found")
	}
	if !merchant.Usable() {
		return nil, utils.NewAppError(utils.ErrMerchantUnavailable, "Merchant is inactive or deleted")
	}

	today := se.today()
	slots := []models.AvailabilitySlot{}
	for i, rule := range merchant.DeliverySchedule {
		ruleSlots, err := se.evaluateRule(ctx, merchant.ID, rule, today)
		if err != nil {
			logger.Error("ComputeAvailability: rule evaluation failed",
				zap.String("merchantNsID", merchantNsID), zap.Int("rule", i), zap.Error(err))
			return nil, err
		}
		slots = append(slots, ruleSlots...)
	}

	// Ties keep emission order.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Date < slots[j].Date
	})

	logger.Debug("ComputeAvailability: done",
		zap.String("merchantNsID", merchantNsID),
		zap.Int("rules", len(merchant.DeliverySchedule)),
		zap.Int("slots", len(slots)))
	return slots, nil
}

func (se *DefaultAvailabilityEngine) today() time.Time {
	loc := se.Location
	if loc == nil {
		loc = time.UTC
	}
	now := se.Clock.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// ScanDates returns the calendar days a rule covers starting from today:
// [today+days_from_now, today+days_from_now+schedule_duration+1).
func ScanDates(rule models.ScheduleRule, today time.Time) []time.Time {
	start := today.AddDate(0, 0, rule.DaysFromNow)
	n := rule.ScheduleDuration + 1
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

func (se *DefaultAvailabilityEngine) evaluateRule(ctx context.Context, merchantID string, rule models.ScheduleRule, today time.Time) ([]models.AvailabilitySlot, error) {
	type candidate struct {
		date    string
		weekDay string
	}

	var candidates []candidate
	for _, d := range ScanDates(rule, today) {
		weekDay := d.Format("Mon")
		if !rule.MatchesWeekDay(weekDay) {
			continue
		}
		date := d.Format(utils.DateLayout)
		holiday, err := se.Holidays.IsHoliday(ctx, merchantID, date)
		if err != nil {
			return nil, fmt.Errorf("holiday lookup for %s failed: %w", date, err)
		}
		if holiday {
			continue
		}
		candidates = append(candidates, candidate{date: date, weekDay: weekDay})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	occupied := make(map[string]int, len(candidates))
	if se.BatchCounts {
		dates := make([]string, len(candidates))
		for i, c := range candidates {
			dates[i] = c.date
		}
		counts, err := se.Ledger.CountForSlotByDates(ctx, merchantID, rule.TimeFrom, rule.TimeTo, dates)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings: %w", err)
		}
		occupied = counts
	} else {
		for _, c := range candidates {
			n, err := se.Ledger.CountForSlot(ctx, merchantID, c.date, rule.TimeFrom, rule.TimeTo)
			if err != nil {
				return nil, fmt.Errorf("failed to count bookings for %s: %w", c.date, err)
			}
			occupied[c.date] = n
		}
	}

	var slots []models.AvailabilitySlot
	for _, c := range candidates {
		remaining := rule.Capacity - occupied[c.date]
		if remaining <= 0 {
			continue
		}
		slots = append(slots, models.AvailabilitySlot{
			Date:           c.date,
			WeekDay:        c.weekDay,
			Slots:          rule.TimeFrom + " - " + rule.TimeTo,
			Capacity:       rule.Capacity,
			OccupiedSlots:  occupied[c.date],
			RemainingSlots: remaining,
		})
	}
	return slots, nil
}
