// Package seed loads demonstration data: one merchant with two delivery
// rules, a public holiday and a merchant user.
package seed

import (
	"context"
	"fmt"
	"time"

	"bookingschedule/database/repository"
	"bookingschedule/models"
	"bookingschedule/utils"
)

const (
	DemoMerchantNsID = "NS-DEMO"
	DemoUsername     = "demo"
)

// Demo writes the demonstration records. The holiday falls a week after now.
func Demo(ctx context.Context, repos *repository.Repositories, password string, now time.Time) error {
	merchant := &models.Merchant{
		MerchantNsID: DemoMerchantNsID,
		Name:         "Demo Deliveries",
		DeliverySchedule: []models.ScheduleRule{
			{
				DaysFromNow:      0,
				ScheduleDuration: 13,
				Capacity:         5,
				TimeFrom:         "09:00",
				TimeTo:           "12:00",
				WeekDays:         []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			},
			{
				DaysFromNow:      1,
				ScheduleDuration: 6,
				Capacity:         3,
				TimeFrom:         "14:00",
				TimeTo:           "18:00",
				WeekDays:         []string{"Sat"},
			},
		},
	}
	if err := repos.Merchants.Create(ctx, merchant); err != nil {
		return fmt.Errorf("failed to seed merchant: %w", err)
	}

	holiday := &models.PublicHoliday{
		Date: now.AddDate(0, 0, 7).Format(utils.DateLayout),
		Name: "Demo Holiday",
	}
	if err := repos.Holidays.Create(ctx, holiday); err != nil {
		return fmt.Errorf("failed to seed holiday: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := &models.MerchantUser{
		Username:     DemoUsername,
		PasswordHash: hash,
		FullName:     "Demo Dispatcher",
		Email:        "demo@example.com",
		UserType:     models.UserTypeMerchant,
		GiveAccess:   true,
		MobileAccess: true,
		MerchantNsID: DemoMerchantNsID,
	}
	if err := repos.Users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}
	return nil
}
