package booking

import (
	"context"
	"fmt"
	"strings"

	"bookingschedule/models"
	"bookingschedule/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const missingParamsMsg = "Missing required parameters: date, time_from, time_to"

func (s *DefaultBookingService) CreateBooking(ctx context.Context, merchantNsID string, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	input = trimInput(input)
	if input.Date == "" || input.TimeFrom == "" || input.TimeTo == "" {
		return nil, utils.NewAppError(utils.ErrValidation, missingParamsMsg)
	}
	if !utils.IsDate(input.Date) {
		return nil, utils.NewAppError(utils.ErrValidation, "Invalid date format, expected YYYY-MM-DD")
	}

	merchant, err := s.resolveMerchant(ctx, merchantNsID)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		MerchantID: merchant.ID,
		Date:       input.Date,
		TimeFrom:   input.TimeFrom,
		TimeTo:     input.TimeTo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		logger.Error("CreateBooking: failed to persist booking",
			zap.String("merchantNsID", merchantNsID), zap.String("date", input.Date), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("Booking created",
		zap.String("merchantNsID", merchantNsID),
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date))
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, merchantNsID, id string) (*models.Booking, error) {
	return s.ownedBooking(ctx, merchantNsID, id, "view")
}

func (s *DefaultBookingService) UpdateBooking(ctx context.Context, merchantNsID, id string, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.ownedBooking(ctx, merchantNsID, id, "update")
	if err != nil {
		return nil, err
	}

	input = trimInput(input)
	var update models.BookingUpdate
	if input.Date != "" {
		if !utils.IsDate(input.Date) {
			return nil, utils.NewAppError(utils.ErrValidation, "Invalid date format, expected YYYY-MM-DD")
		}
		update.Date = &input.Date
	}
	if input.TimeFrom != "" {
		update.TimeFrom = &input.TimeFrom
	}
	if input.TimeTo != "" {
		update.TimeTo = &input.TimeTo
	}
	if update.Date == nil && update.TimeFrom == nil && update.TimeTo == nil {
		return booking, nil
	}

	updated, err := s.Bookings.Update(ctx, booking.ID, update, s.Clock.Now())
	if err != nil {
		logger.Error("UpdateBooking: failed to update booking",
			zap.String("bookingID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if updated == nil {
		return nil, utils.NewAppError(utils.ErrNotFound, "Booking not found")
	}
	return updated, nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, merchantNsID, id string) error {
	logger := utils.GetLogger()

	booking, err := s.ownedBooking(ctx, merchantNsID, id, "delete")
	if err != nil {
		return err
	}

	if s.DeleteMode == DeleteHard {
		err = s.Bookings.Delete(ctx, booking.ID)
	} else {
		err = s.Bookings.SoftDelete(ctx, booking.ID, s.Clock.Now())
	}
	if err != nil {
		logger.Error("DeleteBooking: failed to delete booking",
			zap.String("bookingID", id), zap.String("mode", string(s.DeleteMode)), zap.Error(err))
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	logger.Info("Booking deleted",
		zap.String("merchantNsID", merchantNsID),
		zap.String("bookingID", id),
		zap.String("mode", string(s.DeleteMode)))
	return nil
}

func (s *DefaultBookingService) SearchBookings(ctx context.Context, merchantNsID string, filter models.BookingFilter) ([]models.Booking, error) {
	merchant, err := s.resolveMerchant(ctx, merchantNsID)
	if err != nil {
		return nil, err
	}

	filter = models.BookingFilter{
		Date:     strings.TrimSpace(filter.Date),
		TimeFrom: strings.TrimSpace(filter.TimeFrom),
		TimeTo:   strings.TrimSpace(filter.TimeTo),
	}
	bookings, err := s.Bookings.Search(ctx, merchant.ID, filter)
	if err != nil {
		utils.GetLogger().Error("SearchBookings: query failed",
			zap.String("merchantNsID", merchantNsID), zap.Error(err))
		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}
	return bookings, nil
}

// resolveMerchant translates the external merchant identity to its record.
func (s *DefaultBookingService) resolveMerchant(ctx context.Context, merchantNsID string) (*models.Merchant, error) {
	if merchantNsID == "" {
		return nil, utils.NewAppError(utils.ErrNotFound, "Merchant not found")
	}
	merchant, err := s.Merchants.GetByNsID(ctx, merchantNsID)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant: %w", err)
	}
	if merchant == nil {
		return nil, utils.NewAppError(utils.ErrNotFound, "Merchant not found")
	}
	return merchant, nil
}

// ownedBooking loads a live booking and checks it belongs to the caller.
// action names the attempted operation in the Forbidden message.
func (s *DefaultBookingService) ownedBooking(ctx context.Context, merchantNsID, id, action string) (*models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, utils.NewAppError(utils.ErrValidation, "Booking ID is required")
	}

	merchant, err := s.resolveMerchant(ctx, merchantNsID)
	if err != nil {
		return nil, err
	}

	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking == nil || booking.Deleted {
		return nil, utils.NewAppError(utils.ErrNotFound, "Booking not found")
	}
	if booking.MerchantID != merchant.ID {
		utils.GetLogger().Warn("Booking ownership mismatch",
			zap.String("merchantNsID", merchantNsID), zap.String("bookingID", id), zap.String("action", action))
		return nil, utils.NewAppError(utils.ErrForbidden, "Not authorized to "+action+" this booking")
	}
	return booking, nil
}

func trimInput(in models.BookingInput) models.BookingInput {
	return models.BookingInput{
		Date:     strings.TrimSpace(in.Date),
		TimeFrom: strings.TrimSpace(in.TimeFrom),
		TimeTo:   strings.TrimSpace(in.TimeTo),
	}
}
