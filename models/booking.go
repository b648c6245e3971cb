package models

import "time"

// Booking is a reservation consuming one unit of capacity for a merchant's
// date/time window.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                   // UUID
	MerchantID string    `bson:"merchant_id" json:"merchant_id"` // internal Merchant.ID, never the external merchant_ns_id
	Date       string    `bson:"date" json:"date"`               // "YYYY-MM-DD"
	TimeFrom   string    `bson:"time_from" json:"time_from"`
	TimeTo     string    `bson:"time_to" json:"time_to"`
	Inactive   bool      `bson:"inactive" json:"inactive"`
	Deleted    bool      `bson:"deleted" json:"deleted"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingDTO is the public view of a booking.
type BookingDTO struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	TimeFrom string `json:"time_from"`
	TimeTo   string `json:"time_to"`
}

// ToDTO strips internal fields.
func (b Booking) ToDTO() BookingDTO {
	return BookingDTO{ID: b.ID, Date: b.Date, TimeFrom: b.TimeFrom, TimeTo: b.TimeTo}
}

// BookingInput carries the fields of a create or update request.
type BookingInput struct {
	Date     string `json:"date" form:"date"`
	TimeFrom string `json:"time_from" form:"time_from"`
	TimeTo   string `json:"time_to" form:"time_to"`
}

// BookingUpdate holds a partial update; nil fields are left untouched.
type BookingUpdate struct {
	Date     *string
	TimeFrom *string
	TimeTo   *string
}

// BookingFilter narrows a search. Empty fields are not applied.
type BookingFilter struct {
	Date     string `form:"date"`
	TimeFrom string `form:"time_from"` // lower bound, inclusive
	TimeTo   string `form:"time_to"`   // upper bound, inclusive
}
