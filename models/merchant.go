package models

// Merchant is the tenant owning schedule rules and bookings.
type Merchant struct {
	ID               string         `bson:"id" json:"id"`
	MerchantNsID     string         `bson:"merchant_ns_id" json:"merchant_ns_id"`
	Name             string         `bson:"name" json:"name"`
	Inactive         bool           `bson:"inactive" json:"inactive"`
	Deleted          bool           `bson:"deleted" json:"deleted"`
	DeliverySchedule []ScheduleRule `bson:"delivery_schedule" json:"delivery_schedule"`
}

// Usable reports whether the merchant may be served.
func (m Merchant) Usable() bool {
	return !m.Inactive && !m.Deleted
}
