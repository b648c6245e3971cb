package models

// PublicHoliday marks a non-business date. An empty MerchantID applies the
// holiday to every merchant.
type PublicHoliday struct {
	ID         string `bson:"id" json:"id"`
	Date       string `bson:"date" json:"date"`
	Name       string `bson:"name" json:"name"`
	MerchantID string `bson:"merchant_id,omitempty" json:"merchant_id,omitempty"`
	Inactive   bool   `bson:"inactive" json:"inactive"`
	Deleted    bool   `bson:"deleted" json:"deleted"`
}
