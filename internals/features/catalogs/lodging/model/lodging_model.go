// internals/features/catalogs/lodging/model/lodging_model.go
package model

import "time"

type LodgingModel struct {
	LodgingID            int       `gorm:"column:lodging_id;primaryKey;autoIncrement" json:"lodging_id"`
	LodgingName          string    `gorm:"column:lodging_name;type:varchar(200);not null" json:"lodging_name"`
	LodgingAddress       *string   `gorm:"column:lodging_address;type:varchar(300)" json:"lodging_address"`
	LodgingCity          *string   `gorm:"column:lodging_city;type:varchar(100)" json:"lodging_city"`
	LodgingProvince      *string   `gorm:"column:lodging_province;type:varchar(100)" json:"lodging_province"`
	LodgingPostalCode    *string   `gorm:"column:lodging_postal_code;type:varchar(10)" json:"lodging_postal_code"`
	LodgingPhone         *string   `gorm:"column:lodging_phone;type:varchar(20)" json:"lodging_phone"`
	LodgingEmail         *string   `gorm:"column:lodging_email;type:varchar(150)" json:"lodging_email"`
	LodgingContactPerson *string   `gorm:"column:lodging_contact_person;type:varchar(150)" json:"lodging_contact_person"`
	LodgingCapacity      *int      `gorm:"column:lodging_capacity" json:"lodging_capacity"`
	LodgingPricePerNight *float64  `gorm:"column:lodging_price_per_night" json:"lodging_price_per_night"`
	LodgingDescription   *string   `gorm:"column:lodging_description;type:varchar(1000)" json:"lodging_description"`
	LodgingIsActive      bool      `gorm:"column:lodging_is_active;not null;default:true" json:"lodging_is_active"`
	LodgingCreatedAt     time.Time `gorm:"column:lodging_created_at;autoCreateTime" json:"lodging_created_at"`
}

func (LodgingModel) TableName() string {
	return "lodgings"
}
