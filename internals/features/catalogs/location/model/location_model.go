// internals/features/catalogs/location/model/location_model.go
package model

import "time"

type LocationModel struct {
	LocationID         int       `gorm:"column:location_id;primaryKey;autoIncrement" json:"location_id"`
	LocationName       string    `gorm:"column:location_name;type:varchar(200);not null" json:"location_name"`
	LocationAddress    *string   `gorm:"column:location_address;type:varchar(300)" json:"location_address"`
	LocationCity       *string   `gorm:"column:location_city;type:varchar(100)" json:"location_city"`
	LocationProvince   *string   `gorm:"column:location_province;type:varchar(100)" json:"location_province"`
	LocationPostalCode *string   `gorm:"column:location_postal_code;type:varchar(10)" json:"location_postal_code"`
	LocationLatitude   *float64  `gorm:"column:location_latitude" json:"location_latitude"`
	LocationLongitude  *float64  `gorm:"column:location_longitude" json:"location_longitude"`
	LocationIcon       *string   `gorm:"column:location_icon;type:varchar(100)" json:"location_icon"`
	LocationCreatedAt  time.Time `gorm:"column:location_created_at;autoCreateTime" json:"location_created_at"`
}

func (LocationModel) TableName() string {
	return "locations"
}
