// internals/features/catalogs/transport/model/transport_company_model.go
package model

import "time"

type TransportCompanyModel struct {
	TransportCompanyID        int       `gorm:"column:transport_company_id;primaryKey;autoIncrement" json:"transport_company_id"`
	TransportCompanyName      string    `gorm:"column:transport_company_name;type:varchar(200);not null" json:"transport_company_name"`
	TransportCompanyTaxID     *string   `gorm:"column:transport_company_tax_id;type:varchar(20)" json:"transport_company_tax_id"`
	TransportCompanyPhone     *string   `gorm:"column:transport_company_phone;type:varchar(20)" json:"transport_company_phone"`
	TransportCompanyEmail     *string   `gorm:"column:transport_company_email;type:varchar(150)" json:"transport_company_email"`
	TransportCompanyAddress   *string   `gorm:"column:transport_company_address;type:varchar(300)" json:"transport_company_address"`
	TransportCompanyIsActive  bool      `gorm:"column:transport_company_is_active;not null;default:true" json:"transport_company_is_active"`
	TransportCompanyCreatedAt time.Time `gorm:"column:transport_company_created_at;autoCreateTime" json:"transport_company_created_at"`
}

func (TransportCompanyModel) TableName() string {
	return "transport_companies"
}
