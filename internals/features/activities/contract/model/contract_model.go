// internals/features/activities/contract/model/contract_model.go
package model

import "time"

type ContractModel struct {
	ContractID                int        `gorm:"column:contract_id;primaryKey;autoIncrement" json:"contract_id"`
	ContractActivityID        int        `gorm:"column:contract_activity_id;not null;index" json:"contract_activity_id"`
	ContractSupplierName      string     `gorm:"column:contract_supplier_name;type:varchar(200);not null" json:"contract_supplier_name"`
	ContractDescription       *string    `gorm:"column:contract_description;type:varchar(500)" json:"contract_description"`
	ContractAmount            *float64   `gorm:"column:contract_amount" json:"contract_amount"`
	ContractDate              *time.Time `gorm:"column:contract_date" json:"contract_date"`
	ContractBudgetDocumentURL *string    `gorm:"column:contract_budget_document_url;type:varchar(500)" json:"contract_budget_document_url"`
	ContractInvoiceURL        *string    `gorm:"column:contract_invoice_url;type:varchar(500)" json:"contract_invoice_url"`
	ContractCreatedAt         time.Time  `gorm:"column:contract_created_at;autoCreateTime" json:"contract_created_at"`
}

func (ContractModel) TableName() string {
	return "activity_contracts"
}
