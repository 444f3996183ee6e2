// internals/features/catalogs/transport/dto/transport_company_dto.go
package dto

import (
	"acex_backend/internals/features/catalogs/transport/model"
	"acex_backend/internals/helpers/field"
)

type CreateTransportCompanyRequest struct {
	TransportCompanyName    string  `json:"transport_company_name" validate:"required,max=200"`
	TransportCompanyTaxID   *string `json:"transport_company_tax_id" validate:"omitempty,max=20"`
	TransportCompanyPhone   *string `json:"transport_company_phone" validate:"omitempty,max=20"`
	TransportCompanyEmail   *string `json:"transport_company_email" validate:"omitempty,email,max=150"`
	TransportCompanyAddress *string `json:"transport_company_address" validate:"omitempty,max=300"`
}

type UpdateTransportCompanyRequest struct {
	TransportCompanyName     field.Field[string] `json:"transport_company_name"`
	TransportCompanyTaxID    field.Field[string] `json:"transport_company_tax_id"`
	TransportCompanyPhone    field.Field[string] `json:"transport_company_phone"`
	TransportCompanyEmail    field.Field[string] `json:"transport_company_email"`
	TransportCompanyAddress  field.Field[string] `json:"transport_company_address"`
	TransportCompanyIsActive field.Field[bool]   `json:"transport_company_is_active"`
}

func (r *CreateTransportCompanyRequest) ToModel() *model.TransportCompanyModel {
	return &model.TransportCompanyModel{
		TransportCompanyName:     r.TransportCompanyName,
		TransportCompanyTaxID:    r.TransportCompanyTaxID,
		TransportCompanyPhone:    r.TransportCompanyPhone,
		TransportCompanyEmail:    r.TransportCompanyEmail,
		TransportCompanyAddress:  r.TransportCompanyAddress,
		TransportCompanyIsActive: true,
	}
}

func (r *UpdateTransportCompanyRequest) ApplyTo(m *model.TransportCompanyModel) {
	if v, ok := r.TransportCompanyName.Get(); ok {
		m.TransportCompanyName = v
	}
	if r.TransportCompanyTaxID.Present {
		m.TransportCompanyTaxID = r.TransportCompanyTaxID.Ptr()
	}
	if r.TransportCompanyPhone.Present {
		m.TransportCompanyPhone = r.TransportCompanyPhone.Ptr()
	}
	if r.TransportCompanyEmail.Present {
		m.TransportCompanyEmail = r.TransportCompanyEmail.Ptr()
	}
	if r.TransportCompanyAddress.Present {
		m.TransportCompanyAddress = r.TransportCompanyAddress.Ptr()
	}
	if v, ok := r.TransportCompanyIsActive.Get(); ok {
		m.TransportCompanyIsActive = v
	}
}
