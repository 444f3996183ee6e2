// internals/features/catalogs/lodging/dto/lodging_dto.go
package dto

import (
	"acex_backend/internals/features/catalogs/lodging/model"
	"acex_backend/internals/helpers/field"
)

type CreateLodgingRequest struct {
	LodgingName          string   `json:"lodging_name" validate:"required,max=200"`
	LodgingAddress       *string  `json:"lodging_address" validate:"omitempty,max=300"`
	LodgingCity          *string  `json:"lodging_city" validate:"omitempty,max=100"`
	LodgingProvince      *string  `json:"lodging_province" validate:"omitempty,max=100"`
	LodgingPostalCode    *string  `json:"lodging_postal_code" validate:"omitempty,max=10"`
	LodgingPhone         *string  `json:"lodging_phone" validate:"omitempty,max=20"`
	LodgingEmail         *string  `json:"lodging_email" validate:"omitempty,email,max=150"`
	LodgingContactPerson *string  `json:"lodging_contact_person" validate:"omitempty,max=150"`
	LodgingCapacity      *int     `json:"lodging_capacity" validate:"omitempty,gte=0"`
	LodgingPricePerNight *float64 `json:"lodging_price_per_night" validate:"omitempty,gte=0"`
	LodgingDescription   *string  `json:"lodging_description" validate:"omitempty,max=1000"`
}

type UpdateLodgingRequest struct {
	LodgingName          field.Field[string]  `json:"lodging_name"`
	LodgingAddress       field.Field[string]  `json:"lodging_address"`
	LodgingCity          field.Field[string]  `json:"lodging_city"`
	LodgingProvince      field.Field[string]  `json:"lodging_province"`
	LodgingPostalCode    field.Field[string]  `json:"lodging_postal_code"`
	LodgingPhone         field.Field[string]  `json:"lodging_phone"`
	LodgingEmail         field.Field[string]  `json:"lodging_email"`
	LodgingContactPerson field.Field[string]  `json:"lodging_contact_person"`
	LodgingCapacity      field.Field[int]     `json:"lodging_capacity"`
	LodgingPricePerNight field.Field[float64] `json:"lodging_price_per_night"`
	LodgingDescription   field.Field[string]  `json:"lodging_description"`
	LodgingIsActive      field.Field[bool]    `json:"lodging_is_active"`
}

func (r *CreateLodgingRequest) ToModel() *model.LodgingModel {
	return &model.LodgingModel{
		LodgingName:          r.LodgingName,
		LodgingAddress:       r.LodgingAddress,
		LodgingCity:          r.LodgingCity,
		LodgingProvince:      r.LodgingProvince,
		LodgingPostalCode:    r.LodgingPostalCode,
		LodgingPhone:         r.LodgingPhone,
		LodgingEmail:         r.LodgingEmail,
		LodgingContactPerson: r.LodgingContactPerson,
		LodgingCapacity:      r.LodgingCapacity,
		LodgingPricePerNight: r.LodgingPricePerNight,
		LodgingDescription:   r.LodgingDescription,
		LodgingIsActive:      true,
	}
}

func (r *UpdateLodgingRequest) ApplyTo(m *model.LodgingModel) {
	if v, ok := r.LodgingName.Get(); ok {
		m.LodgingName = v
	}
	if r.LodgingAddress.Present {
		m.LodgingAddress = r.LodgingAddress.Ptr()
	}
	if r.LodgingCity.Present {
		m.LodgingCity = r.LodgingCity.Ptr()
	}
	if r.LodgingProvince.Present {
		m.LodgingProvince = r.LodgingProvince.Ptr()
	}
	if r.LodgingPostalCode.Present {
		m.LodgingPostalCode = r.LodgingPostalCode.Ptr()
	}
	if r.LodgingPhone.Present {
		m.LodgingPhone = r.LodgingPhone.Ptr()
	}
	if r.LodgingEmail.Present {
		m.LodgingEmail = r.LodgingEmail.Ptr()
	}
	if r.LodgingContactPerson.Present {
		m.LodgingContactPerson = r.LodgingContactPerson.Ptr()
	}
	if r.LodgingCapacity.Present {
		m.LodgingCapacity = r.LodgingCapacity.Ptr()
	}
	if r.LodgingPricePerNight.Present {
		m.LodgingPricePerNight = r.LodgingPricePerNight.Ptr()
	}
	if r.LodgingDescription.Present {
		m.LodgingDescription = r.LodgingDescription.Ptr()
	}
	if v, ok := r.LodgingIsActive.Get(); ok {
		m.LodgingIsActive = v
	}
}
