// internals/features/catalogs/location/dto/location_dto.go
package dto

import (
	"acex_backend/internals/features/catalogs/location/model"
	"acex_backend/internals/helpers/field"
)

type CreateLocationRequest struct {
	LocationName       string   `json:"location_name" validate:"required,max=200"`
	LocationAddress    *string  `json:"location_address" validate:"omitempty,max=300"`
	LocationCity       *string  `json:"location_city" validate:"omitempty,max=100"`
	LocationProvince   *string  `json:"location_province" validate:"omitempty,max=100"`
	LocationPostalCode *string  `json:"location_postal_code" validate:"omitempty,max=10"`
	LocationLatitude   *float64 `json:"location_latitude" validate:"omitempty,gte=-90,lte=90"`
	LocationLongitude  *float64 `json:"location_longitude" validate:"omitempty,gte=-180,lte=180"`
	LocationIcon       *string  `json:"location_icon" validate:"omitempty,max=100"`
}

type UpdateLocationRequest struct {
	LocationName       field.Field[string]  `json:"location_name"`
	LocationAddress    field.Field[string]  `json:"location_address"`
	LocationCity       field.Field[string]  `json:"location_city"`
	LocationProvince   field.Field[string]  `json:"location_province"`
	LocationPostalCode field.Field[string]  `json:"location_postal_code"`
	LocationLatitude   field.Field[float64] `json:"location_latitude"`
	LocationLongitude  field.Field[float64] `json:"location_longitude"`
	LocationIcon       field.Field[string]  `json:"location_icon"`
}

func (r *CreateLocationRequest) ToModel() *model.LocationModel {
	return &model.LocationModel{
		LocationName:       r.LocationName,
		LocationAddress:    r.LocationAddress,
		LocationCity:       r.LocationCity,
		LocationProvince:   r.LocationProvince,
		LocationPostalCode: r.LocationPostalCode,
		LocationLatitude:   r.LocationLatitude,
		LocationLongitude:  r.LocationLongitude,
		LocationIcon:       r.LocationIcon,
	}
}

func (r *UpdateLocationRequest) ApplyTo(m *model.LocationModel) {
	if v, ok := r.LocationName.Get(); ok {
		m.LocationName = v
	}
	if r.LocationAddress.Present {
		m.LocationAddress = r.LocationAddress.Ptr()
	}
	if r.LocationCity.Present {
		m.LocationCity = r.LocationCity.Ptr()
	}
	if r.LocationProvince.Present {
		m.LocationProvince = r.LocationProvince.Ptr()
	}
	if r.LocationPostalCode.Present {
		m.LocationPostalCode = r.LocationPostalCode.Ptr()
	}
	if r.LocationLatitude.Present {
		m.LocationLatitude = r.LocationLatitude.Ptr()
	}
	if r.LocationLongitude.Present {
		m.LocationLongitude = r.LocationLongitude.Ptr()
	}
	if r.LocationIcon.Present {
		m.LocationIcon = r.LocationIcon.Ptr()
	}
}
