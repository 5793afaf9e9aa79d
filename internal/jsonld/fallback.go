package jsonld

import "github.com/exquisite-dentistry/sitegen/internal/core/domain"

// ServiceProcedure returns the standalone MedicalProcedure node of a
// service fallback page.
func (b *Builder) ServiceProcedure(service *domain.ServicePageConfig, canonical string) MedicalProcedure {
	site := b.urls.Site()
	mp := MedicalProcedure{
		Context:     Context,
		Type:        "MedicalProcedure",
		Name:        service.Title,
		Description: service.SEO.Description,
		URL:         canonical,
		Provider:    Thing{Type: "Dentist", Name: site.BrandName, URL: site.BaseURL},
	}
	if info := service.Procedure; info != nil {
		mp.ProcedureType = info.ProcedureType
		mp.RecoveryTime = info.RecoveryTime
		mp.PriceRange = info.PriceRange
		if info.BodyLocation != "" {
			mp.BodyLocation = &Thing{Type: "BodySystem", Name: info.BodyLocation}
		}
	}
	for i, step := range service.TreatmentSteps {
		mp.HowPerformed = append(mp.HowPerformed, HowToStep{
			Type:     "HowToStep",
			Position: i + 1,
			Name:     step.Title,
			Text:     step.Detail,
		})
	}
	return mp
}

// LocationDentist returns the standalone Dentist node of a location
// fallback page.
func (b *Builder) LocationDentist(location *domain.LocationPageConfig, canonical string) LocalDentist {
	site := b.urls.Site()
	address := b.practice.Address
	address.AddressLocality = location.CityLabel
	return LocalDentist{
		Context:   Context,
		Type:      "Dentist",
		Name:      site.BrandName + " – " + location.CityLabel,
		URL:       canonical,
		Telephone: site.Phone,
		Address:   address,
	}
}
