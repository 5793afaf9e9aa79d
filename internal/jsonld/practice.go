package jsonld

import (
	"strings"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// Fragment identifiers of the shared graph nodes.
const (
	businessFragment = "#business"
	doctorFragment   = "#doctor"
	websiteFragment  = "#website"
)

// Practice holds the facts about the practice that every graph repeats.
type Practice struct {
	Name          string
	AlternateName string
	Description   string
	Email         string
	PriceRange    string
	Address       PostalAddress
	Geo           GeoCoordinates
	MapURL        string
	Hours         []OpeningHours
	AreaServed    []string
	Images        []string
	Logo          string
	SameAs        []string
	Doctor        Person
}

// DefaultPractice returns the practice facts published on the live site.
func DefaultPractice() Practice {
	const uploads = domain.DefaultBaseURL + "/lovable-uploads/"
	return Practice{
		Name:          "Exquisite Dentistry Los Angeles",
		AlternateName: "Exquisite Dentistry",
		Description: "Premier cosmetic dentistry practice in Los Angeles specializing in porcelain veneers, " +
			"teeth whitening, Invisalign, and complete smile makeovers",
		Email:      "info@exquisitedentistryla.com",
		PriceRange: "$$$",
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   "6222 Wilshire Blvd Suite 101",
			AddressLocality: "Los Angeles",
			AddressRegion:   "CA",
			PostalCode:      "90048",
			AddressCountry:  "US",
		},
		Geo:    GeoCoordinates{Type: "GeoCoordinates", Latitude: 34.064851, Longitude: -118.370092},
		MapURL: "https://www.google.com/maps/place/Exquisite+Dentistry/@34.0622,-118.3567,17z",
		Hours: []OpeningHours{
			{Type: "OpeningHoursSpecification", DayOfWeek: []string{"Monday", "Tuesday", "Wednesday", "Thursday"}, Opens: "08:00", Closes: "19:00"},
			{Type: "OpeningHoursSpecification", DayOfWeek: []string{"Saturday"}, Opens: "08:00", Closes: "14:00"},
		},
		AreaServed: []string{"Los Angeles", "Beverly Hills", "West Hollywood", "Santa Monica"},
		Images: []string{
			uploads + "dr-aguil-banner-2024-m.webp",
			uploads + "2e2732fc-c4a6-4f21-9829-3717d9b2b36d.png",
			uploads + "1575f241-2d2e-4530-b7e7-6fd4ff56ccf5.png",
		},
		Logo: uploads + "dr-aguil-banner-2024-m.webp",
		SameAs: []string{
			"https://www.google.com/maps/place/Exquisite+Dentistry",
			"https://www.facebook.com/exquisitedentistryla",
			"https://www.instagram.com/exquisitedentistryla/",
			"https://www.yelp.com/biz/exquisite-dentistry-los-angeles-3",
		},
		Doctor: Person{
			Type:     "Person",
			Name:     "Dr. Alexie Aguil",
			JobTitle: "Cosmetic Dentist",
			Description: "Board-certified cosmetic dentist specializing in porcelain veneers, smile makeovers, " +
				"and advanced dental aesthetics",
			Image: uploads + "1575f241-2d2e-4530-b7e7-6fd4ff56ccf5.png",
			KnowsAbout: []string{
				"Cosmetic Dentistry", "Porcelain Veneers", "Teeth Whitening",
				"Invisalign", "Smile Makeovers", "Dental Aesthetics",
			},
			AlumniOf: []Thing{
				{Type: "EducationalOrganization", Name: "University of Southern California School of Dentistry"},
			},
			MemberOf: []Thing{
				{Type: "Organization", Name: "American Academy of Cosmetic Dentistry"},
				{Type: "Organization", Name: "California Dental Association"},
			},
		},
	}
}

// nodeID returns the @id of a shared node under base.
func nodeID(base, fragment string) string {
	return strings.TrimRight(base, "/") + "/" + fragment
}
