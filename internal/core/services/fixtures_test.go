package services

import (
	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/memory"
	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// spaShell is a minimal built SPA entry point.
const spaShell = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>Exquisite Dentistry</title>
    <meta name="description" content="Placeholder" />
    <script type="module" src="/assets/index.js"></script>
  </head>
  <body>
    <div id="root"></div>
  </body>
</html>
`

func testSettings() *domain.AppSettings {
	settings := domain.DefaultAppSettings()
	return &settings
}

// testSiteStore returns a project tree with a built dist/index.html.
func testSiteStore() *memory.SiteStore {
	return memory.NewSiteStore(map[string][]byte{
		"dist/index.html": []byte(spaShell),
	})
}

func testContent() *domain.Content {
	return &domain.Content{
		Services: map[string]domain.ServicePageConfig{
			"teeth-cleaning": {
				Slug:  "teeth-cleaning",
				Title: "Teeth Cleaning & Exams",
				SEO: domain.SEOFields{
					Title:       "Teeth Cleaning in Los Angeles",
					Description: "Gentle professional cleanings and exams at our Los Angeles practice.",
					Keywords:    []string{"teeth cleaning", "dental exam", "Teeth Cleaning"},
				},
				Hero: domain.ServiceHero{
					Heading:    "Professional Teeth Cleaning in Los Angeles",
					Subheading: "Preventive care that keeps your smile healthy between visits.",
				},
				Overview: domain.ServiceOverview{
					Intro: []string{
						"Routine cleanings remove plaque and tartar that brushing misses.",
						"Every visit includes a thorough exam of your teeth and gums.",
						"We finish with a polish so your smile feels fresh.",
					},
					Callouts: []domain.TitledText{{Title: "Comfort first", Description: "Warm blankets and noise cancelling headphones."}},
				},
				Benefits: []domain.TitledText{
					{Title: "Fresh breath", Description: "Bacteria below the gumline are removed."},
					{Title: "Early detection", Description: "Small problems are found before they grow."},
				},
				TreatmentSteps: []domain.TreatmentStep{
					{Title: "Exam", Detail: "A gentle check of teeth and gums."},
					{Title: "Cleaning", Detail: "Scaling and polishing."},
				},
				FAQs: []domain.FAQ{{Question: "How often should I come in?", Answer: "Twice a year for most patients."}},
				CTA: domain.CallToAction{
					Heading:     "Book your cleaning",
					Description: "Schedule a visit with our hygiene team.",
					PrimaryText: "Book Now",
					PrimaryHref: "/contact",
				},
				InternalLinks: []domain.Link{
					{Label: "Dental Implants", Href: "/dental-implants"},
					{Label: "Contact", Href: "/contact"},
				},
			},
			"dental-implants": {
				Slug:  "dental-implants",
				Title: "Dental Implants",
				SEO: domain.SEOFields{
					Title:       "Dental Implants Los Angeles",
					Description: "Permanent tooth replacement with dental implants.",
				},
				Hero: domain.ServiceHero{
					Heading:    "Dental Implants in Los Angeles",
					Subheading: "Replace missing teeth with a permanent solution.",
				},
				Overview: domain.ServiceOverview{
					Intro: []string{"Implants replace the root of a missing tooth."},
				},
				CTA: domain.CallToAction{
					Heading:     "Explore implants",
					Description: "Find out whether implants are right for you.",
					PrimaryText: "Consult",
					PrimaryHref: "/contact",
				},
				InternalLinks: []domain.Link{
					{Label: "Teeth Cleaning", Href: "/teeth-cleaning"},
					{Label: "Contact", Href: "/contact"},
				},
				Procedure: &domain.ProcedureInfo{
					ProcedureType: "Surgical",
					BodyLocation:  "Jaw",
				},
			},
		},
		ServiceOrder: []string{"teeth-cleaning", "dental-implants"},
		Locations: map[string]domain.LocationPageConfig{
			"beverly-hills-dentist": {
				Slug:      "beverly-hills-dentist",
				CityLabel: "Beverly Hills",
				SEO: domain.SEOFields{
					Title:       "Beverly Hills Dentist",
					Description: "Cosmetic dentistry minutes from Beverly Hills.",
				},
				Hero: domain.LocationHero{
					Heading:    "Dentist near Beverly Hills",
					Subheading: "Minutes from Rodeo Drive.",
				},
				PracticeLocation: &domain.PracticeLocation{
					Heading:     "Getting Here",
					Description: "Ten minutes east along Wilshire.",
					Highlights:  []string{"Valet parking"},
				},
				NeighborhoodHighlights: []string{"Discreet appointments"},
				SignatureServices:      []string{"Porcelain veneers"},
				Testimonials:           []domain.Testimonial{{Quote: "Wonderful", Author: "A. P."}},
				RelatedServices:        []domain.Link{{Label: "Veneers", Href: "/veneers"}},
				CTA: domain.CallToAction{
					Heading:     "Visit us",
					Description: "Book a consultation.",
					PrimaryText: "Book",
					PrimaryHref: "/contact",
				},
			},
			"west-hollywood-dentist": {
				Slug:      "west-hollywood-dentist",
				CityLabel: "West Hollywood",
				SEO: domain.SEOFields{
					Title:       "West Hollywood Dentist",
					Description: "Cosmetic dentistry near West Hollywood.",
				},
				Hero:            domain.LocationHero{Heading: "Dentist near West Hollywood"},
				RelatedServices: []domain.Link{{Label: "Teeth Whitening", Href: "/teeth-whitening"}},
			},
		},
		LocationOrder: []string{"beverly-hills-dentist", "west-hollywood-dentist"},
		ManualPages: []domain.StaticRoute{
			{
				Path:        "/",
				Title:       "Exquisite Dentistry | Cosmetic Dentist Los Angeles",
				Description: "Luxury cosmetic dentistry in Los Angeles.",
				H1:          "Luxury Dentistry in Los Angeles",
				NavLinks:    true,
			},
			{
				Path:        "/about",
				Title:       "About Dr. Alexie Aguil",
				Description: "Meet the doctor.",
				H1:          "Meet Dr. Alexie Aguil",
				FAQSet:      "general",
			},
			{
				Path:  "/dental-implants",
				Title: "Dental Implants",
				H1:    "Dental Implants Los Angeles",
			},
		},
		RouteMetadata: map[string]domain.PageMetadata{
			"/":               {Title: "Cosmetic Dentist Los Angeles", Description: "Luxury cosmetic dentistry."},
			"/about":          {Title: "About Dr. Alexie Aguil", Description: "Meet the doctor.", Keywords: "dentist, about, "},
			"/contact":        {Title: "Contact Us", Description: "Call or visit."},
			"/teeth-cleaning": {Title: "Ignored", Description: "Covered by the service entry."},
		},
		FAQSets: map[string]domain.FAQSet{
			"general": {
				Name:  "general",
				About: "Exquisite Dentistry",
				Items: []domain.FAQ{{Question: "Where are you located?", Answer: "On Wilshire Blvd."}},
			},
		},
		Posts: []domain.BlogPost{
			{
				ID:            "1",
				Slug:          "veneers-wedding",
				Title:         "Porcelain Veneers for Your Wedding Day",
				Excerpt:       "Plan your smile makeover before the big day.",
				Content:       "<p>First paragraph.</p><p>Second paragraph.</p><p>Third paragraph.</p>",
				Author:        "Dr. Alexie Aguil",
				Date:          "2024-05-01",
				Category:      "Cosmetic",
				Tags:          []string{"veneers"},
				FeaturedImage: "/images/wedding.webp",
				SEOKeywords:   "veneers, wedding smile",
				Published:     true,
			},
			{
				ID:       "2",
				Slug:     "draft-post",
				Title:    "Draft Post",
				Category: "Cosmetic",
			},
		},
		Stories: []domain.TransformationStory{
			{
				ID:               "s1",
				Slug:             "maria-veneers",
				PatientName:      "Maria",
				Title:            "Maria and Her New Veneers",
				ShortDescription: "Maria talks about her veneer journey.",
				Video:            domain.StoryVideo{Src: "/videos/maria.mp4", Poster: "/videos/maria.webp"},
				KeyTakeaways:     []string{"Natural looking results"},
				Quotes:           []domain.StoryQuote{{Text: "I love my smile", Context: "after treatment"}},
				WhyChoseUs:       []domain.TitledText{{Title: "Artistry", Description: "Custom shade matching."}},
				SEO:              domain.StorySEO{Keywords: "veneers, smile makeover"},
			},
		},
	}
}
