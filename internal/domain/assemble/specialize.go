package assemble

import (
	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
)

// specialize applies business-type specialization to an assembled document.
// Toggles are strictly additive: they append sections or feature flags and
// never remove or reorder what the skeleton produced, so determinism per
// profile is preserved.
func specialize(doc *model.Structure, profile design.Profile) {
	switch profile.BusinessType {
	case model.TypeServiceBusiness, model.TypeAutomotive:
		doc.Sections = append(doc.Sections, model.Section{
			Name:      "emergency_cta",
			Heading:   "Need Help Right Now?",
			Body:      "Around-the-clock callout for urgent problems.",
			CTA:       profile.CTAs.Urgent,
			Features:  []string{"emergency_cta", "click_to_call"},
			Animation: "fade-in",
		})
	case model.TypeRestaurant:
		doc.Sections = append(doc.Sections, model.Section{
			Name:      "reservation_cta",
			Heading:   "Join Us for a Meal",
			Body:      "Tables fill up fast on weekends.",
			CTA:       profile.CTAs.Primary,
			Features:  []string{"reservation_cta", "opening_hours"},
			Animation: "fade-in",
		})
	case model.TypeHospitality:
		doc.Sections = append(doc.Sections, model.Section{
			Name:      "booking_cta",
			Heading:   "Plan Your Stay",
			Body:      "Direct bookings get our best rate, always.",
			CTA:       profile.CTAs.Primary,
			Features:  []string{"booking_cta", "availability_check"},
			Animation: "fade-in",
		})
	case model.TypeHealthMedical, model.TypeBeautyWellness, model.TypeFitness:
		// Appointment-led businesses get a booking toggle on the contact
		// section instead of an extra block.
		for i := range doc.Sections {
			if doc.Sections[i].Name == "contact" {
				doc.Sections[i].Features = append(doc.Sections[i].Features, "appointment_booking")
			}
		}
	}
}
