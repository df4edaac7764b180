// Package model contains domain models passed between layers.
package model

// BusinessType is the closed classification tag that drives design and
// content rules. TypeDefault is the open-world fallback and is not part of
// the enumeration proper.
type BusinessType string

const (
	TypeRestaurant      BusinessType = "restaurant"
	TypeServiceBusiness BusinessType = "service_business"
	TypeProfessional    BusinessType = "professional_services"
	TypeHealthMedical   BusinessType = "health_medical"
	TypeBeautyWellness  BusinessType = "beauty_wellness"
	TypeFitness         BusinessType = "fitness"
	TypeRetail          BusinessType = "retail"
	TypeRealEstate      BusinessType = "real_estate"
	TypeAutomotive      BusinessType = "automotive"
	TypeEducation       BusinessType = "education"
	TypeCreative        BusinessType = "creative"
	TypeHospitality     BusinessType = "hospitality"

	TypeDefault BusinessType = "default"
)

// Enumeration returns all classifiable business types in declaration order.
// Order is load-bearing: the classifier breaks ties by declaration order,
// and the design profile table is checked for completeness against it.
func Enumeration() []BusinessType {
	return []BusinessType{
		TypeRestaurant,
		TypeServiceBusiness,
		TypeProfessional,
		TypeHealthMedical,
		TypeBeautyWellness,
		TypeFitness,
		TypeRetail,
		TypeRealEstate,
		TypeAutomotive,
		TypeEducation,
		TypeCreative,
		TypeHospitality,
	}
}

// displayNames maps internal tags to human-readable names used in logs and
// artifact metadata.
var displayNames = map[BusinessType]string{
	TypeRestaurant:      "Restaurant/Cafe",
	TypeServiceBusiness: "Home & Trade Services",
	TypeProfessional:    "Professional Services",
	TypeHealthMedical:   "Health/Medical",
	TypeBeautyWellness:  "Beauty/Wellness",
	TypeFitness:         "Fitness",
	TypeRetail:          "Retail/Shop",
	TypeRealEstate:      "Real Estate",
	TypeAutomotive:      "Automotive",
	TypeEducation:       "Education",
	TypeCreative:        "Creative Services",
	TypeHospitality:     "Hospitality",
	TypeDefault:         "General Business",
}

// DisplayName returns the human-readable name for a business type.
func (t BusinessType) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// Valid reports whether t is a member of the enumeration or the default tag.
func (t BusinessType) Valid() bool {
	_, ok := displayNames[t]
	return ok
}
