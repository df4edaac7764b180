package classify

import "github.com/autoweb/sitesmith/internal/domain/model"

// defaultKeywords returns the per-type detection vocabularies. Keywords are
// matched as lowercase substrings, so multi-word phrases work and "plumbing"
// also hits "plumber"-adjacent copy. Vocabulary size feeds the confidence
// denominator, so keep lists roughly comparable in length.
func defaultKeywords() map[model.BusinessType][]string {
	return map[model.BusinessType][]string{
		model.TypeRestaurant: {
			"restaurant", "cafe", "dining", "food", "cuisine", "menu",
			"chef", "bistro", "eatery", "pizza", "sushi", "burger",
			"steakhouse", "seafood", "bakery", "takeout",
		},
		model.TypeServiceBusiness: {
			"plumber", "plumbing", "electrician", "electrical", "hvac",
			"heating", "cooling", "carpenter", "locksmith", "handyman",
			"roofing", "repair", "installation", "maintenance",
			"emergency", "24/7", "licensed", "insured",
		},
		model.TypeProfessional: {
			"lawyer", "attorney", "legal", "accountant", "accounting",
			"consultant", "consulting", "financial", "advisor", "cpa",
			"tax", "law firm", "bookkeeping", "audit", "litigation",
		},
		model.TypeHealthMedical: {
			"dentist", "dental", "doctor", "physician", "clinic",
			"medical", "therapy", "therapist", "chiropractor",
			"physiotherapy", "healthcare", "patient", "treatment",
			"orthodontic", "pediatric",
		},
		model.TypeBeautyWellness: {
			"salon", "spa", "massage", "barber", "nails", "manicure",
			"pedicure", "beauty", "hairstylist", "facial", "waxing",
			"makeup", "cosmetic", "skincare",
		},
		model.TypeFitness: {
			"gym", "fitness", "yoga", "pilates", "personal training",
			"crossfit", "workout", "exercise", "weight loss", "cardio",
			"strength", "boxing", "martial arts",
		},
		model.TypeRetail: {
			"shop", "store", "boutique", "retail", "merchandise",
			"clothing", "apparel", "fashion", "ecommerce", "shopping",
			"marketplace", "catalog",
		},
		model.TypeRealEstate: {
			"realtor", "real estate", "property", "homes", "houses",
			"apartments", "estate agent", "realty", "rental", "lease",
			"residential", "listing",
		},
		model.TypeAutomotive: {
			"mechanic", "auto repair", "car service", "automotive",
			"garage", "vehicle", "auto shop", "oil change", "brake",
			"transmission", "tire", "body shop",
		},
		model.TypeEducation: {
			"school", "training", "courses", "tutoring", "education",
			"learning", "academy", "institute", "lessons", "workshop",
			"certification", "coaching",
		},
		model.TypeCreative: {
			"photographer", "photography", "designer", "design",
			"agency", "studio", "creative", "artist", "branding",
			"marketing", "advertising", "video production",
		},
		model.TypeHospitality: {
			"hotel", "motel", "accommodation", "bed and breakfast",
			"resort", "inn", "lodging", "rooms", "booking", "guest",
			"vacation", "amenities",
		},
	}
}

// defaultSecondaryTags returns sub-niche markers per primary type. A tag is
// attached when any of its markers appears in the text.
func defaultSecondaryTags() map[model.BusinessType]map[string][]string {
	return map[model.BusinessType]map[string][]string{
		model.TypeRestaurant: {
			"italian":     {"italian", "pasta", "pizza"},
			"asian":       {"chinese", "sushi", "thai", "dim sum", "wok"},
			"mexican":     {"mexican", "taco", "burrito"},
			"fine_dining": {"fine dining", "upscale", "gourmet", "michelin"},
			"casual":      {"casual", "family", "neighborhood"},
			"cafe":        {"cafe", "coffee", "bakery", "breakfast"},
		},
		model.TypeServiceBusiness: {
			"emergency":   {"emergency", "24/7", "24 hour", "urgent"},
			"residential": {"residential", "home", "house"},
			"commercial":  {"commercial", "industrial"},
		},
		model.TypeBeautyWellness: {
			"hair":  {"hair", "salon", "barber"},
			"nails": {"nails", "manicure", "pedicure"},
			"spa":   {"spa", "massage", "facial"},
		},
	}
}
