package design

import "github.com/autoweb/sitesmith/internal/domain/model"

// profileTable returns the full type-to-profile table. Section order within
// RequiredSections is the assembly order and must stay stable across
// revisions of the same table edition.
func profileTable() map[model.BusinessType]Profile {
	table := map[model.BusinessType]Profile{
		model.TypeRestaurant: {
			ColorPrimary: "#C2410C", ColorSecondary: "#EA580C", ColorAccent: "#FB923C",
			FontHeading: "Playfair Display", FontBody: "Inter",
			HeroStyle: "video", AnimationTier: TierRich,
			RequiredSections: []string{"hero", "menu", "about", "gallery", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Reserve a Table",
				Secondary: "View Our Menu",
				Urgent:    "Order Takeout Now",
			},
			SearchTerms: map[string][]string{
				"hero":         {"fine dining", "restaurant ambiance", "chef cooking"},
				"menu":         {"food plating", "gourmet food", "appetizer"},
				"about":        {"restaurant interior", "chef portrait"},
				"gallery":      {"food photography", "culinary", "dessert presentation"},
				"testimonials": {"dining experience"},
				"contact":      {"restaurant exterior"},
			},
			Defaults: ContentDefaults{
				Headline:    "A Dining Experience Worth Savoring",
				Subheadline: "Fresh ingredients, honest cooking, warm hospitality",
				About:       "We cook the food we love for the neighborhood we love.",
				ValueProps:  []string{"Fresh Local Ingredients", "Seasonal Menu", "Warm Atmosphere"},
			},
		},
		model.TypeServiceBusiness: {
			ColorPrimary: "#1D4ED8", ColorSecondary: "#3B82F6", ColorAccent: "#60A5FA",
			FontHeading: "Montserrat", FontBody: "Open Sans",
			HeroStyle: "image", AnimationTier: TierModerate,
			RequiredSections: []string{"hero", "services", "about", "gallery", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Get a Free Quote",
				Secondary: "See Our Work",
				Urgent:    "Call Now - 24/7 Emergency Service",
			},
			SearchTerms: map[string][]string{
				"hero":         {"professional handyman", "home renovation", "contractor work"},
				"services":     {"tools equipment", "repair service"},
				"about":        {"quality workmanship", "professional service"},
				"gallery":      {"before after home", "construction"},
				"testimonials": {"happy homeowner"},
				"contact":      {"service van"},
			},
			Defaults: ContentDefaults{
				Headline:    "Reliable Service, Done Right",
				Subheadline: "Licensed, insured and on time",
				About:       "Local tradespeople with the experience to fix it right the first time.",
				ValueProps:  []string{"Licensed & Insured", "Upfront Pricing", "Satisfaction Guaranteed"},
			},
		},
		model.TypeProfessional: {
			ColorPrimary: "#1E40AF", ColorSecondary: "#3B82F6", ColorAccent: "#60A5FA",
			FontHeading: "Merriweather", FontBody: "Source Sans Pro",
			HeroStyle: "image", AnimationTier: TierSubtle,
			RequiredSections: []string{"hero", "services", "about", "team", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Book a Consultation",
				Secondary: "Our Practice Areas",
				Urgent:    "Speak to an Expert Today",
			},
			SearchTerms: map[string][]string{
				"hero":         {"office professional", "business meeting", "modern workspace"},
				"services":     {"business consulting", "professional office"},
				"about":        {"corporate team", "executive"},
				"team":         {"team collaboration", "business portrait"},
				"testimonials": {"business success"},
				"contact":      {"office building"},
			},
			Defaults: ContentDefaults{
				Headline:    "Advice You Can Build On",
				Subheadline: "Experienced counsel for businesses and individuals",
				About:       "A practice built on results and long-standing client relationships.",
				ValueProps:  []string{"Proven Track Record", "Clear Communication", "Tailored Advice"},
			},
		},
		model.TypeHealthMedical: {
			ColorPrimary: "#0D9488", ColorSecondary: "#14B8A6", ColorAccent: "#2DD4BF",
			FontHeading: "Poppins", FontBody: "Roboto",
			HeroStyle: "image", AnimationTier: TierSubtle,
			RequiredSections: []string{"hero", "services", "about", "team", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Book an Appointment",
				Secondary: "Our Treatments",
				Urgent:    "Same-Day Appointments Available",
			},
			SearchTerms: map[string][]string{
				"hero":         {"medical professional", "clinic interior"},
				"services":     {"patient care", "medical equipment"},
				"about":        {"health wellness", "medical facility"},
				"team":         {"doctor", "healthcare worker"},
				"testimonials": {"patient smiling"},
				"contact":      {"clinic reception"},
			},
			Defaults: ContentDefaults{
				Headline:    "Care That Puts You First",
				Subheadline: "Modern treatment, compassionate team",
				About:       "We combine up-to-date clinical practice with genuine patient care.",
				ValueProps:  []string{"Experienced Clinicians", "Modern Facilities", "Patient-First Care"},
			},
		},
		model.TypeBeautyWellness: {
			ColorPrimary: "#DB2777", ColorSecondary: "#EC4899", ColorAccent: "#F472B6",
			FontHeading: "Cormorant Garamond", FontBody: "Lato",
			HeroStyle: "image", AnimationTier: TierRich,
			RequiredSections: []string{"hero", "services", "about", "gallery", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Book Your Visit",
				Secondary: "Browse Treatments",
				Urgent:    "Limited Slots This Week",
			},
			SearchTerms: map[string][]string{
				"hero":         {"spa interior", "salon styling"},
				"services":     {"facial treatment", "manicure"},
				"about":        {"relaxation", "skincare"},
				"gallery":      {"hair styling", "beauty treatment"},
				"testimonials": {"spa client"},
				"contact":      {"salon front"},
			},
			Defaults: ContentDefaults{
				Headline:    "Look Good. Feel Better.",
				Subheadline: "Treatments tailored to you",
				About:       "A calm space, skilled hands and products we trust.",
				ValueProps:  []string{"Qualified Stylists", "Premium Products", "Relaxed Atmosphere"},
			},
		},
		model.TypeFitness: {
			ColorPrimary: "#DC2626", ColorSecondary: "#EF4444", ColorAccent: "#F87171",
			FontHeading: "Oswald", FontBody: "Roboto",
			HeroStyle: "video", AnimationTier: TierRich,
			RequiredSections: []string{"hero", "programs", "about", "gallery", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Start Your Free Trial",
				Secondary: "View Class Schedule",
				Urgent:    "Join This Month, Save 20%",
			},
			SearchTerms: map[string][]string{
				"hero":         {"fitness training", "gym interior"},
				"programs":     {"workout", "personal trainer"},
				"about":        {"fitness studio", "athletic"},
				"gallery":      {"exercise", "health fitness"},
				"testimonials": {"gym member"},
				"contact":      {"gym entrance"},
			},
			Defaults: ContentDefaults{
				Headline:    "Stronger Every Session",
				Subheadline: "Coaching, community and results",
				About:       "Programs for every level, coached by people who care about your progress.",
				ValueProps:  []string{"Certified Coaches", "Flexible Memberships", "Real Results"},
			},
		},
		model.TypeRetail: {
			ColorPrimary: "#6366F1", ColorSecondary: "#8B5CF6", ColorAccent: "#A78BFA",
			FontHeading: "DM Serif Display", FontBody: "Inter",
			HeroStyle: "image", AnimationTier: TierModerate,
			RequiredSections: []string{"hero", "products", "about", "gallery", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Shop the Collection",
				Secondary: "New Arrivals",
				Urgent:    "Sale Ends Sunday",
			},
			SearchTerms: map[string][]string{
				"hero":         {"boutique shopping", "store front"},
				"products":     {"product display", "merchandise"},
				"about":        {"retail interior", "retail design"},
				"gallery":      {"product photography", "shopping experience"},
				"testimonials": {"happy shopper"},
				"contact":      {"storefront"},
			},
			Defaults: ContentDefaults{
				Headline:    "Things Worth Owning",
				Subheadline: "Curated pieces, fair prices",
				About:       "We stock what we would buy ourselves, and stand behind all of it.",
				ValueProps:  []string{"Curated Selection", "Fair Prices", "Easy Returns"},
			},
		},
		model.TypeRealEstate: {
			ColorPrimary: "#0F766E", ColorSecondary: "#14B8A6", ColorAccent: "#2DD4BF",
			FontHeading: "Libre Baskerville", FontBody: "Source Sans Pro",
			HeroStyle: "image", AnimationTier: TierSubtle,
			RequiredSections: []string{"hero", "listings", "about", "team", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Browse Listings",
				Secondary: "Get a Valuation",
				Urgent:    "New Listings This Week",
			},
			SearchTerms: map[string][]string{
				"hero":         {"modern home exterior", "city skyline"},
				"listings":     {"house interior", "apartment living room"},
				"about":        {"real estate agent"},
				"team":         {"estate agent portrait"},
				"testimonials": {"new homeowners"},
				"contact":      {"office exterior"},
			},
			Defaults: ContentDefaults{
				Headline:    "Find the Place You Belong",
				Subheadline: "Local knowledge, honest advice",
				About:       "We know this market street by street, and we negotiate like it.",
				ValueProps:  []string{"Local Expertise", "Transparent Fees", "Fast Responses"},
			},
		},
		model.TypeAutomotive: {
			ColorPrimary: "#B91C1C", ColorSecondary: "#DC2626", ColorAccent: "#F87171",
			FontHeading: "Barlow Condensed", FontBody: "Open Sans",
			HeroStyle: "image", AnimationTier: TierModerate,
			RequiredSections: []string{"hero", "services", "about", "gallery", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Book a Service",
				Secondary: "Our Services",
				Urgent:    "Free Diagnostic Check",
			},
			SearchTerms: map[string][]string{
				"hero":         {"auto repair shop", "mechanic working"},
				"services":     {"car service", "engine repair"},
				"about":        {"garage interior"},
				"gallery":      {"vehicle maintenance", "tire change"},
				"testimonials": {"satisfied driver"},
				"contact":      {"auto shop exterior"},
			},
			Defaults: ContentDefaults{
				Headline:    "Keep It Running Like New",
				Subheadline: "Honest diagnostics, quality repairs",
				About:       "Qualified mechanics who explain the work before we do it.",
				ValueProps:  []string{"Certified Mechanics", "Upfront Quotes", "Warranty on Repairs"},
			},
		},
		model.TypeEducation: {
			ColorPrimary: "#4338CA", ColorSecondary: "#6366F1", ColorAccent: "#818CF8",
			FontHeading: "Poppins", FontBody: "Nunito Sans",
			HeroStyle: "image", AnimationTier: TierModerate,
			RequiredSections: []string{"hero", "courses", "about", "team", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Enroll Today",
				Secondary: "Browse Courses",
				Urgent:    "Enrollment Closes Soon",
			},
			SearchTerms: map[string][]string{
				"hero":         {"classroom learning", "students studying"},
				"courses":      {"workshop", "online learning"},
				"about":        {"campus", "library"},
				"team":         {"teacher portrait", "instructor"},
				"testimonials": {"graduate"},
				"contact":      {"school building"},
			},
			Defaults: ContentDefaults{
				Headline:    "Learn Something That Lasts",
				Subheadline: "Small classes, practical skills",
				About:       "Teaching that meets students where they are and takes them further.",
				ValueProps:  []string{"Experienced Instructors", "Small Class Sizes", "Practical Curriculum"},
			},
		},
		model.TypeCreative: {
			ColorPrimary: "#7C3AED", ColorSecondary: "#8B5CF6", ColorAccent: "#A78BFA",
			FontHeading: "Space Grotesk", FontBody: "Inter",
			HeroStyle: "video", AnimationTier: TierRich,
			RequiredSections: []string{"hero", "portfolio", "about", "services", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Start a Project",
				Secondary: "See Our Work",
				Urgent:    "Booking for Next Quarter",
			},
			SearchTerms: map[string][]string{
				"hero":         {"creative studio", "design workspace"},
				"portfolio":    {"graphic design", "branding"},
				"about":        {"designer at work"},
				"services":     {"photography session", "video production"},
				"testimonials": {"creative client"},
				"contact":      {"studio space"},
			},
			Defaults: ContentDefaults{
				Headline:    "Work That Gets Noticed",
				Subheadline: "Design, photography and brand craft",
				About:       "A small studio doing considered work for clients we believe in.",
				ValueProps:  []string{"Distinct Ideas", "Collaborative Process", "On-Time Delivery"},
			},
		},
		model.TypeHospitality: {
			ColorPrimary: "#92400E", ColorSecondary: "#B45309", ColorAccent: "#F59E0B",
			FontHeading: "Cormorant Garamond", FontBody: "Lato",
			HeroStyle: "video", AnimationTier: TierModerate,
			RequiredSections: []string{"hero", "rooms", "about", "gallery", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Check Availability",
				Secondary: "Explore the Rooms",
				Urgent:    "Book Direct for the Best Rate",
			},
			SearchTerms: map[string][]string{
				"hero":         {"hotel lobby", "resort view"},
				"rooms":        {"hotel room", "suite interior"},
				"about":        {"hospitality", "hotel breakfast"},
				"gallery":      {"vacation", "hotel amenities"},
				"testimonials": {"hotel guest"},
				"contact":      {"hotel entrance"},
			},
			Defaults: ContentDefaults{
				Headline:    "Your Stay, Done Properly",
				Subheadline: "Comfortable rooms, genuine welcome",
				About:       "Independent hospitality with attention to the details that matter.",
				ValueProps:  []string{"Central Location", "Spotless Rooms", "Friendly Staff"},
			},
		},
		model.TypeDefault: {
			ColorPrimary: "#0EA5E9", ColorSecondary: "#06B6D4", ColorAccent: "#22D3EE",
			FontHeading: "Poppins", FontBody: "Inter",
			HeroStyle: "image", AnimationTier: TierModerate,
			RequiredSections: []string{"hero", "services", "about", "testimonials", "contact"},
			CTAs: model.CTASet{
				Primary:   "Get Started",
				Secondary: "Learn More",
				Urgent:    "Contact Us Today",
			},
			SearchTerms: map[string][]string{
				"hero":         {"business", "modern office"},
				"services":     {"professional", "teamwork"},
				"about":        {"corporate", "growth"},
				"testimonials": {"success"},
				"contact":      {"office"},
			},
			Defaults: ContentDefaults{
				Headline:    "Welcome to Our Business",
				Subheadline: "Quality service you can rely on",
				About:       "We are committed to doing excellent work for every customer.",
				ValueProps:  []string{"Quality Service", "Professional Team", "Customer Satisfaction"},
			},
		},
	}

	// Stamp shared metadata so profile literals above stay short.
	for t, p := range table {
		p.BusinessType = t
		p.Revision = Revision
		table[t] = p
	}
	return table
}
