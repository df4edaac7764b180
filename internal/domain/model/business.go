package model

// Contact groups the contact fields scraped for a business.
type Contact struct {
	Phone   string
	Email   string
	Address string
}

// BusinessProfile is the read-only input produced by the external scraper.
// The synthesis core never re-scrapes; whatever text and images the scraper
// captured is all it gets.
type BusinessProfile struct {
	ID          string
	Name        string
	Category    string
	Description string
	Location    string
	WebsiteURL  string
	Contact     Contact
	ScrapedText string
	ScrapedImages []string
}

// SearchText returns the combined text the classifier scans: category,
// name and scraped content in one lowercase-insensitive haystack.
func (b BusinessProfile) SearchText() string {
	return b.Category + " " + b.Name + " " + b.Description + " " + b.ScrapedText
}
