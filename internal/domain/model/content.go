package model

// CTASet carries the call-to-action variants injected into a template.
type CTASet struct {
	Primary   string
	Secondary string
	Urgent    string
}

// ServiceDescription is one enhanced per-service blurb.
type ServiceDescription struct {
	Name        string
	Description string
}

// ContentPackage is the structured enhanced copy for a single synthesis
// attempt. It is produced fresh per attempt and discarded on failure; it is
// never shared across businesses.
type ContentPackage struct {
	Headline        string
	Subheadline     string
	ValueProps      []string
	Services        []ServiceDescription
	About           string
	CTAs            CTASet
	MetaDescription string

	// Degraded is set when the generative service failed and the package
	// was built by the minimal local fallback instead.
	Degraded bool
}
