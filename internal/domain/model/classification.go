package model

// ClassificationResult is the classifier's verdict for one synthesis run.
// It is computed fresh on every request and never cached: scraped text may
// change between runs, and a stale tag would desynchronize media and content.
type ClassificationResult struct {
	BusinessType    BusinessType
	Confidence      float64 // in [0,1]
	SecondaryTags   []string
	MatchedKeywords []string
}

// IsDefault reports whether classification fell through to the open-world
// fallback.
func (c ClassificationResult) IsDefault() bool {
	return c.BusinessType == TypeDefault
}
