package testjobs

import (
	"fmt"
	"log"
	"sort"
)

// verifyResults checks the structural integrity of the retrieved artifacts.
func verifyResults(config *Config, artifacts []Artifact, stats *Stats) error {
	log.Println("Verifying artifacts...")

	if len(artifacts) == 0 {
		return fmt.Errorf("no artifacts to verify")
	}

	var malformed int
	for _, artifact := range artifacts {
		if err := verifySingleArtifact(artifact); err != nil {
			malformed++
			if config.Verbose {
				log.Printf("Artifact %s for business %s: %v", artifact.ID, artifact.BusinessID, err)
			}
		}
	}

	if malformed > 0 {
		log.Printf("Artifact integrity warning: %d of %d artifacts malformed", malformed, len(artifacts))
	} else {
		log.Println("Artifact integrity verified")
	}

	displayTypeDistribution(artifacts, config.Verbose)

	log.Println("Result verification completed")
	return nil
}

// verifySingleArtifact checks one artifact for the properties every
// persisted template must have.
func verifySingleArtifact(artifact Artifact) error {
	if artifact.ID == "" {
		return fmt.Errorf("missing artifact ID")
	}
	if artifact.VariantNumber < 1 {
		return fmt.Errorf("variant number %d is not positive", artifact.VariantNumber)
	}
	if artifact.BusinessType == "" {
		return fmt.Errorf("missing business type")
	}
	if artifact.Structure.Title == "" {
		return fmt.Errorf("missing structure title")
	}
	if len(artifact.Structure.Sections) == 0 {
		return fmt.Errorf("structure has no sections")
	}
	if len(artifact.Media) == 0 {
		return fmt.Errorf("artifact has no media assets")
	}
	return nil
}

// displayTypeDistribution shows how artifacts spread across business types.
func displayTypeDistribution(artifacts []Artifact, verbose bool) {
	byType := make(map[string]int)
	for _, artifact := range artifacts {
		byType[artifact.BusinessType]++
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	log.Printf("Business type distribution across %d artifacts:", len(artifacts))
	for _, t := range types {
		log.Printf("   %s: %d", t, byType[t])
	}

	if verbose {
		avgConfidence, avgSections, avgMedia := calculateAverages(artifacts)
		log.Printf(`Artifact statistics:
   Average confidence: %.3f
   Average sections: %.1f
   Average media assets: %.1f
`, avgConfidence, avgSections, avgMedia)
	}
}

// calculateAverages computes mean confidence, section count and media count.
func calculateAverages(artifacts []Artifact) (confidence, sections, media float64) {
	if len(artifacts) == 0 {
		return 0, 0, 0
	}

	for _, artifact := range artifacts {
		confidence += artifact.Confidence
		sections += float64(len(artifact.Structure.Sections))
		media += float64(len(artifact.Media))
	}

	n := float64(len(artifacts))
	return confidence / n, sections / n, media / n
}
