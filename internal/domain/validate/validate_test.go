package validate_test

import (
	"testing"

	"github.com/autoweb/sitesmith/internal/domain/assemble"
	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
	"github.com/autoweb/sitesmith/internal/domain/validate"
	. "github.com/smartystreets/goconvey/convey"
)

func builtDoc(t model.BusinessType, images []model.MediaAsset) model.Structure {
	profile := design.NewResolver().Resolve(t)
	doc, err := assemble.New().Build(profile, model.ContentPackage{}, images, nil)
	if err != nil {
		panic(err)
	}
	return doc
}

func sourcedImages(count int) []model.MediaAsset {
	assets := make([]model.MediaAsset, 0, count)
	for i := 0; i < count; i++ {
		assets = append(assets, model.MediaAsset{
			URL:         "https://images.example/a.jpg",
			Kind:        model.MediaImage,
			Provider:    "unsplash",
			Attribution: "Photo by Someone on Unsplash",
		})
	}
	return assets
}

func TestChecker_Check(t *testing.T) {
	Convey("Given a checker with default thresholds", t, func() {
		c := validate.New()
		profile := design.NewResolver().Resolve(model.TypeServiceBusiness)

		Convey("When checking a fully assembled document", func() {
			doc := builtDoc(model.TypeServiceBusiness, sourcedImages(15))
			report := c.Check(doc, profile)

			Convey("Then the report is empty", func() {
				So(report.Empty(), ShouldBeTrue)
			})
		})

		Convey("When checking a placeholder-only document", func() {
			doc := builtDoc(model.TypeServiceBusiness, nil)
			report := c.Check(doc, profile)

			Convey("Then no attribution is owed and the report stays empty", func() {
				So(report.Empty(), ShouldBeTrue)
			})
		})

		Convey("When the document is short on images", func() {
			doc := model.Structure{
				Responsive: true,
				Sections: []model.Section{
					{Name: "hero", Animation: "fade-in", Media: sourcedImages(2)},
					{Name: "services", Animation: "fade-up"},
					{Name: "about", Animation: "fade-in"},
					{Name: "gallery", Animation: "fade-up"},
					{Name: "testimonials", Animation: "fade-in"},
					{Name: "contact", Animation: "fade-up"},
				},
			}
			report := c.Check(doc, profile)

			Convey("Then the image count finding is reported and repairable", func() {
				So(report.Empty(), ShouldBeFalse)
				So(report.Findings[0].Check, ShouldEqual, validate.CheckImageCount)
				So(validate.Repairable(report.Findings[0]), ShouldBeTrue)
			})
		})

		Convey("When a required section is missing", func() {
			doc := model.Structure{
				Responsive: true,
				Sections: []model.Section{
					{Name: "hero", Animation: "fade-in", Media: sourcedImages(10)},
					{Name: "contact", Animation: "fade-up"},
				},
			}
			report := c.Check(doc, profile)

			Convey("Then each missing section is its own finding and is not repairable", func() {
				var sectionFindings int
				for _, f := range report.Findings {
					if f.Check == validate.CheckSections {
						sectionFindings++
						So(validate.Repairable(f), ShouldBeFalse)
					}
				}
				So(sectionFindings, ShouldEqual, 4) // services, about, gallery, testimonials
			})
		})

		Convey("When responsive markers are absent", func() {
			doc := builtDoc(model.TypeServiceBusiness, sourcedImages(15))
			doc.Responsive = false
			report := c.Check(doc, profile)

			Convey("Then the responsive finding is reported", func() {
				So(report.Empty(), ShouldBeFalse)
				var found bool
				for _, f := range report.Findings {
					if f.Check == validate.CheckResponsive {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When external media lacks attribution", func() {
			images := sourcedImages(15)
			for i := range images {
				images[i].Attribution = ""
			}
			doc := builtDoc(model.TypeServiceBusiness, images)
			report := c.Check(doc, profile)

			Convey("Then the attribution finding is reported", func() {
				So(report.Empty(), ShouldBeFalse)
				var found bool
				for _, f := range report.Findings {
					if f.Check == validate.CheckAttribution {
						found = true
						So(validate.Repairable(f), ShouldBeTrue)
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})

	Convey("Given a checker with a raised image minimum", t, func() {
		c := validate.New(validate.WithMinImages(50))

		Convey("When checking a normally assembled document", func() {
			profile := design.NewResolver().Resolve(model.TypeRetail)
			doc := builtDoc(model.TypeRetail, sourcedImages(15))
			report := c.Check(doc, profile)

			Convey("Then the raised threshold is enforced", func() {
				So(report.Empty(), ShouldBeFalse)
			})
		})
	})
}

func TestLoop(t *testing.T) {
	Convey("Given a fresh repair loop", t, func() {
		var loop validate.Loop

		Convey("Then exactly one repair attempt is available", func() {
			So(loop.CanRepair(), ShouldBeTrue)
			loop.RecordAttempt()
			So(loop.CanRepair(), ShouldBeFalse)
			So(loop.Attempts(), ShouldEqual, 1)
		})

		Convey("And settling maps report emptiness to the outcome", func() {
			So(loop.Settle(true), ShouldEqual, validate.Accepted)
			So(loop.Settle(false), ShouldEqual, validate.AcceptedWithWarnings)
		})
	})
}
