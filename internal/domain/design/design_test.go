package design_test

import (
	"testing"

	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolver_TableCompleteness(t *testing.T) {
	Convey("Given the built-in profile table", t, func() {
		r := design.NewResolver()

		Convey("Then every enumeration member has its own profile", func() {
			for _, bt := range model.Enumeration() {
				So(r.Known(bt), ShouldBeTrue)
			}
			So(r.Known(model.TypeDefault), ShouldBeTrue)
		})

		Convey("And every profile is internally complete", func() {
			types := append(model.Enumeration(), model.TypeDefault)
			for _, bt := range types {
				p := r.Resolve(bt)
				So(p.BusinessType, ShouldEqual, bt)
				So(p.Revision, ShouldEqual, design.Revision)
				So(p.ColorPrimary, ShouldNotBeEmpty)
				So(p.ColorSecondary, ShouldNotBeEmpty)
				So(p.ColorAccent, ShouldNotBeEmpty)
				So(p.FontHeading, ShouldNotBeEmpty)
				So(p.FontBody, ShouldNotBeEmpty)
				So(p.HeroStyle, ShouldBeIn, "video", "image", "gradient")
				So(len(p.RequiredSections), ShouldBeGreaterThan, 0)
				So(p.CTAs.Primary, ShouldNotBeEmpty)
				So(p.CTAs.Secondary, ShouldNotBeEmpty)
				So(p.CTAs.Urgent, ShouldNotBeEmpty)
				So(p.Defaults.Headline, ShouldNotBeEmpty)
				So(len(p.Defaults.ValueProps), ShouldBeGreaterThan, 0)

				// Every required section must have at least one ranked
				// search term, or media sourcing would have nothing to ask.
				for _, section := range p.RequiredSections {
					So(p.SearchTerms[section], ShouldNotBeEmpty)
				}
			}
		})

		Convey("And the hero section always opens the document", func() {
			types := append(model.Enumeration(), model.TypeDefault)
			for _, bt := range types {
				So(r.Resolve(bt).RequiredSections[0], ShouldEqual, "hero")
			}
		})
	})
}

func TestResolver_Resolve(t *testing.T) {
	Convey("Given a resolver", t, func() {
		r := design.NewResolver()

		Convey("When resolving an unknown type", func() {
			p := r.Resolve(model.BusinessType("does_not_exist"))

			Convey("Then it falls through to the default profile", func() {
				So(p.BusinessType, ShouldEqual, model.TypeDefault)
			})
		})

		Convey("When resolving the same type twice", func() {
			a := r.Resolve(model.TypeRestaurant)
			b := r.Resolve(model.TypeRestaurant)

			Convey("Then the profiles are identical", func() {
				So(a.RequiredSections, ShouldResemble, b.RequiredSections)
				So(a.CTAs, ShouldResemble, b.CTAs)
			})
		})
	})
}
