package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/autoweb/sitesmith/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryDeduper(t *testing.T) {
	Convey("Given a fresh deduper", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper()

		Convey("When recording a new request ID", func() {
			seen := d.SeenAndRecord(ctx, "req-1")

			Convey("Then it is not seen and gets recorded", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And a resubmission is flagged as a duplicate", func() {
				So(d.SeenAndRecord(ctx, "req-1"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When unrecording an admitted request", func() {
			d.SeenAndRecord(ctx, "req-1")
			d.Unrecord(ctx, "req-1")

			Convey("Then the ID can be resubmitted", func() {
				So(d.Size(), ShouldEqual, 0)
				So(d.SeenAndRecord(ctx, "req-1"), ShouldBeFalse)
			})
		})

		Convey("When unrecording an unknown ID", func() {
			d.Unrecord(ctx, "never-seen")

			Convey("Then nothing changes", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a deduper bounded to three IDs", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))

		Convey("When a fourth ID arrives", func() {
			for i := 0; i < 4; i++ {
				d.SeenAndRecord(ctx, fmt.Sprintf("req-%d", i))
			}

			Convey("Then the oldest is evicted and the rest remain", func() {
				So(d.Size(), ShouldEqual, 3)
				So(d.SeenAndRecord(ctx, "req-0"), ShouldBeFalse)
				So(d.SeenAndRecord(ctx, "req-3"), ShouldBeTrue)
			})
		})
	})
}
