package media_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/autoweb/sitesmith/internal/adapters/media"
	"github.com/autoweb/sitesmith/internal/domain/design"
	"github.com/autoweb/sitesmith/internal/domain/model"
	"github.com/autoweb/sitesmith/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// fakeProvider serves canned results and counts calls.
type fakeProvider struct {
	mu         sync.Mutex
	name       string
	imageErr   error
	videoErr   error
	videos     []model.MediaAsset
	imageCalls int
	videoCalls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) SearchImages(_ context.Context, query string, count int) ([]model.MediaAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageCalls++
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	assets := make([]model.MediaAsset, 0, count)
	for i := 0; i < count; i++ {
		assets = append(assets, model.MediaAsset{
			URL:         "https://" + f.name + ".example/" + query,
			Kind:        model.MediaImage,
			AltText:     query,
			Provider:    f.name,
			Attribution: "Photo by Someone on " + f.name,
		})
	}
	return assets, nil
}

func (f *fakeProvider) SearchVideos(_ context.Context, _ string, _ int) ([]model.MediaAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videoCalls++
	if f.videoErr != nil {
		return nil, f.videoErr
	}
	return f.videos, nil
}

func (f *fakeProvider) calls() (images, videos int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imageCalls, f.videoCalls
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestOrchestrator_Source(t *testing.T) {
	ctx := context.Background()
	resolver := design.NewResolver()

	Convey("Given a healthy primary provider", t, func() {
		primary := &fakeProvider{name: "unsplash"}
		secondary := &fakeProvider{name: "pexels"}
		o := media.NewOrchestrator(primary, secondary, media.WithClock(fixedClock()))
		profile := resolver.Resolve(model.TypeServiceBusiness)

		Convey("When sourcing for a service business", func() {
			result := o.Source(ctx, model.TypeServiceBusiness, profile)

			Convey("Then the image target is met from the primary alone", func() {
				So(len(result.Images), ShouldEqual, media.DefaultTargetImages)
				So(result.PlaceholderCount, ShouldEqual, 0)
				So(result.ProviderHits["unsplash"], ShouldBeGreaterThan, 0)
				So(result.ProviderHits["pexels"], ShouldEqual, 0)
			})

			Convey("And every asset is stamped with its section", func() {
				for _, a := range result.Images {
					So(a.Section, ShouldNotBeEmpty)
				}
			})

			Convey("And sourcing the same profile again hits the cache", func() {
				before, _ := primary.calls()
				again := o.Source(ctx, model.TypeServiceBusiness, profile)
				after, _ := primary.calls()

				So(again.CacheHits, ShouldBeGreaterThan, 0)
				So(after, ShouldEqual, before)
			})
		})
	})

	Convey("Given a failing primary and a healthy secondary", t, func() {
		primary := &fakeProvider{name: "unsplash", imageErr: media.ErrProviderUnavailable}
		secondary := &fakeProvider{name: "pexels"}
		o := media.NewOrchestrator(primary, secondary, media.WithClock(fixedClock()))
		profile := resolver.Resolve(model.TypeRetail)

		Convey("When sourcing", func() {
			result := o.Source(ctx, model.TypeRetail, profile)

			Convey("Then the secondary serves the whole run", func() {
				So(len(result.Images), ShouldEqual, media.DefaultTargetImages)
				So(result.PlaceholderCount, ShouldEqual, 0)
				So(result.ProviderHits["pexels"], ShouldBeGreaterThan, 0)
			})
		})
	})

	Convey("Given both providers down", t, func() {
		primary := &fakeProvider{name: "unsplash", imageErr: media.ErrProviderUnavailable, videoErr: media.ErrNoResults}
		secondary := &fakeProvider{name: "pexels", imageErr: media.ErrProviderUnavailable, videoErr: media.ErrProviderUnavailable}
		o := media.NewOrchestrator(primary, secondary, media.WithClock(fixedClock()))
		profile := resolver.Resolve(model.TypeRestaurant)

		Convey("When sourcing", func() {
			result := o.Source(ctx, model.TypeRestaurant, profile)

			Convey("Then every slot is a deterministic placeholder", func() {
				So(len(result.Images), ShouldEqual, media.DefaultTargetImages)
				So(result.PlaceholderCount, ShouldEqual, media.DefaultTargetImages)
				for _, a := range result.Images {
					So(a.Placeholder(), ShouldBeTrue)
					So(a.URL, ShouldStartWith, "https://source.unsplash.com/1920x1080/?")
				}
			})

			Convey("And no hero video is forced", func() {
				So(result.HeroVideo, ShouldBeNil)
			})
		})
	})

	Convey("Given a video-hero profile and a provider with a suitable clip", t, func() {
		video := model.MediaAsset{
			URL:         "https://videos.example/clip.mp4",
			Kind:        model.MediaVideo,
			Provider:    "pexels",
			Attribution: "Video by Someone on Pexels",
			DurationSec: 18,
		}
		primary := &fakeProvider{name: "unsplash", videoErr: media.ErrNoResults}
		secondary := &fakeProvider{name: "pexels", videos: []model.MediaAsset{video}}
		o := media.NewOrchestrator(primary, secondary, media.WithClock(fixedClock()))
		profile := resolver.Resolve(model.TypeRestaurant)

		Convey("When sourcing", func() {
			result := o.Source(ctx, model.TypeRestaurant, profile)

			Convey("Then exactly one hero video is attached", func() {
				So(result.HeroVideo, ShouldNotBeNil)
				So(result.HeroVideo.Kind, ShouldEqual, model.MediaVideo)
				So(result.HeroVideo.Section, ShouldEqual, "hero")
				So(result.HeroVideo.DurationSec, ShouldEqual, 18)
			})
		})
	})

	Convey("Given a reduced image target", t, func() {
		primary := &fakeProvider{name: "unsplash"}
		o := media.NewOrchestrator(primary, nil,
			media.WithTargetImages(5), media.WithClock(fixedClock()))
		profile := resolver.Resolve(model.TypeFitness)

		Convey("When sourcing", func() {
			result := o.Source(ctx, model.TypeFitness, profile)

			Convey("Then the target caps the run", func() {
				So(len(result.Images), ShouldBeLessThanOrEqualTo, 5)
			})
		})
	})
}
