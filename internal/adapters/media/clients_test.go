package media_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoweb/sitesmith/internal/adapters/media"
	"github.com/autoweb/sitesmith/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnsplashClient(t *testing.T) {
	ctx := context.Background()

	Convey("Given an Unsplash search endpoint", t, func() {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[
				{"alt_description":"a plumber at work",
				 "urls":{"regular":"https://images.unsplash.com/photo-1"},
				 "user":{"name":"Jane Doe"}},
				{"alt_description":"",
				 "urls":{"regular":"https://images.unsplash.com/photo-2"},
				 "user":{"name":"John Roe"}}
			]}`))
		}))
		defer srv.Close()

		client := media.NewUnsplashClient("test-key", media.WithUnsplashBaseURL(srv.URL))

		Convey("When searching for images", func() {
			assets, err := client.SearchImages(ctx, "plumber", 2)

			Convey("Then results carry URL, attribution and alt text", func() {
				So(err, ShouldBeNil)
				So(gotAuth, ShouldEqual, "Client-ID test-key")
				So(len(assets), ShouldEqual, 2)
				So(assets[0].URL, ShouldEqual, "https://images.unsplash.com/photo-1")
				So(assets[0].Kind, ShouldEqual, model.MediaImage)
				So(assets[0].Provider, ShouldEqual, "unsplash")
				So(assets[0].Attribution, ShouldEqual, "Photo by Jane Doe on Unsplash")
				So(assets[0].AltText, ShouldEqual, "a plumber at work")
			})

			Convey("And an empty alt description falls back to the query", func() {
				So(assets[1].AltText, ShouldEqual, "plumber")
			})
		})

		Convey("When searching for videos", func() {
			_, err := client.SearchVideos(ctx, "plumber", 1)

			Convey("Then there is no video catalog", func() {
				So(err, ShouldWrap, media.ErrNoResults)
			})
		})
	})

	Convey("Given an endpoint returning an error status", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := media.NewUnsplashClient("test-key", media.WithUnsplashBaseURL(srv.URL))

		Convey("When searching", func() {
			_, err := client.SearchImages(ctx, "plumber", 2)

			Convey("Then the provider is reported unavailable", func() {
				So(err, ShouldWrap, media.ErrProviderUnavailable)
			})
		})
	})

	Convey("Given an endpoint with no matches", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer srv.Close()

		client := media.NewUnsplashClient("test-key", media.WithUnsplashBaseURL(srv.URL))

		Convey("When searching", func() {
			_, err := client.SearchImages(ctx, "xyzzy", 2)

			Convey("Then no results is reported", func() {
				So(err, ShouldWrap, media.ErrNoResults)
			})
		})
	})
}

func TestPexelsClient(t *testing.T) {
	ctx := context.Background()

	Convey("Given a Pexels API", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/v1/search":
				_, _ = w.Write([]byte(`{"photos":[
					{"alt":"fresh pasta","photographer":"Ana Lima",
					 "src":{"large2x":"https://images.pexels.com/photo-1"}}
				]}`))
			case "/videos/search":
				_, _ = w.Write([]byte(`{"videos":[
					{"duration":45,"image":"https://images.pexels.com/poster-long",
					 "user":{"name":"Too Long"},
					 "video_files":[{"width":1920,"height":1080,"quality":"hd","link":"https://videos.pexels.com/long.mp4"}]},
					{"duration":18,"image":"https://images.pexels.com/poster-good",
					 "user":{"name":"Ana Lima"},
					 "video_files":[
						{"width":1080,"height":1920,"quality":"hd","link":"https://videos.pexels.com/portrait.mp4"},
						{"width":1920,"height":1080,"quality":"sd","link":"https://videos.pexels.com/sd.mp4"},
						{"width":1920,"height":1080,"quality":"hd","link":"https://videos.pexels.com/hd.mp4"}]}
				]}`))
			}
		}))
		defer srv.Close()

		client := media.NewPexelsClient("test-key", media.WithPexelsBaseURL(srv.URL))

		Convey("When searching for images", func() {
			assets, err := client.SearchImages(ctx, "pasta", 1)

			Convey("Then results carry URL and attribution", func() {
				So(err, ShouldBeNil)
				So(len(assets), ShouldEqual, 1)
				So(assets[0].URL, ShouldEqual, "https://images.pexels.com/photo-1")
				So(assets[0].Provider, ShouldEqual, "pexels")
				So(assets[0].Attribution, ShouldEqual, "Photo by Ana Lima on Pexels")
			})
		})

		Convey("When searching for videos", func() {
			assets, err := client.SearchVideos(ctx, "pasta", 5)

			Convey("Then only clips inside the duration window survive", func() {
				So(err, ShouldBeNil)
				So(len(assets), ShouldEqual, 1)
				So(assets[0].DurationSec, ShouldEqual, 18)
			})

			Convey("And the landscape HD file is preferred", func() {
				So(assets[0].URL, ShouldEqual, "https://videos.pexels.com/hd.mp4")
				So(assets[0].Kind, ShouldEqual, model.MediaVideo)
				So(assets[0].PosterURL, ShouldEqual, "https://images.pexels.com/poster-good")
				So(assets[0].Attribution, ShouldEqual, "Video by Ana Lima on Pexels")
			})
		})
	})
}
