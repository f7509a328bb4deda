package catalog

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/pokedex-cli/pokedex/pokeapi"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGridLoadPage(t *testing.T) {
	ctx := context.Background()

	Convey("Given a collection of 30 entries", t, func() {
		fetcher := &fakeFetcher{count: 30}
		grid := NewGrid(fetcher, Comfortable)

		Convey("When the first page loads", func() {
			So(grid.LoadPage(ctx, 1), ShouldBeNil)
			state := grid.Snapshot()

			Convey("Then twelve entries are published in reference order", func() {
				So(state.Loading, ShouldBeFalse)
				So(state.Count, ShouldEqual, 30)
				So(state.TotalPages, ShouldEqual, 3)
				So(state.Entries, ShouldHaveLength, PageSize)
				So(state.Entries[0].Name, ShouldEqual, "mon-1")
				So(state.Entries[11].Name, ShouldEqual, "mon-12")
				So(state.Entries[4].HP, ShouldEqual, 5)
				So(state.Entries[0].ImageURL, ShouldEqual, pokeapi.ArtworkURL(1))
			})

			Convey("Then the third page is read from offset 24", func() {
				So(grid.ChangePage(3), ShouldBeTrue)
				So(grid.LoadPage(ctx, grid.Page()), ShouldBeNil)

				So(fetcher.lastOffset(), ShouldEqual, 24)
				So(grid.Snapshot().Entries, ShouldHaveLength, 6)

				Convey("And changing to page 4 is a no-op", func() {
					So(grid.ChangePage(4), ShouldBeFalse)
					So(grid.Page(), ShouldEqual, 3)
					So(grid.ChangePage(0), ShouldBeFalse)
					So(grid.Page(), ShouldEqual, 3)
				})
			})

			Convey("Then loading a page past the end is rejected", func() {
				err := grid.LoadPage(ctx, 4)
				So(errors.Is(err, ErrPageOutOfRange), ShouldBeTrue)
				So(grid.Snapshot().Entries[0].Name, ShouldEqual, "mon-1")
			})

			Convey("Then a failed detail leaves the published entries unchanged", func() {
				fetcher.failDetail = "mon-17"
				err := grid.LoadPage(ctx, 2)

				var fetchErr *pokeapi.FetchError
				So(errors.As(err, &fetchErr), ShouldBeTrue)

				state := grid.Snapshot()
				So(state.Loading, ShouldBeFalse)
				So(state.Entries, ShouldHaveLength, PageSize)
				So(state.Entries[0].Name, ShouldEqual, "mon-1")
			})
		})

		Convey("When the first load asks for a page past the end", func() {
			err := grid.LoadPage(ctx, 5)

			Convey("Then the count is learned and nothing is published", func() {
				So(errors.Is(err, ErrPageOutOfRange), ShouldBeTrue)
				state := grid.Snapshot()
				So(state.Count, ShouldEqual, 30)
				So(state.Entries, ShouldBeEmpty)
				So(state.Loading, ShouldBeFalse)
			})
		})

		Convey("When page zero is requested", func() {
			So(errors.Is(grid.LoadPage(ctx, 0), ErrPageOutOfRange), ShouldBeTrue)
		})
	})
}

func TestGridOverlappingLoads(t *testing.T) {
	Convey("Given a slow load of page 1 overtaken by a load of page 2", t, func() {
		gate := make(chan struct{})
		fetcher := &fakeFetcher{count: 30, listGates: map[int]chan struct{}{0: gate}}
		grid := NewGrid(fetcher, Comfortable)
		ctx := context.Background()

		slow := make(chan error, 1)
		go func() { slow <- grid.LoadPage(ctx, 1) }()
		for !grid.Snapshot().Loading {
			runtime.Gosched()
		}

		So(grid.LoadPage(ctx, 2), ShouldBeNil)
		close(gate)

		Convey("Then the slow result is discarded", func() {
			So(errors.Is(<-slow, ErrSuperseded), ShouldBeTrue)

			state := grid.Snapshot()
			So(state.Page, ShouldEqual, 2)
			So(state.Entries[0].Name, ShouldEqual, "mon-13")
			So(state.Loading, ShouldBeFalse)
		})
	})
}

func TestGridOverlappedFailure(t *testing.T) {
	Convey("Given a failing load of page 1 overtaken by a load of page 2", t, func() {
		gate := make(chan struct{})
		fetcher := &fakeFetcher{
			count:       30,
			failDetail:  "mon-2",
			detailGates: map[string]chan struct{}{"mon-2": gate},
		}
		grid := NewGrid(fetcher, Comfortable)
		ctx := context.Background()

		slow := make(chan error, 1)
		go func() { slow <- grid.LoadPage(ctx, 1) }()
		for !grid.Snapshot().Loading {
			runtime.Gosched()
		}

		So(grid.LoadPage(ctx, 2), ShouldBeNil)
		close(gate)

		Convey("Then the stale failure is reported as superseded", func() {
			err := <-slow
			So(errors.Is(err, ErrSuperseded), ShouldBeTrue)

			var fetchErr *pokeapi.FetchError
			So(errors.As(err, &fetchErr), ShouldBeFalse)

			state := grid.Snapshot()
			So(state.Page, ShouldEqual, 2)
			So(state.Entries[0].Name, ShouldEqual, "mon-13")
			So(state.Loading, ShouldBeFalse)
		})
	})
}

func TestGridSelectionAndDensity(t *testing.T) {
	Convey("Given a grid", t, func() {
		grid := NewGrid(&fakeFetcher{}, Compact)

		Convey("Selection round-trips through an option", func() {
			So(grid.Selected().IsAbsent(), ShouldBeTrue)

			grid.Select(pokeapi.Entry{ID: 25, Name: "pikachu"})
			selected, ok := grid.Selected().Get()
			So(ok, ShouldBeTrue)
			So(selected.ID, ShouldEqual, 25)

			grid.ClearSelection()
			So(grid.Selected().IsAbsent(), ShouldBeTrue)
		})

		Convey("Density toggles between the two modes", func() {
			So(grid.Density(), ShouldEqual, Compact)
			So(grid.ToggleDensity(), ShouldEqual, Comfortable)
			So(grid.Snapshot().Density, ShouldEqual, Comfortable)
		})
	})
}

func TestParseDensity(t *testing.T) {
	Convey("ParseDensity", t, func() {
		d, err := ParseDensity(" Compact ")
		So(err, ShouldBeNil)
		So(d, ShouldEqual, Compact)

		_, err = ParseDensity("dense")
		So(err, ShouldNotBeNil)
	})
}
