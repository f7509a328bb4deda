package catalog

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/pokedex-cli/pokedex/pokeapi"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOverlay(t *testing.T) {
	ctx := context.Background()
	pikachu := pokeapi.Entry{ID: 25, Name: "pikachu"}

	Convey("Given an overlay", t, func() {
		fetcher := &fakeFetcher{count: 30}
		overlay := NewOverlay(fetcher)

		Convey("When an entry is opened", func() {
			So(overlay.Open(ctx, pikachu), ShouldBeNil)
			state := overlay.Snapshot()

			Convey("Then detail and species are both loaded on the stats tab", func() {
				So(state.Open, ShouldBeTrue)
				So(state.Loading, ShouldBeFalse)
				So(state.Loaded(), ShouldBeTrue)
				So(state.Detail.ID, ShouldEqual, 25)
				So(pokeapi.SelectEnglishGenus(state.Species), ShouldEqual, "Test Pokémon")
				So(state.Tab, ShouldEqual, TabStats)
			})

			Convey("Then reopening resets the tab", func() {
				overlay.SetTab(TabAbilities)
				So(overlay.Snapshot().Tab, ShouldEqual, TabAbilities)

				So(overlay.Open(ctx, pokeapi.Entry{ID: 7, Name: "squirtle"}), ShouldBeNil)
				So(overlay.Snapshot().Tab, ShouldEqual, TabStats)
				So(overlay.Snapshot().Detail.ID, ShouldEqual, 7)
			})

			Convey("Then reloading keeps the tab", func() {
				overlay.SetTab(TabMoves)
				So(overlay.Reload(ctx), ShouldBeNil)
				So(overlay.Snapshot().Tab, ShouldEqual, TabMoves)
				So(overlay.Snapshot().Loaded(), ShouldBeTrue)
			})

			Convey("Then closing discards everything", func() {
				overlay.Close()
				state := overlay.Snapshot()
				So(state.Open, ShouldBeFalse)
				So(state.Detail, ShouldBeNil)
				So(state.Species, ShouldBeNil)
				So(overlay.Reload(ctx), ShouldBeNil)
				So(overlay.IsOpen(), ShouldBeFalse)
			})
		})

		Convey("When a detail the caller already holds is opened", func() {
			held := &pokeapi.Detail{ID: 25, Name: "pikachu"}
			So(overlay.OpenDetail(ctx, held), ShouldBeNil)
			state := overlay.Snapshot()

			Convey("Then only the species is fetched", func() {
				So(fetcher.detailCalls.Load(), ShouldEqual, 0)
				So(state.Loaded(), ShouldBeTrue)
				So(state.Detail, ShouldPointTo, held)
				So(state.Entry.Name, ShouldEqual, "pikachu")
				So(state.Tab, ShouldEqual, TabStats)
			})

			Convey("Then reloading fetches the detail again", func() {
				So(overlay.Reload(ctx), ShouldBeNil)
				So(fetcher.detailCalls.Load(), ShouldEqual, 1)
			})
		})

		Convey("When the species fetch fails", func() {
			fetcher.failSpecies = true
			err := overlay.Open(ctx, pikachu)

			Convey("Then the overlay stays open without body data", func() {
				So(err, ShouldNotBeNil)
				state := overlay.Snapshot()
				So(state.Open, ShouldBeTrue)
				So(state.Loading, ShouldBeFalse)
				So(state.Detail, ShouldBeNil)
				So(state.Loaded(), ShouldBeFalse)
			})
		})

		Convey("When the overlay closes while a fetch is in flight", func() {
			gate := make(chan struct{})
			fetcher.detailGates = map[string]chan struct{}{"25": gate}

			result := make(chan error, 1)
			go func() { result <- overlay.Open(ctx, pikachu) }()
			for !overlay.Snapshot().Loading {
				runtime.Gosched()
			}

			overlay.Close()
			close(gate)

			Convey("Then the late result is dropped", func() {
				So(errors.Is(<-result, ErrSuperseded), ShouldBeTrue)
				state := overlay.Snapshot()
				So(state.Open, ShouldBeFalse)
				So(state.Detail, ShouldBeNil)
			})
		})
	})
}

func TestTabs(t *testing.T) {
	Convey("Tab navigation wraps around", t, func() {
		So(TabStats.Next(), ShouldEqual, TabMoves)
		So(TabAbilities.Next(), ShouldEqual, TabStats)
		So(TabStats.Prev(), ShouldEqual, TabAbilities)
		So(TabMoves.Title(), ShouldEqual, "Moves")

		overlay := NewOverlay(&fakeFetcher{})
		overlay.NextTab()
		overlay.NextTab()
		So(overlay.Snapshot().Tab, ShouldEqual, TabAbilities)
		overlay.PrevTab()
		So(overlay.Snapshot().Tab, ShouldEqual, TabMoves)
	})

	Convey("ParseTab", t, func() {
		tab, err := ParseTab("Abilities")
		So(err, ShouldBeNil)
		So(tab, ShouldEqual, TabAbilities)

		_, err = ParseTab("movs")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `"moves"`)

		Convey("A tied suggestion is always the earliest tab", func() {
			for range 20 {
				_, err := ParseTab("xxxxx")
				So(err.Error(), ShouldContainSubstring, `did you mean "stats"?`)
			}
		})
	})
}
