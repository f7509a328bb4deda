package mini

import (
	"context"
	"testing"

	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/pokeapi"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePage(t *testing.T) {
	Convey("parsePage", t, func() {
		page, ok := parsePage(" 3 ", 5)
		So(ok, ShouldBeTrue)
		So(page, ShouldEqual, 3)

		_, ok = parsePage("6", 5)
		So(ok, ShouldBeFalse)
		_, ok = parsePage("0", 5)
		So(ok, ShouldBeFalse)
		_, ok = parsePage("three", 5)
		So(ok, ShouldBeFalse)
	})
}

func TestStates(t *testing.T) {
	Convey("Given a mini session", t, func() {
		m := newMini(context.Background(), &Options{Page: 0})
		m.setState(pageSelectState)

		Convey("The start page is at least 1", func() {
			So(m.startPage, ShouldEqual, 1)
		})

		Convey("Going back returns to the previous state", func() {
			m.newState(entryViewState)
			So(m.state, ShouldEqual, entryViewState)
			m.previousState()
			So(m.state, ShouldEqual, pageSelectState)
		})
	})
}

func TestItems(t *testing.T) {
	Convey("Menu items", t, func() {
		entry := &entryItem{entry: pokeapi.Entry{ID: 4, Name: "charmander"}, density: catalog.Compact}
		So(entry.String(), ShouldContainSubstring, "Charmander")
		So(entry.String(), ShouldContainSubstring, "#004")

		So((&tabItem{tab: catalog.TabMoves, active: true}).String(), ShouldEqual, "Moves •")
		So((&tabItem{tab: catalog.TabStats}).String(), ShouldEqual, "Stats")
		So(quit.eq(quit), ShouldBeTrue)
		So(quit.eq(back), ShouldBeFalse)
	})
}
