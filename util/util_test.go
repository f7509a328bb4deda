package util

import (
	"errors"
	"testing"

	"github.com/pokedex-cli/pokedex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "page", "pages"), ShouldEqual, "1 page")
		So(Quantify(0, "page", "pages"), ShouldEqual, "0 pages")
		So(Quantify(109, "page", "pages"), ShouldEqual, "109 pages")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("pikachu"), ShouldEqual, "Pikachu")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore calls the function", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("dropped")
		})
		So(called, ShouldBeTrue)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/cache/pokedex", 0o755), ShouldBeNil)
		So(afero.WriteFile(fs, "/cache/pokedex/pokeapi_details.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("A file can be deleted", func() {
			So(Delete("/cache/pokedex/pokeapi_details.json"), ShouldBeNil)
			exists, _ := afero.Exists(fs, "/cache/pokedex/pokeapi_details.json")
			So(exists, ShouldBeFalse)
		})

		Convey("A directory is deleted recursively", func() {
			So(Delete("/cache/pokedex"), ShouldBeNil)
			exists, _ := afero.DirExists(fs, "/cache/pokedex")
			So(exists, ShouldBeFalse)
		})

		Convey("A missing path is an error", func() {
			So(Delete("/nowhere"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
