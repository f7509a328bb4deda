package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pokedex-cli/pokedex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

const pikachu = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"sprites": {"front_default": null},
	"types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
	"stats": [
		{"base_stat": 35, "effort": 0, "stat": {"name": "hp", "url": ""}},
		{"base_stat": 55, "effort": 0, "stat": {"name": "attack", "url": ""}},
		{"base_stat": 40, "effort": 0, "stat": {"name": "defense", "url": ""}},
		{"base_stat": 50, "effort": 0, "stat": {"name": "special-attack", "url": ""}},
		{"base_stat": 50, "effort": 0, "stat": {"name": "special-defense", "url": ""}},
		{"base_stat": 90, "effort": 2, "stat": {"name": "speed", "url": ""}}
	],
	"abilities": [
		{"ability": {"name": "static", "url": ""}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "lightning-rod", "url": ""}, "is_hidden": true, "slot": 3}
	],
	"moves": [{"move": {"name": "mega-punch", "url": ""}}]
}`

func newTestServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	server := httptest.NewServer(handler)
	return server, New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
}

func TestFetchReferenceList(t *testing.T) {
	Convey("Given an upstream serving a reference list", t, func() {
		var query string
		server, client := newTestServer(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			_, _ = fmt.Fprint(w, `{"count": 1302, "next": null, "previous": null, "results": [
				{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
				{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}
			]}`)
		})
		defer server.Close()

		Convey("When the third page is requested", func() {
			list, err := client.FetchReferenceList(context.Background(), 12, 24)

			Convey("Then limit and offset are sent and the list is decoded", func() {
				So(err, ShouldBeNil)
				So(query, ShouldEqual, "limit=12&offset=24")
				So(list.Count, ShouldEqual, 1302)
				So(list.Results, ShouldHaveLength, 2)
				So(list.Results[1].ID(), ShouldEqual, 2)
				So(list.Next, ShouldBeNil)
			})
		})
	})
}

func TestFetchDetail(t *testing.T) {
	Convey("Given an upstream serving a detail", t, func() {
		var path, agent string
		server, client := newTestServer(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			agent = r.Header.Get("User-Agent")
			_, _ = fmt.Fprint(w, pikachu)
		})
		defer server.Close()

		Convey("When it is fetched by id", func() {
			detail, err := client.FetchDetail(context.Background(), ID(25))

			Convey("Then the detail is decoded", func() {
				So(err, ShouldBeNil)
				So(path, ShouldEqual, "/pokemon/25")
				So(agent, ShouldStartWith, "pokedex/")
				So(detail.Name, ShouldEqual, "pikachu")
				So(detail.TypeNames(), ShouldResemble, []string{"electric"})
				So(detail.Stat(StatSpeed), ShouldEqual, 90)
				So(detail.HeightMeters(), ShouldAlmostEqual, 0.4)
				So(detail.WeightKilograms(), ShouldAlmostEqual, 6.0)
			})
		})
	})

	Convey("Given an upstream answering 404", t, func() {
		server, client := newTestServer(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		defer server.Close()

		Convey("Then a FetchError carries the status", func() {
			_, err := client.FetchDetail(context.Background(), "missingno")

			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Status, ShouldEqual, http.StatusNotFound)
			So(fetchErr.URL, ShouldEndWith, "/pokemon/missingno")
		})
	})

	Convey("Given an upstream answering a body that is not JSON", t, func() {
		server, client := newTestServer(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, "<html>maintenance</html>")
		})
		defer server.Close()

		Convey("Then a ParseError is returned", func() {
			_, err := client.FetchDetail(context.Background(), "pikachu")

			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Unwrap(), ShouldNotBeNil)
		})
	})

	Convey("Given an upstream answering JSON of the wrong shape", t, func() {
		server, client := newTestServer(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"id": 0, "name": "", "types": []}`)
		})
		defer server.Close()

		Convey("Then a ParseError is returned", func() {
			_, err := client.FetchDetail(context.Background(), "pikachu")

			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
		})
	})
}

func TestFetchSpecies(t *testing.T) {
	Convey("Given an upstream serving a species", t, func() {
		var path string
		server, client := newTestServer(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			_, _ = fmt.Fprint(w, `{
				"flavor_text_entries": [{"flavor_text": "Stores\felectricity.", "language": {"name": "en", "url": ""}, "version": {"name": "red", "url": ""}}],
				"genera": [{"genus": "Mouse Pokémon", "language": {"name": "en", "url": ""}}]
			}`)
		})
		defer server.Close()

		Convey("Then the English texts can be selected", func() {
			species, err := client.FetchSpecies(context.Background(), "pikachu")

			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/pokemon-species/pikachu")
			So(SelectEnglishText(species), ShouldEqual, "Stores electricity.")
			So(SelectEnglishGenus(species), ShouldEqual, "Mouse Pokémon")
		})
	})
}
