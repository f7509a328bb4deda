package catalog

import (
	"fmt"
	"testing"

	"github.com/pokedex-cli/pokedex/pokeapi"
	. "github.com/smartystreets/goconvey/convey"
)

func stat(key string, value int) pokeapi.StatEntry {
	return pokeapi.StatEntry{BaseStat: value, Stat: pokeapi.NamedReference{Name: key}}
}

func TestStatSheet(t *testing.T) {
	Convey("Given a detail with stats out of order and one missing", t, func() {
		detail := &pokeapi.Detail{Stats: []pokeapi.StatEntry{
			stat(pokeapi.StatSpeed, 90),
			stat(pokeapi.StatHP, 255),
			stat(pokeapi.StatAttack, 51),
			stat(pokeapi.StatSpecialDefense, 300),
		}}

		sheet := StatSheet(detail)

		Convey("Then the six lines come in fixed order with labels", func() {
			labels := make([]string, len(sheet.Lines))
			for i, line := range sheet.Lines {
				labels[i] = line.Label
			}
			So(labels, ShouldResemble, []string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"})
		})

		Convey("Then missing stats are zero and the total sums the rest", func() {
			So(sheet.Lines[2].Value, ShouldEqual, 0)
			So(sheet.Lines[3].Value, ShouldEqual, 0)
			So(sheet.Total, ShouldEqual, 90+255+51+300)
		})

		Convey("Then percentages are relative to 255 and not clamped", func() {
			So(sheet.Lines[0].Percent, ShouldAlmostEqual, 100.0)
			So(sheet.Lines[1].Percent, ShouldAlmostEqual, 20.0)
			So(sheet.Lines[4].Percent, ShouldBeGreaterThan, 100.0)
		})
	})
}

func TestMovePreview(t *testing.T) {
	Convey("Given a detail with 45 moves", t, func() {
		detail := &pokeapi.Detail{}
		for i := 0; i < 45; i++ {
			detail.Moves = append(detail.Moves, pokeapi.MoveSlot{
				Move: pokeapi.NamedReference{Name: fmt.Sprintf("move-number-%d", i)},
			})
		}

		names, remaining := MovePreview(detail, MovePreviewLimit)

		Convey("Then thirty are shown and fifteen remain", func() {
			So(names, ShouldHaveLength, 30)
			So(remaining, ShouldEqual, 15)
			So(names[0], ShouldEqual, "move number 0")
		})
	})

	Convey("Given a detail with fewer moves than the limit", t, func() {
		detail := &pokeapi.Detail{Moves: []pokeapi.MoveSlot{{Move: pokeapi.NamedReference{Name: "tackle"}}}}
		names, remaining := MovePreview(detail, MovePreviewLimit)
		So(names, ShouldResemble, []string{"tackle"})
		So(remaining, ShouldEqual, 0)
	})
}

func TestProfile(t *testing.T) {
	Convey("NewProfile", t, func() {
		detail := &pokeapi.Detail{
			ID:     25,
			Name:   "pikachu",
			Height: 4,
			Weight: 60,
			Types:  []pokeapi.TypeSlot{{Type: pokeapi.NamedReference{Name: "electric"}}},
			Abilities: []pokeapi.AbilitySlot{
				{Ability: pokeapi.NamedReference{Name: "lightning-rod"}, IsHidden: true},
			},
		}

		profile := NewProfile(detail, nil)
		So(profile.Number, ShouldEqual, "#025")
		So(profile.Genus, ShouldEqual, pokeapi.UnknownGenus)
		So(profile.Description, ShouldEqual, pokeapi.NoDescription)
		So(profile.Height, ShouldAlmostEqual, 0.4)
		So(profile.Weight, ShouldAlmostEqual, 6.0)
		So(Number(151), ShouldEqual, "#151")

		So(Abilities(detail), ShouldResemble, []Ability{{Name: "lightning rod", Hidden: true}})
	})
}
