package config

import (
	"testing"

	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.APIBaseURL), ShouldEqual, "https://pokeapi.co/api/v2")
			So(viper.GetInt(key.CatalogStartPage), ShouldEqual, 1)
		})

		Convey("Every key is registered exactly once", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, len(Default))
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("cache.details"), ShouldEqual, "cache_details")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.CacheDetails]

		Convey("Env adds the application prefix", func() {
			So(field.Env(), ShouldEqual, "POKEDEX_CACHE_DETAILS")
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.CacheDetails)
		})

		Convey("Pretty lists the options of restricted fields", func() {
			density := Default[key.CatalogDensity]
			So(density.Pretty(), ShouldContainSubstring, "compact")
		})

		Convey("MarshalJSON reports the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"bool"`)
		})
	})
}

func TestFieldParse(t *testing.T) {
	Convey("Given raw values from the command line", t, func() {
		Convey("Integers should be parsed and bounded", func() {
			lifetime := Default[key.CacheLifetime]
			v, err := lifetime.Parse("48")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 48)

			page := Default[key.CatalogStartPage]
			_, err = page.Parse("0")
			So(err, ShouldNotBeNil)

			timeout := Default[key.NetworkTimeout]
			_, err = timeout.Parse("soon")
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans should be parsed", func() {
			field := Default[key.CacheDetails]
			v, err := field.Parse("true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Options should be matched case-insensitively", func() {
			field := Default[key.CatalogDensity]
			v, err := field.Parse("Compact")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "compact")

			_, err = field.Parse("dense")
			So(err, ShouldNotBeNil)

			icons := Default[key.IconsVariant]
			_, err = icons.Parse("ascii")
			So(err, ShouldNotBeNil)
		})

		Convey("Free-form strings should be kept", func() {
			field := Default[key.APIBaseURL]
			v, err := field.Parse("http://localhost:8000/api/v2")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "http://localhost:8000/api/v2")
		})
	})
}
