// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small, stateless string helpers:
//              case conversion, boolean markers, prefix and suffix checks,
//              delimiter extraction and random hex strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package stringx provides small, stateless string helpers.
//
// Overview
//
// Every function is pure and safe for concurrent use. The only side effects
// are RandomString's read of the system randomness source and, when that
// source fails, a warning on the default logger from core/log.
//
// The package is organized into functional groups:
//
//   - Case conversion: Camelize, Uncamelize (case.go)
//   - Boolean markers: BooleanToString, StringToBoolean, MarkerMap (boolean.go)
//   - Prefix, suffix and delimiters: StartsWith, EndsWith, Start, End (stringx.go)
//   - Random generation: RandomString (random.go)
//
// Case conversion
//
//	stringx.Camelize("camel_case", "_")           // "camelCase"
//	stringx.Camelize("some.weird.setting", ".")   // "someWeirdSetting"
//	stringx.Uncamelize("someWeirdSetting", "-")   // "some-weird-setting"
//
// An empty separator selects DefaultSeparator ("_"). The two functions are
// inverses only for input Camelize produced with the same separator;
// consecutive capitals and separators already in the input are not
// normalized.
//
// Boolean markers
//
//	s, _ := stringx.BooleanToString(false, nil)          // "N"
//	b, _ := stringx.StringToBoolean("Y", nil)            // true
//	m := stringx.NewMarkerMap("J", "N")
//	b, err := stringx.StringToBoolean("X", m)            // errors.Is(err, stringx.ErrInvalidCharacter)
//
// A nil MarkerMap selects {1: "Y", 0: "N"}. A map without key 1 or key 0
// yields an error matching ErrIncompleteMap. Errors are *Error values from
// core/error carrying CodeIncompleteMap or CodeInvalidCharacter.
//
// Prefix, suffix and delimiters
//
//	stringx.StartsWith("check it out", "check")   // true
//	stringx.EndsWith("this works", "")            // true
//	stringx.Start("template.html.twig", ".")      // "template"
//	stringx.End("template.html.twig", ".")        // "twig"
//
// Random strings
//
//	token := stringx.RandomString(16)   // 16 lowercase hex characters
//
// RandomString is suitable for identifiers and file names. It is not a
// password generator: the alphabet has 16 symbols.
package stringx
