// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that double as documentation for the
//              case, marker, predicate, extraction and random helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial example implementation

package stringx_test

import (
	"errors"
	"fmt"

	"github.com/murtho/utility/utils/stringx"
)

func ExampleCamelize() {
	fmt.Println(stringx.Camelize("camel_case", "_"))
	fmt.Println(stringx.Camelize("do-something-else", "-"))
	fmt.Println(stringx.Camelize("some_weird_setting", ""))
	// Output:
	// camelCase
	// doSomethingElse
	// someWeirdSetting
}

func ExampleUncamelize() {
	fmt.Println(stringx.Uncamelize("camelCase", "_"))
	fmt.Println(stringx.Uncamelize("someWeirdSetting", "-"))
	fmt.Println(stringx.Uncamelize("doSomethingElse", ""))
	// Output:
	// camel_case
	// some-weird-setting
	// do_something_else
}

func ExampleBooleanToString() {
	yes, _ := stringx.BooleanToString(true, nil)
	no, _ := stringx.BooleanToString(false, stringx.NewMarkerMap("J", "N"))
	fmt.Println(yes, no)
	// Output:
	// Y N
}

func ExampleStringToBoolean() {
	value, _ := stringx.StringToBoolean("Y", nil)
	fmt.Println(value)

	_, err := stringx.StringToBoolean("X", nil)
	fmt.Println(err)
	fmt.Println(errors.Is(err, stringx.ErrInvalidCharacter))
	// Output:
	// true
	// invalid char provided
	// true
}

func ExampleMarkerMap_Validate() {
	err := stringx.MarkerMap{stringx.TrueKey: "T"}.Validate()
	fmt.Println(err)
	fmt.Println(stringx.IsIncompleteMap(err))
	// Output:
	// character map is incomplete
	// true
}

func ExampleStartsWith() {
	fmt.Println(stringx.StartsWith("check it out", "check"))
	fmt.Println(stringx.StartsWith("check it out", "out"))
	// Output:
	// true
	// false
}

func ExampleEndsWith() {
	fmt.Println(stringx.EndsWith("this works perfectly", "perfectly"))
	fmt.Println(stringx.EndsWith("this works perfectly", "this"))
	// Output:
	// true
	// false
}

func ExampleStart() {
	fmt.Println(stringx.Start("template.html.twig", "."))
	fmt.Println(stringx.Start("product-retail-price", "-"))
	// Output:
	// template
	// product
}

func ExampleEnd() {
	fmt.Println(stringx.End("template.html.twig", "."))
	fmt.Println(stringx.End("product-retail-price", "-"))
	// Output:
	// twig
	// price
}

func ExampleRandomString() {
	token := stringx.RandomString(12)
	fmt.Println(len(token))
	// Output:
	// 12
}
