// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the case, marker, predicate, extraction and
//              random helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial benchmark implementation

package stringx

import (
	"fmt"
	"testing"
)

func BenchmarkCamelize(b *testing.B) {
	inputs := []string{"camel_case", "some_weird_setting", "a_much_longer_identifier_with_many_segments"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Camelize(inputs[i%len(inputs)], "_")
	}
}

func BenchmarkUncamelize(b *testing.B) {
	inputs := []string{"camelCase", "someWeirdSetting", "aMuchLongerIdentifierWithManySegments"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Uncamelize(inputs[i%len(inputs)], "_")
	}
}

func BenchmarkBooleanToString(b *testing.B) {
	markers := NewMarkerMap("J", "N")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BooleanToString(i%2 == 0, markers)
	}
}

func BenchmarkStringToBoolean(b *testing.B) {
	values := []string{"Y", "N"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = StringToBoolean(values[i%2], nil)
	}
}

func BenchmarkStartsWith(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = StartsWith("check it out", "check")
	}
}

func BenchmarkEndsWith(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = EndsWith("this works perfectly", "perfectly")
	}
}

func BenchmarkStartEnd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Start("template.html.twig", ".")
		_ = End("template.html.twig", ".")
	}
}

func BenchmarkRandomString(b *testing.B) {
	lengths := []int{8, 32, 128}

	for _, n := range lengths {
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = RandomString(n)
			}
		})
	}
}
