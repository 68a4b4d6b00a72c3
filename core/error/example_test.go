package error

import (
	"errors"
	"fmt"
	"io/fs"
)

func ExampleNew() {
	err := New("character map is incomplete").
		WithCode(CodeIncompleteMap).
		WithDetail("missing_keys", []int{0})

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: character map is incomplete
	// Code: INCOMPLETE_MAP
	// Severity: low
}

func ExampleWrap() {
	err := Wrap(fs.ErrNotExist, "config file not found").
		WithCode(CodeNotFound).
		WithOperation("config.Load")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Is ErrNotExist:", errors.Is(err, fs.ErrNotExist))

	// Output:
	// Error: config file not found: file does not exist
	// Code: NOT_FOUND
	// Is ErrNotExist: true
}
