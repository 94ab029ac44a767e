// Package codegen emits standalone Go matchers for compiled automata.
package codegen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Variable names used in generated code
const (
	InputName = "input"
	StateName = "state"
	ClassName = "cls"
	SpansName = "spans"
)

// TableName returns the package-level identifier of one generated table,
// e.g. TableName("Email", "Transitions") is "emailTransitions".
func TableName(name, table string) string {
	return fmt.Sprintf("%s%s", LowerFirst(name), table)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
