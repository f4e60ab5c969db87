// Package vktest holds the types generated from the trimmed headers in
// testdata/include and checks the behaviour of the generated code.
package vktest

//go:generate go run github.com/ardanlabs/vkenum -include ../../testdata/include -package vktest -output . -cgo=false
