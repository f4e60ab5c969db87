package generator

import (
	"fmt"
	"text/template"
)

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"hex": func(v int64) string { return fmt.Sprintf("0x%08X", v) },
}).Parse(`
{{- define "enums" -}}
// Code generated by vkenum from {{ .Source }}; DO NOT EDIT.

package {{ .Package }}

import "fmt"
{{ range .Declarations }}
{{ if .IsFlags }}{{ template "flags" . }}{{ else }}{{ template "enum" . }}{{ end }}
{{- end }}
{{- end }}

{{- define "enum" }}
// {{ .Name }} mirrors {{ .Native }}.
type {{ .Name }} int32

const (
{{- range .Values }}
	{{ .Name }} {{ $.Name }} = {{ .Value }} // {{ .Native }}
{{- end }}
)

// {{ .Name }}FromRaw converts a raw {{ .Native }}. The value is not checked:
// drivers may return values this package does not enumerate.
func {{ .Name }}FromRaw(v int32) {{ .Name }} {
	return {{ .Name }}(v)
}

// Raw returns the value as a {{ .Native }}.
func (v {{ .Name }}) Raw() int32 {
	return int32(v)
}

func (v {{ .Name }}) String() string {
	switch v {
{{- range .Values }}
	case {{ .Name }}:
		return "{{ .Name }}"
{{- end }}
	}
	return fmt.Sprintf("{{ .Name }}(%d)", int32(v))
}
{{ end }}

{{- define "flags" }}
// {{ .Name }} is a set of {{ .Native }} bits. The zero value is the empty set.
type {{ .Name }} uint32

const (
{{- range .Values }}
	{{ .Name }} {{ $.Name }} = {{ hex .Value }} // {{ .Native }}
{{- end }}
)

// {{ .Name }}FromRaw converts a raw {{ .Native }} mask. Unknown bits are kept.
func {{ .Name }}FromRaw(v uint32) {{ .Name }} {
	return {{ .Name }}(v)
}

// Raw returns the mask as a {{ .Native }} value.
func (f {{ .Name }}) Raw() uint32 {
	return uint32(f)
}

func (f {{ .Name }}) Union(o {{ .Name }}) {{ .Name }} {
	return f | o
}

func (f {{ .Name }}) Intersect(o {{ .Name }}) {{ .Name }} {
	return f & o
}

func (f {{ .Name }}) Difference(o {{ .Name }}) {{ .Name }} {
	return f &^ o
}

// Contains reports whether every bit of o is set in f.
func (f {{ .Name }}) Contains(o {{ .Name }}) bool {
	return f&o == o
}

func (f {{ .Name }}) IsEmpty() bool {
	return f == 0
}
{{ end }}

{{- define "sizes" -}}
//go:build cgo

// Code generated by vkenum from {{ .Source }}; DO NOT EDIT.

package {{ .Package }}

/*
{{- if .CFlags }}
#cgo CFLAGS: {{ .CFlags }}
{{- end }}
#include <{{ .Include }}>
*/
import "C"

import "unsafe"

// A Go type and its native type of different sizes make one of the
// array lengths below negative.
var (
{{- range .Declarations }}
	_ [unsafe.Sizeof({{ .Name }}(0)) - unsafe.Sizeof(C.{{ .Native }}(0))]struct{}
	_ [unsafe.Sizeof(C.{{ .Native }}(0)) - unsafe.Sizeof({{ .Name }}(0))]struct{}
{{- end }}
)
{{ end }}
`))
