package clangimport

import "encoding/json"

// wireTranslationUnit is the top-level shape of an imported C translation
// unit: a flat list of declarations, each dispatched on its own "kind"
// field before being decoded into its concrete wire shape.
type wireTranslationUnit struct {
	Decls []json.RawMessage `json:"decls"`
}

// wireDeclHeader is decoded first to discover which concrete wire* type
// a raw declaration should be unmarshaled into.
type wireDeclHeader struct {
	Kind string `json:"kind"`
}

// Declaration kinds a translation unit document may contain.
const (
	kindFunction = "function"
	kindTypedef  = "typedef"
	kindEnum     = "enum"
	kindRecord   = "record"
)

type wireFunction struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name"`
	ReturnType wireType    `json:"returnType"`
	Params     []wireParam `json:"params"`
	Variadic   bool        `json:"variadic"`
	Noreturn   bool        `json:"noreturn"`
}

type wireParam struct {
	Name string   `json:"name"`
	Type wireType `json:"type"`
}

type wireTypedef struct {
	Kind string   `json:"kind"`
	Name string   `json:"name"`
	Type wireType `json:"type"`
}

type wireEnum struct {
	Kind  string         `json:"kind"`
	Name  string         `json:"name"`
	Cases []wireEnumCase `json:"cases"`
}

type wireEnumCase struct {
	Name  string `json:"name"`
	Value *int64 `json:"value,omitempty"`
}

type wireRecord struct {
	Kind   string      `json:"kind"`
	Name   string      `json:"name"`
	Fields []wireField `json:"fields"`
}

type wireField struct {
	Name string   `json:"name"`
	Type wireType `json:"type"`
}

// wireType is the recursive C-type wire shape. kind is one of: "int",
// "float", "double", "void", "bool", "pointer", "named" (typedef, enum,
// or record referenced by name), or "unknown" for a construct the
// upstream frontend could not classify.
type wireType struct {
	Kind    string    `json:"kind"`
	Name    string    `json:"name,omitempty"`
	Bits    int       `json:"bits,omitempty"`
	Signed  bool      `json:"signed,omitempty"`
	Pointee *wireType `json:"pointee,omitempty"`
}

const (
	typeKindInt     = "int"
	typeKindFloat   = "float"
	typeKindDouble  = "double"
	typeKindVoid    = "void"
	typeKindBool    = "bool"
	typeKindPointer = "pointer"
	typeKindNamed   = "named"
	typeKindUnknown = "unknown"
)
