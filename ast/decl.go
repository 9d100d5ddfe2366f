package ast

import "github.com/trill-lang/trillc/location"

// Decl is implemented by every declaration node variant the language reference
// names. Every Decl, once produced by the parser, is registered in a
// Context via AddDecl and addressed from then on by the DeclID that
// call returns — see Context for why declarations alone get arena
// identity while expressions and statements do not.
type Decl interface {
	Node
	declNode()
	// DeclName returns the declaration's identifier for diagnostics and
	// the mangler. Initializers and deinitializers return the fixed names
	// "init" and "deinit"; an operator returns its symbol; an extension
	// returns the name of the type it extends.
	DeclName() string
}

// VarDecl is `var name: T = init` or `let name: T = init`. Type and
// Init may each be nil (a `var` may omit an initializer if it has an
// explicit type; a `let` must have one, enforced by sema, not by this
// node).
type VarDecl struct {
	base
	IsLet bool
	Name  string
	Type  TypeRef
	Init  Expr
}

func NewVarDecl(span location.Span, isLet bool, name string, typ TypeRef, init Expr) *VarDecl {
	return &VarDecl{base: newBase(span, 0), IsLet: isLet, Name: name, Type: typ, Init: init}
}

func (*VarDecl) declNode() {}
func (d *VarDecl) DeclName() string { return d.Name }

// ParamDecl is one function parameter. ExternalLabel is the
// caller-facing label (the language reference: "`func f(extLabel intName: T, …)`
// … each parameter has an optional external label distinct from its
// internal name"); it equals Name when no external label was written,
// and is "_" for a parameter callers must pass positionally. Variadic
// marks the trailing `...` parameter, if any.
type ParamDecl struct {
	base
	ExternalLabel string
	Name          string
	Type          TypeRef
	Variadic      bool
}

func NewParamDecl(span location.Span, externalLabel, name string, typ TypeRef, variadic bool) *ParamDecl {
	return &ParamDecl{base: newBase(span, 0), ExternalLabel: externalLabel, Name: name, Type: typ, Variadic: variadic}
}

func (*ParamDecl) declNode() {}
func (d *ParamDecl) DeclName() string { return d.Name }

// FuncDecl is a top-level or member function. Body is nil when Foreign
// is set, per the language reference invariant (iv): "foreign declarations have no
// body".
type FuncDecl struct {
	base
	Name       string
	Params     []*ParamDecl
	ReturnType TypeRef
	Body       *CompoundStmt
}

func NewFuncDecl(span location.Span, name string, params []*ParamDecl, returnType TypeRef, body *CompoundStmt) *FuncDecl {
	return &FuncDecl{base: newBase(span, 0), Name: name, Params: params, ReturnType: returnType, Body: body}
}

func (*FuncDecl) declNode() {}
func (d *FuncDecl) DeclName() string { return d.Name }

// InitDecl is a type's `init(params…) { … }` initializer.
type InitDecl struct {
	base
	Params []*ParamDecl
	Body   *CompoundStmt
}

func NewInitDecl(span location.Span, params []*ParamDecl, body *CompoundStmt) *InitDecl {
	return &InitDecl{base: newBase(span, 0), Params: params, Body: body}
}

func (*InitDecl) declNode() {}
func (d *InitDecl) DeclName() string { return "init" }

// DeinitDecl is a type's `deinit { … }` deinitializer, run before the
// indirect type's box is freed per the language reference's retain-count contract.
type DeinitDecl struct {
	base
	Body *CompoundStmt
}

func NewDeinitDecl(span location.Span, body *CompoundStmt) *DeinitDecl {
	return &DeinitDecl{base: newBase(span, 0), Body: body}
}

func (*DeinitDecl) declNode() {}
func (d *DeinitDecl) DeclName() string { return "deinit" }

// PropertyGetterDecl is a computed property's `get { … }` accessor.
type PropertyGetterDecl struct {
	base
	Name string
	Type TypeRef
	Body *CompoundStmt
}

func NewPropertyGetterDecl(span location.Span, name string, typ TypeRef, body *CompoundStmt) *PropertyGetterDecl {
	return &PropertyGetterDecl{base: newBase(span, 0), Name: name, Type: typ, Body: body}
}

func (*PropertyGetterDecl) declNode() {}
func (d *PropertyGetterDecl) DeclName() string { return d.Name }

// PropertySetterDecl is a computed property's `set(newValue) { … }`
// accessor. Param is the implicit or named new-value parameter.
type PropertySetterDecl struct {
	base
	Name  string
	Param *ParamDecl
	Body  *CompoundStmt
}

func NewPropertySetterDecl(span location.Span, name string, param *ParamDecl, body *CompoundStmt) *PropertySetterDecl {
	return &PropertySetterDecl{base: newBase(span, 0), Name: name, Param: param, Body: body}
}

func (*PropertySetterDecl) declNode() {}
func (d *PropertySetterDecl) DeclName() string { return d.Name }

// TypeDecl is a `type Name { … }` declaration. Members holds its
// fields, initializers, deinitializer, computed properties, and nested
// member functions in source order.
type TypeDecl struct {
	base
	Name    string
	Members []Decl
}

func NewTypeDecl(span location.Span, name string, members []Decl) *TypeDecl {
	return &TypeDecl{base: newBase(span, 0), Name: name, Members: members}
}

func (*TypeDecl) declNode() {}
func (d *TypeDecl) DeclName() string { return d.Name }

// ExtensionDecl is `extension Name { … }`, adding Members to an
// existing type declared elsewhere.
type ExtensionDecl struct {
	base
	TypeName string
	Members  []Decl
}

func NewExtensionDecl(span location.Span, typeName string, members []Decl) *ExtensionDecl {
	return &ExtensionDecl{base: newBase(span, 0), TypeName: typeName, Members: members}
}

func (*ExtensionDecl) declNode() {}
func (d *ExtensionDecl) DeclName() string { return d.TypeName }

// ProtocolDecl is `protocol Name { … }`: a set of required member
// signatures a conforming type must satisfy, checked against at sema
// time and realized as a witness table at the IR level.
type ProtocolDecl struct {
	base
	Name    string
	Members []Decl
}

func NewProtocolDecl(span location.Span, name string, members []Decl) *ProtocolDecl {
	return &ProtocolDecl{base: newBase(span, 0), Name: name, Members: members}
}

func (*ProtocolDecl) declNode() {}
func (d *ProtocolDecl) DeclName() string { return d.Name }

// TypeAliasDecl is `type Name = Target`.
type TypeAliasDecl struct {
	base
	Name   string
	Target TypeRef
}

func NewTypeAliasDecl(span location.Span, name string, target TypeRef) *TypeAliasDecl {
	return &TypeAliasDecl{base: newBase(span, 0), Name: name, Target: target}
}

func (*TypeAliasDecl) declNode() {}
func (d *TypeAliasDecl) DeclName() string { return d.Name }

// OperatorDecl introduces or overloads an `operator` symbol. Symbol is
// the spelling (`+`, `<=>`, …); Prefix distinguishes a prefix operator
// declaration from an infix one. The implementation the operator
// dispatches to is a separately declared FuncDecl named by convention
// from Symbol — this node only records that the symbol is usable as an
// operator.
type OperatorDecl struct {
	base
	Symbol string
	Prefix bool
}

func NewOperatorDecl(span location.Span, symbol string, prefix bool) *OperatorDecl {
	return &OperatorDecl{base: newBase(span, 0), Symbol: symbol, Prefix: prefix}
}

func (*OperatorDecl) declNode() {}
func (d *OperatorDecl) DeclName() string { return d.Symbol }
