package ast

// UsingDirective is a plain `using Name.Space;` namespace import.
type UsingDirective struct {
	Span
	Name string
}

// UsingAlias is `using Alias = Some.Qualified.Type;`.
type UsingAlias struct {
	Span
	Alias string
	Type  TypeRef
}

// Namespace is `namespace Dotted.Name { usings; namespaces; types }`.
type Namespace struct {
	Span
	Name        string
	Usings      []UsingDirective
	UsingAliases []UsingAlias
	Namespaces  []*Namespace
	Types       []TypeDecl
}

// Document is the root of the tree: one parsed compilation unit.
type Document struct {
	Span
	Usings            []UsingDirective
	UsingAliases      []UsingAlias
	AssemblyAttributes []AttributeGroup
	ModuleAttributes  []AttributeGroup
	Namespaces        []*Namespace
	Types             []TypeDecl
}
