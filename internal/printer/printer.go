// Package printer regenerates source text from a parsed AST. It is a
// supporting tool exercised by the parser's round-trip tests, not part of
// the syntactic recognizer itself: the recognizer never imports it.
package printer

import (
	"fmt"
	"strings"

	"github.com/csparse/csparse/internal/ast"
)

// Options configures a Printer's output shape.
type Options struct {
	// IndentStep is the whitespace inserted per nesting level. Defaults to
	// four spaces when empty.
	IndentStep string
}

// Printer walks an AST and writes a textual rendering of it. A Printer is
// reusable across calls to Print but is not safe for concurrent use.
type Printer struct {
	opts   Options
	sb     strings.Builder
	indent int
}

// New creates a Printer with the given options.
func New(opts Options) *Printer {
	if opts.IndentStep == "" {
		opts.IndentStep = "    "
	}
	return &Printer{opts: opts}
}

// Print renders node as source text. node may be any AST node — a whole
// Document, a single statement, or a bare expression — which is convenient
// for tests that exercise one production at a time.
func (p *Printer) Print(node ast.Node) string {
	p.sb.Reset()
	p.indent = 0
	p.writeNode(node)
	return p.sb.String()
}

func (p *Printer) pad() string { return strings.Repeat(p.opts.IndentStep, p.indent) }

func (p *Printer) line(s string) {
	p.sb.WriteString(p.pad())
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

func (p *Printer) raw(s string) { p.sb.WriteString(s) }

func (p *Printer) writeNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		p.writeDocument(n)
	case *ast.Namespace:
		p.writeNamespace(n)
	case ast.TypeDecl:
		p.writeTypeDecl(n)
	case ast.Member:
		p.writeMember(n)
	case ast.Stmt:
		p.writeStmt(n)
	case ast.Expr:
		p.raw(exprStringPlain(n))
	case ast.TypeRef:
		p.raw(p.typeRefString(n))
	default:
		p.raw(fmt.Sprintf("/* unprintable %T */", node))
	}
}

// --- document / namespace -------------------------------------------------

func (p *Printer) writeDocument(d *ast.Document) {
	for _, u := range d.Usings {
		p.line(fmt.Sprintf("using %s;", u.Name))
	}
	for _, a := range d.UsingAliases {
		p.line(fmt.Sprintf("using %s = %s;", a.Alias, p.typeRefString(a.Type)))
	}
	if len(d.Usings) > 0 || len(d.UsingAliases) > 0 {
		p.sb.WriteByte('\n')
	}
	for _, g := range d.AssemblyAttributes {
		p.line(p.attributeGroupString(g))
	}
	for _, g := range d.ModuleAttributes {
		p.line(p.attributeGroupString(g))
	}
	for _, ns := range d.Namespaces {
		p.writeNamespace(ns)
		p.sb.WriteByte('\n')
	}
	for _, t := range d.Types {
		p.writeTypeDecl(t)
		p.sb.WriteByte('\n')
	}
}

func (p *Printer) writeNamespace(ns *ast.Namespace) {
	p.line(fmt.Sprintf("namespace %s", ns.Name))
	p.line("{")
	p.indent++
	for _, u := range ns.Usings {
		p.line(fmt.Sprintf("using %s;", u.Name))
	}
	for _, a := range ns.UsingAliases {
		p.line(fmt.Sprintf("using %s = %s;", a.Alias, p.typeRefString(a.Type)))
	}
	for _, nested := range ns.Namespaces {
		p.writeNamespace(nested)
	}
	for _, t := range ns.Types {
		p.writeTypeDecl(t)
	}
	p.indent--
	p.line("}")
}

// --- type declarations -----------------------------------------------------

func modPrefix(m ast.Modifiers) string {
	names := m.Names()
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, " ") + " "
}

func genericParamListString(params []ast.GenericParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, gp := range params {
		v := ""
		switch gp.Variance {
		case ast.Covariant:
			v = "out "
		case ast.Contravariant:
			v = "in "
		}
		parts[i] = v + gp.Name
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func constraintClausesString(clauses []ast.ConstraintClause) string {
	if len(clauses) == 0 {
		return ""
	}
	var parts []string
	for _, c := range clauses {
		var cs []string
		for _, con := range c.Constraints {
			switch con.Kind {
			case ast.ConstraintClass:
				cs = append(cs, "class")
			case ast.ConstraintStruct:
				cs = append(cs, "struct")
			case ast.ConstraintNew:
				cs = append(cs, "new()")
			default:
				cs = append(cs, typeRefStringPlain(con.Type))
			}
		}
		parts = append(parts, fmt.Sprintf("where %s : %s", c.ParamName, strings.Join(cs, ", ")))
	}
	return " " + strings.Join(parts, " ")
}

func baseListString(bases []ast.TypeRef) string {
	if len(bases) == 0 {
		return ""
	}
	parts := make([]string, len(bases))
	for i, b := range bases {
		parts[i] = typeRefStringPlain(b)
	}
	return " : " + strings.Join(parts, ", ")
}

func (p *Printer) writeTypeDecl(t ast.TypeDecl) {
	switch d := t.(type) {
	case *ast.ClassDecl:
		p.writeAttrLines(d.Attributes)
		p.line(fmt.Sprintf("%sclass %s%s%s%s", modPrefix(d.Modifiers), d.Name,
			genericParamListString(d.GenericParams), baseListString(d.BaseTypes), constraintClausesString(d.Constraints)))
		p.writeMemberBody(d.Members)
	case *ast.StructDecl:
		p.writeAttrLines(d.Attributes)
		p.line(fmt.Sprintf("%sstruct %s%s%s%s", modPrefix(d.Modifiers), d.Name,
			genericParamListString(d.GenericParams), baseListString(d.BaseTypes), constraintClausesString(d.Constraints)))
		p.writeMemberBody(d.Members)
	case *ast.InterfaceDecl:
		p.writeAttrLines(d.Attributes)
		p.line(fmt.Sprintf("%sinterface %s%s%s%s", modPrefix(d.Modifiers), d.Name,
			genericParamListString(d.GenericParams), baseListString(d.BaseTypes), constraintClausesString(d.Constraints)))
		p.writeMemberBody(d.Members)
	case *ast.DelegateDecl:
		p.writeAttrLines(d.Attributes)
		p.line(fmt.Sprintf("%sdelegate %s %s%s(%s)%s;", modPrefix(d.Modifiers), typeRefStringPlain(d.ReturnType), d.Name,
			genericParamListString(d.GenericParams), parameterListString(d.Parameters), constraintClausesString(d.Constraints)))
	case *ast.EnumDecl:
		p.writeAttrLines(d.Attributes)
		under := ""
		if d.UnderlyingType != nil {
			under = " : " + typeRefStringPlain(d.UnderlyingType)
		}
		p.line(fmt.Sprintf("%senum %s%s", modPrefix(d.Modifiers), d.Name, under))
		p.line("{")
		p.indent++
		for i, v := range d.Values {
			line := v.Name
			if v.Value != nil {
				line += " = " + exprStringPlain(v.Value)
			}
			if i < len(d.Values)-1 {
				line += ","
			}
			p.line(line)
		}
		p.indent--
		p.line("}")
	default:
		p.line(fmt.Sprintf("/* unprintable type decl %T */", t))
	}
}

func (p *Printer) writeMemberBody(members []ast.Member) {
	p.line("{")
	p.indent++
	for _, m := range members {
		p.writeMember(m)
	}
	p.indent--
	p.line("}")
}

func (p *Printer) writeAttrLines(groups []ast.AttributeGroup) {
	for _, g := range groups {
		p.line(p.attributeGroupString(g))
	}
}

func (p *Printer) attributeGroupString(g ast.AttributeGroup) string {
	var prefix string
	switch g.Target {
	case ast.TargetAssembly:
		prefix = "assembly: "
	case ast.TargetModule:
		prefix = "module: "
	case ast.TargetReturn:
		prefix = "return: "
	case ast.TargetParam:
		prefix = "param: "
	case ast.TargetField:
		prefix = "field: "
	case ast.TargetMethod:
		prefix = "method: "
	case ast.TargetProperty:
		prefix = "property: "
	case ast.TargetType:
		prefix = "type: "
	case ast.TargetEvent:
		prefix = "event: "
	case ast.TargetTypeVar:
		prefix = "typevar: "
	}
	parts := make([]string, len(g.Attributes))
	for i, a := range g.Attributes {
		name := typeRefStringPlain(a.Name)
		if len(a.Args) == 0 {
			parts[i] = name
			continue
		}
		args := make([]string, len(a.Args))
		for j, e := range a.Args {
			args[j] = exprStringPlain(e)
		}
		parts[i] = fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	}
	return fmt.Sprintf("[%s%s]", prefix, strings.Join(parts, ", "))
}

// --- members ---------------------------------------------------------------

func parameterListString(params []ast.Parameter) string {
	parts := make([]string, len(params))
	for i, pr := range params {
		parts[i] = parameterString(pr)
	}
	return strings.Join(parts, ", ")
}

func parameterString(pr ast.Parameter) string {
	mod := ""
	switch pr.Modifier {
	case ast.ParamRef:
		mod = "ref "
	case ast.ParamOut:
		mod = "out "
	case ast.ParamIn:
		mod = "in "
	case ast.ParamParams:
		mod = "params "
	case ast.ParamThis:
		mod = "this "
	}
	var typ string
	if pr.Type != nil {
		typ = typeRefStringPlain(pr.Type) + " "
	}
	s := fmt.Sprintf("%s%s%s", mod, typ, pr.Name)
	if pr.Default != nil {
		s += " = " + exprStringPlain(pr.Default)
	}
	return s
}

func argumentListString(args []ast.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		mod := ""
		switch a.Modifier {
		case ast.ParamRef:
			mod = "ref "
		case ast.ParamOut:
			mod = "out "
		}
		prefix := ""
		if a.Name != "" {
			prefix = a.Name + ": "
		}
		parts[i] = prefix + mod + exprStringPlain(a.Value)
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) writeMember(m ast.Member) {
	switch mm := m.(type) {
	case ast.TypeDecl:
		p.writeTypeDecl(mm)
		return
	case *ast.FieldMember:
		p.writeAttrLines(mm.Attributes)
		decls := make([]string, len(mm.Declarators))
		for i, d := range mm.Declarators {
			decls[i] = d.Name
			if d.Initializer != nil {
				decls[i] += " = " + exprStringPlain(d.Initializer)
			}
		}
		p.line(fmt.Sprintf("%s%s %s;", modPrefix(mm.Modifiers), typeRefStringPlain(mm.Type), strings.Join(decls, ", ")))
	case *ast.EventMember:
		p.writeAttrLines(mm.Attributes)
		if mm.AddBody == nil && mm.RemoveBody == nil {
			p.line(fmt.Sprintf("%sevent %s %s;", modPrefix(mm.Modifiers), typeRefStringPlain(mm.Type), mm.Name))
			return
		}
		p.line(fmt.Sprintf("%sevent %s %s", modPrefix(mm.Modifiers), typeRefStringPlain(mm.Type), mm.Name))
		p.line("{")
		p.indent++
		p.line("add")
		p.writeBlockInline(mm.AddBody)
		p.line("remove")
		p.writeBlockInline(mm.RemoveBody)
		p.indent--
		p.line("}")
	case *ast.MethodMember:
		p.writeAttrLines(mm.Attributes)
		impl := ""
		if mm.ImplementsFrom != nil {
			impl = typeRefStringPlain(mm.ImplementsFrom) + "."
		}
		sig := fmt.Sprintf("%s%s %s%s%s(%s)%s", modPrefix(mm.Modifiers), typeRefStringPlain(mm.ReturnType), impl, mm.Name,
			genericParamListString(mm.GenericParams), parameterListString(mm.Parameters), constraintClausesString(mm.Constraints))
		if mm.Body == nil {
			p.line(sig + ";")
			return
		}
		p.line(sig)
		p.writeBlockInline(mm.Body)
	case *ast.PropertyMember:
		p.writeAttrLines(mm.Attributes)
		impl := ""
		if mm.ImplementsFrom != nil {
			impl = typeRefStringPlain(mm.ImplementsFrom) + "."
		}
		p.line(fmt.Sprintf("%s%s %s%s", modPrefix(mm.Modifiers), typeRefStringPlain(mm.Type), impl, mm.Name))
		p.writeAccessors(mm.Accessors)
		if mm.Initializer != nil {
			p.sb.WriteString(" = " + exprStringPlain(mm.Initializer) + ";\n")
		}
	case *ast.IndexedPropertyMember:
		p.writeAttrLines(mm.Attributes)
		impl := ""
		if mm.ImplementsFrom != nil {
			impl = typeRefStringPlain(mm.ImplementsFrom) + "."
		}
		p.line(fmt.Sprintf("%s%s %sthis[%s]", modPrefix(mm.Modifiers), typeRefStringPlain(mm.Type), impl, parameterListString(mm.Parameters)))
		p.writeAccessors(mm.Accessors)
	case *ast.ConstructorMember:
		p.writeAttrLines(mm.Attributes)
		init := ""
		if mm.Init != nil {
			kw := "this"
			if mm.Init.IsBase {
				kw = "base"
			}
			init = fmt.Sprintf(" : %s(%s)", kw, argumentListString(mm.Init.Arguments))
		}
		p.line(fmt.Sprintf("%s%s(%s)%s", modPrefix(mm.Modifiers), mm.Name, parameterListString(mm.Parameters), init))
		p.writeBlockInline(mm.Body)
	case *ast.DestructorMember:
		p.writeAttrLines(mm.Attributes)
		p.line(fmt.Sprintf("~%s()", mm.Name))
		p.writeBlockInline(mm.Body)
	case *ast.UnaryOperatorMember:
		p.writeAttrLines(mm.Attributes)
		p.line(fmt.Sprintf("%s%s operator %s(%s)", modPrefix(mm.Modifiers), typeRefStringPlain(mm.ReturnType), mm.Operator, parameterString(mm.Parameter)))
		p.writeBlockInline(mm.Body)
	case *ast.BinaryOperatorMember:
		p.writeAttrLines(mm.Attributes)
		p.line(fmt.Sprintf("%s%s operator %s(%s, %s)", modPrefix(mm.Modifiers), typeRefStringPlain(mm.ReturnType), mm.Operator,
			parameterString(mm.Left), parameterString(mm.Right)))
		p.writeBlockInline(mm.Body)
	case *ast.ConversionMember:
		p.writeAttrLines(mm.Attributes)
		kw := "explicit"
		if mm.IsImplicit {
			kw = "implicit"
		}
		p.line(fmt.Sprintf("%sstatic %s operator %s(%s)", modPrefix(mm.Modifiers&^ast.ModStatic), kw, typeRefStringPlain(mm.TargetType), parameterString(mm.Parameter)))
		p.writeBlockInline(mm.Body)
	default:
		p.line(fmt.Sprintf("/* unprintable member %T */", m))
	}
}

func (p *Printer) writeAccessors(accessors []ast.Accessor) {
	p.line("{")
	p.indent++
	for _, a := range accessors {
		kw := "get"
		if a.Kind == ast.AccessorSet {
			kw = "set"
		}
		mod := modPrefix(a.Modifiers)
		if a.Body == nil {
			p.line(fmt.Sprintf("%s%s;", mod, kw))
			continue
		}
		p.line(mod + kw)
		p.writeBlockInline(a.Body)
	}
	p.indent--
	p.line("}")
}

func (p *Printer) writeBlockInline(b *ast.BlockStmt) {
	if b == nil {
		p.line("{ }")
		return
	}
	p.writeStmt(b)
}

// --- type references ---------------------------------------------------

func (p *Printer) typeRefString(t ast.TypeRef) string { return typeRefStringPlain(t) }

func typeRefStringPlain(t ast.TypeRef) string {
	if t == nil {
		return ""
	}
	switch tr := t.(type) {
	case *ast.QualifiedTypeRef:
		var sb strings.Builder
		if tr.IsGlobal {
			sb.WriteString("global::")
		}
		for i, part := range tr.Parts {
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(part.Name)
			if part.GenericArgs != nil {
				args := make([]string, len(part.GenericArgs))
				for j, a := range part.GenericArgs {
					args[j] = typeRefStringPlain(a)
				}
				sb.WriteString("<" + strings.Join(args, ", ") + ">")
			} else if part.EmptyArgCount > 0 {
				sb.WriteString("<" + strings.Repeat(",", part.EmptyArgCount-1) + ">")
			}
		}
		return sb.String()
	case *ast.ArrayTypeRef:
		var sb strings.Builder
		sb.WriteString(typeRefStringPlain(tr.Element))
		for _, rank := range tr.Ranks {
			sb.WriteString("[" + strings.Repeat(",", rank-1) + "]")
		}
		return sb.String()
	case *ast.PointerTypeRef:
		return typeRefStringPlain(tr.Inner) + "*"
	case *ast.NullableTypeRef:
		return typeRefStringPlain(tr.Inner) + "?"
	case *ast.GenericPlaceholderTypeRef:
		return "<" + strings.Repeat(",", tr.ArgCount-1) + ">"
	default:
		return fmt.Sprintf("/* unprintable type %T */", t)
	}
}

// --- statements ----------------------------------------------------------

func (p *Printer) writeStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.EmptyStmt:
		p.line(";")
	case *ast.BlockStmt:
		p.line("{")
		p.indent++
		for _, inner := range st.Statements {
			p.writeStmt(inner)
		}
		p.indent--
		p.line("}")
	case *ast.VarDeclStmt:
		p.line(varDeclString(st) + ";")
	case *ast.ExprStmt:
		p.line(exprStringPlain(st.Expression) + ";")
	case *ast.ReturnStmt:
		if st.Value == nil {
			p.line("return;")
		} else {
			p.line("return " + exprStringPlain(st.Value) + ";")
		}
	case *ast.ThrowStmt:
		if st.Value == nil {
			p.line("throw;")
		} else {
			p.line("throw " + exprStringPlain(st.Value) + ";")
		}
	case *ast.CheckedStmt:
		p.line("checked")
		p.writeStmt(st.Body)
	case *ast.UncheckedStmt:
		p.line("unchecked")
		p.writeStmt(st.Body)
	case *ast.UnsafeStmt:
		p.line("unsafe")
		p.writeStmt(st.Body)
	case *ast.SwitchStmt:
		p.line(fmt.Sprintf("switch (%s)", exprStringPlain(st.Discriminant)))
		p.line("{")
		p.indent++
		for _, g := range st.Groups {
			for _, lbl := range g.Labels {
				if lbl.IsDefault {
					p.line("default:")
				} else {
					p.line("case " + exprStringPlain(lbl.Value) + ":")
				}
			}
			p.indent++
			for _, inner := range g.Statements {
				p.writeStmt(inner)
			}
			p.indent--
		}
		p.indent--
		p.line("}")
	case *ast.ForStmt:
		init := ""
		if st.InitDecl != nil {
			init = varDeclString(st.InitDecl)
		} else if len(st.InitExprs) > 0 {
			init = exprListString(st.InitExprs)
		}
		cond := ""
		if st.Condition != nil {
			cond = exprStringPlain(st.Condition)
		}
		iter := exprListString(st.Iterators)
		p.line(fmt.Sprintf("for (%s; %s; %s)", init, cond, iter))
		p.writeStmt(st.Body)
	case *ast.ForEachStmt:
		typ := "var"
		if st.Type != nil {
			typ = typeRefStringPlain(st.Type)
		}
		p.line(fmt.Sprintf("foreach (%s %s in %s)", typ, st.VarName, exprStringPlain(st.Source)))
		p.writeStmt(st.Body)
	case *ast.WhileStmt:
		p.line(fmt.Sprintf("while (%s)", exprStringPlain(st.Condition)))
		p.writeStmt(st.Body)
	case *ast.DoWhileStmt:
		p.line("do")
		p.writeStmt(st.Body)
		p.line(fmt.Sprintf("while (%s);", exprStringPlain(st.Condition)))
	case *ast.IfStmt:
		p.line(fmt.Sprintf("if (%s)", exprStringPlain(st.Condition)))
		p.writeStmt(st.Then)
		if st.Else != nil {
			p.line("else")
			p.writeStmt(st.Else)
		}
	case *ast.UsingStmt:
		res := ""
		if st.ResourceDecl != nil {
			res = varDeclString(st.ResourceDecl)
		} else {
			res = exprStringPlain(st.ResourceExpr)
		}
		p.line(fmt.Sprintf("using (%s)", res))
		p.writeStmt(st.Body)
	case *ast.FixedStmt:
		p.line(fmt.Sprintf("fixed (%s)", varDeclString(st.Decl)))
		p.writeStmt(st.Body)
	case *ast.LockStmt:
		p.line(fmt.Sprintf("lock (%s)", exprStringPlain(st.Expr)))
		p.writeStmt(st.Body)
	case *ast.TryStmt:
		p.line("try")
		p.writeStmt(st.Body)
		for _, c := range st.Catches {
			if c.Type == nil {
				p.line("catch")
			} else if c.VarName == "" {
				p.line(fmt.Sprintf("catch (%s)", typeRefStringPlain(c.Type)))
			} else {
				p.line(fmt.Sprintf("catch (%s %s)", typeRefStringPlain(c.Type), c.VarName))
			}
			p.writeStmt(c.Body)
		}
		if st.Finally != nil {
			p.line("finally")
			p.writeStmt(st.Finally)
		}
	case *ast.GotoLabelStmt:
		p.line(fmt.Sprintf("goto %s;", st.Label))
	case *ast.GotoCaseStmt:
		p.line(fmt.Sprintf("goto case %s;", exprStringPlain(st.Value)))
	case *ast.GotoDefaultStmt:
		p.line("goto default;")
	case *ast.ContinueStmt:
		p.line("continue;")
	case *ast.BreakStmt:
		p.line("break;")
	case *ast.YieldReturnStmt:
		p.line(fmt.Sprintf("yield return %s;", exprStringPlain(st.Value)))
	case *ast.YieldBreakStmt:
		p.line("yield break;")
	case *ast.LabeledStmt:
		for _, l := range st.Labels {
			p.line(l + ":")
		}
		p.writeStmt(st.Stmt)
	default:
		p.line(fmt.Sprintf("/* unprintable stmt %T */", s))
	}
}

// blockStmtString renders a block as a single line, for embedding inside an
// expression context (a lambda or anonymous-method body) where the
// indenting, multi-line writeStmt can't be used.
func blockStmtString(b *ast.BlockStmt) string {
	if b == nil || len(b.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = stmtStringPlain(s)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// stmtStringPlain is writeStmt's pure-string counterpart, used wherever a
// statement has to be embedded inline rather than written line-by-line.
func stmtStringPlain(s ast.Stmt) string {
	switch st := s.(type) {
	case *ast.EmptyStmt:
		return ";"
	case *ast.BlockStmt:
		return blockStmtString(st)
	case *ast.VarDeclStmt:
		return varDeclString(st) + ";"
	case *ast.ExprStmt:
		return exprStringPlain(st.Expression) + ";"
	case *ast.ReturnStmt:
		if st.Value == nil {
			return "return;"
		}
		return "return " + exprStringPlain(st.Value) + ";"
	case *ast.ThrowStmt:
		if st.Value == nil {
			return "throw;"
		}
		return "throw " + exprStringPlain(st.Value) + ";"
	case *ast.CheckedStmt:
		return "checked " + stmtStringPlain(st.Body)
	case *ast.UncheckedStmt:
		return "unchecked " + stmtStringPlain(st.Body)
	case *ast.UnsafeStmt:
		return "unsafe " + stmtStringPlain(st.Body)
	case *ast.SwitchStmt:
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("switch (%s) { ", exprStringPlain(st.Discriminant)))
		for _, g := range st.Groups {
			for _, lbl := range g.Labels {
				if lbl.IsDefault {
					sb.WriteString("default: ")
				} else {
					sb.WriteString("case " + exprStringPlain(lbl.Value) + ": ")
				}
			}
			for _, inner := range g.Statements {
				sb.WriteString(stmtStringPlain(inner) + " ")
			}
		}
		sb.WriteString("}")
		return sb.String()
	case *ast.ForStmt:
		init := ""
		if st.InitDecl != nil {
			init = varDeclString(st.InitDecl)
		} else if len(st.InitExprs) > 0 {
			init = exprListString(st.InitExprs)
		}
		cond := ""
		if st.Condition != nil {
			cond = exprStringPlain(st.Condition)
		}
		iter := exprListString(st.Iterators)
		return fmt.Sprintf("for (%s; %s; %s) %s", init, cond, iter, stmtStringPlain(st.Body))
	case *ast.ForEachStmt:
		typ := "var"
		if st.Type != nil {
			typ = typeRefStringPlain(st.Type)
		}
		return fmt.Sprintf("foreach (%s %s in %s) %s", typ, st.VarName, exprStringPlain(st.Source), stmtStringPlain(st.Body))
	case *ast.WhileStmt:
		return fmt.Sprintf("while (%s) %s", exprStringPlain(st.Condition), stmtStringPlain(st.Body))
	case *ast.DoWhileStmt:
		return fmt.Sprintf("do %s while (%s);", stmtStringPlain(st.Body), exprStringPlain(st.Condition))
	case *ast.IfStmt:
		s := fmt.Sprintf("if (%s) %s", exprStringPlain(st.Condition), stmtStringPlain(st.Then))
		if st.Else != nil {
			s += " else " + stmtStringPlain(st.Else)
		}
		return s
	case *ast.UsingStmt:
		res := ""
		if st.ResourceDecl != nil {
			res = varDeclString(st.ResourceDecl)
		} else {
			res = exprStringPlain(st.ResourceExpr)
		}
		return fmt.Sprintf("using (%s) %s", res, stmtStringPlain(st.Body))
	case *ast.FixedStmt:
		return fmt.Sprintf("fixed (%s) %s", varDeclString(st.Decl), stmtStringPlain(st.Body))
	case *ast.LockStmt:
		return fmt.Sprintf("lock (%s) %s", exprStringPlain(st.Expr), stmtStringPlain(st.Body))
	case *ast.TryStmt:
		var sb strings.Builder
		sb.WriteString("try " + stmtStringPlain(st.Body))
		for _, c := range st.Catches {
			switch {
			case c.Type == nil:
				sb.WriteString(" catch")
			case c.VarName == "":
				sb.WriteString(fmt.Sprintf(" catch (%s)", typeRefStringPlain(c.Type)))
			default:
				sb.WriteString(fmt.Sprintf(" catch (%s %s)", typeRefStringPlain(c.Type), c.VarName))
			}
			sb.WriteString(" " + stmtStringPlain(c.Body))
		}
		if st.Finally != nil {
			sb.WriteString(" finally " + stmtStringPlain(st.Finally))
		}
		return sb.String()
	case *ast.GotoLabelStmt:
		return fmt.Sprintf("goto %s;", st.Label)
	case *ast.GotoCaseStmt:
		return fmt.Sprintf("goto case %s;", exprStringPlain(st.Value))
	case *ast.GotoDefaultStmt:
		return "goto default;"
	case *ast.ContinueStmt:
		return "continue;"
	case *ast.BreakStmt:
		return "break;"
	case *ast.YieldReturnStmt:
		return fmt.Sprintf("yield return %s;", exprStringPlain(st.Value))
	case *ast.YieldBreakStmt:
		return "yield break;"
	case *ast.LabeledStmt:
		var sb strings.Builder
		for _, l := range st.Labels {
			sb.WriteString(l + ": ")
		}
		sb.WriteString(stmtStringPlain(st.Stmt))
		return sb.String()
	default:
		return fmt.Sprintf("/* unprintable stmt %T */", s)
	}
}

func varDeclString(v *ast.VarDeclStmt) string {
	prefix := ""
	if v.IsConst {
		prefix = "const "
	}
	decls := make([]string, len(v.Declarators))
	for i, d := range v.Declarators {
		decls[i] = d.Name
		if d.Initializer != nil {
			decls[i] += " = " + exprStringPlain(d.Initializer)
		}
	}
	return fmt.Sprintf("%s%s %s", prefix, typeRefStringPlain(v.Type), strings.Join(decls, ", "))
}

func exprListString(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = exprStringPlain(e)
	}
	return strings.Join(parts, ", ")
}

// --- expressions -----------------------------------------------------------

func exprStringPlain(e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch ex := e.(type) {
	case *ast.NumberLiteralExpr:
		return ex.Raw
	case *ast.CharLiteralExpr:
		return ex.Raw
	case *ast.StringLiteralExpr:
		return ex.Raw
	case *ast.BoolLiteralExpr:
		if ex.Value {
			return "true"
		}
		return "false"
	case *ast.NullLiteralExpr:
		return "null"
	case *ast.ThisExpr:
		return "this"
	case *ast.BaseExpr:
		return "base"
	case *ast.IdentifierExpr:
		return ex.Name
	case *ast.TypeExpr:
		return typeRefStringPlain(ex.Type)
	case *ast.AssignmentExpr:
		return fmt.Sprintf("%s %s %s", exprStringPlain(ex.Left), ex.Operator, exprStringPlain(ex.Right))
	case *ast.ConditionalExpr:
		return fmt.Sprintf("%s ? %s : %s", exprStringPlain(ex.Condition), exprStringPlain(ex.Then), exprStringPlain(ex.Else))
	case *ast.CoalesceExpr:
		return fmt.Sprintf("%s ?? %s", exprStringPlain(ex.Left), exprStringPlain(ex.Right))
	case *ast.BinaryExpr:
		return fmt.Sprintf("%s %s %s", exprStringPlain(ex.Left), ex.Operator, exprStringPlain(ex.Right))
	case *ast.IsExpr:
		return fmt.Sprintf("%s is %s", exprStringPlain(ex.Expr), typeRefStringPlain(ex.Type))
	case *ast.AsExpr:
		return fmt.Sprintf("%s as %s", exprStringPlain(ex.Expr), typeRefStringPlain(ex.Type))
	case *ast.UnaryExpr:
		return ex.Operator + exprStringPlain(ex.Operand)
	case *ast.PostfixExpr:
		return exprStringPlain(ex.Operand) + ex.Operator
	case *ast.CastExpr:
		return fmt.Sprintf("(%s)%s", typeRefStringPlain(ex.Type), exprStringPlain(ex.Operand))
	case *ast.MemberAccessExpr:
		op := "."
		if ex.IsPointer {
			op = "->"
		}
		gen := ""
		if ex.GenericArgs != nil {
			args := make([]string, len(ex.GenericArgs))
			for i, a := range ex.GenericArgs {
				args[i] = typeRefStringPlain(a)
			}
			gen = "<" + strings.Join(args, ", ") + ">"
		}
		return fmt.Sprintf("%s%s%s%s", exprStringPlain(ex.Target), op, ex.Name, gen)
	case *ast.CallExpr:
		open, close := "(", ")"
		if ex.IsIndexer {
			open, close = "[", "]"
		}
		return fmt.Sprintf("%s%s%s%s", exprStringPlain(ex.Target), open, argumentListString(ex.Arguments), close)
	case *ast.TypeofExpr:
		return fmt.Sprintf("typeof(%s)", typeRefStringPlain(ex.Type))
	case *ast.SizeofExpr:
		return fmt.Sprintf("sizeof(%s)", typeRefStringPlain(ex.Type))
	case *ast.DefaultExpr:
		if ex.Type == nil {
			return "default"
		}
		return fmt.Sprintf("default(%s)", typeRefStringPlain(ex.Type))
	case *ast.CheckedExpr:
		kw := "unchecked"
		if ex.IsChecked {
			kw = "checked"
		}
		return fmt.Sprintf("%s(%s)", kw, exprStringPlain(ex.Operand))
	case *ast.ParenExpr:
		return "(" + exprStringPlain(ex.Inner) + ")"
	case *ast.ObjectCreationExpr:
		s := fmt.Sprintf("new %s(%s)", typeRefStringPlain(ex.Type), argumentListString(ex.Arguments))
		if ex.Initializer != nil {
			s += " " + initializerListString(ex.Initializer)
		}
		return s
	case *ast.AnonymousObjectCreationExpr:
		parts := make([]string, len(ex.Members))
		for i, m := range ex.Members {
			if m.Value == nil {
				parts[i] = m.Name
			} else {
				parts[i] = fmt.Sprintf("%s = %s", m.Name, exprStringPlain(m.Value))
			}
		}
		return fmt.Sprintf("new { %s }", strings.Join(parts, ", "))
	case *ast.ImplicitArrayCreationExpr:
		return fmt.Sprintf("new[] { %s }", exprListString(ex.Elements))
	case *ast.ArrayCreationExpr:
		sizes := make([]string, len(ex.Sizes))
		for i, s := range ex.Sizes {
			sizes[i] = exprStringPlain(s)
		}
		s := fmt.Sprintf("new %s[%s]", typeRefStringPlain(ex.ElementType), strings.Join(sizes, ", "))
		for _, rank := range ex.ExtraRanks {
			s += "[" + strings.Repeat(",", rank-1) + "]"
		}
		if ex.Initializer != nil {
			s += " " + initializerListString(ex.Initializer)
		}
		return s
	case *ast.StackAllocExpr:
		return fmt.Sprintf("stackalloc %s[%s]", typeRefStringPlain(ex.ElementType), exprStringPlain(ex.Size))
	case *ast.ArrayLiteralExpr:
		return fmt.Sprintf("{ %s }", exprListString(ex.Elements))
	case *ast.LambdaExpr:
		params := lambdaParamsString(ex.Parameters)
		if ex.BlockBody != nil {
			return fmt.Sprintf("%s => %s", params, blockStmtString(ex.BlockBody))
		}
		return fmt.Sprintf("%s => %s", params, exprStringPlain(ex.ExprBody))
	case *ast.AnonymousMethodExpr:
		if ex.Parameters == nil {
			return "delegate " + blockStmtString(ex.Body)
		}
		return fmt.Sprintf("delegate(%s) %s", parameterListString(ex.Parameters), blockStmtString(ex.Body))
	case *ast.QueryExpr:
		return queryExprString(ex)
	default:
		return fmt.Sprintf("/* unprintable expr %T */", e)
	}
}

func lambdaParamsString(params []ast.Parameter) string {
	if len(params) == 1 && params[0].Type == nil {
		return params[0].Name
	}
	return "(" + parameterListString(params) + ")"
}

func initializerListString(il *ast.InitializerList) string {
	if il.IsObjectInit {
		parts := make([]string, len(il.ObjectEntries))
		for i, e := range il.ObjectEntries {
			parts[i] = fmt.Sprintf("%s = %s", e.Name, exprStringPlain(e.Value))
		}
		return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
	}
	parts := make([]string, len(il.CollectionEntries))
	for i, e := range il.CollectionEntries {
		if len(e.Values) == 1 {
			parts[i] = exprStringPlain(e.Values[0])
		} else {
			parts[i] = fmt.Sprintf("{ %s }", exprListString(e.Values))
		}
	}
	return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
}

func queryExprString(q *ast.QueryExpr) string {
	var parts []string
	for _, c := range q.Clauses {
		switch cc := c.(type) {
		case *ast.FromClause:
			typ := ""
			if cc.Type != nil {
				typ = typeRefStringPlain(cc.Type) + " "
			}
			parts = append(parts, fmt.Sprintf("from %s%s in %s", typ, cc.VarName, exprStringPlain(cc.Source)))
		case *ast.JoinClause:
			typ := ""
			if cc.Type != nil {
				typ = typeRefStringPlain(cc.Type) + " "
			}
			s := fmt.Sprintf("join %s%s in %s on %s equals %s", typ, cc.VarName, exprStringPlain(cc.Source),
				exprStringPlain(cc.OnLeft), exprStringPlain(cc.OnRight))
			if cc.IntoName != "" {
				s += " into " + cc.IntoName
			}
			parts = append(parts, s)
		case *ast.LetClause:
			parts = append(parts, fmt.Sprintf("let %s = %s", cc.VarName, exprStringPlain(cc.Value)))
		case *ast.WhereClause:
			parts = append(parts, "where "+exprStringPlain(cc.Condition))
		case *ast.OrderByClause:
			keys := make([]string, len(cc.Keys))
			for i, k := range cc.Keys {
				keys[i] = exprStringPlain(k.Key)
				if k.Descending {
					keys[i] += " descending"
				}
			}
			parts = append(parts, "orderby "+strings.Join(keys, ", "))
		case *ast.SelectClause:
			parts = append(parts, "select "+exprStringPlain(cc.Value))
		case *ast.GroupByClause:
			parts = append(parts, fmt.Sprintf("group %s by %s", exprStringPlain(cc.Element), exprStringPlain(cc.Key)))
		case *ast.IntoClause:
			parts = append(parts, "into "+cc.VarName)
		}
	}
	return strings.Join(parts, " ")
}
