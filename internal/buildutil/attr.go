// Package buildutil reads and builds attributes of Starlark calls in
// buildtools syntax trees.
package buildutil

import (
	"github.com/bazelbuild/buildtools/build"
)

// Attr returns the value of the keyword argument name, or nil.
func Attr(call *build.CallExpr, name string) build.Expr {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		if lhs, ok := assign.LHS.(*build.Ident); ok && lhs.Name == name {
			return assign.RHS
		}
	}
	return nil
}

// String extracts a string keyword argument.
// Returns empty string if the attribute is not found or not a string.
func String(call *build.CallExpr, name string) string {
	if str, ok := Attr(call, name).(*build.StringExpr); ok {
		return str.Value
	}
	return ""
}

// Bool extracts a boolean keyword argument. Anything but True is false.
func Bool(call *build.CallExpr, name string) bool {
	ident, ok := Attr(call, name).(*build.Ident)
	return ok && ident.Name == "True"
}

// StringList extracts a list of strings keyword argument.
// Returns nil if the attribute is not found or not a list.
// Non-string elements in the list are silently skipped.
func StringList(call *build.CallExpr, name string) []string {
	list, ok := Attr(call, name).(*build.ListExpr)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(list.List))
	for _, elem := range list.List {
		if str, ok := elem.(*build.StringExpr); ok {
			result = append(result, str.Value)
		}
	}
	return result
}

// FuncName returns the function name of a plain call such as use_repo(...).
// Returns empty string for method calls.
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

// MethodName splits a method call such as maven.install(...) into its
// receiver and method. ok is false for any other callee.
func MethodName(call *build.CallExpr) (receiver, method string, ok bool) {
	dot, isDot := call.X.(*build.DotExpr)
	if !isDot {
		return "", "", false
	}
	ident, isIdent := dot.X.(*build.Ident)
	if !isIdent {
		return "", "", false
	}
	return ident.Name, dot.Name, true
}

// Calls returns every top-level call statement of f, including the right
// hand side of assignments such as maven = use_extension(...).
func Calls(f *build.File) []*build.CallExpr {
	var calls []*build.CallExpr
	for _, stmt := range f.Stmt {
		switch s := stmt.(type) {
		case *build.CallExpr:
			calls = append(calls, s)
		case *build.AssignExpr:
			if call, ok := s.RHS.(*build.CallExpr); ok {
				calls = append(calls, call)
			}
		}
	}
	return calls
}

// Kwarg builds the keyword argument name = value.
func Kwarg(name string, value build.Expr) *build.AssignExpr {
	return &build.AssignExpr{LHS: &build.Ident{Name: name}, Op: "=", RHS: value}
}

// Strings builds a list of string literals. Lists with more than one element
// are printed one element per line.
func Strings(values []string) *build.ListExpr {
	list := &build.ListExpr{ForceMultiLine: len(values) > 1}
	for _, v := range values {
		list.List = append(list.List, &build.StringExpr{Value: v})
	}
	return list
}
