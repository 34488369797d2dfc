// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package astfuncs builds Go syntax, as github.com/dave/dst trees, for the expression nodes of the control-flow
// graphs. Refactoring passes use it to emit lowered or synthesized invocations as source code.
package astfuncs

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"

	"github.com/dave/dst"
)

// NewLiteral returns the expression of the constant value.
// Integer constants, including runes, are written in decimal.
func NewLiteral(value constant.Value) (dst.Expr, error) {
	switch value.Kind() {
	case constant.Bool:
		return dst.NewIdent(strconv.FormatBool(constant.BoolVal(value))), nil
	case constant.String:
		return &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(constant.StringVal(value))}, nil
	case constant.Int:
		return &dst.BasicLit{Kind: token.INT, Value: value.ExactString()}, nil
	case constant.Float:
		f, _ := constant.Float64Val(value)
		return &dst.BasicLit{Kind: token.FLOAT, Value: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	default:
		return nil, fmt.Errorf("no literal for constant %s of kind %s", value, value.Kind())
	}
}

// NewNil returns a dst expression that represents nil
func NewNil() dst.Expr {
	return dst.NewIdent("nil")
}

// NewQualifiedIdent returns the identifier name declared in the package at path. The package is empty for
// identifiers of the current package; otherwise the restorer qualifies the identifier and adds the import.
func NewQualifiedIdent(name string, path string) *dst.Ident {
	id := dst.NewIdent(name)
	id.Path = path
	return id
}

// NewSelector returns the selector expression x.name
func NewSelector(x dst.Expr, name string) *dst.SelectorExpr {
	return &dst.SelectorExpr{X: x, Sel: dst.NewIdent(name)}
}

// NewCall returns a new call expression that calls fun over the arguments args ...
func NewCall(fun dst.Expr, args ...dst.Expr) *dst.CallExpr {
	return &dst.CallExpr{
		Fun:      fun,
		Args:     args,
		Ellipsis: false,
	}
}

// NewDefine returns the statement name := value
func NewDefine(name string, value dst.Expr) *dst.AssignStmt {
	return &dst.AssignStmt{
		Lhs: []dst.Expr{dst.NewIdent(name)},
		Tok: token.DEFINE,
		Rhs: []dst.Expr{value},
	}
}

// NewTypeExpr returns an AST expression that represents the type t. Named types declared outside the package at
// path are qualified.
//
// For example, the expression that represents a types.Struct will be of the form
// struct{...}.
//
// For an integer, the expression is an identifier 'int'
func NewTypeExpr(t types.Type, path string) (dst.Expr, error) {
	switch t0 := t.(type) {
	case *types.Basic:
		return dst.NewIdent(t0.Name()), nil
	case *types.Named:
		if t0.TypeArgs().Len() > 0 {
			return nil, fmt.Errorf("no type expression for instantiated type %s", t)
		}
		obj := t0.Obj()
		if obj.Pkg() == nil || obj.Pkg().Path() == path {
			return dst.NewIdent(obj.Name()), nil
		}
		return NewQualifiedIdent(obj.Name(), obj.Pkg().Path()), nil
	case *types.Pointer:
		elem, err := NewTypeExpr(t0.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &dst.StarExpr{X: elem}, nil
	case *types.Slice:
		elem, err := NewTypeExpr(t0.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &dst.ArrayType{Elt: elem}, nil
	case *types.Struct:
		return newStructTypeExpr(t0, path)
	default:
		return nil, fmt.Errorf("no type expression for %s", t)
	}
}

// newStructTypeExpr returns the expression representing a struct type, or an error if it could not create that
// expression.
func newStructTypeExpr(t *types.Struct, path string) (dst.Expr, error) {
	n := t.NumFields()
	var fields []*dst.Field
	for i := 0; i < n; i++ {
		f := t.Field(i)
		te, err := NewTypeExpr(f.Type(), path)
		if err != nil {
			return nil, err
		}
		newField := &dst.Field{
			Names: []*dst.Ident{dst.NewIdent(f.Name())},
			Type:  te,
			Tag:   nil,
		}
		if f.Embedded() {
			newField.Names = nil
		}
		fields = append(fields, newField)
	}
	res := &dst.StructType{
		Fields: &dst.FieldList{
			Opening: false,
			List:    fields,
			Closing: false,
			Decs:    dst.FieldListDecorations{},
		},
		Incomplete: false,
		Decs:       dst.StructTypeDecorations{},
	}
	return res, nil
}
