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


// Package analysistest type-checks small programs for the tests of the analyses and locates the expressions that
// the test sources annotate.
package analysistest

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/astutil"
)

// Program is a single type-checked file
type Program struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info
}

// Typecheck parses and type-checks the source of a single file, failing the test on any error. Imports are
// resolved from source.
func Typecheck(t *testing.T, src string) *Program {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "main.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("error parsing test source: %v", err)
	}
	info := &types.Info{
		Types:      map[ast.Expr]types.TypeAndValue{},
		Defs:       map[*ast.Ident]types.Object{},
		Uses:       map[*ast.Ident]types.Object{},
		Selections: map[*ast.SelectorExpr]*types.Selection{},
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(f.Name.Name, fset, []*ast.File{f}, info)
	if err != nil {
		t.Fatalf("error type-checking test source: %v", err)
	}
	return &Program{Fset: fset, File: f, Pkg: pkg, Info: info}
}

// Func returns the declaration of the function or method named name
func (p *Program) Func(t *testing.T, name string) *ast.FuncDecl {
	t.Helper()
	for _, decl := range p.File.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Name.Name == name {
			return fd
		}
	}
	t.Fatalf("no function %s in test source", name)
	return nil
}

// CallRegex matches annotations of the form "@Call(id1, id2, id3)"
var CallRegex = regexp.MustCompile(`//.*@Call\(((?:\s*\w+\s*,?)+)\)`)

// LPos is a position without column
type LPos struct {
	Filename string
	Line     int
}

func (p LPos) String() string {
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// RemoveColumn drops the column of pos
func RemoveColumn(pos token.Position) LPos {
	return LPos{Line: pos.Line, Filename: pos.Filename}
}

// Annotations returns the line of every identifier in a @Call annotation. An annotation refers to the code on
// its own line.
func (p *Program) Annotations() map[string]LPos {
	ids := map[string]LPos{}
	for _, c := range p.File.Comments {
		for _, c1 := range c.List {
			a := CallRegex.FindStringSubmatch(c1.Text)
			if len(a) <= 1 {
				continue
			}
			pos := RemoveColumn(p.Fset.Position(c1.Pos()))
			for _, ident := range strings.Split(a[1], ",") {
				if id := strings.TrimSpace(ident); id != "" {
					ids[id] = pos
				}
			}
		}
	}
	return ids
}

// Calls returns, for each @Call annotation identifier, the outermost call expression starting on the line of
// the annotation.
func (p *Program) Calls(t *testing.T) map[string]*ast.CallExpr {
	t.Helper()
	byLine := map[LPos]*ast.CallExpr{}
	astutil.Apply(p.File, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return true
		}
		pos := RemoveColumn(p.Fset.Position(call.Pos()))
		if _, seen := byLine[pos]; !seen {
			byLine[pos] = call
		}
		return true
	}, nil)

	calls := map[string]*ast.CallExpr{}
	for id, pos := range p.Annotations() {
		call, ok := byLine[pos]
		if !ok {
			t.Fatalf("annotation %s at %s does not mark a call", id, pos)
		}
		calls[id] = call
	}
	return calls
}
