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


package lower

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"strings"

	"github.com/awslabs/ar-go-flowcfg/analysis/cfg"
	"github.com/awslabs/ar-go-flowcfg/analysis/config"
	"golang.org/x/tools/go/packages"
)

// PkgLoadMode is the loading mode of the lowering: syntax and type information of the packages.
const PkgLoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes |
	packages.NeedModule

// LoadedProgram represents a loaded program.
type LoadedProgram struct {
	// Fset is the file set of all the syntax of the packages
	Fset *token.FileSet
	// Packages is a list of the packages matching the patterns and the package filter.
	Packages []*packages.Package
}

// Load loads the packages matching the patterns on platform "platform" (the host platform if empty), with the
// build tags provided. Packages whose path does not match the package filter of c are dropped.
// To understand how to specify the patterns, look at the documentation of packages.Load.
func Load(c *config.Config, platform string, tags []string, patterns []string) (LoadedProgram, error) {
	fset := token.NewFileSet()
	pcfg := &packages.Config{
		Mode:  PkgLoadMode,
		Tests: false,
		Fset:  fset,
	}
	if platform != "" {
		pcfg.Env = append(os.Environ(), fmt.Sprintf("GOOS=%s", platform))
	}
	if len(tags) > 0 {
		pcfg.BuildFlags = []string{"-tags=" + strings.Join(tags, ",")}
	}

	// load, parse and type check the given packages
	initialPackages, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return LoadedProgram{}, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(initialPackages) == 0 {
		return LoadedProgram{}, fmt.Errorf("no packages")
	}

	if packages.PrintErrors(initialPackages) > 0 {
		return LoadedProgram{}, fmt.Errorf("errors found, exiting")
	}

	var pkgs []*packages.Package
	for _, p := range initialPackages {
		if c.MatchPkgFilter(p.PkgPath) {
			pkgs = append(pkgs, p)
		}
	}
	return LoadedProgram{Fset: fset, Packages: pkgs}, nil
}

// Lowered is the graph of one function of a loaded program.
type Lowered struct {
	Pkg   *packages.Package
	Decl  *ast.FuncDecl
	Graph *cfg.Graph
}

// LowerAll lowers every function declaration with a body in the program, package by package and in source
// order.
func (p LoadedProgram) LowerAll(logger *config.LogGroup) ([]Lowered, error) {
	var res []Lowered
	for _, pkg := range p.Packages {
		for _, file := range pkg.Syntax {
			l := NewLowerer(p.Fset, file, pkg.TypesInfo, logger)
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if !ok || fd.Body == nil {
					continue
				}
				g, err := l.LowerFunc(fd)
				if err != nil {
					return nil, fmt.Errorf("in %s: %w", p.Fset.Position(fd.Pos()), err)
				}
				res = append(res, Lowered{Pkg: pkg, Decl: fd, Graph: g})
			}
		}
	}
	return res, nil
}

// Directives represents the set of lines that carry an ignore directive.
type Directives map[DirectivePos]bool

// DirectivePos represents the position of a directive within a program.
type DirectivePos struct {
	Filename string
	Line     int
}

// NewDirectivePos creates a DirectivePos from a token.Position.
func NewDirectivePos(pos token.Position) DirectivePos {
	return DirectivePos{
		Filename: pos.Filename,
		Line:     pos.Line,
	}
}

// At returns true if the line of pos carries a directive.
func (d Directives) At(pos token.Position) bool {
	return d[NewDirectivePos(pos)]
}

// isIgnoreDirective returns true if c is a comment of the form `//flowcfg:ignore`.
func isIgnoreDirective(c *ast.Comment) bool {
	_, after, found := strings.Cut(c.Text, "flowcfg:")
	return found && strings.TrimSpace(after) == "ignore"
}

// findDirectives returns all the directives in files.
func findDirectives(files []*ast.File, fset *token.FileSet) Directives {
	res := make(Directives)
	for _, f := range files {
		for _, cg := range f.Comments {
			for _, c := range cg.List {
				pos := fset.Position(c.Pos())
				if pos.IsValid() && isIgnoreDirective(c) {
					res[NewDirectivePos(pos)] = true
				}
			}
		}
	}
	return res
}
