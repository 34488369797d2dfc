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


package config

import (
	"go/types"
	"regexp"
)

// A CodeIdentifier identifies a function or method: the package declaring it, the name of the receiver type (empty
// for functions) and its name.
type CodeIdentifier struct {
	Package  string `yaml:"package"`
	Receiver string `yaml:"receiver"`
	Method   string `yaml:"method"`

	// This will not be part of the yaml config
	computedRegexs *codeIdentifierRegex
}

type codeIdentifierRegex struct {
	packageRegex  *regexp.Regexp
	receiverRegex *regexp.Regexp
	methodRegex   *regexp.Regexp
}

// CodeIdentifierOf returns the code identifier of the function f.
func CodeIdentifierOf(f *types.Func) CodeIdentifier {
	cid := CodeIdentifier{Method: f.Name()}
	if f.Pkg() != nil {
		cid.Package = f.Pkg().Path()
	}
	if sig, ok := f.Type().(*types.Signature); ok && sig.Recv() != nil {
		cid.Receiver = receiverName(sig.Recv().Type())
	}
	return cid
}

// receiverName returns the name of the type of a receiver, without pointer or type arguments
func receiverName(t types.Type) string {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	switch t := t.(type) {
	case *types.Named:
		return t.Obj().Name()
	default:
		return types.TypeString(t, func(*types.Package) string { return "" })
	}
}

// compileRegexes compiles the strings in the code identifier into regexes. It compiles all identifiers into regexes
// or none.
func compileRegexes(cid CodeIdentifier) CodeIdentifier {
	packageRegex, err := regexp.Compile(cid.Package)
	if err != nil {
		return cid
	}
	receiverRegex, err := regexp.Compile(cid.Receiver)
	if err != nil {
		return cid
	}
	methodRegex, err := regexp.Compile(cid.Method)
	if err != nil {
		return cid
	}
	cid.computedRegexs = &codeIdentifierRegex{
		packageRegex:  packageRegex,
		receiverRegex: receiverRegex,
		methodRegex:   methodRegex,
	}
	return cid
}

// equalOnNonEmptyFields returns true if each of the receiver's fields are either matched by the corresponding
// field of cidRef, or the cidRef's field is empty
func (cid CodeIdentifier) equalOnNonEmptyFields(cidRef CodeIdentifier) bool {
	if cidRef.computedRegexs != nil {
		return (cidRef.Package == "" || cidRef.computedRegexs.packageRegex.MatchString(cid.Package)) &&
			(cidRef.Receiver == "" || cidRef.computedRegexs.receiverRegex.MatchString(cid.Receiver)) &&
			(cidRef.Method == "" || cidRef.computedRegexs.methodRegex.MatchString(cid.Method))
	}
	return (cidRef.Package == "" || cid.Package == cidRef.Package) &&
		(cidRef.Receiver == "" || cid.Receiver == cidRef.Receiver) &&
		(cidRef.Method == "" || cid.Method == cidRef.Method)
}

func (cid CodeIdentifier) String() string {
	s := cid.Package + "."
	if cid.Receiver != "" {
		s += cid.Receiver + "."
	}
	return s + cid.Method
}
