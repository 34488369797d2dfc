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


package main

import (
	"flag"
	"fmt"
	"go/build"
	"go/token"
	"os"

	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/flow"
	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/lower"
	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
	"github.com/awslabs/ar-go-flowcfg/analysis/config"
	ftu "github.com/awslabs/ar-go-flowcfg/internal/formatutil"
	"golang.org/x/tools/go/buildutil"
)

// flags
var (
	configPath = ""
	equalFlag  = false
	statsFlag  = false
	platform   = ""
)

func init() {
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.BoolVar(&equalFlag, "equal", false, "group structurally equal invocations across the program")
	flag.BoolVar(&statsFlag, "stats", false, "print the number of nodes of each kind")
	flag.StringVar(&platform, "os", "", "platform (GOOS) the packages are loaded for")
	flag.Var((*buildutil.TagsFlag)(&build.Default.BuildTags), "tags", buildutil.TagsFlagDoc)
}

const usage = `Print the method invocation nodes of your Go packages.

Usage:
  flowcfg [options] package...
  flowcfg [options] source.go

Use the -help flag to display the options.

Examples:
% flowcfg -equal ./...
% flowcfg -config config.yaml -stats hello.go
`

func main() {
	if err := doMain(); err != nil {
		fmt.Fprintf(os.Stderr, "flowcfg: %s\n", err)
		os.Exit(1)
	}
}

func doMain() error {
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.NewDefault()
	if configPath != "" {
		var err error
		config.SetGlobalConfig(configPath)
		cfg, err = config.LoadGlobal()
		if err != nil {
			return err
		}
	}
	if cfg.NoColor {
		ftu.SetColor(false)
	}
	logger := config.NewLogGroup(cfg)

	logger.Infof("%s\n", ftu.Faint("Reading sources"))
	program, err := lower.Load(cfg, platform, build.Default.BuildTags, flag.Args())
	if err != nil {
		return err
	}

	logger.Infof("%s\n", ftu.Faint("Lowering functions"))
	functions, err := program.LowerAll(logger)
	if err != nil {
		return err
	}

	var invocations []*node.MethodInvocationNode
	stats := flow.NewStats()
	for _, f := range functions {
		fmt.Printf("%s %s\n", ftu.Bold(f.Pkg.PkgPath+"."+f.Graph.Name), ftu.Faint(program.Fset.Position(f.Decl.Pos())))
		for _, n := range f.Graph.Nodes() {
			inv, ok := n.(*node.MethodInvocationNode)
			if !ok || (cfg.SkipSynthetic && node.IsSynthetic(inv)) {
				continue
			}
			invocations = append(invocations, inv)
			line := fmt.Sprintf("  %s %s : %s", ftu.Faint(position(program.Fset, inv)), inv, inv.Type())
			if inv.TypeMismatch() {
				line += " " + ftu.Red("(type mismatch)")
			}
			fmt.Println(line)
		}
		stats.AddGraph(f.Graph)
	}

	if equalFlag {
		printEqual(program.Fset, cfg, invocations)
	}
	if statsFlag {
		fmt.Println(ftu.Bold("Statistics"))
		stats.Fprint(os.Stdout)
	}
	return nil
}

// printEqual prints the classes of equal invocations that have more than one occurrence
func printEqual(fset *token.FileSet, cfg *config.Config, invocations []*node.MethodInvocationNode) {
	fmt.Println(ftu.Bold("Equal invocations"))
	for _, class := range flow.GroupEqual(invocations) {
		if len(class) < 2 {
			continue
		}
		reuse := ftu.Yellow("facts not shared")
		if flow.IsReusable(cfg, class[0]) {
			reuse = ftu.Green("facts shared")
		}
		fmt.Printf("  %s (%d occurrences, %s)\n", class[0], len(class), reuse)
		for _, inv := range class {
			fmt.Printf("    %s\n", ftu.Faint(position(fset, inv)))
		}
	}
}

func position(fset *token.FileSet, n node.Node) string {
	if tree, ok := n.Tree().Get(); ok {
		return fset.Position(tree.Pos()).String()
	}
	return "<synthetic>"
}
