package main

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// NoPrintAnalyzer запрещает fmt.Print* и log.Print* вне пакета main.
// Библиотечный код сервиса пишет в лог через zap, а не в stdout.
// Тестовые файлы не проверяются: Example-функции печатают в stdout.
var NoPrintAnalyzer = &analysis.Analyzer{
	Name:     "noprint",
	Doc:      "prohibits fmt.Print* and log.Print* calls outside of main packages; use zap logger instead",
	Run:      runNoPrintCheck,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var printFuncs = map[string]bool{
	"Print":   true,
	"Printf":  true,
	"Println": true,
}

func runNoPrintCheck(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		if strings.HasSuffix(pass.Fset.File(call.Pos()).Name(), "_test.go") {
			return
		}
		pkg, name := calledFunc(pass, call)
		if !printFuncs[name] {
			return
		}
		switch pkg {
		case "fmt":
			pass.Reportf(call.Pos(), "fmt.%s writes to stdout; use the zap logger", name)
		case "log":
			pass.Reportf(call.Pos(), "log.%s bypasses structured logging; use the zap logger", name)
		}
	})

	return nil, nil
}
