// Package osexit содержит анализатор, запрещающий прямой вызов os.Exit в функции main пакета main
package osexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const doc = "osexit reports direct os.Exit calls in main function of main package"

var Analyzer = &analysis.Analyzer{
	Name: "osexit",
	Doc:  doc,
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		// main, сгенерированный go test, лежит в кэше сборки
		if ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}
			reportExits(pass, fn)
		}
	}

	return nil, nil
}

func reportExits(pass *analysis.Pass, fn *ast.FuncDecl) {
	ast.Inspect(fn.Body, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		if isOSExit(pass.TypesInfo, call.Fun) {
			pass.Reportf(call.Pos(), "direct call to os.Exit in main function of main package")
		}
		return true
	})
}

// isOSExit распознаёт os.Exit по объекту типов, поэтому импорт под другим именем тоже ловится
func isOSExit(info *types.Info, expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	obj, ok := info.Uses[sel.Sel].(*types.Func)
	if !ok || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == "os" && obj.Name() == "Exit"
}
