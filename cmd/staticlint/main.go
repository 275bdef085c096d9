// Staticlint запускает набор статических анализаторов проекта через multichecker.
//
// В набор входят:
//
//   - анализаторы golang.org/x/tools/go/analysis/passes;
//   - все анализаторы класса SA из staticcheck.io и выбранные проверки классов S, ST и QF;
//   - публичные анализаторы bodyclose, errcheck, nilerr и go-critic;
//   - osexit, запрещающий прямой вызов os.Exit в функции main пакета main.
//
// Запуск:
//
//	go build -o staticlint ./cmd/staticlint
//	./staticlint ./...
package main

import (
	"strings"

	gocritic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/gostaticanalysis/nilerr"
	"github.com/kisielk/errcheck/errcheck"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/appends"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/testinggoroutine"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/waitgroup"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/avc-dev/link-shortener/internal/analyzers/osexit"
)

// extraStaticChecks проверки staticcheck вне класса SA
var extraStaticChecks = map[string]bool{
	"S1008":  true, // упрощение возврата bool выражения
	"S1021":  true, // объединение объявления и присваивания
	"ST1005": true, // формат строк ошибок
	"ST1013": true, // константы net/http вместо чисел
	"QF1003": true, // switch вместо цепочки if-else
}

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		appends.Analyzer,
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		deepequalerrors.Analyzer,
		defers.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		ifaceassert.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		sigchanyzer.Analyzer,
		stdmethods.Analyzer,
		stringintconv.Analyzer,
		structtag.Analyzer,
		testinggoroutine.Analyzer,
		tests.Analyzer,
		timeformat.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
		waitgroup.Analyzer,

		bodyclose.Analyzer,
		errcheck.Analyzer,
		nilerr.Analyzer,
		gocritic.Analyzer,

		osexit.Analyzer,
	}

	for _, group := range [][]*lint.Analyzer{
		staticcheck.Analyzers,
		simple.Analyzers,
		stylecheck.Analyzers,
		quickfix.Analyzers,
	} {
		checks = append(checks, selectStaticChecks(group)...)
	}

	return checks
}

// selectStaticChecks оставляет все SA проверки и явно перечисленные остальные
func selectStaticChecks(group []*lint.Analyzer) []*analysis.Analyzer {
	var selected []*analysis.Analyzer
	for _, a := range group {
		name := a.Analyzer.Name
		if strings.HasPrefix(name, "SA") || extraStaticChecks[name] {
			selected = append(selected, a.Analyzer)
		}
	}
	return selected
}
