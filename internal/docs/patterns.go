package docs

import "regexp"

// SymbolMatcher finds one kind of symbol declaration in source text using a
// single regular expression with one capture group for the symbol name.
type SymbolMatcher struct {
	name       string
	expression *regexp.Regexp
}

func newSymbolMatcher(name string, pattern string) SymbolMatcher {
	return SymbolMatcher{name: name, expression: regexp.MustCompile(pattern)}
}

// Name returns a short label for the matcher.
func (matcher SymbolMatcher) Name() string {
	return matcher.name
}

// Match returns the captured symbol names in order of appearance. Duplicates are kept.
func (matcher SymbolMatcher) Match(content string) []string {
	submatches := matcher.expression.FindAllStringSubmatch(content, -1)
	names := make([]string, 0, len(submatches))
	for _, submatch := range submatches {
		names = append(names, submatch[1])
	}
	return names
}

var (
	// FunctionDeclarationMatcher captures `function name(`.
	FunctionDeclarationMatcher = newSymbolMatcher("function", `\bfunction\s+(`+identifierExpression+`)\s*\(`)
	// ClassDeclarationMatcher captures `class Name {` and `class Name<T> {`.
	ClassDeclarationMatcher = newSymbolMatcher("class", `\bclass\s+(`+identifierExpression+`)\s*[<{]`)
	// ExportedBindingMatcher captures names exported with `export [default] class|function|const|let|var`.
	ExportedBindingMatcher = newSymbolMatcher("export", `\bexport\s+(?:default\s+)?(?:class|function|const|let|var)\s+(`+identifierExpression+`)`)
	// ArrowFunctionMatcher captures `const name = (...) =>` with a parameter list of at most 100 characters.
	ArrowFunctionMatcher = newSymbolMatcher("arrow", `\b(?:const|let|var)\s+(`+identifierExpression+`)\s*=\s*(?:async\s*)?\([^)]{0,100}\)\s*=>`)
	// MethodSignatureMatcher captures indented `name(...) {` lines. It also matches
	// control statements such as `if (ready) {`.
	MethodSignatureMatcher = newSymbolMatcher("method", `(?m)^\s+(`+identifierExpression+`)\s*\([^)]*\)\s*\{`)
)

// DefaultSymbolMatchers returns the matchers applied to every recognized source file.
func DefaultSymbolMatchers() []SymbolMatcher {
	return []SymbolMatcher{
		FunctionDeclarationMatcher,
		ClassDeclarationMatcher,
		ExportedBindingMatcher,
		ArrowFunctionMatcher,
		MethodSignatureMatcher,
	}
}
