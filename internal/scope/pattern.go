package scope

import "regexp"

// CompilePattern compiles a user-supplied selection or blacklist pattern.
// Patterns match whole names: the expression is anchored before compiling,
// so "name" selects only a member named exactly "name", not "nickname".
// A failure to compile yields a *PatternError carrying the original
// expression.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}

	return re, nil
}
