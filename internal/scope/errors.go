package scope

import "fmt"

// ResolutionError reports a scope root that resolved to zero types. It is
// fatal for the whole generation run: no partial model is ever produced.
type ResolutionError struct {
	Root string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("scope root %q resolved to no types", e.Root)
}

// SourceReadError reports a failure reading type metadata from disk. The
// underlying error is propagated unchanged.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// PatternError reports an inclusion, exclusion or blacklist pattern that
// failed to compile. It is fatal at first use.
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
