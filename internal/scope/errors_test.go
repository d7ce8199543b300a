package scope

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	resErr := &ResolutionError{Root: "com.example.missing"}
	assert.Equal(t, `scope root "com.example.missing" resolved to no types`, resErr.Error())

	readErr := &SourceReadError{Path: "/src/A.java", Err: fs.ErrPermission}
	assert.Contains(t, readErr.Error(), "/src/A.java")
	assert.True(t, errors.Is(readErr, fs.ErrPermission))

	patternErr := &PatternError{Expr: "(unclosed", Err: errors.New("missing closing )")}
	assert.Contains(t, patternErr.Error(), "(unclosed")
	assert.ErrorContains(t, patternErr, "missing closing )")
}
