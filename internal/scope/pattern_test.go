package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePatternMatchesWholeNames(t *testing.T) {
	re, err := CompilePattern("name")
	require.NoError(t, err)

	assert.True(t, re.MatchString("name"))
	assert.False(t, re.MatchString("nickname"))
	assert.False(t, re.MatchString("names"))

	re, err = CompilePattern(`com\.example\.(Foo|Bar)`)
	require.NoError(t, err)

	assert.True(t, re.MatchString("com.example.Foo"))
	assert.True(t, re.MatchString("com.example.Bar"))
	assert.False(t, re.MatchString("com.example.FooBar"))
	assert.False(t, re.MatchString("x.com.example.Foo"))
}

func TestCompilePatternReportsOriginalExpression(t *testing.T) {
	_, err := CompilePattern("(unclosed")
	require.Error(t, err)

	var patternErr *PatternError
	require.True(t, errors.As(err, &patternErr))
	assert.Equal(t, "(unclosed", patternErr.Expr)
}
