package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantuml-generator/internal/classdiagram"
	"plantuml-generator/internal/descriptor"
	"plantuml-generator/internal/generator"
	"plantuml-generator/internal/scope"
)

const sampleYAML = `
language: java
source_path: ./src/main/java
scope_roots:
  - com.example.model
  - com.example.service
exclude_pattern: ".*Test$"
hide_classes:
  - com.example.model.Audit
hide_fields: true
remove_methods: true
field_blacklist: "^serialVersionUID$"
excluded_field_classifiers:
  - static
max_field_visibility: protected
simplify_names: true
direction: left to right direction
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, LanguageJava, cfg.Language)
	assert.Equal(t, "./src/main/java", cfg.SourcePath)
	assert.Equal(t, []string{"com.example.model", "com.example.service"}, cfg.ScopeRoots)
	assert.Equal(t, ".*Test$", cfg.ExcludePattern)
	assert.Equal(t, []string{"com.example.model.Audit"}, cfg.HideClasses)
	assert.True(t, cfg.HideFields)
	assert.False(t, cfg.HideMethods)
	assert.True(t, cfg.RemoveMethods)
	assert.Equal(t, "^serialVersionUID$", cfg.FieldBlacklist)
	assert.Equal(t, []string{"static"}, cfg.ExcludedFieldClassifiers)
	assert.Equal(t, "protected", cfg.MaxFieldVisibility)
	assert.True(t, cfg.SimplifyNames)
	assert.Equal(t, "left to right direction", cfg.Direction)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scope_roots: [com.example]"))
	require.NoError(t, err)

	assert.Equal(t, LanguageJava, cfg.Language)
	assert.Equal(t, ".", cfg.SourcePath)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("scope_roots: ["))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "roots strategy",
			cfg:  Config{Language: LanguageJava, ScopeRoots: []string{"com.example"}},
		},
		{
			name: "include strategy",
			cfg:  Config{Language: LanguageGo, IncludePattern: "^example.com/.*"},
		},
		{
			name:    "both strategies",
			cfg:     Config{Language: LanguageJava, ScopeRoots: []string{"a"}, IncludePattern: ".*"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "exclude with include",
			cfg:     Config{Language: LanguageJava, IncludePattern: ".*", ExcludePattern: ".*Test$"},
			wantErr: "scope_roots strategy only",
		},
		{
			name:    "no strategy",
			cfg:     Config{Language: LanguageJava},
			wantErr: "must be set",
		},
		{
			name:    "unknown language",
			cfg:     Config{Language: "kotlin", ScopeRoots: []string{"a"}},
			wantErr: "unknown language",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	cfg := Config{
		HideClasses:               []string{"com.example.A"},
		HideFields:                true,
		FieldBlacklist:            "internal.*",
		ExcludedMethodClassifiers: []string{"static", "abstract"},
		MaxMethodVisibility:       "public",
		Direction:                 "left to right direction",
	}

	opts, err := cfg.Compile()
	require.NoError(t, err)

	assert.Equal(t, []string{"com.example.A"}, opts.HideClasses)
	assert.True(t, opts.HideFields)
	assert.True(t, opts.FieldBlacklist.MatchString("internalState"))
	assert.False(t, opts.FieldBlacklist.MatchString("state"))
	assert.Nil(t, opts.MethodBlacklist)
	assert.True(t, opts.ExcludedMethodClassifiers[classdiagram.ClassifierStatic])
	assert.True(t, opts.ExcludedMethodClassifiers[classdiagram.ClassifierAbstract])
	assert.False(t, opts.ExcludedMethodClassifiers[classdiagram.ClassifierNone])
	require.NotNil(t, opts.MaxMethodVisibility)
	assert.Equal(t, classdiagram.VisibilityPublic, *opts.MaxMethodVisibility)
	assert.Nil(t, opts.MaxFieldVisibility)
	assert.Equal(t, "left to right direction", opts.Direction)
}

func TestCompileAnchorsPatterns(t *testing.T) {
	cfg := Config{FieldBlacklist: "name"}
	opts, err := cfg.Compile()
	require.NoError(t, err)

	// Patterns match whole names, never substrings.
	assert.True(t, opts.FieldBlacklist.MatchString("name"))
	assert.False(t, opts.FieldBlacklist.MatchString("nickname"))
	assert.False(t, opts.FieldBlacklist.MatchString("names"))

	// Top-level alternation stays grouped under the anchors.
	cfg = Config{MethodBlacklist: "toString|hashCode"}
	opts, err = cfg.Compile()
	require.NoError(t, err)

	assert.True(t, opts.MethodBlacklist.MatchString("hashCode"))
	assert.False(t, opts.MethodBlacklist.MatchString("rehashCode"))
}

func TestCompiledBlacklistKeepsPartialMatches(t *testing.T) {
	cfg := Config{FieldBlacklist: "name"}
	opts, err := cfg.Compile()
	require.NoError(t, err)

	types := []*descriptor.Type{{
		QualifiedName: "com.example.Person",
		SimpleName:    "Person",
		Fields: []descriptor.Field{
			{Name: "name", TypeName: "java.lang.String", Modifiers: descriptor.Modifiers{descriptor.ModPublic}},
			{Name: "nickname", TypeName: "java.lang.String", Modifiers: descriptor.Modifiers{descriptor.ModPublic}},
		},
	}}

	out := generator.New(opts).Generate(types)

	assert.NotContains(t, out, "\t{field} +name : String\n")
	assert.Contains(t, out, "\t{field} +nickname : String\n")
}

func TestCompileRejectsBadPattern(t *testing.T) {
	cfg := Config{MethodBlacklist: "(unclosed"}

	_, err := cfg.Compile()
	require.Error(t, err)

	var patternErr *scope.PatternError
	require.True(t, errors.As(err, &patternErr))
	assert.Equal(t, "(unclosed", patternErr.Expr)
}

func TestCompileRejectsUnknownNames(t *testing.T) {
	bad := Config{ExcludedFieldClassifiers: []string{"final"}}
	_, err := bad.Compile()
	assert.ErrorContains(t, err, "excluded_field_classifiers")

	bad = Config{MaxFieldVisibility: "package"}
	_, err = bad.Compile()
	assert.ErrorContains(t, err, "max_field_visibility")
}

func TestCriteria(t *testing.T) {
	cfg := Config{
		ScopeRoots:     []string{"com.example"},
		ExcludePattern: ".*Impl$",
	}

	assert.Equal(t, scope.Criteria{
		Roots:          []string{"com.example"},
		ExcludePattern: ".*Impl$",
	}, cfg.Criteria())
}
