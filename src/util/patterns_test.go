package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"javasmells/src/config"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/generated/**", "src/generated/Foo.java", true},
		{"**/generated/**", "generated/Foo.java", true},
		{"**/generated/**", "src/main/Foo.java", false},
		{"**/*Test.java", "src/test/FooTest.java", true},
		{"**/*Test.java", "FooTest.java", true},
		{"**/*Test.java", "src/Foo.java", false},
		{"build/**", "build/classes/A.java", true},
		{"build/**", "src/build.java", false},
		{"*.java", "src/main/Foo.java", true},
		{"*.kt", "src/main/Foo.java", false},
		{"src/?.java", "src/A.java", true},
		{"**/generated/**", "/tmp/work/generated/Stub.java", true},
		{"**/{target,build}/**", "module/build/A.java", true},
		{"**/*.{kt,groovy}", "src/Foo.java", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"|"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchGlob(tt.pattern, tt.path))
		})
	}
}

func TestExclusionMatcher(t *testing.T) {
	m := NewExclusionMatcher(config.ExclusionsConfig{
		FilePatterns: []string{"**/target/**"},
		Files:        []string{"./legacy/Old.java"},
	})

	assert.True(t, m.Matches("legacy/Old.java"))
	assert.True(t, m.Matches("module/target/gen/A.java"))
	assert.False(t, m.Matches("src/main/App.java"))
	assert.True(t, m.Matches("/abs/module/target/A.java"))
}
