package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSchemaName(t *testing.T) {
	name := GenerateSchemaName(t)
	assert.True(t, strings.HasPrefix(name, "test_testgenerateschemaname_"))
	assert.LessOrEqual(t, len(name), 63)
	assert.NotEqual(t, name, GenerateSchemaName(t))

	t.Run("Sub Test/With-Symbols and a very long descriptive name", func(t *testing.T) {
		name := GenerateSchemaName(t)
		assert.Regexp(t, `^test_[a-z0-9_]+_[0-9a-f]{8}$`, name)
		assert.LessOrEqual(t, len(name), 63)
	})
}

func TestAddSearchPathToConnString(t *testing.T) {
	assert.Equal(t, "postgres://h/db?search_path=s", AddSearchPathToConnString("postgres://h/db", "s"))
	assert.Equal(t, "postgres://h/db?sslmode=disable&search_path=s",
		AddSearchPathToConnString("postgres://h/db?sslmode=disable", "s"))
}
