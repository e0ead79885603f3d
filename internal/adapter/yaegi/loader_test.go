package yaegi

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("loads a module and resolves its symbols", func(t *testing.T) {
		path := writeSource(t, "alice.go", `package exam

func Greet(name string) string {
	return "hola " + name
}
`)
		mod, err := loader.Load(context.Background(), "exam", path)
		require.NoError(t, err)
		assert.Equal(t, "exam", mod.Name())
		assert.Contains(t, mod.Source(), "func Greet")

		v, err := mod.Lookup("Greet")
		require.NoError(t, err)
		greet, ok := v.Interface().(func(string) string)
		require.True(t, ok)
		assert.Equal(t, "hola ana", greet("ana"))
	})

	t.Run("wraps bare definitions under the requested namespace", func(t *testing.T) {
		path := writeSource(t, "bob.go", `func Double(n int) int { return n * 2 }`)

		mod, err := loader.Load(context.Background(), "exam", path)
		require.NoError(t, err)

		v, err := mod.Lookup("Double")
		require.NoError(t, err)
		double, ok := v.Interface().(func(int) int)
		require.True(t, ok)
		assert.Equal(t, 8, double(4))
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := loader.Load(context.Background(), "exam", filepath.Join(t.TempDir(), "nope.go"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read module source")
	})

	t.Run("fails on invalid source", func(t *testing.T) {
		path := writeSource(t, "broken.go", `package exam

func Broken( {
`)
		_, err := loader.Load(context.Background(), "exam", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to evaluate module")
	})

	t.Run("lookup of an undefined symbol fails", func(t *testing.T) {
		path := writeSource(t, "carla.go", `package exam

func Present() int { return 1 }
`)
		mod, err := loader.Load(context.Background(), "exam", path)
		require.NoError(t, err)

		_, err = mod.Lookup("Absent")
		require.Error(t, err)
	})

	t.Run("modules are isolated from each other", func(t *testing.T) {
		first := writeSource(t, "first.go", `package exam

func OnlyInFirst() int { return 1 }
`)
		second := writeSource(t, "second.go", `package exam

func OnlyInSecond() int { return 2 }
`)

		modA, err := loader.Load(context.Background(), "exam", first)
		require.NoError(t, err)
		modB, err := loader.Load(context.Background(), "exam", second)
		require.NoError(t, err)

		_, err = modB.Lookup("OnlyInFirst")
		assert.Error(t, err, "second module must not see symbols of the first")
		_, err = modA.Lookup("OnlyInSecond")
		assert.Error(t, err, "first module must not see symbols of the second")
	})
}
