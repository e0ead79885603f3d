package yaegi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderedSuite = `package suite

func Register(add func(name, description string, run func(call func(name string, args ...interface{}) (interface{}, error)) (string, error))) {
	add("first", "first declared case", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		return "", nil
	})
	add("second", "second declared case", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		return "always fails", nil
	})
	add("third", "", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		return "", nil
	})
}
`

func TestSuiteLoader_LoadSuite(t *testing.T) {
	loader := NewSuiteLoader(NewLoader())

	t.Run("enumerates cases in registration order", func(t *testing.T) {
		path := writeSource(t, "suite.go", orderedSuite)

		suite, err := loader.LoadSuite(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, suite.Cases, 3)

		assert.Equal(t, "first", suite.Cases[0].Name)
		assert.Equal(t, "second", suite.Cases[1].Name)
		assert.Equal(t, "third", suite.Cases[2].Name)
		assert.Equal(t, "first declared case", suite.Cases[0].Description)
		assert.Equal(t, "", suite.Cases[2].Description)
		assert.Equal(t, orderedSuite, suite.Source)
	})

	t.Run("registered cases are callable", func(t *testing.T) {
		path := writeSource(t, "suite.go", orderedSuite)

		suite, err := loader.LoadSuite(context.Background(), path)
		require.NoError(t, err)

		noop := func(name string, args ...interface{}) (interface{}, error) { return nil, nil }

		failure, err := suite.Cases[0].Run(noop)
		require.NoError(t, err)
		assert.Empty(t, failure)

		failure, err = suite.Cases[1].Run(noop)
		require.NoError(t, err)
		assert.Equal(t, "always fails", failure)
	})

	t.Run("fails when the suite does not export Register", func(t *testing.T) {
		path := writeSource(t, "suite.go", `package suite

func NotRegister() {}
`)
		_, err := loader.LoadSuite(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Register")
	})

	t.Run("fails when Register has the wrong signature", func(t *testing.T) {
		path := writeSource(t, "suite.go", `package suite

func Register(names []string) {}
`)
		_, err := loader.LoadSuite(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected signature")
	})

	t.Run("fails when the suite source is invalid", func(t *testing.T) {
		path := writeSource(t, "suite.go", `package suite

func Register( {
`)
		_, err := loader.LoadSuite(context.Background(), path)
		require.Error(t, err)
	})
}
