package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLoader is the in-memory resource loader used by the package tests.
// It serves canned payloads keyed by the request path and counts the
// fetches per path.
type testLoader struct {
	collections map[string][]interface{}
	resources   map[string]map[string]interface{}
	fetches     map[string]int
	lastParams  map[string]Params
}

func newTestLoader() *testLoader {
	return &testLoader{
		collections: map[string][]interface{}{},
		resources:   map[string]map[string]interface{}{},
		fetches:     map[string]int{},
		lastParams:  map[string]Params{},
	}
}

// FetchCollection implements ResourceLoader interface.
func (l *testLoader) FetchCollection(_ context.Context, model *ModelStruct, path string, params Params) (*Collection, error) {
	l.fetches[path]++
	l.lastParams[path] = params
	return model.NewCollection(l.collections[path])
}

// FetchResource implements ResourceLoader interface.
func (l *testLoader) FetchResource(_ context.Context, model *ModelStruct, path string, params Params) (*Record, error) {
	l.fetches[path]++
	l.lastParams[path] = params
	raw, ok := l.resources[path]
	if !ok {
		return nil, nil
	}
	return model.NewRecord(raw)
}

func (l *testLoader) totalFetches() int {
	var total int
	for _, count := range l.fetches {
		total += count
	}
	return total
}

// testingModelMap creates the model map backed by the in-memory loader.
func testingModelMap(t *testing.T) (*ModelMap, *testLoader) {
	t.Helper()

	loader := newTestLoader()
	m := NewModelMap(nil)
	m.SetDefaultResource(loader)
	return m, loader
}

func registerTestModel(t *testing.T, m *ModelMap, name string, options ...ModelOption) *ModelStruct {
	t.Helper()

	mStruct, err := m.RegisterModel(name, options...)
	require.NoError(t, err)
	return mStruct
}
