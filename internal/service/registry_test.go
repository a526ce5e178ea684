package service

import (
	"context"
	"testing"

	"github.com/mathforge/mathforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	def      types.Service
	lastTool string
}

func (s *stubProvider) Definition() types.Service {
	return s.def
}

func (s *stubProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s.lastTool = toolID
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"tool": toolID},
	}, nil
}

func newStub(id string, category types.Category, description string, capabilities ...string) *stubProvider {
	return &stubProvider{def: types.Service{
		ID:           id,
		Name:         id,
		Description:  description,
		Category:     category,
		Capabilities: capabilities,
		Tools: []types.Tool{
			{ID: id + ".run", Name: "run", Description: "run " + id},
		},
	}}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	provider := newStub("primes", types.CategoryNumbers, "prime number tools")
	require.NoError(t, registry.Register(provider))

	got, ok := registry.Get("primes")
	assert.True(t, ok)
	assert.Equal(t, provider, got)

	_, ok = registry.Get("missing")
	assert.False(t, ok)

	registry.Unregister("primes")
	_, ok = registry.Get("primes")
	assert.False(t, ok)
}

func TestRegistryRejectsEmptyID(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(&stubProvider{})
	assert.Error(t, err)
}

func TestRegistryList(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(newStub("primes", types.CategoryNumbers, "prime number tools")))
	require.NoError(t, registry.Register(newStub("averages", types.CategoryStats, "descriptive statistics")))

	all := registry.List(nil)
	assert.Len(t, all, 2)

	category := types.CategoryStats
	filtered := registry.List(&category)
	require.Len(t, filtered, 1)
	assert.Equal(t, "averages", filtered[0].ID)
}

func TestRegistryDiscover(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(newStub("primes", types.CategoryNumbers, "prime number tools", "factorization")))
	require.NoError(t, registry.Register(newStub("averages", types.CategoryStats, "descriptive statistics", "percentiles")))

	results := registry.Discover("find prime factors of a number", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "primes", results[0].ID)

	// Limit caps the result count.
	results = registry.Discover("number statistics", 1)
	assert.LessOrEqual(t, len(results), 1)

	// Nothing matches an unrelated intent.
	results = registry.Discover("xyzzy", 5)
	assert.Empty(t, results)
}

func TestRegistryExecute(t *testing.T) {
	registry := NewRegistry()
	provider := newStub("primes", types.CategoryNumbers, "prime number tools")
	require.NoError(t, registry.Register(provider))

	ctx := context.Background()
	caller := "test"
	appCtx := &types.Context{CallerID: &caller}

	result, err := registry.Execute(ctx, "primes.run", map[string]interface{}{}, appCtx)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "primes.run", provider.lastTool)

	// Malformed tool ID.
	result, err = registry.Execute(ctx, "noseparator", nil, appCtx)
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)

	// Unknown service.
	result, err = registry.Execute(ctx, "ghost.run", nil, appCtx)
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
}

func TestRegistryStats(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(newStub("primes", types.CategoryNumbers, "prime number tools")))
	require.NoError(t, registry.Register(newStub("averages", types.CategoryStats, "descriptive statistics")))

	stats := registry.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])

	categories := stats["categories"].(map[string]int)
	assert.Equal(t, 1, categories[string(types.CategoryNumbers)])
	assert.Equal(t, 1, categories[string(types.CategoryStats)])
}
