package skein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestVerify_EmptyContainer(t *testing.T) {
	c := New()

	assert.NoError(t, c.Verify())
}

func TestVerify_ValidGraph(t *testing.T) {
	c := newFixtureContainer(t)
	c.Singleton("Logger", "FileLogger")
	c.Bind("ReportService", nil)
	c.Bind("MemStore", nil)
	c.Bind("Repo", ValueFactory(&memStore{driver: "pg"}))

	assert.NoError(t, c.Verify())
	assert.Empty(t, c.ResolvedInstances())
}

func TestVerify_InstanceNeedsNoDescriptor(t *testing.T) {
	c := New()
	c.Instance("Config", &memStore{driver: "pg"})

	assert.NoError(t, c.Verify())
}

func TestVerify_MissingDescriptor(t *testing.T) {
	c := New()
	c.Bind("Cache", "RedisCache")

	err := c.Verify()

	assert.ErrorContains(t, err, "no descriptor registered")
}

func TestVerify_AbstractTarget(t *testing.T) {
	c := newFixtureContainer(t)
	c.Bind("Log", "Logger")

	err := c.Verify()

	assert.ErrorContains(t, err, "not instantiable")
}

func TestVerify_NilFactory(t *testing.T) {
	c := New()
	c.Bind("Broken", Factory{})

	err := c.Verify()

	assert.ErrorContains(t, err, "factory has no function")
}

func TestVerify_BuiltInWithoutDefault(t *testing.T) {
	c := New()
	err := c.RegisterType(Descriptor{
		Name:   "StrictStore",
		Params: []Param{Primitive("string")},
		New: func(args []any) (any, error) {
			return &memStore{driver: args[0].(string)}, nil
		},
	})
	require.NoError(t, err)

	c.Bind("StrictStore", nil)

	err = c.Verify()

	assert.ErrorContains(t, err, "built-in type")
}

func TestVerify_UnboundDependency(t *testing.T) {
	c := New()
	err := c.RegisterType(Descriptor{
		Name:   "Service",
		Params: []Param{Dep("Metrics")},
		New:    func([]any) (any, error) { return struct{}{}, nil },
	})
	require.NoError(t, err)

	c.Bind("Service", nil)

	err = c.Verify()

	assert.ErrorContains(t, err, "no binding or descriptor for dependency")
}

func TestVerify_UnboundDependencyWithDefault(t *testing.T) {
	c := New()
	err := c.RegisterType(Descriptor{
		Name:   "Service",
		Params: []Param{DepDefault("Metrics", nil)},
		New:    func([]any) (any, error) { return struct{}{}, nil },
	})
	require.NoError(t, err)

	c.Bind("Service", nil)

	assert.NoError(t, c.Verify())
}

func TestVerify_DescribedUnboundDependency(t *testing.T) {
	c := newFixtureContainer(t)
	// ReportService depends on the described but unbound Logger, which
	// Verify follows and flags as non-instantiable.
	c.Bind("ReportService", nil)

	err := c.Verify()

	assert.ErrorContains(t, err, "not instantiable")
}

func TestVerify_Cycle(t *testing.T) {
	c := New()
	err := c.RegisterTypes(
		Descriptor{
			Name:   "CycleA",
			Params: []Param{Dep("CycleB")},
			New:    func([]any) (any, error) { return struct{}{}, nil },
		},
		Descriptor{
			Name:   "CycleB",
			Params: []Param{Dep("CycleA")},
			New:    func([]any) (any, error) { return struct{}{}, nil },
		},
	)
	require.NoError(t, err)

	c.Bind("CycleA", nil)
	c.Bind("CycleB", nil)

	err = c.Verify()

	assert.ErrorContains(t, err, "circular dependency detected")
}

func TestVerify_AggregatesAllFindings(t *testing.T) {
	c := New()
	c.Bind("Cache", "RedisCache")
	c.Bind("Queue", "AmqpQueue")

	err := c.Verify()
	require.Error(t, err)

	assert.Len(t, multierr.Errors(err), 2)
}
