package skein

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestObserve_HookOrder(t *testing.T) {
	c := newFixtureContainer(t)
	c.Singleton("Logger", "FileLogger")

	var events []string
	c.Observe(&FuncObserver{
		BeforeResolveFunc: func(id string) error {
			events = append(events, "before:"+id)

			return nil
		},
		AfterResolveFunc: func(id string, instance any, err error) error {
			events = append(events, "after:"+id)

			return nil
		},
	})

	_, err := c.Get("Logger")
	require.NoError(t, err)

	assert.Equal(t, []string{"before:Logger", "after:Logger"}, events)
}

func TestObserve_BeforeAbortsResolution(t *testing.T) {
	c := New()

	invocations := 0
	c.Bind("Cfg", FactoryOf(func() (any, error) {
		invocations++

		return "value", nil
	}))

	abort := errors.New("not today")
	c.Observe(&FuncObserver{
		BeforeResolveFunc: func(string) error { return abort },
	})

	_, err := c.Get("Cfg")

	assert.ErrorIs(t, err, abort)
	assert.Zero(t, invocations)
}

func TestObserve_AfterSeesFailure(t *testing.T) {
	c := New()

	var seen error
	c.Observe(&FuncObserver{
		AfterResolveFunc: func(id string, instance any, err error) error {
			seen = err

			return nil
		},
	})

	_, err := c.Get("Missing")
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, seen, &notFound)
}

func TestObserve_AfterReplacesResult(t *testing.T) {
	c := newFixtureContainer(t)
	c.Singleton("Logger", "FileLogger")

	replaced := errors.New("vetoed")
	c.Observe(&FuncObserver{
		AfterResolveFunc: func(string, any, error) error { return replaced },
	})

	_, err := c.Get("Logger")

	assert.ErrorIs(t, err, replaced)
}

func TestObserve_EntryPointsOnly(t *testing.T) {
	c := newFixtureContainer(t)
	c.Singleton("Logger", "FileLogger")

	var ids []string
	c.Observe(&FuncObserver{
		BeforeResolveFunc: func(id string) error {
			ids = append(ids, id)

			return nil
		},
	})

	_, err := c.Make("ReportService")
	require.NoError(t, err)

	// The recursive walk resolved Logger too, but hooks fire only at the
	// public entry point.
	assert.Equal(t, []string{"ReportService"}, ids)
}

func TestObserve_DirectFactoryBypassesHooks(t *testing.T) {
	c := New()

	var ids []string
	c.Observe(&FuncObserver{
		BeforeResolveFunc: func(id string) error {
			ids = append(ids, id)

			return nil
		},
		AfterResolveFunc: func(id string, instance any, err error) error {
			ids = append(ids, id)

			return nil
		},
	})

	// A direct Factory target carries no identifier, so no hook fires.
	got, err := c.Resolve(ValueFactory("v"))
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.Empty(t, ids)
}

func TestObserve_MultipleInOrder(t *testing.T) {
	c := newFixtureContainer(t)
	c.Singleton("Logger", "FileLogger")

	var order []string
	c.Observe(&FuncObserver{
		BeforeResolveFunc: func(string) error {
			order = append(order, "first")

			return nil
		},
	})
	c.Observe(&FuncObserver{
		BeforeResolveFunc: func(string) error {
			order = append(order, "second")

			return nil
		},
	})

	_, err := c.Get("Logger")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestLoggingObserver(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	c := newFixtureContainer(t)
	c.Singleton("Logger", "FileLogger")
	c.Observe(NewLoggingObserver(zap.New(core)))

	_, err := c.Get("Logger")
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("resolving").Len())
	assert.Equal(t, 1, logs.FilterMessage("resolved").Len())

	_, err = c.Get("Missing")
	require.Error(t, err)

	failed := logs.FilterMessage("resolution failed")
	require.Equal(t, 1, failed.Len())
	assert.Equal(t, "Missing", failed.All()[0].ContextMap()["abstract"])
}
