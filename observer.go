package skein

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Observer provides hooks around container resolutions. Observers can be
// used for logging, metrics, or testing. Hooks fire on public entry points
// only, never inside the recursive dependency walk.
type Observer interface {
	// BeforeResolve is called before resolving an identifier. Returning an
	// error aborts the resolution.
	BeforeResolve(id string) error

	// AfterResolve is called after resolving an identifier, whether or not
	// resolution succeeded. Returning an error replaces the result.
	AfterResolve(id string, instance any, err error) error
}

// observerChain fans hooks out to every registered observer.
type observerChain struct {
	mu        sync.RWMutex
	observers []Observer
}

func newObserverChain() *observerChain {
	return &observerChain{}
}

func (o *observerChain) add(obs Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.observers = append(o.observers, obs)
}

func (o *observerChain) beforeResolve(id string) error {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, obs := range o.observers {
		if err := obs.BeforeResolve(id); err != nil {
			return err
		}
	}

	return nil
}

func (o *observerChain) afterResolve(id string, instance any, err error) error {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, obs := range o.observers {
		if obsErr := obs.AfterResolve(id, instance, err); obsErr != nil {
			return obsErr
		}
	}

	return nil
}

// Observe adds an observer to the container. Observers are called in the
// order they were added. Hooks fire for identifier resolutions only;
// resolving a Factory value directly goes through no hook because there is
// no identifier to report.
func (c *Skein) Observe(obs Observer) {
	c.observers.add(obs)
}

// FuncObserver wraps functions as an Observer.
type FuncObserver struct {
	BeforeResolveFunc func(id string) error
	AfterResolveFunc  func(id string, instance any, err error) error
}

// BeforeResolve implements Observer.
func (f *FuncObserver) BeforeResolve(id string) error {
	if f.BeforeResolveFunc != nil {
		return f.BeforeResolveFunc(id)
	}

	return nil
}

// AfterResolve implements Observer.
func (f *FuncObserver) AfterResolve(id string, instance any, err error) error {
	if f.AfterResolveFunc != nil {
		return f.AfterResolveFunc(id, instance, err)
	}

	return nil
}

// LoggingObserver logs every resolution through a zap logger. Successful
// resolutions log at debug level, failures at warn.
type LoggingObserver struct {
	Log *zap.Logger
}

// NewLoggingObserver creates a LoggingObserver backed by log.
func NewLoggingObserver(log *zap.Logger) *LoggingObserver {
	return &LoggingObserver{Log: log}
}

// BeforeResolve implements Observer.
func (o *LoggingObserver) BeforeResolve(id string) error {
	o.Log.Debug("resolving", zap.String("abstract", id))

	return nil
}

// AfterResolve implements Observer.
func (o *LoggingObserver) AfterResolve(id string, instance any, err error) error {
	if err != nil {
		o.Log.Warn("resolution failed", zap.String("abstract", id), zap.Error(err))

		return nil
	}

	o.Log.Debug("resolved",
		zap.String("abstract", id),
		zap.String("type", fmt.Sprintf("%T", instance)))

	return nil
}
