package skein

// instanceCache is the resolved-instance store, split by lifecycle:
// singleton instances are write-once per key, while the transient side holds
// only the most recently created instance per key and exists solely to feed
// the fast construction path.
type instanceCache struct {
	singletons    map[string]any
	lastTransient map[string]any
}

func newInstanceCache() *instanceCache {
	return &instanceCache{
		singletons:    make(map[string]any),
		lastTransient: make(map[string]any),
	}
}

// storeSingleton records v as the canonical instance for key. A populated
// singleton key is never overwritten.
func (ic *instanceCache) storeSingleton(key string, v any) {
	if _, ok := ic.singletons[key]; !ok {
		ic.singletons[key] = v
	}
}

// replaceSingleton records v unconditionally. Used by explicit Instance
// registration, which is allowed to displace an earlier value.
func (ic *instanceCache) replaceSingleton(key string, v any) {
	ic.singletons[key] = v
}

// storeTransient records the most recent transient instance for key.
func (ic *instanceCache) storeTransient(key string, v any) {
	ic.lastTransient[key] = v
}

// storeFor dispatches on the binding's lifecycle.
func (ic *instanceCache) storeFor(key string, v any, singleton bool) {
	if singleton {
		ic.storeSingleton(key, v)
	} else {
		ic.storeTransient(key, v)
	}
}

func (ic *instanceCache) singleton(key string) (any, bool) {
	v, ok := ic.singletons[key]

	return v, ok
}

func (ic *instanceCache) transient(key string) (any, bool) {
	v, ok := ic.lastTransient[key]

	return v, ok
}

// lookup returns the cached instance for key from either side, singletons
// taking precedence.
func (ic *instanceCache) lookup(key string) (any, bool) {
	if v, ok := ic.singletons[key]; ok {
		return v, true
	}

	v, ok := ic.lastTransient[key]

	return v, ok
}

func (ic *instanceCache) has(key string) bool {
	_, ok := ic.lookup(key)

	return ok
}

// all returns the merged view of both sides, singletons winning on key
// collisions.
func (ic *instanceCache) all() map[string]any {
	out := make(map[string]any, len(ic.singletons)+len(ic.lastTransient))
	for k, v := range ic.lastTransient {
		out[k] = v
	}

	for k, v := range ic.singletons {
		out[k] = v
	}

	return out
}

// HasResolved reports whether an instance has been cached for id.
func (c *Skein) HasResolved(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cache.has(id)
}

// GetResolved returns the cached instance for id, or nil if none exists. For
// singleton bindings this is the canonical instance; for transient bindings
// it is the most recently created one.
func (c *Skein) GetResolved(id string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, _ := c.cache.lookup(id)

	return v
}

// ResolvedInstances returns a copy of the whole resolved-instance cache.
func (c *Skein) ResolvedInstances() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cache.all()
}
