package versions

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/matzehuels/depaudit/pkg/integrations"
	"github.com/matzehuels/depaudit/pkg/observability"
	"github.com/matzehuels/depaudit/pkg/pool"
	"github.com/matzehuels/depaudit/pkg/ranges"
)

// DefaultConcurrency is the number of registry lookups Prefetch runs at once.
const DefaultConcurrency = 10

// LatestSource looks up the latest published version of a package.
// Implementations return an error wrapping integrations.ErrNotFound when the
// package does not exist.
type LatestSource interface {
	Latest(ctx context.Context, name string) (string, error)
}

// Options configures a Checker.
type Options struct {
	Cache       *Cache               // Shared cache (default: a fresh one)
	Concurrency int                  // Parallel lookups in Prefetch (default: 10)
	Registry    string               // Registry name reported to hooks (default: "npm")
	Logger      func(string, ...any) // Lookup failure callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Cache == nil {
		opts.Cache = NewCache()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Registry == "" {
		opts.Registry = "npm"
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// VersionInfo pairs a declared range with the registry's latest version.
type VersionInfo struct {
	Package string `json:"package"`
	Current string `json:"current"`
	Latest  string `json:"latest"`
}

// Drift classifies how far Latest is ahead of Current.
func (v VersionInfo) Drift() ranges.Drift {
	return ranges.Classify(v.Current, v.Latest)
}

// Checker resolves latest versions through a LatestSource and a Cache.
// It is safe for concurrent use.
type Checker struct {
	source LatestSource
	opts   Options
}

// NewChecker creates a Checker querying source.
func NewChecker(source LatestSource, opts Options) *Checker {
	return &Checker{source: source, opts: opts.WithDefaults()}
}

// Cache returns the checker's cache.
func (c *Checker) Cache() *Cache { return c.opts.Cache }

// ClearCache drops every cached version.
func (c *Checker) ClearCache() {
	n := c.opts.Cache.Clear()
	observability.Cache().OnCacheClear(context.Background(), n)
}

// Prefetch resolves the latest version of every distinct name that is not
// cached yet, running at most Options.Concurrency lookups at a time.
// Failed lookups are skipped; Prefetch returns once all lookups settled.
func (c *Checker) Prefetch(ctx context.Context, names []string) {
	seen := make(map[string]bool, len(names))
	var todo []string
	for _, name := range names {
		if seen[name] || ranges.IsLocal(name) {
			continue
		}
		seen[name] = true
		if _, ok := c.opts.Cache.Get(name); !ok {
			todo = append(todo, name)
		}
	}
	if len(todo) == 0 {
		return
	}

	pool.Run(ctx, todo, c.opts.Concurrency, func(ctx context.Context, name string) {
		if r := c.lookup(ctx, name); r.status == observability.FetchFound {
			c.store(ctx, name, r.version)
		}
	})
}

// CheckVersions returns the latest version of each dependency in deps
// (name to declared range), sorted by name. Local ranges are skipped and
// dependencies without a known latest version are omitted. Names missing
// from the cache are looked up one at a time.
func (c *Checker) CheckVersions(ctx context.Context, deps map[string]string) []VersionInfo {
	var results []VersionInfo
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		current := deps[name]
		if ranges.IsLocal(current) {
			continue
		}

		latest, ok := c.opts.Cache.Get(name)
		if ok {
			observability.Cache().OnCacheHit(ctx, name)
		} else {
			observability.Cache().OnCacheMiss(ctx, name)
			r := c.lookup(ctx, name)
			if r.status != observability.FetchFound {
				continue
			}
			latest = r.version
			c.store(ctx, name, latest)
		}

		results = append(results, VersionInfo{Package: name, Current: current, Latest: latest})
	}
	return results
}

func (c *Checker) store(ctx context.Context, name, version string) {
	c.opts.Cache.Set(name, version)
	observability.Cache().OnCacheSet(ctx, name, version)
}

// result is the outcome of one registry lookup.
type result struct {
	status  observability.FetchStatus
	version string
	err     error
}

func (c *Checker) lookup(ctx context.Context, name string) result {
	hooks := observability.Registry()
	hooks.OnFetchStart(ctx, c.opts.Registry, name)
	start := time.Now()

	r := c.fetch(ctx, name)

	hooks.OnFetchComplete(ctx, c.opts.Registry, name, r.status, time.Since(start), r.err)
	if r.err != nil {
		c.opts.Logger("latest %s: %s: %v", name, r.status, r.err)
	}
	return r
}

func (c *Checker) fetch(ctx context.Context, name string) result {
	version, err := c.source.Latest(ctx, name)
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		return result{status: observability.FetchNotFound, err: err}
	case err != nil:
		return result{status: observability.FetchFailed, err: err}
	case version == "":
		return result{status: observability.FetchNotFound, err: integrations.ErrNotFound}
	default:
		return result{status: observability.FetchFound, version: version}
	}
}
