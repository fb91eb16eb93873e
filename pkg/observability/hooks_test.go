package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRegistryHooks{}
	r.OnFetchStart(ctx, "npm", "react")
	r.OnFetchComplete(ctx, "npm", "react", FetchFound, time.Second, nil)
	r.OnFetchComplete(ctx, "npm", "left-pad9000", FetchNotFound, time.Second, errors.New("not found"))

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "react")
	c.OnCacheMiss(ctx, "vue")
	c.OnCacheSet(ctx, "react", "18.2.0")
	c.OnCacheClear(ctx, 3)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "registry.npmjs.org", "/react/latest")
	h.OnResponse(ctx, "GET", "registry.npmjs.org", "/react/latest", 200, time.Second)
	h.OnError(ctx, "GET", "registry.npmjs.org", "/react/latest", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Registry().(NoopRegistryHooks); !ok {
		t.Error("Registry() should return NoopRegistryHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customRegistry := &testRegistryHooks{}
	SetRegistryHooks(customRegistry)
	if Registry() != customRegistry {
		t.Error("SetRegistryHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Registry().(NoopRegistryHooks); !ok {
		t.Error("Reset() should restore NoopRegistryHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRegistryHooks{}
	SetRegistryHooks(custom)
	SetRegistryHooks(nil)

	if Registry() != custom {
		t.Error("SetRegistryHooks(nil) should be ignored")
	}
}

type testRegistryHooks struct{ NoopRegistryHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
