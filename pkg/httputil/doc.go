// Package httputil provides HTTP helpers shared by registry clients.
//
// [Retry] re-runs a request while it fails with a [RetryableError],
// sleeping between attempts on an exponential schedule:
//
//	err := httputil.Retry(ctx, 3, 200*time.Millisecond, func() error {
//	    return client.Get(ctx, url, &doc)
//	})
//
// Clients decide what is transient by wrapping it: connection failures and
// 5xx responses are retryable, a 404 is not.
package httputil
