// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package looks up the version tagged "latest" for a package in the
// npm registry (https://registry.npmjs.org by default). It requests the
// abbreviated per-tag document:
//
//	GET <base>/<encoded name>/latest
//	Accept: application/json
//
// and reads its "version" field. Scoped names are percent-encoded the way
// encodeURIComponent does it: "@babel/core" is requested as
// "%40babel%2Fcore".
//
// # Usage
//
//	client := npm.NewClient("", integrations.Options{Timeout: 5 * time.Second})
//	latest, err := client.Latest(ctx, "express")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // unpublished or private package
//	}
//
// [Client] satisfies the LatestSource interface of the versions package.
package npm
