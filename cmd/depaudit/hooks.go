package main

import (
	"context"
	"time"

	"github.com/matzehuels/depaudit/internal/cli"
	"github.com/matzehuels/depaudit/pkg/observability"
)

// httpLogger traces registry requests at debug level.
type httpLogger struct {
	cli *cli.CLI
}

func (h httpLogger) OnRequest(context.Context, string, string, string) {}

func (h httpLogger) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.cli.Logger.Debug("http", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h httpLogger) OnError(_ context.Context, method, host, path string, err error) {
	h.cli.Logger.Debug("http", "method", method, "host", host, "path", path, "err", err)
}

var _ observability.HTTPHooks = httpLogger{}
