package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depaudit/internal/config"
	"github.com/matzehuels/depaudit/pkg/ranges"
	"github.com/matzehuels/depaudit/pkg/workspace"
)

func (c *CLI) peersCommand() *cobra.Command {
	var common commonFlags
	var pf peerFlags

	cmd := &cobra.Command{
		Use:   "peers [dir]",
		Short: "Report missing and incompatible peer dependencies",
		Long: `Check the peerDependencies of every workspace member against the
dependencies it declares itself and those of the workspace root.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.load(dirArg(args), common, func(cfg *config.Config) { pf.apply(cmd, cfg) })
			if err != nil {
				return err
			}
			report := c.newReport(t)
			c.runPeers(t, report)
			return c.finish(report, common, func() { renderPeers(c.Out, report.Peers) })
		},
	}
	common.register(cmd)
	pf.register(cmd)
	return cmd
}

func (c *CLI) outdatedCommand() *cobra.Command {
	var common commonFlags
	var vf versionFlags

	cmd := &cobra.Command{
		Use:   "outdated [dir]",
		Short: "Compare declared versions with the latest on the registry",
		Long: `Look up the latest published version of every dependency and
devDependency in the workspace and list those that are behind.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.load(dirArg(args), common, func(cfg *config.Config) { vf.apply(cmd, cfg) })
			if err != nil {
				return err
			}
			report := c.newReport(t)
			c.runOutdated(cmd.Context(), t, report, vf.all, !common.json)
			return c.finish(report, common, func() { renderOutdated(c.Out, report.Outdated) })
		},
	}
	common.register(cmd)
	vf.register(cmd)
	return cmd
}

func (c *CLI) checkCommand() *cobra.Command {
	var common commonFlags
	var pf peerFlags
	var vf versionFlags
	var offline bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Run the peer and version checks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.load(dirArg(args), common, func(cfg *config.Config) {
				pf.apply(cmd, cfg)
				vf.apply(cmd, cfg)
			})
			if err != nil {
				return err
			}
			report := c.newReport(t)
			c.runPeers(t, report)
			if !offline {
				c.runOutdated(cmd.Context(), t, report, vf.all, !common.json)
			}
			return c.finish(report, common, func() {
				renderPeers(c.Out, report.Peers)
				if !offline {
					fmt.Fprintln(c.Out)
					renderOutdated(c.Out, report.Outdated)
				}
			})
		},
	}
	common.register(cmd)
	pf.register(cmd)
	vf.register(cmd)
	cmd.Flags().BoolVar(&offline, "offline", false, "skip the registry lookups")
	return cmd
}

// =============================================================================
// Check Runners
// =============================================================================

func (c *CLI) newReport(t *target) *Report {
	names := make([]string, len(t.packages))
	for i, p := range t.packages {
		names[i] = p.Name
	}
	return &Report{Workspace: t.ws.Dir, Packages: names}
}

func (c *CLI) runPeers(t *target, report *Report) {
	report.Peers = t.peerChecker().Check(t.packages, &t.ws.Root)
	c.Logger.Debug("peer check done", "packages", len(t.packages), "issues", len(report.Peers))
}

func (c *CLI) runOutdated(ctx context.Context, t *target, report *Report, all, spin bool) {
	scope := versionScope(t)
	var names []string
	for _, p := range scope {
		for name, rng := range p.DeclaredDependencies() {
			if !ranges.IsLocal(rng) {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	names = slices.Compact(names)

	checker := t.versionChecker(c.Logger)
	prog := newProgress(c.Logger)

	var spinner *Spinner
	if spin {
		spinner = newSpinner(ctx, c.Status, fmt.Sprintf("Fetching latest versions from %s", t.cfg.Registry.URL))
		spinner.Start()
	}
	checker.Prefetch(ctx, names)
	if spinner != nil {
		spinner.Stop()
	}
	prog.done("Fetched latest versions", "requested", len(names), "found", checker.Cache().Len())

	for _, p := range scope {
		for _, v := range checker.CheckVersions(ctx, p.DeclaredDependencies()) {
			entry := newOutdatedEntry(p.Name, v)
			if all || entry.Drift.Outdated() {
				report.Outdated = append(report.Outdated, entry)
			}
		}
	}
}

// versionScope returns the packages whose dependencies are compared with the
// registry: the root (once) followed by the selected members.
func versionScope(t *target) []workspace.PackageInfo {
	if len(t.ws.Members) == 0 {
		return t.packages
	}
	return append([]workspace.PackageInfo{t.ws.Root}, t.packages...)
}

// finish prints the report and applies --fail.
func (c *CLI) finish(report *Report, flags commonFlags, render func()) error {
	if flags.json {
		if err := writeJSON(c.Out, report); err != nil {
			return err
		}
	} else {
		render()
	}
	if flags.fail && report.IssueCount() > 0 {
		return ErrIssuesFound
	}
	return nil
}
