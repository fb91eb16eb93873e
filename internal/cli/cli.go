// Package cli implements the depaudit command-line interface.
package cli

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depaudit/internal/config"
	"github.com/matzehuels/depaudit/pkg/buildinfo"
	deperrors "github.com/matzehuels/depaudit/pkg/errors"
	"github.com/matzehuels/depaudit/pkg/integrations/npm"
	"github.com/matzehuels/depaudit/pkg/peers"
	"github.com/matzehuels/depaudit/pkg/versions"
	"github.com/matzehuels/depaudit/pkg/workspace"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrIssuesFound is returned when --fail is set and a check reported issues.
var ErrIssuesFound = errors.New("dependency issues found")

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // reports
	Status io.Writer // spinner and other transient output

	// pick selects workspace members for --interactive; nil runs the TUI.
	pick func([]workspace.PackageInfo) ([]workspace.PackageInfo, error)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Status: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "depaudit",
		Short:         "depaudit audits peer dependencies and version drift in npm workspaces",
		Long:          `depaudit reads a package.json workspace and reports unmet or incompatible peer dependencies and dependencies that lag behind the latest version on the npm registry.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.peersCommand())
	root.AddCommand(c.outdatedCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Flags
// =============================================================================

// commonFlags are accepted by every check command.
type commonFlags struct {
	config      string
	json        bool
	fail        bool
	interactive bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "config file (default: <dir>/"+config.FileName+")")
	cmd.Flags().BoolVar(&f.json, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&f.fail, "fail", false, "exit with status 1 when issues are found")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "choose workspace members interactively")
}

type peerFlags struct {
	skipOptional bool
	ignore       []string
}

func (f *peerFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.skipOptional, "skip-optional", false, "do not report missing optional peers")
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "peer names to skip (repeatable)")
}

func (f *peerFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("skip-optional") {
		cfg.Peers.SkipOptional = f.skipOptional
	}
	cfg.Peers.Ignore = append(cfg.Peers.Ignore, f.ignore...)
}

type versionFlags struct {
	registry    string
	timeout     time.Duration
	concurrency int
	all         bool
}

func (f *versionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.registry, "registry", "", "registry base URL (default "+npm.DefaultRegistry+")")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-request registry timeout")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "parallel registry lookups")
	cmd.Flags().BoolVar(&f.all, "all", false, "list up-to-date dependencies too")
}

func (f *versionFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("registry") {
		cfg.Registry.URL = f.registry
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Registry.Timeout = config.Duration{Duration: f.timeout}
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Versions.Concurrency = f.concurrency
	}
}

// =============================================================================
// Workspace & Config Loading
// =============================================================================

// target is a loaded workspace narrowed to the packages to check.
type target struct {
	ws       *workspace.Workspace
	packages []workspace.PackageInfo
	cfg      config.Config
}

// load reads the workspace in dir and the config, applies flag overrides
// and selects the packages to check.
func (c *CLI) load(dir string, flags commonFlags, overrides ...func(*config.Config)) (*target, error) {
	ws, err := workspace.Load(dir)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded workspace", "dir", ws.Dir, "root", ws.Root.Name, "members", len(ws.Members))
	for _, pkg := range ws.Members {
		if err := deperrors.ValidateNpmPackageName(pkg.Name); err != nil {
			c.Logger.Warn("suspicious package name", "path", pkg.Path, "reason", deperrors.UserMessage(err))
		}
	}

	var cfg config.Config
	if flags.config != "" {
		cfg, err = config.Load(flags.config)
	} else {
		cfg, err = config.LoadDir(ws.Dir)
	}
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.Logger.Debug("config", "settings", cfg.String())

	packages := ws.Members
	if len(packages) == 0 {
		packages = []workspace.PackageInfo{ws.Root}
	}
	if flags.interactive {
		if packages, err = c.selectMembers(packages); err != nil {
			return nil, err
		}
	}
	return &target{ws: ws, packages: packages, cfg: cfg}, nil
}

func (c *CLI) selectMembers(packages []workspace.PackageInfo) ([]workspace.PackageInfo, error) {
	if c.pick != nil {
		return c.pick(packages)
	}
	return pickMembers(packages)
}

func (t *target) peerChecker() *peers.Checker {
	opts := []peers.Option{peers.WithIgnore(t.cfg.Peers.Ignore...)}
	if t.cfg.Peers.SkipOptional {
		opts = append(opts, peers.WithSkipOptional())
	}
	return peers.NewChecker(opts...)
}

func (t *target) versionChecker(logger *log.Logger) *versions.Checker {
	client := npm.NewClient(t.cfg.Registry.URL, t.cfg.ClientOptions())
	return versions.NewChecker(client, versions.Options{
		Concurrency: t.cfg.Versions.Concurrency,
		Registry:    npm.Name,
		Logger:      logger.Debugf,
	})
}

func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
