package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/depaudit/pkg/integrations/npm"
	"github.com/matzehuels/depaudit/pkg/peers"
	"github.com/matzehuels/depaudit/pkg/ranges"
	"github.com/matzehuels/depaudit/pkg/versions"
)

// Report is the JSON document printed with --json.
type Report struct {
	Workspace string          `json:"workspace"`
	Packages  []string        `json:"packages"`
	Peers     []peers.Issue   `json:"peers,omitempty"`
	Outdated  []OutdatedEntry `json:"outdated,omitempty"`
}

// OutdatedEntry is one dependency of one workspace package compared with
// the registry.
type OutdatedEntry struct {
	Member string `json:"member"`
	versions.VersionInfo
	Drift ranges.Drift `json:"drift"`
	PURL  string       `json:"purl"`
}

func newOutdatedEntry(member string, v versions.VersionInfo) OutdatedEntry {
	return OutdatedEntry{
		Member:      member,
		VersionInfo: v,
		Drift:       v.Drift(),
		PURL:        npm.PackageURL(v.Package, v.Latest),
	}
}

// IssueCount is the number of findings that make --fail exit non-zero.
func (r *Report) IssueCount() int {
	n := len(r.Peers)
	for _, e := range r.Outdated {
		if e.Drift.Outdated() {
			n++
		}
	}
	return n
}

func writeJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// =============================================================================
// Text Rendering
// =============================================================================

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = -1

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder)
}

func renderPeers(w io.Writer, issues []peers.Issue) {
	if len(issues) == 0 {
		printSuccess(w, "No peer dependency issues")
		return
	}

	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{issue.Package, issue.Peer, string(issue.Type), issue.Detail})
	}

	t := newTable().
		Headers("Package", "Peer", "Issue", "Detail").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			switch col {
			case 2:
				return issueStyle(issues[row].Type)
			case 3:
				return StyleDim
			}
			return StyleValue
		})

	fmt.Fprintln(w, StyleTitle.Render("Peer dependencies"))
	fmt.Fprintln(w, t.Render())
	printWarning(w, "%d peer dependency %s", len(issues), plural(len(issues), "issue", "issues"))
}

func renderOutdated(w io.Writer, entries []OutdatedEntry) {
	outdated := 0
	for _, e := range entries {
		if e.Drift.Outdated() {
			outdated++
		}
	}
	if len(entries) == 0 {
		printSuccess(w, "All dependencies are up to date")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Member, e.Package, e.Current, e.Latest, string(e.Drift)})
	}

	t := newTable().
		Headers("Package", "Dependency", "Current", "Latest", "Drift").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if col == 3 || col == 4 {
				return driftStyle(entries[row].Drift)
			}
			return StyleValue
		})

	fmt.Fprintln(w, StyleTitle.Render("Dependency versions"))
	fmt.Fprintln(w, t.Render())
	if outdated == 0 {
		printSuccess(w, "All dependencies are up to date")
		return
	}
	printWarning(w, "%d outdated %s", outdated, plural(outdated, "dependency", "dependencies"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
