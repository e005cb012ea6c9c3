package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sevigo/stacksync/internal/core"
	"github.com/sevigo/stacksync/internal/stack"
	"github.com/sevigo/stacksync/internal/wire"
)

type statusStyles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	current lipgloss.Style
	row     lipgloss.Style
	missing lipgloss.Style
}

func newStatusStyles() statusStyles {
	return statusStyles{
		title:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		current: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		row:     lipgloss.NewStyle(),
		missing: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

var statusPreview bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stack and its pull request chain without changing anything",
	Long: `Show the current stack order, the pull request attached to each
bookmark, and the base each one should have. Status never pushes or edits
anything; it is the same computation sync --dry-run performs.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	statusCmd.Flags().BoolVar(&statusPreview, "preview", false, "Render the stack section as it would appear in the newest pull request body")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}

	a := wire.InitializeApp(cfg)
	res, err := a.Status(cmd.Context())
	if err != nil {
		return err
	}

	styles := newStatusStyles()
	fmt.Println(styles.title.Render("Stack status: " + cfg.RepoPath))

	if len(res.Order) == 0 {
		fmt.Println(styles.missing.Render("No stack bookmarks between trunk and the working copy."))
		return nil
	}

	rows := []string{styles.header.Render(fmt.Sprintf("%-4s %-24s %-8s %-16s %s", "POS", "BOOKMARK", "PR", "BASE", "STATE"))}
	for i, entry := range res.Entries {
		line := fmt.Sprintf("%-4d %-24s %-8s %-16s %s", i+1, entry.Branch, prLabel(entry), entry.Base, statusState(entry))
		style := styles.row
		if entry.Number == 0 {
			style = styles.missing
		} else if i == len(res.Entries)-1 {
			style = styles.current
		}
		rows = append(rows, style.Render(line))
	}
	fmt.Println(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if statusPreview {
		preview, err := renderSectionPreview(cfg.MarkerKey, res.Entries)
		if err != nil {
			return err
		}
		fmt.Println(styles.header.Render("Section preview (newest position):"))
		fmt.Print(preview)
	}
	return nil
}

func statusState(entry core.SyncEntry) string {
	switch entry.Action {
	case core.ActionPlanned:
		return "missing PR"
	case core.ActionRebased:
		return "base drifted"
	default:
		return "in sync"
	}
}

// renderSectionPreview renders the managed section markdown for the newest
// chain position through glamour, the way it would read on GitHub.
func renderSectionPreview(markerKey string, entries []core.SyncEntry) (string, error) {
	numbers := make([]int, 0, len(entries))
	for _, e := range entries {
		numbers = append(numbers, e.Number)
	}
	section := stack.RenderSection(markerKey, numbers, len(numbers)-1)
	// The HTML comment markers are invisible on GitHub; strip them so the
	// terminal preview matches what readers see.
	lines := strings.Split(section, "\n")
	md := strings.Join(lines[1:len(lines)-1], "\n")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render section preview: %w", err)
	}
	return out, nil
}
