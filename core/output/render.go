package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#7928CA", Dark: "#7D56F4"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#12B76A", Dark: "#73F59F"}
	colorDanger  = lipgloss.AdaptiveColor{Light: "#D92D20", Dark: "#F97066"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#98A2B3", Dark: "#667085"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D0D5DD", Dark: "#475467"}
)

// CLIFormatter renders each quote as a bordered breakdown card.
type CLIFormatter struct {
	panel   lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	deduct  lipgloss.Style
	profit  lipgloss.Style
	failure lipgloss.Style
}

// NewCLIFormatter builds the styled formatter.
func NewCLIFormatter() CLIFormatter {
	return CLIFormatter{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		title:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		label:   lipgloss.NewStyle().Foreground(colorMuted),
		deduct:  lipgloss.NewStyle().Foreground(colorDanger),
		profit:  lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		failure: lipgloss.NewStyle().Foreground(colorDanger),
	}
}

// Format returns FormatCLI
func (CLIFormatter) Format() Format { return FormatCLI }

const cardWidth = 36

func (f CLIFormatter) row(label, value string, style lipgloss.Style) string {
	l := f.label.Render(label)
	v := style.Render(value)
	gap := cardWidth - lipgloss.Width(l) - lipgloss.Width(v)
	if gap < 1 {
		gap = 1
	}
	return l + strings.Repeat(" ", gap) + v
}

// Render writes one card per quote.
func (f CLIFormatter) Render(w io.Writer, report *Report) error {
	cards := make([]string, 0, len(report.Quotes))
	plain := lipgloss.NewStyle()

	for _, q := range report.Quotes {
		title := q.Platform
		if q.Category != "" {
			title += " · " + q.Category
		}
		lines := []string{f.title.Render(title)}

		if q.Error != nil {
			lines = append(lines, f.failure.Render(q.Error.Code), q.Error.Message)
			cards = append(cards, f.panel.Render(strings.Join(lines, "\n")))
			continue
		}

		lines = append(lines,
			f.row("Listing price", "$"+q.ListingPrice.StringFixed(2), plain),
			f.row("Fees", "-$"+q.TotalFees.StringFixed(2), f.deduct),
			f.row("Item cost", "-$"+q.ItemCost.StringFixed(2), f.deduct),
			f.row("Shipping", "-$"+q.Shipping.StringFixed(2), f.deduct),
			f.row("Net profit", "$"+q.NetProfit.StringFixed(2), f.profit),
		)
		if report.ShowExact && q.Exact != nil {
			lines = append(lines, f.label.Render(fmt.Sprintf("exact: price=%v fees=%v", q.Exact.ListingPrice, q.Exact.TotalFees)))
		}
		cards = append(cards, f.panel.Render(strings.Join(lines, "\n")))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, cards...))
	return err
}

// JSONFormatter writes the report as indented JSON.
type JSONFormatter struct{}

// Format returns FormatJSON
func (JSONFormatter) Format() Format { return FormatJSON }

// Render encodes the report.
func (JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// MarkdownFormatter writes a markdown table, one row per quote.
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the table.
func (MarkdownFormatter) Render(w io.Writer, report *Report) error {
	var b strings.Builder
	b.WriteString("| Platform | Category | Listing price | Fees | Item cost | Shipping | Net profit |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|---:|\n")
	for _, q := range report.Quotes {
		category := q.Category
		if category == "" {
			category = "-"
		}
		if q.Error != nil {
			fmt.Fprintf(&b, "| %s | %s | %s: %s | | | | |\n", q.Platform, category, q.Error.Code, q.Error.Message)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | $%s | $%s | $%s | $%s | $%s |\n",
			q.Platform, category,
			q.ListingPrice.StringFixed(2), q.TotalFees.StringFixed(2),
			q.ItemCost.StringFixed(2), q.Shipping.StringFixed(2), q.NetProfit.StringFixed(2))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
