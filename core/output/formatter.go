// Package output provides output formatting interfaces.
// This package produces human and machine-readable listing breakdowns.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"listing-price/core/engine"
	"listing-price/core/types"
	"listing-price/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable styled table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown table
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is what gets rendered: one quote for a single listing, several
// for a comparison.
type Report struct {
	Quotes []QuoteView `json:"quotes"`

	// ShowExact adds unrounded amounts
	ShowExact bool `json:"-"`
}

// QuoteView is a quote with money rounded to cents.
type QuoteView struct {
	Platform     string           `json:"platform"`
	Category     string           `json:"category,omitempty"`
	Currency     types.Currency   `json:"currency"`
	ListingPrice decimal.Decimal  `json:"listing_price"`
	TotalFees    decimal.Decimal  `json:"total_fees"`
	ItemCost     decimal.Decimal  `json:"item_cost"`
	Shipping     decimal.Decimal  `json:"shipping"`
	NetProfit    decimal.Decimal  `json:"net_profit"`
	Exact        *types.Breakdown `json:"exact,omitempty"`
	Error        *ErrorView       `json:"error,omitempty"`
}

// ErrorView is the serialisable form of a failed quote.
type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Money rounds an amount to cents.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Dollars formats an amount as $0.00.
func Dollars(v float64) string {
	return "$" + Money(v).StringFixed(2)
}

// ViewOf builds the rounded view of a breakdown.
func ViewOf(platform, category string, b types.Breakdown, exact bool) QuoteView {
	v := QuoteView{
		Platform:     platform,
		Category:     category,
		Currency:     types.CurrencyUSD,
		ListingPrice: Money(b.ListingPrice),
		TotalFees:    Money(b.TotalFees),
		ItemCost:     Money(b.ItemCost),
		Shipping:     Money(b.Shipping),
		NetProfit:    Money(b.NetProfit),
	}
	if exact {
		e := b
		v.Exact = &e
	}
	return v
}

// ErrorOf converts an error into its view.
func ErrorOf(err error) *ErrorView {
	if e, ok := errors.As(err); ok {
		return &ErrorView{Code: string(e.Type), Message: e.Message}
	}
	return &ErrorView{Code: string(errors.TypeInternal), Message: err.Error()}
}

// SingleReport wraps one computed listing.
func SingleReport(req types.ListingRequest, b types.Breakdown, exact bool) *Report {
	return &Report{
		Quotes:    []QuoteView{ViewOf(types.NormalizePlatform(req.Platform), req.Category, b, exact)},
		ShowExact: exact,
	}
}

// CompareReport wraps an engine comparison.
func CompareReport(quotes []engine.Quote, exact bool) *Report {
	r := &Report{Quotes: make([]QuoteView, 0, len(quotes)), ShowExact: exact}
	for _, q := range quotes {
		if q.Err != nil {
			r.Quotes = append(r.Quotes, QuoteView{
				Platform: q.Platform,
				Category: q.Category,
				Currency: types.CurrencyUSD,
				Error:    ErrorOf(q.Err),
			})
			continue
		}
		r.Quotes = append(r.Quotes, ViewOf(q.Platform, q.Category, q.Breakdown, exact))
	}
	return r
}

// Registry holds the available formatters.
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry returns a registry with the cli, json and markdown formatters.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(NewCLIFormatter())
	_ = r.Register(JSONFormatter{})
	_ = r.Register(MarkdownFormatter{})
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format name.
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.Input(fmt.Sprintf("unknown output format %q (want one of %v)", format, r.Formats()))
	}
	return f, nil
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
