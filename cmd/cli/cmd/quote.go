// Package cmd - quote and compare commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"listing-price/core/output"
	"listing-price/core/types"
	"listing-price/internal/config"
)

var (
	platform     string
	category     string
	costFlag     string
	profitFlag   string
	shippingFlag string
	outputFormat string
	showExact    bool
)

// quoteCmd computes one listing
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute the listing price for a target profit on one platform",
	Long: `Compute the listing price that leaves the desired profit after fees.

Amounts that are not numbers are treated as zero.

Examples:
  listing-price quote --platform etsy --cost 30 --profit 20 --shipping 5
  listing-price quote -p ebay -c "Watches & Parts" --cost 900 --profit 300 --format json`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

// compareCmd computes the same economics on every platform
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare listing prices across every platform",
	Long: `Compute the listing price on every platform for the same cost, profit
and shipping. The category is used for platforms that price per category.

Examples:
  listing-price compare --category Sneakers --cost 100 --profit 40 --shipping 10`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func addAmountFlags(c *cobra.Command) {
	c.Flags().StringVar(&costFlag, "cost", "0", "item cost")
	c.Flags().StringVar(&profitFlag, "profit", "0", "desired net profit")
	c.Flags().StringVar(&shippingFlag, "shipping", "0", "shipping paid by the seller")
	c.Flags().StringVarP(&category, "category", "c", "", "category, for platforms that price per category")
	c.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	c.Flags().BoolVar(&showExact, "exact", false, "also show unrounded amounts")
}

func init() {
	addAmountFlags(quoteCmd)
	quoteCmd.Flags().StringVarP(&platform, "platform", "p", "", "marketplace (see `listing-price platforms`)")
	_ = quoteCmd.MarkFlagRequired("platform")

	addAmountFlags(compareCmd)

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(compareCmd)
}

func requestFromFlags() types.ListingRequest {
	return types.ListingRequest{
		Platform:           platform,
		Category:           category,
		ItemCost:           types.ParseAmount(costFlag),
		DesiredProfit:      types.ParseAmount(profitFlag),
		SellerPaidShipping: types.ParseAmount(shippingFlag),
	}
}

func formatter() (output.Formatter, bool, error) {
	cfg := config.Get()
	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	f, err := output.NewRegistry().Get(output.Format(format))
	return f, showExact || cfg.Output.ShowExact, err
}

func runQuote(cmd *cobra.Command, args []string) error {
	f, exact, err := formatter()
	if err != nil {
		return err
	}
	eng, err := newEngine()
	if err != nil {
		return err
	}

	req := requestFromFlags()
	b, err := eng.ComputeListing(req)
	if err != nil {
		return fmt.Errorf("quote failed: %w", err)
	}

	if canonical, ok := eng.Catalog().CanonicalCategory(req.Platform, req.Category); ok {
		req.Category = canonical
	} else {
		req.Category = ""
	}
	return f.Render(cmd.OutOrStdout(), output.SingleReport(req, b, exact))
}

func runCompare(cmd *cobra.Command, args []string) error {
	f, exact, err := formatter()
	if err != nil {
		return err
	}
	eng, err := newEngine()
	if err != nil {
		return err
	}

	quotes := eng.Compare(requestFromFlags())
	return f.Render(cmd.OutOrStdout(), output.CompareReport(quotes, exact))
}
