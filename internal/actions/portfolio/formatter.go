// internal/actions/portfolio/formatter.go
package portfolio

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer groups currency amounts the way the upstream reports expect
// ($105,000.00). Shared read-only; message.Printer is safe for concurrent use.
var printer = message.NewPrinter(language.English)

func money(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func signedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// BuildNarrative composes the balance summary with investment suggestions.
// The suggestion wording is presentation policy, not advice logic: the
// branches are fixed text selected by cash thresholds. A formatting-stage
// panic falls back to a minimal one-line summary with only the total value.
func BuildNarrative(snap *Snapshot) (narrative string) {
	defer func() {
		if r := recover(); r != nil {
			narrative = fmt.Sprintf(
				"I was able to fetch your portfolio data, but encountered an issue formatting the response. Your total portfolio value is $%s.",
				money(snap.TotalValue))
		}
	}()

	currency := snap.Currency
	if currency == "" {
		currency = "USD"
	}

	var parts []string
	parts = append(parts, "Here's your current portfolio summary:")
	parts = append(parts, fmt.Sprintf("• Total Portfolio Value: $%s %s", money(snap.TotalValue), currency))
	parts = append(parts, fmt.Sprintf("• Available Cash Balance: $%s %s", money(snap.CashBalance), currency))
	parts = append(parts, fmt.Sprintf("• Today's Change: $%s (%s)", money(snap.Summary.DayChange), signedPercent(snap.Summary.DayChangePercent)))
	parts = append(parts, fmt.Sprintf("• 12-Month Return: %s", signedPercent(snap.Performance.TwelveMonths.PercentReturn)))

	if snap.CashBalance > 0 {
		parts = append(parts, "")
		parts = append(parts, "💡 **Investment Opportunity:**")
		parts = append(parts, fmt.Sprintf("I notice you have $%s in cash sitting in your account.", money(snap.CashBalance)))

		if snap.CashBalance > 1000 {
			parts = append(parts, "This represents a good opportunity to deploy this capital into your investment strategy.")
			parts = append(parts, "Consider:")
			parts = append(parts, "• Dollar-cost averaging into your existing holdings")
			parts = append(parts, "• Rebalancing your portfolio to maintain your target allocation")
			parts = append(parts, "• Investing in diversified index funds if you're looking for broad market exposure")
		} else {
			parts = append(parts, "While this amount is relatively small, every dollar invested has the potential to grow over time.")
			parts = append(parts, "Consider adding it to your regular investment positions.")
		}

		parts = append(parts, "")
		parts = append(parts, "Remember: Time in the market tends to be more beneficial than timing the market.")
		parts = append(parts, "However, please consider your own financial goals and risk tolerance before making any investment decisions.")
	}

	if len(snap.Positions) > 0 {
		parts = append(parts, "")
		parts = append(parts, "**Top Holdings:**")
		parts = append(parts, topHoldings(snap.Positions)...)
	}

	return strings.Join(parts, "\n")
}

// topHoldings ranks positions by total value, descending, ties keeping their
// original order, and formats the top 3.
func topHoldings(positions []Position) []string {
	ranked := make([]Position, len(positions))
	copy(ranked, positions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalValue > ranked[j].TotalValue
	})

	limit := 3
	if len(ranked) < limit {
		limit = len(ranked)
	}

	lines := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		p := ranked[i]
		lines = append(lines, fmt.Sprintf("%d. %s - $%s (%s)",
			i+1, p.Symbol, money(p.TotalValue), signedPercent(p.GainLossPercent)))
	}
	return lines
}
