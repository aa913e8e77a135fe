// internal/actions/portfolio/models.go
package portfolio

// balanceResponse mirrors the portfolio API's reply envelope.
type balanceResponse struct {
	Portfolio Snapshot `json:"portfolio"`
}

// Snapshot is the read-only portfolio state, fetched fresh on every request.
type Snapshot struct {
	TotalValue  float64     `json:"totalValue"`
	CashBalance float64     `json:"cashBalance"`
	Currency    string      `json:"currency"`
	Performance Performance `json:"performance"`
	Summary     Summary     `json:"summary"`
	Positions   []Position  `json:"positions"`
}

type Performance struct {
	TwelveMonths PerformanceWindow `json:"twelveMonths"`
}

type PerformanceWindow struct {
	PercentReturn float64 `json:"percentReturn"`
}

type Summary struct {
	DayChange        float64 `json:"dayChange"`
	DayChangePercent float64 `json:"dayChangePercent"`
}

type Position struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	TotalValue      float64 `json:"totalValue"`
	GainLossPercent float64 `json:"gainLossPercent"`
}
