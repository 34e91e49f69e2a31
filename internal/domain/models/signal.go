package models

import "time"

// Decision is a discrete trade signal.
type Decision string

const (
	DecisionBuy  Decision = "BUY"
	DecisionSell Decision = "SELL"
	DecisionHold Decision = "HOLD"
)

// Signal is the outcome of the decision policy for one symbol. It is a pure
// function of a Quote, IndicatorSnapshot and SentimentReading.
type Signal struct {
	Symbol     string   `json:"symbol"`
	Decision   Decision `json:"decision"`
	Confidence float64  `json:"confidence"`
}

// ScanRow is one line of a scan pass, in watchlist order.
type ScanRow struct {
	Symbol   string   `json:"symbol"`
	Price    *float64 `json:"price"` // nil when no provider yielded a price
	Source   string   `json:"source,omitempty"`
	RSI      float64  `json:"rsi"`
	Decision Decision `json:"decision"`
	Headline string   `json:"headline"`
}

// ScanSummary aggregates one full pass over the watchlist.
type ScanSummary struct {
	Scanned int     `json:"scanned"`
	Buys    int     `json:"buys"`
	Sells   int     `json:"sells"`
	AvgRSI  float64 `json:"avg_rsi"`
}

// ScanResult is a completed scan handed to the presentation layer.
type ScanResult struct {
	Timestamp time.Time   `json:"timestamp"`
	Rows      []ScanRow   `json:"rows"`
	Summary   ScanSummary `json:"summary"`
}
