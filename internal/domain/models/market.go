package models

// Quote is the latest traded price for a symbol and the provider that
// supplied it. Transient; fetched fresh every scan.
type Quote struct {
	Price  float64
	Source string
}

// IndicatorSnapshot holds the derived technical indicators for one symbol.
// RSI of 0 means "indeterminate / no data", not a real zero reading.
type IndicatorSnapshot struct {
	SMA20 float64 `json:"sma20"`
	RSI   float64 `json:"rsi"`
}

// SentimentReading is one scored headline. Score is the compound polarity
// in [-1, 1]; Provenance tags the originating source.
type SentimentReading struct {
	Score      float64
	Headline   string
	Provenance string
}
