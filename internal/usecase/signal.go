package usecase

import "QuantScout/internal/domain/models"

// Sentiment thresholds for the trend rules.
const (
	bullishSentiment = 0.15
	bearishSentiment = -0.2
)

// Decide maps one symbol's inputs to a trade signal. It is a pure function:
// no I/O, no clock, fully determined by its arguments.
//
// Without a price, or with a non-positive RSI (the "indicators unknown"
// reading), the answer is always HOLD. The momentum-confirmation rule is
// evaluated after the trend rules, so a symbol that is both above trend and
// oversold takes the trend BUY with its sentiment-scaled confidence.
func Decide(symbol string, quote *models.Quote, ind models.IndicatorSnapshot, sent models.SentimentReading) models.Signal {
	sig := models.Signal{Symbol: symbol, Decision: models.DecisionHold, Confidence: 0}

	if quote == nil || quote.Price <= 0 || ind.RSI <= 0 {
		return sig
	}

	switch {
	case quote.Price > ind.SMA20 && ind.RSI < 70 && sent.Score > bullishSentiment:
		sig.Decision = models.DecisionBuy
		sig.Confidence = 0.8 + sent.Score*0.1
	case quote.Price < ind.SMA20 && ind.RSI > 30 && sent.Score < bearishSentiment:
		sig.Decision = models.DecisionSell
		sig.Confidence = 0.8
	case ind.RSI < 35:
		sig.Decision = models.DecisionBuy
		sig.Confidence = 0.5
	}
	return sig
}
