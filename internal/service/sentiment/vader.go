package sentiment

import "github.com/jonreiter/govader"

// Analyzer scores text with the VADER lexicon. Availability is a process-wide
// capability decided at startup: when disabled, every reading degrades to a
// neutral score rather than failing per call.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// New creates the analyzer. Passing enabled=false yields a permanently
// unavailable scorer.
func New(enabled bool) *Analyzer {
	if !enabled {
		return &Analyzer{}
	}
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (a *Analyzer) Available() bool { return a.sia != nil }

// Score returns the compound polarity of text in [-1, 1].
func (a *Analyzer) Score(text string) float64 {
	if a.sia == nil || text == "" {
		return 0
	}
	return a.sia.PolarityScores(text).Compound
}
