package services

import (
	"github.com/jonreiter/govader"
)

// Sentiment labels returned by the analysis endpoint.
const (
	LabelPositive = "Pozitif / Mutlu 😊"
	LabelNegative = "Negatif / Üzgün 😔"
	LabelNeutral  = "Nötr / Belirsiz 😐"
)

// PolarityScorer returns a polarity in [-1, 1] for a piece of text.
type PolarityScorer interface {
	Polarity(text string) float64
}

// VaderScorer scores text with the VADER lexicon and reports the
// normalised compound score.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Polarity(text string) float64 {
	if text == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}

// SentimentResult is the outcome of analysing one text.
type SentimentResult struct {
	Text  string
	Score float64
	Label string
}

type SentimentService struct {
	scorer PolarityScorer
}

func NewSentimentService(scorer PolarityScorer) *SentimentService {
	return &SentimentService{scorer: scorer}
}

func (s *SentimentService) Analyze(text string) SentimentResult {
	score := clampPolarity(s.scorer.Polarity(text))
	return SentimentResult{
		Text:  text,
		Score: score,
		Label: Classify(score),
	}
}

// Classify maps a polarity to its label. Zero, including negative zero,
// is neutral.
func Classify(score float64) string {
	switch {
	case score > 0:
		return LabelPositive
	case score < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func clampPolarity(score float64) float64 {
	switch {
	case score > 1:
		return 1
	case score < -1:
		return -1
	default:
		return score
	}
}
