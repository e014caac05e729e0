package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anmolairi03/transport-sentiment-app/internal/analysis"
)

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"positive", 0.5},
		{"Positive", 0.5},
		{"POSITIVE", 0.5},
		{"negative", -0.5},
		{"Negative", -0.5},
		{"neutral", 0},
		{"unknown", 0},
		{"", 0},
		{"mixed", 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.InDelta(t, tt.want, analysis.SentimentScore(tt.label), 0)
		})
	}
}
