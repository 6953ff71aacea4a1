package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeThresholds(t *testing.T) {
	assert.True(t, IsTooSmall(79, 40))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(80, 24))

	assert.True(t, IsCompactHeight(29))
	assert.False(t, IsCompactHeight(30))
}

func TestFooterDropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "PgDn", Description: "Next page"},
		{Key: "Ctrl+L", Description: "Complete later"},
	}

	wide := RenderFooter(hints, 120)
	assert.Contains(t, wide, "Complete later")

	narrow := RenderFooter(hints, 40)
	assert.Contains(t, narrow, "Next field")
	assert.NotContains(t, narrow, "Complete later")
}

func TestHeaderShowsTitleAndStatus(t *testing.T) {
	h := RenderHeader("Training Questionnaire", "alex@example.com", 100)
	assert.Contains(t, h, "Cragcoach")
	assert.Contains(t, h, "Training Questionnaire")
	assert.Contains(t, h, "alex@example.com")
	assert.Contains(t, RenderMinSizeMessage(60, 20), "80 x 24")
}
