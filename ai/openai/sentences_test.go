package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberedList(t *testing.T) {
	reply := `Here are the most relevant sentences:

1. Revenue grew 12% in 2023.
2. The board approved the new budget.
3.   Costs were reduced by a third.

Let me know if you need more.`

	got := parseNumberedList(reply)

	assert.Equal(t, []string{
		"Revenue grew 12% in 2023.",
		"The board approved the new budget.",
		"Costs were reduced by a third.",
	}, got)
}

func TestParseNumberedList_NoList(t *testing.T) {
	assert.Empty(t, parseNumberedList("I could not find anything relevant."))
	assert.Empty(t, parseNumberedList(""))
}

func TestParseNumberedList_TwoDigit(t *testing.T) {
	got := parseNumberedList("10. The tenth sentence stands alone.")
	assert.Equal(t, []string{"The tenth sentence stands alone."}, got)
}

func TestParseNumberedList_SkipsBareNumbers(t *testing.T) {
	got := parseNumberedList("1.\n2. Something real.")
	assert.Equal(t, []string{"Something real."}, got)
}
