package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeCombinations(t *testing.T) {
	records := []IntervalRecord{
		{Combination: "WT_R1&WT_R2"},
		{Combination: "WT_R1"},
		{Combination: "WT_R1&WT_R2"},
		{Combination: "KO_R1"},
		{Combination: "KO_R1"},
	}
	combs := SummarizeCombinations(records)
	// Descending count; the tie between KO_R1 and WT_R1&WT_R2 breaks on
	// key order.
	assert.Equal(t, []Combination{
		{Key: "KO_R1", Members: []string{"KO_R1"}, Count: 2},
		{Key: "WT_R1&WT_R2", Members: []string{"WT_R1", "WT_R2"}, Count: 2},
		{Key: "WT_R1", Members: []string{"WT_R1"}, Count: 1},
	}, combs)

	// Every record lands in exactly one combination.
	total := 0
	for _, c := range combs {
		total += c.Count
	}
	assert.Equal(t, len(records), total)
}

func TestCombinationContains(t *testing.T) {
	c := Combination{Key: "a&b&d", Members: []string{"a", "b", "d"}}
	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("d"))
	assert.False(t, c.Contains("c"))
	assert.False(t, c.Contains(""))
}
