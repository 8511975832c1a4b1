package meme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegroupRestText(t *testing.T) {
	rest := []Fragment{
		{Column: 0, Text: "The "},
		{Column: 4, Text: "rest "},
		{Column: 12, Text: "ツ "},
		{Column: 15, Text: "x"},
	}
	merged := RegroupRestText(rest)
	assert.Equal(t, []Fragment{
		{Column: 0, Text: "The rest "},
		{Column: 12, Text: "ツ x"},
	}, merged)
	assert.Equal(t, merged, RegroupRestText(merged))
	assert.Nil(t, RegroupRestText(nil))
}

func TestUnifyRestText(t *testing.T) {
	b := Body{
		Rest:  []Fragment{{Column: 2, Text: "ab"}, {Column: 6, Text: "ツ"}},
		Width: 10,
	}
	assert.Equal(t, "  ab  ツ  ", UnifyRestText(b))
}
