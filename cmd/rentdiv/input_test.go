// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	in, err := parseInput([]byte("valuations:\n  - [1, 2]\n  - [3, 4.5]\nrent: 12.5\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, in.Valuations)
	require.NotNil(t, in.Rent)
	assert.Equal(t, 12.5, *in.Rent)

	in, err = parseInput([]byte(`{"valuations": [[7]]}`))
	require.NoError(t, err)
	assert.Nil(t, in.Rent)

	for _, bad := range []string{
		"",
		"rent: 3\n",
		"valuations: [[1]]\nrooms: 3\n",
		"valuations: [[a]]\n",
	} {
		_, err = parseInput([]byte(bad))
		assert.Error(t, err, "input %q", bad)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 31.0, round(31.4, 0))
	assert.Equal(t, 27.33, round(27.3333, 2))
	assert.Equal(t, 0.0, round(-0.2, 0))
	assert.Equal(t, 2.0, round(2.5, 0))
	assert.Equal(t, 48.0, round(47.5, 0))
	assert.Equal(t, 26.67, round(26.666666, 2))
}
