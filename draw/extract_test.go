// SPDX-License-Identifier: MIT

package draw_test

import (
	"testing"

	"github.com/katalvlaran/pickprofile/draw"
	"github.com/stretchr/testify/require"
)

func TestExtractLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want draw.Draw
		ok   bool
	}{
		{"dashed", "1-7-4-8-8", draw.MustDraw(1, 7, 4, 8, 8), true},
		{"compact", "17488", draw.MustDraw(1, 7, 4, 8, 8), true},
		{"spaced with label", "Mid: 2 2 3 4 5", draw.MustDraw(2, 2, 3, 4, 5), true},
		{"first five only", "0123456789", draw.MustDraw(0, 1, 2, 3, 4), true},
		{"second group ignored", "1-2-3-4-5 and 6-7-8-9-0", draw.MustDraw(1, 2, 3, 4, 5), true},
		{"date digits come first", "Tue Aug 26 2025 1-7-4-8-8", draw.MustDraw(2, 6, 2, 0, 2), true},
		{"too few", "1-2-3-4", draw.Draw{}, false},
		{"blank", "", draw.Draw{}, false},
		{"no digits", "Evening draw", draw.Draw{}, false},
		{"arabic-indic digits", "\u0661\u0662\u0663\u0664\u0665", draw.MustDraw(1, 2, 3, 4, 5), true},
		{"fullwidth digits", "\uff19-\uff18-\uff17-\uff16-\uff15", draw.MustDraw(9, 8, 7, 6, 5), true},
		{"mixed scripts", "1-\u0662-3-\u06f4-5", draw.MustDraw(1, 2, 3, 4, 5), true},
		{"math digits in merged range", "\U0001d7ce\U0001d7cf\U0001d7d8\U0001d7e2\U0001d7ff", draw.MustDraw(0, 1, 0, 0, 9), true},
		{"superscripts are not digits", "\u00b9\u00b2\u00b3\u2074\u2075", draw.Draw{}, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := draw.ExtractLine(tc.line)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestExtract_Scenario(t *testing.T) {
	t.Parallel()

	seq, err := draw.Extract("1-7-4-8-8\n17488\n2-2-3-4-5\n")
	require.NoError(t, err)
	require.Equal(t, draw.Sequence{
		draw.MustDraw(1, 7, 4, 8, 8),
		draw.MustDraw(1, 7, 4, 8, 8),
		draw.MustDraw(2, 2, 3, 4, 5),
	}, seq)
}

func TestExtract_ToleratesNoiseAndLineEndings(t *testing.T) {
	t.Parallel()

	text := "Pick 5 history\r\n\r\n12345\rjunk\n\n9-9-9-9-9\u2028" + "0 0 0 0 1"
	seq, err := draw.Extract(text)
	require.NoError(t, err)
	require.Equal(t, draw.Sequence{
		draw.MustDraw(1, 2, 3, 4, 5),
		draw.MustDraw(9, 9, 9, 9, 9),
		draw.MustDraw(0, 0, 0, 0, 1),
	}, seq)
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	_, err := draw.Extract("")
	require.ErrorIs(t, err, draw.ErrEmptyInput)

	_, err = draw.Extract("  \n\t \n")
	require.ErrorIs(t, err, draw.ErrEmptyInput)

	_, err = draw.Extract("17488")
	require.ErrorIs(t, err, draw.ErrInsufficientData)
	require.NotErrorIs(t, err, draw.ErrEmptyInput)

	_, err = draw.Extract("no draws here\nnor here")
	require.ErrorIs(t, err, draw.ErrInsufficientData)
}
