package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddMonthClamped(t *testing.T) {
	t.Run("mid-month lands on the same day", func(t *testing.T) {
		out := AddMonthClamped(NewDate(2023, 3, 15))
		require.Equal(t, NewDate(2023, 4, 15), out)
	})

	t.Run("jan 31 clamps to feb 28", func(t *testing.T) {
		out := AddMonthClamped(NewDate(2023, 1, 31))
		require.Equal(t, NewDate(2023, 2, 28), out)
	})

	t.Run("jan 31 clamps to feb 29 in leap years", func(t *testing.T) {
		out := AddMonthClamped(NewDate(2024, 1, 31))
		require.Equal(t, NewDate(2024, 2, 29), out)
	})

	t.Run("feb 29 lands on mar 29, not month end", func(t *testing.T) {
		out := AddMonthClamped(NewDate(2024, 2, 29))
		require.Equal(t, NewDate(2024, 3, 29), out)
	})

	t.Run("dec 31 rolls the year", func(t *testing.T) {
		out := AddMonthClamped(NewDate(2023, 12, 31))
		require.Equal(t, NewDate(2024, 1, 31), out)
	})
}

func TestStartOfDay(t *testing.T) {
	in := NewDate(2023, 6, 1).Add(14*time.Hour + 30*time.Minute)
	require.Equal(t, NewDate(2023, 6, 1), StartOfDay(in))
}
