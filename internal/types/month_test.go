package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/budgetcalc/engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Month
	}{
		{"RFC3339", `{ "month": "2024-05-12T17:59:23+02:00" }`, types.NewMonth(2024, 5)},
		{"Full date", `{ "month": "2024-05-12" }`, types.NewMonth(2024, 5)},
		{"Year and month", `{ "month": "2023-11" }`, types.NewMonth(2023, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target struct {
				Month types.Month
			}

			err := json.Unmarshal([]byte(tt.input), &target)
			require.Nil(t, err)
			assert.Equal(t, tt.want, target.Month)
		})
	}
}

func TestMonthMarshalJSON(t *testing.T) {
	b, err := json.Marshal(types.NewMonth(2024, time.February))
	require.Nil(t, err)
	assert.Equal(t, `"2024-02"`, string(b))
}

func TestMonthBounds(t *testing.T) {
	m := types.NewMonth(2024, time.February)

	assert.Equal(t, "2024-02-01", m.FirstDay().String())
	assert.Equal(t, "2024-02-29", m.LastDay().String())
	assert.Equal(t, "Feb", m.ShortName())
	assert.True(t, m.Contains(types.NewDate(2024, 2, 29)))
	assert.False(t, m.Contains(types.NewDate(2024, 3, 1)))
}

func TestMonthsBetween(t *testing.T) {
	months := types.MonthsBetween(types.NewDate(2023, 11, 15), types.NewDate(2024, 2, 1))

	require.Len(t, months, 4)
	assert.Equal(t, "2023-11", months[0].String())
	assert.Equal(t, "2024-02", months[3].String())

	assert.Empty(t, types.MonthsBetween(types.NewDate(2024, 2, 1), types.NewDate(2024, 1, 1)))
}
