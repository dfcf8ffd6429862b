package trait

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table[string]
		wantErr error
	}{
		{name: "valid", table: Table[string]{{"a", 1}, {"b", 3}}},
		{name: "empty", table: Table[string]{}, wantErr: ErrEmptyTable},
		{name: "nil", table: nil, wantErr: ErrEmptyTable},
		{name: "all zero", table: Table[string]{{"a", 0}, {"b", 0}}, wantErr: ErrInvalidWeight},
		{name: "one negative", table: Table[string]{{"a", 4}, {"b", -1}}, wantErr: ErrInvalidWeight},
		{name: "total at max int", table: Table[string]{{"a", math.MaxInt - 1}, {"b", 1}}},
		{name: "overflowing total", table: Table[string]{{"a", math.MaxInt}, {"b", math.MaxInt}}, wantErr: ErrWeightOverflow},
		{name: "overflow by one", table: Table[string]{{"a", math.MaxInt}, {"b", 1}}, wantErr: ErrWeightOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTable_TotalAndProbability(t *testing.T) {
	table := Table[string]{{"a", 1}, {"b", 2}, {"c", 1}}

	require.Equal(t, 4, table.Total())
	assert.InDelta(t, 0.25, table.Probability("a"), 1e-12)
	assert.InDelta(t, 0.5, table.Probability("b"), 1e-12)
	assert.Zero(t, table.Probability("missing"))
	assert.Zero(t, Table[string]{}.Probability("a"))
}

func TestDefaultTables_Valid(t *testing.T) {
	require.NoError(t, ShapeWeights.Validate())
	require.NoError(t, SizeWeights.Validate())
	require.NoError(t, ColorWeights.Validate())

	assert.Equal(t, 6, ShapeWeights.Total())
	assert.Equal(t, 4, SizeWeights.Total())
	assert.Equal(t, 12, ColorWeights.Total())
}
