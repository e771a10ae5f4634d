package golf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseHandicap(t *testing.T) {
	tests := []struct {
		name    string
		index   float64
		rating  float64
		slope   float64
		par     int
		want    int
		wantErr bool
	}{
		{
			name:  "standard 18 index on neutral course",
			index: 18, rating: 72.0, slope: 130, par: 72,
			// 18 × 130 / 113 = 20.71
			want: 21,
		},
		{
			name:  "zero index means no handicap",
			index: 0, rating: 72.0, slope: 130, par: 72,
			want: 0,
		},
		{
			name:  "plus handicap stays negative",
			index: -2, rating: 72.0, slope: 130, par: 72,
			want: -2,
		},
		{
			name:  "rating below par reduces handicap",
			index: 10, rating: 69.5, slope: 113, par: 72,
			// 10 + (69.5 − 72) = 7.5, half away from zero
			want: 8,
		},
		{
			name:  "negative half rounds away from zero",
			index: -2, rating: 71.5, slope: 113, par: 72,
			// −2 + (−0.5) = −2.5
			want: -3,
		},
		{
			name:  "zero slope rejected",
			index: 18, rating: 72.0, slope: 0, par: 72,
			wantErr: true,
		},
		{
			name:  "negative rating rejected",
			index: 18, rating: -1, slope: 130, par: 72,
			wantErr: true,
		},
		{
			name:  "NaN rating rejected",
			index: 18, rating: math.NaN(), slope: 130, par: 72,
			wantErr: true,
		},
		{
			name:  "infinite slope rejected",
			index: 18, rating: 72.0, slope: math.Inf(1), par: 72,
			wantErr: true,
		},
		{
			name:  "zero index still validates reference data",
			index: 0, rating: 72.0, slope: math.NaN(), par: 72,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CourseHandicap(tt.index, tt.rating, tt.slope, tt.par)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourseHandicapDeterministic(t *testing.T) {
	first, err := CourseHandicap(11.4, 71.2, 125, 72)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CourseHandicap(11.4, 71.2, 125, 72)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
