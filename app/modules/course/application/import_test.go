package courseservice

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const courseDatasetJSON = `{
  "courses": [
    {
      "name": "Harbor Pines",
      "tees": [{"name": "White", "rating": 70.9, "slope": 124}],
      "par": 72,
      "holes": [
        {"number": 1, "par": 4, "stroke_index": 7},
        {"number": 2, "par": 3, "stroke_index": 15},
        {"number": 3, "par": 5, "stroke_index": 1}
      ]
    },
    {
      "name": "Seaview Bay",
      "par": 71,
      "holes": [
        {"number": 1, "par": 4},
        {"number": 2, "par": 4}
      ]
    }
  ]
}`

func TestImportCourses(t *testing.T) {
	repo := NewFakeCourseRepository()
	svc := NewCourseService(repo, discardLogger())

	n, err := svc.ImportCourses(context.Background(), strings.NewReader(courseDatasetJSON))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, repo.Upserted, 2)
	assert.Equal(t, "Harbor Pines", repo.Upserted[0].Name)
	assert.Equal(t, 124.0, repo.Upserted[0].Tees[0].Slope)
	assert.Equal(t, "Seaview Bay", repo.Upserted[1].Name)
}

func TestImportCoursesValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "malformed json",
			payload: `{"courses": [`,
			wantErr: "failed to decode course dataset",
		},
		{
			name:    "missing name",
			payload: `{"courses": [{"par": 72, "holes": []}]}`,
			wantErr: "missing name",
		},
		{
			name: "duplicate hole",
			payload: `{"courses": [{"name": "Dup", "par": 72, "holes": [
				{"number": 4, "par": 4}, {"number": 4, "par": 3}
			]}]}`,
			wantErr: "duplicate hole 4",
		},
		{
			name: "hole number out of range",
			payload: `{"courses": [{"name": "Range", "par": 72, "holes": [
				{"number": 19, "par": 4}
			]}]}`,
			wantErr: "hole number 19 out of range",
		},
		{
			name: "par out of range",
			payload: `{"courses": [{"name": "Par", "par": 72, "holes": [
				{"number": 2, "par": 6}
			]}]}`,
			wantErr: "par 6 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeCourseRepository()
			svc := NewCourseService(repo, discardLogger())

			_, err := svc.ImportCourses(context.Background(), strings.NewReader(tt.payload))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, repo.Upserted)
		})
	}
}

func TestImportCoursesStopsOnFirstInvalid(t *testing.T) {
	payload := `{"courses": [
		{"name": "Good", "par": 72, "holes": [{"number": 1, "par": 4}]},
		{"name": "Bad", "par": 72, "holes": [{"number": 1, "par": 9}]}
	]}`
	repo := NewFakeCourseRepository()
	svc := NewCourseService(repo, discardLogger())

	n, err := svc.ImportCourses(context.Background(), strings.NewReader(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `course "Bad"`)
	assert.Equal(t, 1, n)
	assert.Len(t, repo.Upserted, 1)
}
