package store

import (
	"strings"
	"testing"

	"github.com/jobdori/profile-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpdateProfileQuery_AllFields(t *testing.T) {
	intro := "hello"
	job := "backend developer"

	query, args, err := buildUpdateProfileQuery(42, models.ProfileUpdate{
		Introduction: &intro,
		Job:          &job,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update users")
	require.Contains(t, q, "set")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "introduction")
	require.Contains(t, q, "job")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// args: introduction, job, user_id (NOW() is inlined, not a placeholder)
	require.Len(t, args, 3)
	assert.Equal(t, intro, args[0])
	assert.Equal(t, job, args[1])
	assert.Equal(t, int64(42), args[2])
}

func Test_buildUpdateProfileQuery_OmittedFieldsStayUntouched(t *testing.T) {
	tests := []struct {
		name      string
		update    models.ProfileUpdate
		wantCols  []string
		omitCols  []string
		wantArgsN int
	}{
		{
			name:      "no optional fields",
			update:    models.ProfileUpdate{},
			wantCols:  []string{"updated_at"},
			omitCols:  []string{"introduction", "job"},
			wantArgsN: 1, // user_id only
		},
		{
			name:      "introduction only",
			update:    models.ProfileUpdate{Introduction: strPtr("hi")},
			wantCols:  []string{"updated_at", "introduction"},
			omitCols:  []string{"job"},
			wantArgsN: 2,
		},
		{
			name:      "job only",
			update:    models.ProfileUpdate{Job: strPtr("designer")},
			wantCols:  []string{"updated_at", "job"},
			omitCols:  []string{"introduction"},
			wantArgsN: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateProfileQuery(7, tt.update)
			require.NoError(t, err)

			q := strings.ToLower(query)
			for _, col := range tt.wantCols {
				assert.Contains(t, q, col)
			}
			for _, col := range tt.omitCols {
				assert.NotContains(t, q, col+" =")
			}
			require.Len(t, args, tt.wantArgsN)
			assert.Equal(t, int64(7), args[len(args)-1])
		})
	}
}

func Test_buildFindJobSkillsByNamesQuery(t *testing.T) {
	query, args, err := buildFindJobSkillsByNamesQuery([]string{"Go", "SQL", "React"})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from job_skills")
	require.Contains(t, q, "code")
	require.Contains(t, q, "name")

	// squirrel generates IN ($1,$2,$3) for a slice.
	require.Contains(t, q, "in ($1,$2,$3)")

	require.Len(t, args, 3)
	assert.Equal(t, "Go", args[0])
	assert.Equal(t, "SQL", args[1])
	assert.Equal(t, "React", args[2])
}
