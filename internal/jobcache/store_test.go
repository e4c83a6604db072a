// internal/jobcache/store_test.go
package jobcache

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"quickq/internal/common/logger"
	"quickq/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobColumns = []string{
	"id", "title", "company", "location", "description", "skills",
	"experience_level", "job_type", "work_environment", "company_size",
	"industry", "company_rating", "salary_range", "applicant_count", "posted_date",
}

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, logger.NewTestLogger(t)), mock
}

func jobRow(id, title, company string, level models.ExperienceLevel) []driver.Value {
	return []driver.Value{
		id, title, company, "Remote", "A description", `["Go","SQL"]`,
		string(level), "FULL_TIME", "HYBRID", "MEDIUM",
		"Technology", 4.2, nil, 12, "2026-08-01",
	}
}

func TestStore_Search(t *testing.T) {
	store, mock := newTestStore(t)

	rows := sqlmock.NewRows(jobColumns).
		AddRow(jobRow("j1", "iOS Engineer", "Apple", models.ExperienceSenior)...).
		AddRow(jobRow("j2", "Android Engineer", "Google", models.ExperienceMid)...)

	mock.ExpectQuery(`(?s)SELECT.*FROM jobs.*ILIKE`).
		WithArgs("Engineer").
		WillReturnRows(rows)

	jobs, err := store.Search(context.Background(), "Engineer")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Apple", jobs[0].Company)
	assert.Equal(t, []string{"Go", "SQL"}, jobs[0].Skills)
	assert.Equal(t, models.ExperienceSenior, jobs[0].ExperienceLevel)
	assert.Empty(t, jobs[0].SalaryRange)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Search_BadSkillsJSON(t *testing.T) {
	store, mock := newTestStore(t)

	row := jobRow("j1", "iOS Engineer", "Apple", models.ExperienceSenior)
	row[5] = "{corrupt"
	mock.ExpectQuery(`(?s)SELECT.*FROM jobs.*ILIKE`).
		WithArgs("iOS").
		WillReturnRows(sqlmock.NewRows(jobColumns).AddRow(row...))

	_, err := store.Search(context.Background(), "iOS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal skills")
}

func TestStore_GetByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		rows      *sqlmock.Rows
		wantFound bool
	}{
		{
			name:      "found",
			id:        "j1",
			rows:      sqlmock.NewRows(jobColumns).AddRow(jobRow("j1", "iOS Engineer", "Apple", models.ExperienceSenior)...),
			wantFound: true,
		},
		{
			name:      "absent",
			id:        "missing",
			rows:      sqlmock.NewRows(jobColumns),
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newTestStore(t)
			mock.ExpectQuery(`(?s)SELECT.*FROM jobs WHERE id = \$1`).
				WithArgs(tt.id).
				WillReturnRows(tt.rows)

			job, found, err := store.GetByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.id, job.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_GetByID_Idempotent(t *testing.T) {
	store, mock := newTestStore(t)

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`(?s)SELECT.*FROM jobs WHERE id = \$1`).
			WithArgs("j1").
			WillReturnRows(sqlmock.NewRows(jobColumns).
				AddRow(jobRow("j1", "iOS Engineer", "Apple", models.ExperienceSenior)...))
	}

	first, found, err := store.GetByID(context.Background(), "j1")
	require.NoError(t, err)
	require.True(t, found)

	second, found, err := store.GetByID(context.Background(), "j1")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, first, second)
}

func TestStore_Upsert(t *testing.T) {
	store, mock := newTestStore(t)

	jobs := []models.Job{
		{
			ID: "j1", Title: "Engineer", Company: "Apple", Location: "Cupertino",
			Description: "Build things", Skills: []string{"Swift"},
			ExperienceLevel: models.ExperienceSenior, JobType: models.JobTypeFullTime,
			WorkEnvironment: models.WorkHybrid, CompanySize: models.CompanyLarge,
			Industry: "Technology", CompanyRating: 5.0,
		},
		{
			ID: "j2", Title: "Engineer", Company: "Google", Location: "Zurich",
			Description: "Build other things", Skills: []string{"Go"},
			ExperienceLevel: models.ExperienceMid, JobType: models.JobTypeFullTime,
			WorkEnvironment: models.WorkRemote, CompanySize: models.CompanyLarge,
			Industry: "Technology", CompanyRating: 5.0,
		},
	}

	mock.ExpectBegin()
	for range jobs {
		mock.ExpectExec(`INSERT INTO jobs`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, store.Upsert(context.Background(), jobs))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Upsert_Empty(t *testing.T) {
	store, mock := newTestStore(t)
	require.NoError(t, store.Upsert(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Upsert_RollbackOnError(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO jobs`).WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := store.Upsert(context.Background(), []models.Job{{ID: "j1", Skills: []string{}}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Clear(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec(`DELETE FROM jobs`).WillReturnResult(sqlmock.NewResult(0, 3))
	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
