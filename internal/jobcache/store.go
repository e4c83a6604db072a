// internal/jobcache/store.go

// Package jobcache is the local store of previously seen job records. It
// accelerates search: the orchestrator consults it before touching the
// remote API. Eviction is full-table clear only; there is no TTL or LRU.
package jobcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"quickq/internal/common/logger"
	"quickq/internal/models"
)

const createTableStmt = `
CREATE TABLE IF NOT EXISTS jobs (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	company          TEXT NOT NULL,
	location         TEXT NOT NULL,
	description      TEXT NOT NULL,
	skills           TEXT NOT NULL DEFAULT '[]',
	experience_level TEXT NOT NULL,
	job_type         TEXT NOT NULL,
	work_environment TEXT NOT NULL,
	company_size     TEXT NOT NULL,
	industry         TEXT NOT NULL,
	company_rating   DOUBLE PRECISION NOT NULL,
	salary_range     TEXT,
	applicant_count  INTEGER NOT NULL DEFAULT 0,
	posted_date      TEXT
)`

const upsertStmt = `
INSERT INTO jobs (
	id, title, company, location, description, skills,
	experience_level, job_type, work_environment, company_size,
	industry, company_rating, salary_range, applicant_count, posted_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	company = EXCLUDED.company,
	location = EXCLUDED.location,
	description = EXCLUDED.description,
	skills = EXCLUDED.skills,
	experience_level = EXCLUDED.experience_level,
	job_type = EXCLUDED.job_type,
	work_environment = EXCLUDED.work_environment,
	company_size = EXCLUDED.company_size,
	industry = EXCLUDED.industry,
	company_rating = EXCLUDED.company_rating,
	salary_range = EXCLUDED.salary_range,
	applicant_count = EXCLUDED.applicant_count,
	posted_date = EXCLUDED.posted_date`

const selectColumns = `
	id, title, company, location, description, skills,
	experience_level, job_type, work_environment, company_size,
	industry, company_rating, salary_range, applicant_count, posted_date`

// Store is the Postgres-backed job cache.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

// NewStore creates a Store on top of an open database handle.
func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:  db,
		log: log.WithFields(map[string]interface{}{"component": "jobcache"}),
	}
}

// EnsureSchema creates the jobs table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableStmt); err != nil {
		return fmt.Errorf("create jobs table: %w", err)
	}
	return nil
}

// Upsert writes jobs into the cache, replacing rows with the same id.
func (s *Store) Upsert(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert tx: %w", err)
	}
	defer tx.Rollback()

	for _, job := range jobs {
		skills, err := json.Marshal(job.Skills)
		if err != nil {
			return fmt.Errorf("marshal skills for job %s: %w", job.ID, err)
		}
		_, err = tx.ExecContext(ctx, upsertStmt,
			job.ID, job.Title, job.Company, job.Location, job.Description, string(skills),
			string(job.ExperienceLevel), string(job.JobType), string(job.WorkEnvironment),
			string(job.CompanySize), job.Industry, job.CompanyRating,
			nullable(job.SalaryRange), job.ApplicantCount, nullable(job.PostedDate),
		)
		if err != nil {
			return fmt.Errorf("upsert job %s: %w", job.ID, err)
		}
	}

	return tx.Commit()
}

// Search returns jobs whose title, company or description contains query,
// case-insensitively.
func (s *Store) Search(ctx context.Context, query string) ([]models.Job, error) {
	stmt := `SELECT` + selectColumns + `
		FROM jobs
		WHERE title ILIKE '%' || $1 || '%'
		   OR company ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'`

	rows, err := s.db.QueryContext(ctx, stmt, query)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// GetByID looks a job up by its cache id. found is false when absent.
func (s *Store) GetByID(ctx context.Context, id string) (models.Job, bool, error) {
	stmt := `SELECT` + selectColumns + ` FROM jobs WHERE id = $1`

	row := s.db.QueryRowContext(ctx, stmt, id)
	job, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Job{}, false, nil
		}
		return models.Job{}, false, err
	}
	return job, true, nil
}

// Clear removes every cached job.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("clear jobs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(r rowScanner) (models.Job, error) {
	var (
		job         models.Job
		skills      string
		level       string
		jobType     string
		environment string
		size        string
		salary      sql.NullString
		posted      sql.NullString
	)

	err := r.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &skills,
		&level, &jobType, &environment, &size,
		&job.Industry, &job.CompanyRating, &salary, &job.ApplicantCount, &posted,
	)
	if err != nil {
		return models.Job{}, err
	}

	if err := json.Unmarshal([]byte(skills), &job.Skills); err != nil {
		return models.Job{}, fmt.Errorf("unmarshal skills for job %s: %w", job.ID, err)
	}
	job.ExperienceLevel = models.ExperienceLevel(level)
	job.JobType = models.JobType(jobType)
	job.WorkEnvironment = models.WorkEnvironment(environment)
	job.CompanySize = models.CompanySize(size)
	job.SalaryRange = salary.String
	job.PostedDate = posted.String

	return job, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
