package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Job Post Methods
// -----------------------------------------------------------------------------

// GetJobPost retrieves a job post with its skill requirements by ID.
// Returns nil without error when no post exists.
func (db *DB) GetJobPost(ctx context.Context, id uuid.UUID) (*JobPost, error) {
	var j JobPost

	err := db.pool.QueryRow(ctx,
		`SELECT id, company_name, title, status, budget_min, budget_max,
		        hours_min, hours_max, remote_ok, created_at, updated_at
		 FROM job_posts WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.CompanyName, &j.Title, &j.Status, &j.BudgetMin, &j.BudgetMax,
		&j.HoursMin, &j.HoursMax, &j.RemoteOK, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job post: %w", err)
	}

	reqs, err := db.getJobSkillRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	j.Requirements = reqs

	return &j, nil
}

// ListOpenJobPosts retrieves up to limit open job posts, newest first, each
// with its skill requirements loaded
func (db *DB) ListOpenJobPosts(ctx context.Context, limit int) ([]JobPost, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company_name, title, status, budget_min, budget_max,
		        hours_min, hours_max, remote_ok, created_at, updated_at
		 FROM job_posts WHERE status = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		JobStatusOpen, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list open job posts: %w", err)
	}
	defer rows.Close()

	var posts []JobPost
	for rows.Next() {
		var j JobPost
		err := rows.Scan(&j.ID, &j.CompanyName, &j.Title, &j.Status, &j.BudgetMin, &j.BudgetMax,
			&j.HoursMin, &j.HoursMax, &j.RemoteOK, &j.CreatedAt, &j.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job post: %w", err)
		}
		posts = append(posts, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job posts: %w", err)
	}

	for i := range posts {
		reqs, err := db.getJobSkillRequirements(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Requirements = reqs
	}

	return posts, nil
}

// getJobSkillRequirements loads the requirement rows for one job post
func (db *DB) getJobSkillRequirements(ctx context.Context, jobID uuid.UUID) ([]JobSkillRequirement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_id, weight
		 FROM job_skill_requirements WHERE job_id = $1
		 ORDER BY skill_id`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get job skill requirements: %w", err)
	}
	defer rows.Close()

	var reqs []JobSkillRequirement
	for rows.Next() {
		var r JobSkillRequirement
		if err := rows.Scan(&r.SkillID, &r.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan job skill requirement: %w", err)
		}
		reqs = append(reqs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job skill requirements: %w", err)
	}

	return reqs, nil
}

// CreateJobPost inserts a new job post with its skill requirements and
// returns its ID
func (db *DB) CreateJobPost(ctx context.Context, j *JobPost) (uuid.UUID, error) {
	status := j.Status
	if status == "" {
		status = JobStatusOpen
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_posts (company_name, title, status, budget_min, budget_max, hours_min, hours_max, remote_ok)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		j.CompanyName, j.Title, status, j.BudgetMin, j.BudgetMax, j.HoursMin, j.HoursMax, j.RemoteOK,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job post: %w", err)
	}

	for _, r := range j.Requirements {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO job_skill_requirements (job_id, skill_id, weight)
			 VALUES ($1, $2, $3)`,
			id, r.SkillID, r.Weight,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to create job skill requirement %s: %w", r.SkillID, err)
		}
	}

	return id, nil
}
