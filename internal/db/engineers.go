package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Engineer Profile Methods
// -----------------------------------------------------------------------------

// GetEngineer retrieves an engineer profile with its skills by ID.
// Returns nil without error when no profile exists.
func (db *DB) GetEngineer(ctx context.Context, id uuid.UUID) (*Engineer, error) {
	var e Engineer

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, desired_monthly_min, available_hours_per_week,
		        remote_only, created_at, updated_at
		 FROM engineers WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Email, &e.DesiredMonthlyMin, &e.AvailableHoursPerWeek,
		&e.RemoteOnly, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get engineer: %w", err)
	}

	skills, err := db.getEngineerSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Skills = skills

	return &e, nil
}

// getEngineerSkills loads the skill rows for one engineer
func (db *DB) getEngineerSkills(ctx context.Context, engineerID uuid.UUID) ([]EngineerSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_id, proficiency_level, COALESCE(years_experience, 0)
		 FROM engineer_skills WHERE engineer_id = $1
		 ORDER BY skill_id`,
		engineerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get engineer skills: %w", err)
	}
	defer rows.Close()

	var skills []EngineerSkill
	for rows.Next() {
		var s EngineerSkill
		if err := rows.Scan(&s.SkillID, &s.ProficiencyLevel, &s.YearsExperience); err != nil {
			return nil, fmt.Errorf("failed to scan engineer skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read engineer skills: %w", err)
	}

	return skills, nil
}

// CreateEngineer inserts a new engineer profile and returns its ID
func (db *DB) CreateEngineer(ctx context.Context, e *Engineer) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO engineers (name, email, desired_monthly_min, available_hours_per_week, remote_only)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		e.Name, e.Email, e.DesiredMonthlyMin, e.AvailableHoursPerWeek, e.RemoteOnly,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create engineer: %w", err)
	}

	for _, s := range e.Skills {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO engineer_skills (engineer_id, skill_id, proficiency_level, years_experience)
			 VALUES ($1, $2, $3, $4)`,
			id, s.SkillID, s.ProficiencyLevel, s.YearsExperience,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to create engineer skill %s: %w", s.SkillID, err)
		}
	}

	return id, nil
}

// ReplaceEngineerSkills replaces the full skill set for an engineer in one
// transaction, so readers never observe a half-edited profile
func (db *DB) ReplaceEngineerSkills(ctx context.Context, engineerID uuid.UUID, skills []EngineerSkill) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM engineer_skills WHERE engineer_id = $1`, engineerID); err != nil {
		return fmt.Errorf("failed to clear engineer skills: %w", err)
	}

	for _, s := range skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO engineer_skills (engineer_id, skill_id, proficiency_level, years_experience)
			 VALUES ($1, $2, $3, $4)`,
			engineerID, s.SkillID, s.ProficiencyLevel, s.YearsExperience,
		)
		if err != nil {
			return fmt.Errorf("failed to insert engineer skill %s: %w", s.SkillID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit engineer skills: %w", err)
	}
	return nil
}
