package repository

import (
	"context"
	"fmt"

	"program-service/internal/domain"
	"program-service/pkg/id"

	"github.com/jackc/pgx/v5"
)

// CountProgramWideRewards counts rewards for (program, event) that have no
// partner assignments.
func (r *RewardRepo) CountProgramWideRewards(ctx context.Context, programID string, event domain.RewardEvent) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM rewards r
		WHERE r.program_id = $1
		  AND r.event = $2
		  AND NOT EXISTS (
			SELECT 1 FROM partner_rewards pr WHERE pr.reward_id = r.id
		  )
	`

	var count int
	if err := r.db.QueryRow(ctx, query, programID, event).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count program-wide rewards: %w", err)
	}
	return count, nil
}

// GetEnrollments fetches the enrollment rows for the given partners within a
// program. Partners with no enrollment simply produce no row.
func (r *RewardRepo) GetEnrollments(ctx context.Context, programID string, partnerIDs []string) ([]*domain.ProgramEnrollment, error) {
	query := `
		SELECT id, program_id, partner_id, status, created_at
		FROM program_enrollments
		WHERE program_id = $1 AND partner_id = ANY($2)
	`

	rows, err := r.db.Query(ctx, query, programID, partnerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*domain.ProgramEnrollment
	for rows.Next() {
		var e domain.ProgramEnrollment
		if err := rows.Scan(
			&e.ID,
			&e.ProgramID,
			&e.PartnerID,
			&e.Status,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &e)
	}

	return enrollments, rows.Err()
}

// CountPartnerRewards counts partner-specific rewards for (program, event)
// held by any of the given partners.
func (r *RewardRepo) CountPartnerRewards(ctx context.Context, programID string, event domain.RewardEvent, partnerIDs []string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM partner_rewards pr
		JOIN rewards r ON r.id = pr.reward_id
		JOIN program_enrollments pe ON pe.id = pr.program_enrollment_id
		WHERE r.program_id = $1
		  AND r.event = $2
		  AND pe.partner_id = ANY($3)
	`

	var count int
	if err := r.db.QueryRow(ctx, query, programID, event, partnerIDs).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count partner rewards: %w", err)
	}
	return count, nil
}

// CreateReward inserts the reward, one partner_rewards row per enrollment,
// and (optionally) points the program's default reward at the new row —
// all inside one transaction so a mid-sequence failure leaves nothing behind.
func (r *RewardRepo) CreateReward(ctx context.Context, reward *domain.Reward, enrollmentIDs []string, setAsDefault bool) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertReward := `
		INSERT INTO rewards (id, program_id, event, type, amount, max_duration, max_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if err := tx.QueryRow(ctx, insertReward,
		reward.ID,
		reward.ProgramID,
		reward.Event,
		reward.Type,
		reward.Amount,
		reward.MaxDuration,
		reward.MaxAmount,
	).Scan(&reward.CreatedAt, &reward.UpdatedAt); err != nil {
		return err
	}

	if len(enrollmentIDs) > 0 {
		insertAssignment := `
			INSERT INTO partner_rewards (id, program_enrollment_id, reward_id, created_at)
			VALUES ($1, $2, $3, NOW())
		`
		for _, enrollmentID := range enrollmentIDs {
			if _, err := tx.Exec(ctx, insertAssignment, id.Generate("pnrw"), enrollmentID, reward.ID); err != nil {
				return err
			}
		}
		reward.PartnerCount = len(enrollmentIDs)
	}

	if setAsDefault {
		updateProgram := `
			UPDATE programs
			SET default_reward_id = $1, updated_at = NOW()
			WHERE id = $2 AND default_reward_id IS NULL
		`
		if _, err := tx.Exec(ctx, updateProgram, reward.ID, reward.ProgramID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListRewards returns all rewards of a program with their partner counts,
// newest first.
func (r *RewardRepo) ListRewards(ctx context.Context, programID string) ([]*domain.Reward, error) {
	query := `
		SELECT r.id, r.program_id, r.event, r.type, r.amount, r.max_duration, r.max_amount,
			r.created_at, r.updated_at, COUNT(pr.id) AS partner_count
		FROM rewards r
		LEFT JOIN partner_rewards pr ON pr.reward_id = r.id
		WHERE r.program_id = $1
		GROUP BY r.id
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []*domain.Reward
	for rows.Next() {
		var rw domain.Reward
		if err := rows.Scan(
			&rw.ID,
			&rw.ProgramID,
			&rw.Event,
			&rw.Type,
			&rw.Amount,
			&rw.MaxDuration,
			&rw.MaxAmount,
			&rw.CreatedAt,
			&rw.UpdatedAt,
			&rw.PartnerCount,
		); err != nil {
			return nil, err
		}
		rewards = append(rewards, &rw)
	}

	return rewards, rows.Err()
}
