package repository

import (
	"context"
	"errors"
	"fmt"

	"program-service/internal/domain"
	"program-service/pkg/xerrors"

	"github.com/jackc/pgx/v5"
)

// GetPartnerWithLinks fetches a partner together with the links of its first
// program enrollment. A partner can in principle be enrolled in several
// programs; the cleanup path only ever sees single-program partners, so only
// the oldest enrollment's links are collected.
func (r *PartnerRepo) GetPartnerWithLinks(ctx context.Context, partnerID string) (*domain.Partner, []*domain.Link, error) {
	query := `
		SELECT id, name, email, image, stripe_connect_id, created_at, updated_at
		FROM partners
		WHERE id = $1
	`

	var p domain.Partner
	err := r.db.QueryRow(ctx, query, partnerID).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Image,
		&p.StripeConnectID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: partner %s", xerrors.ErrNotFound, partnerID)
		}
		return nil, nil, err
	}

	linkQuery := `
		SELECT l.id, l.program_id, l.partner_id, l.domain, l.key, l.url, l.created_at
		FROM links l
		WHERE l.partner_id = $1
		  AND l.program_id = (
			SELECT program_id FROM program_enrollments
			WHERE partner_id = $1
			ORDER BY created_at ASC
			LIMIT 1
		  )
	`

	rows, err := r.db.Query(ctx, linkQuery, partnerID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var links []*domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(
			&l.ID,
			&l.ProgramID,
			&l.PartnerID,
			&l.Domain,
			&l.Key,
			&l.URL,
			&l.CreatedAt,
		); err != nil {
			return nil, nil, err
		}
		links = append(links, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return &p, links, nil
}

// DeleteCascade removes every record hanging off a partner, then the partner
// row itself, in dependency order inside a single transaction: customers of
// its links, payouts, commissions, the links, the partner.
func (r *PartnerRepo) DeleteCascade(ctx context.Context, partner *domain.Partner, links []*domain.Link) error {
	linkIDs := make([]string, 0, len(links))
	for _, l := range links {
		linkIDs = append(linkIDs, l.ID)
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if len(linkIDs) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM customers WHERE link_id = ANY($1)`, linkIDs); err != nil {
			return fmt.Errorf("failed to delete customers: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM payouts WHERE partner_id = $1`, partner.ID); err != nil {
		return fmt.Errorf("failed to delete payouts: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM commissions WHERE partner_id = $1`, partner.ID); err != nil {
		return fmt.Errorf("failed to delete commissions: %w", err)
	}

	if len(linkIDs) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM links WHERE id = ANY($1)`, linkIDs); err != nil {
			return fmt.Errorf("failed to delete links: %w", err)
		}
	}

	deleteAssignments := `
		DELETE FROM partner_rewards
		WHERE program_enrollment_id IN (
			SELECT id FROM program_enrollments WHERE partner_id = $1
		)
	`
	if _, err := tx.Exec(ctx, deleteAssignments, partner.ID); err != nil {
		return fmt.Errorf("failed to delete partner reward assignments: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM program_enrollments WHERE partner_id = $1`, partner.ID); err != nil {
		return fmt.Errorf("failed to delete program enrollments: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM partners WHERE id = $1`, partner.ID); err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}

	return tx.Commit(ctx)
}
