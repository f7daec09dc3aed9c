package repository

import (
	"context"
	"errors"
	"fmt"

	"program-service/internal/domain"
	"program-service/pkg/xerrors"

	"github.com/jackc/pgx/v5"
)

// GetWorkspaceByToken resolves an API bearer token to its workspace.
func (r *ProgramRepo) GetWorkspaceByToken(ctx context.Context, token string) (*domain.Workspace, error) {
	query := `
		SELECT id, slug, default_program_id, created_at, updated_at
		FROM workspaces
		WHERE api_token = $1
	`

	var ws domain.Workspace
	err := r.db.QueryRow(ctx, query, token).Scan(
		&ws.ID,
		&ws.Slug,
		&ws.DefaultProgramID,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return &ws, nil
}

// GetProgram fetches a program scoped to a workspace. A program that exists
// but belongs to another workspace is reported as not found.
func (r *ProgramRepo) GetProgram(ctx context.Context, programID, workspaceID string) (*domain.Program, error) {
	query := `
		SELECT id, workspace_id, name, slug, default_reward_id, created_at, updated_at
		FROM programs
		WHERE id = $1 AND workspace_id = $2
	`

	var p domain.Program
	err := r.db.QueryRow(ctx, query, programID, workspaceID).Scan(
		&p.ID,
		&p.WorkspaceID,
		&p.Name,
		&p.Slug,
		&p.DefaultRewardID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", xerrors.ErrProgramNotFound, programID)
		}
		return nil, err
	}
	return &p, nil
}
