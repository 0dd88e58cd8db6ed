package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/organization/repository"
)

func (r *implRepository) GetSelection(ctx context.Context, userID string) (model.Selection, error) {
	sel := model.Selection{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		r.q(`SELECT org_id, team_id FROM selections WHERE user_id = $1`), userID,
	).Scan(&sel.OrgID, &sel.TeamID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Selection{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSelection"), err)
		return model.Selection{}, repo.ErrFailedToGet
	}
	return sel, nil
}

// SaveSelection upserts the user's selection.
func (r *implRepository) SaveSelection(ctx context.Context, sel model.Selection) error {
	_, err := r.db.ExecContext(ctx, r.q(`
		INSERT INTO selections (user_id, org_id, team_id) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET org_id = excluded.org_id, team_id = excluded.team_id`),
		sel.UserID, sel.OrgID, sel.TeamID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSelection"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
