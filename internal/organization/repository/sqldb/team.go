package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/organization/repository"
)

const teamMembersQuery = `SELECT team_id, user_id FROM team_members WHERE team_id IN (%s) ORDER BY user_id`

func (r *implRepository) CreateTeam(ctx context.Context, opt repo.CreateTeamOptions) (model.Team, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s BeginTx: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		r.q(`INSERT INTO teams (id, org_id, name, created_at) VALUES ($1, $2, $3, $4)`),
		opt.ID, opt.OrgID, opt.Name, r.now(),
	); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}
	if _, err := tx.ExecContext(ctx,
		r.q(`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`),
		opt.ID, opt.CreatorID,
	); err != nil {
		r.l.Errorf(ctx, "%s member: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s Commit: %v", r.dsn("CreateTeam"), err)
		return model.Team{}, repo.ErrFailedToInsert
	}

	return model.Team{
		ID:      opt.ID,
		OrgID:   opt.OrgID,
		Name:    opt.Name,
		Members: []string{opt.CreatorID},
	}, nil
}

func (r *implRepository) GetOneTeam(ctx context.Context, id string) (model.Team, error) {
	var t model.Team
	err := r.db.QueryRowContext(ctx,
		r.q(`SELECT id, org_id, name FROM teams WHERE id = $1`), id,
	).Scan(&t.ID, &t.OrgID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Team{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTeam"), err)
		return model.Team{}, repo.ErrFailedToGet
	}

	members, err := r.members(ctx, teamMembersQuery, []string{t.ID})
	if err != nil {
		r.l.Errorf(ctx, "%s members: %v", r.dsn("GetOneTeam"), err)
		return model.Team{}, repo.ErrFailedToGet
	}
	t.Members = members[t.ID]
	return t, nil
}

func (r *implRepository) ListTeams(ctx context.Context, opt repo.ListTeamsOptions) ([]model.Team, error) {
	query := `SELECT t.id, t.org_id, t.name FROM teams t WHERE t.org_id = $1`
	args := []any{opt.OrgID}
	if opt.MemberID != "" {
		query += ` AND EXISTS (SELECT 1 FROM team_members m WHERE m.team_id = t.id AND m.user_id = $2)`
		args = append(args, opt.MemberID)
	}
	query += ` ORDER BY t.created_at, t.id`

	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTeams"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.OrgID, &t.Name); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTeams"), err)
			return nil, repo.ErrFailedToList
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTeams"), err)
		return nil, repo.ErrFailedToList
	}
	if len(teams) == 0 {
		return teams, nil
	}

	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	members, err := r.members(ctx, teamMembersQuery, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s members: %v", r.dsn("ListTeams"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range teams {
		teams[i].Members = members[teams[i].ID]
	}
	return teams, nil
}
