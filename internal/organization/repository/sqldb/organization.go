package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/organization/repository"
)

func (r *implRepository) CreateOrganization(ctx context.Context, opt repo.CreateOrganizationOptions) (model.Organization, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s BeginTx: %v", r.dsn("CreateOrganization"), err)
		return model.Organization{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		r.q(`INSERT INTO organizations (id, name, owner_id, created_at) VALUES ($1, $2, $3, $4)`),
		opt.ID, opt.Name, opt.OwnerID, r.now(),
	); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateOrganization"), err)
		return model.Organization{}, repo.ErrFailedToInsert
	}
	if _, err := tx.ExecContext(ctx,
		r.q(`INSERT INTO organization_members (org_id, user_id) VALUES ($1, $2)`),
		opt.ID, opt.OwnerID,
	); err != nil {
		r.l.Errorf(ctx, "%s member: %v", r.dsn("CreateOrganization"), err)
		return model.Organization{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s Commit: %v", r.dsn("CreateOrganization"), err)
		return model.Organization{}, repo.ErrFailedToInsert
	}

	return model.Organization{
		ID:      opt.ID,
		Name:    opt.Name,
		OwnerID: opt.OwnerID,
		Members: []string{opt.OwnerID},
	}, nil
}

func (r *implRepository) GetOneOrganization(ctx context.Context, id string) (model.Organization, error) {
	var o model.Organization
	err := r.db.QueryRowContext(ctx,
		r.q(`SELECT id, name, owner_id FROM organizations WHERE id = $1`), id,
	).Scan(&o.ID, &o.Name, &o.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Organization{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOrganization"), err)
		return model.Organization{}, repo.ErrFailedToGet
	}

	members, err := r.members(ctx, `SELECT org_id, user_id FROM organization_members WHERE org_id IN (%s) ORDER BY user_id`, []string{o.ID})
	if err != nil {
		r.l.Errorf(ctx, "%s members: %v", r.dsn("GetOneOrganization"), err)
		return model.Organization{}, repo.ErrFailedToGet
	}
	o.Members = members[o.ID]
	return o, nil
}

func (r *implRepository) ListOrganizations(ctx context.Context, opt repo.ListOrganizationsOptions) ([]model.Organization, error) {
	rows, err := r.db.QueryContext(ctx, r.q(`
		SELECT o.id, o.name, o.owner_id
		FROM organizations o
		JOIN organization_members m ON m.org_id = o.id
		WHERE m.user_id = $1
		ORDER BY o.created_at, o.id`), opt.MemberID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrganizations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var orgs []model.Organization
	for rows.Next() {
		var o model.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.OwnerID); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOrganizations"), err)
			return nil, repo.ErrFailedToList
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOrganizations"), err)
		return nil, repo.ErrFailedToList
	}
	if len(orgs) == 0 {
		return orgs, nil
	}

	ids := make([]string, len(orgs))
	for i, o := range orgs {
		ids[i] = o.ID
	}
	members, err := r.members(ctx, `SELECT org_id, user_id FROM organization_members WHERE org_id IN (%s) ORDER BY user_id`, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s members: %v", r.dsn("ListOrganizations"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range orgs {
		orgs[i].Members = members[orgs[i].ID]
	}
	return orgs, nil
}

// members runs a (parent_id, user_id) query whose IN clause is filled with ids.
func (r *implRepository) members(ctx context.Context, tmpl string, ids []string) (map[string][]string, error) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, r.q(fmt.Sprintf(tmpl, strings.Join(placeholders, ", "))), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string, len(ids))
	for rows.Next() {
		var parentID, userID string
		if err := rows.Scan(&parentID, &userID); err != nil {
			return nil, err
		}
		out[parentID] = append(out[parentID], userID)
	}
	return out, rows.Err()
}
