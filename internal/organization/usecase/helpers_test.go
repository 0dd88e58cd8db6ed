package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"

	"taskflow-pro/internal/model"
	repo "taskflow-pro/internal/organization/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store failure")

// mockRepo keeps organizations and teams in insertion order.
type mockRepo struct {
	mu         sync.Mutex
	orgs       []model.Organization
	teams      []model.Team
	selections map[string]model.Selection
	fail       bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{selections: map[string]model.Selection{}}
}

func (m *mockRepo) CreateOrganization(ctx context.Context, opt repo.CreateOrganizationOptions) (model.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.Organization{}, errStore
	}
	o := model.Organization{ID: opt.ID, Name: opt.Name, OwnerID: opt.OwnerID, Members: []string{opt.OwnerID}}
	m.orgs = append(m.orgs, o)
	return o, nil
}

func (m *mockRepo) GetOneOrganization(ctx context.Context, id string) (model.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orgs {
		if o.ID == id {
			o.Members = slices.Clone(o.Members)
			return o, nil
		}
	}
	return model.Organization{}, nil
}

func (m *mockRepo) ListOrganizations(ctx context.Context, opt repo.ListOrganizationsOptions) ([]model.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	var out []model.Organization
	for _, o := range m.orgs {
		if o.HasMember(opt.MemberID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateTeam(ctx context.Context, opt repo.CreateTeamOptions) (model.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := model.Team{ID: opt.ID, OrgID: opt.OrgID, Name: opt.Name, Members: []string{opt.CreatorID}}
	m.teams = append(m.teams, t)
	return t, nil
}

func (m *mockRepo) GetOneTeam(ctx context.Context, id string) (model.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Team{}, nil
}

func (m *mockRepo) ListTeams(ctx context.Context, opt repo.ListTeamsOptions) ([]model.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Team
	for _, t := range m.teams {
		if t.OrgID == opt.OrgID && (opt.MemberID == "" || t.HasMember(opt.MemberID)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) GetSelection(ctx context.Context, userID string) (model.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selections[userID], nil
}

func (m *mockRepo) SaveSelection(ctx context.Context, sel model.Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStore
	}
	m.selections[sel.UserID] = sel
	return nil
}

// addOrg inserts an organization with the given members directly.
func (m *mockRepo) addOrg(id string, members ...string) {
	m.orgs = append(m.orgs, model.Organization{ID: id, Name: id, OwnerID: members[0], Members: members})
}

// addTeam inserts a team with the given members directly.
func (m *mockRepo) addTeam(id, orgID string, members ...string) {
	m.teams = append(m.teams, model.Team{ID: id, OrgID: orgID, Name: id, Members: members})
}

var (
	alice = model.Scope{UserID: "alice"}
	bob   = model.Scope{UserID: "bob"}
)
