package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-pro/internal/auth"
	"taskflow-pro/internal/model"
	"taskflow-pro/internal/organization"
	"taskflow-pro/internal/task"
	"taskflow-pro/pkg/scope"
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

type mockTasks struct {
	task.UseCase
	seeded []model.Scope
	err    error
}

func (m *mockTasks) SeedSamples(ctx context.Context, sc model.Scope, ref time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.seeded = append(m.seeded, sc)
	return 7, nil
}

type mockOrgs struct {
	organization.UseCase
	listed []model.Scope
}

func (m *mockOrgs) List(ctx context.Context, sc model.Scope) (organization.ListOutput, error) {
	m.listed = append(m.listed, sc)
	return organization.ListOutput{}, nil
}

const testSecret = "test-secret"

func newTestUseCase(seed bool) (*implUseCase, *mockTasks, *mockOrgs) {
	tasks := &mockTasks{}
	orgs := &mockOrgs{}
	return New(&mockLogger{}, scope.New(testSecret, time.Hour), tasks, orgs, seed), tasks, orgs
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a verifiable token", func(t *testing.T) {
		uc, _, _ := newTestUseCase(false)

		out, err := uc.Login(ctx, auth.LoginInput{Name: " Alice ", Email: "Alice@Example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", out.User.Username)
		assert.Equal(t, "alice@example.com", out.User.Email)

		payload, err := scope.New(testSecret, time.Hour).Verify(out.Token)
		require.NoError(t, err)
		assert.Equal(t, out.User.UserID, payload.UserID)
	})

	t.Run("same email maps to the same user", func(t *testing.T) {
		uc, _, _ := newTestUseCase(false)

		a, err := uc.Login(ctx, auth.LoginInput{Email: "bob@example.com"})
		require.NoError(t, err)
		b, err := uc.Login(ctx, auth.LoginInput{Email: "BOB@example.com "})
		require.NoError(t, err)
		assert.Equal(t, a.User.UserID, b.User.UserID)
		assert.NotEqual(t, UserID("carol@example.com"), a.User.UserID)
	})

	t.Run("missing name defaults", func(t *testing.T) {
		uc, _, _ := newTestUseCase(false)

		out, err := uc.Login(ctx, auth.LoginInput{Email: "dan@example.com"})
		require.NoError(t, err)
		assert.Equal(t, auth.DefaultName, out.User.Username)
	})

	t.Run("missing email signs in the demo user", func(t *testing.T) {
		uc, _, _ := newTestUseCase(false)

		out, err := uc.Login(ctx, auth.LoginInput{})
		require.NoError(t, err)
		assert.Equal(t, auth.DemoName, out.User.Username)
		assert.Equal(t, auth.DemoEmail, out.User.Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _, _ := newTestUseCase(false)

		for _, email := range []string{"not-an-email", "Eve <eve@example.com>"} {
			_, err := uc.Login(ctx, auth.LoginInput{Email: email})
			assert.ErrorIs(t, err, auth.ErrInvalidEmail, email)
		}
	})

	t.Run("prepares the workspace", func(t *testing.T) {
		uc, tasks, orgs := newTestUseCase(true)

		out, err := uc.Login(ctx, auth.LoginInput{Email: "erin@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 7, out.Seeded)
		require.Len(t, tasks.seeded, 1)
		assert.Equal(t, out.User.UserID, tasks.seeded[0].UserID)
		require.Len(t, orgs.listed, 1)
	})

	t.Run("seeding disabled", func(t *testing.T) {
		uc, tasks, _ := newTestUseCase(false)

		out, err := uc.Login(ctx, auth.LoginInput{Email: "frank@example.com"})
		require.NoError(t, err)
		assert.Zero(t, out.Seeded)
		assert.Empty(t, tasks.seeded)
	})

	t.Run("seed failure does not block login", func(t *testing.T) {
		uc, tasks, _ := newTestUseCase(true)
		tasks.err = errors.New("db down")

		out, err := uc.Login(ctx, auth.LoginInput{Email: "gina@example.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})
}
