package usecase

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"taskflow-pro/internal/auth"
	"taskflow-pro/internal/model"
)

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if email == "" {
		email = auth.DemoEmail
		if name == "" {
			name = auth.DemoName
		}
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return auth.LoginOutput{}, auth.ErrInvalidEmail
	}
	if name == "" {
		name = auth.DefaultName
	}

	sc := model.Scope{
		UserID:   UserID(email),
		Username: name,
		Email:    email,
	}

	token, err := uc.jwt.CreateToken(sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login jwt.CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	out := auth.LoginOutput{Token: token, User: sc}

	if uc.orgs != nil {
		if _, err := uc.orgs.List(ctx, sc); err != nil {
			uc.l.Warnf(ctx, "uc.Login orgs.List: %v", err)
		}
	}
	if uc.seed && uc.tasks != nil {
		seeded, err := uc.tasks.SeedSamples(ctx, sc, uc.now())
		if err != nil {
			uc.l.Warnf(ctx, "uc.Login tasks.SeedSamples: %v", err)
		}
		out.Seeded = seeded
	}

	uc.l.Infof(ctx, "uc.Login user %s signed in", sc.UserID)
	return out, nil
}

// UserID derives a stable account id from a normalized email.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String()
}
