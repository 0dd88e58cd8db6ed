package auth

import "context"

// UseCase signs users in. There are no passwords: the email alone
// identifies the account.
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
