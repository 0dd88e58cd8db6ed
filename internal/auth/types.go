package auth

import "taskflow-pro/internal/model"

// Demo credentials used when Login is called without an email.
const (
	DemoName    = "Demo User"
	DemoEmail   = "demo@taskflowpro.app"
	DefaultName = "User"
)

type LoginInput struct {
	Name  string
	Email string
}

type LoginOutput struct {
	Token string
	User  model.Scope
	// Seeded is the number of sample tasks created for a first-time user.
	Seeded int
}
