package model

import "time"

// Session is an authenticated Appwrite session.
// Secret is only available at creation time and is never stored server-side.
type Session struct {
	ID        string
	UserID    string
	Secret    string
	ExpiresAt time.Time
	Provider  string
}

// Scope carries the authenticated caller's identity through usecases.
type Scope struct {
	UserID  string
	Email   string
	Session string // Appwrite session secret for user-scoped calls
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
