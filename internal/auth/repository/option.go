package repository

// CreateUserOptions is the options for creating an account.
type CreateUserOptions struct {
	Email    string
	Password string
	Name     string
}
