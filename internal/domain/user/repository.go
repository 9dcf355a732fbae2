package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	// Create inserts a new user and returns it with generated fields populated
	Create(ctx context.Context, user User) (User, error)

	// GetByID retrieves a user by primary key
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by its unique email
	GetByEmail(ctx context.Context, email string) (User, error)

	// CountByRole counts users holding the given role.
	// Used to derive the next sequential employee code.
	CountByRole(ctx context.Context, role Role) (int64, error)

	// ListByRole retrieves all users holding the given role
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
