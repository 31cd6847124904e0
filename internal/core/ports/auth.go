package ports

import (
	"context"

	"taskvault/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
}

// AuthService issues and verifies the credentials the task routes depend on.
// VerifyToken resolves a bearer token into the stable caller identity and
// confirms that identity still maps to a stored account.
type AuthService interface {
	Register(ctx context.Context, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}
