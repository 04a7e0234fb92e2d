package ports

import (
	"context"

	"github.com/xlance/connects-service/internal/core/domain"
)

// RegisterInput carries sign-up data.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	PhotoURL    string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
