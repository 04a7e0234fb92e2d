package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
)

// AuthService implements registration and login. Every successful sign-up or
// sign-in makes sure the account has a marketplace profile.
type AuthService struct {
	repo        ports.AuthRepository
	profiles    ports.ProfileProvisioner
	jwtSecret   string
	tokenTTL    time.Duration
	adminEmails map[string]struct{}
	log         zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService returns an AuthService. Accounts registered with one of
// adminEmails get the admin role; everyone else is a member.
func NewAuthService(repo ports.AuthRepository, profiles ports.ProfileProvisioner, jwtSecret string, tokenTTL time.Duration, adminEmails []string, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AuthService{
		repo:        repo,
		profiles:    profiles,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		adminEmails: admins,
		log:         log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := domain.RoleMember
	if _, ok := s.adminEmails[email]; ok {
		role = domain.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UID:          uuid.NewString(),
		Email:        email,
		DisplayName:  in.DisplayName,
		PhotoURL:     in.PhotoURL,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if _, err := s.profiles.EnsureProfile(ctx, identityOf(created)); err != nil {
		// Login provisions the profile again, so the account stays usable.
		s.log.Error().Err(err).Str("uid", created.UID).Msg("profile provisioning failed after register")
		return nil, err
	}
	s.log.Info().Str("uid", created.UID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.profiles.EnsureProfile(ctx, identityOf(user)); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.UID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func identityOf(u *domain.User) ports.Identity {
	return ports.Identity{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}
