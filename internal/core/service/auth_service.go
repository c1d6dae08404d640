package service

import (
	"context"
	"errors"
	"regexp"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/ports"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z]+$`)

// AuthService implements registration, login and identity resolution.
type AuthService struct {
	repo        ports.UserRepository
	jwtSecret   string
	tokenTTL    time.Duration
	rememberTTL time.Duration
	logger      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL, rememberTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	if rememberTTL <= 0 {
		rememberTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		repo:        repo,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		rememberTTL: rememberTTL,
		logger:      logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if input.Password != input.RepeatPassword {
		return domain.ErrPasswordMismatch
	}
	if !usernamePattern.MatchString(input.Username) {
		return domain.ErrInvalidUsername
	}
	if !strongPassword(input.Password) {
		return domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleUser},
		Cart:         domain.NewCart(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("email", input.Email).Msg("user registered")
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string, remember bool) (*ports.Session, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrEmailNotRegistered
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrIncorrectPassword
	}

	ttl := s.tokenTTL
	if remember {
		ttl = s.rememberTTL
	}
	expires := time.Now().Add(ttl)

	token, err := s.generateToken(user, expires)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Bool("remember", remember).Msg("user logged in")
	return &ports.Session{Token: token, ExpiresAt: expires, User: user}, nil
}

func (s *AuthService) Whoami(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"email":    user.Email,
		"username": user.Username,
		"roles":    user.Roles,
		"exp":      expires.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// strongPassword enforces the registration strength policy: minimum length 8
// with at least one lowercase, one uppercase, one digit and one symbol.
func strongPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
