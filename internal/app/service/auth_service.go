package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

const bcryptCost = 10

// AuthService registers users and issues/verifies HS256 bearer tokens
// carrying the user's id, login and role.
type AuthService struct {
	users   ports.UserRepository
	signKey []byte
	ttl     time.Duration
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, signKey []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, signKey: signKey, ttl: ttl}
}

type accessClaims struct {
	UserID uint64 `json:"userId"`
	Login  string `json:"login"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, input domain.NewUserInput) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user, err := s.users.Create(ctx, domain.User{
		Nom:          input.Nom,
		Prenom:       input.Prenom,
		Login:        input.Login,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return domain.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, login, password string) (domain.Session, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(*user)
	if err != nil {
		return domain.Session{}, err
	}

	public := *user
	public.PasswordHash = ""
	return domain.Session{Token: token, User: public}, nil
}

func (s *AuthService) Verify(token string) (domain.TokenClaims, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return domain.TokenClaims{}, domain.ErrTokenInvalid
	}

	return domain.TokenClaims{
		UserID: claims.UserID,
		Login:  claims.Login,
		Role:   domain.Role(claims.Role),
	}, nil
}

func (s *AuthService) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID: user.ID,
		Login:  user.Login,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
}
