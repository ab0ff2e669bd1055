package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/utils"
)

const claimAssociationID = "association_id"

var errBadCredentials = domain.UnauthorizedError{Msg: "email atau password salah"}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=190"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Address  string `json:"address" validate:"omitempty,max=255"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is the result of a successful login or registration.
type Session struct {
	Token       string             `json:"token"`
	ExpiresAt   time.Time          `json:"expires_at"`
	Association models.Association `json:"association"`
}

type AuthService struct {
	Associations AssociationStore
	Secret       []byte
	TTL          time.Duration
	RequestID    string
	// Now is overridable in tests.
	Now func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

func (s AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	if err := validateInput(in); err != nil {
		return Session{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}
	a := models.Association{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
	}
	id, err := s.Associations.Create(ctx, a)
	if err != nil {
		return Session{}, err
	}
	a.ID = id
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("association_id=%d", id))
	return s.issue(a)
}

// Login never tells an unknown email apart from a wrong password.
func (s AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	if err := validateInput(in); err != nil {
		return Session{}, err
	}
	a, err := s.Associations.GetByEmail(ctx, in.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return Session{}, errBadCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login_failed", fmt.Sprintf("association_id=%d", a.ID))
		return Session{}, errBadCredentials
	}
	return s.issue(a)
}

func (s AuthService) issue(a models.Association) (Session, error) {
	if len(s.Secret) == 0 {
		return Session{}, domain.InternalError{Msg: "jwt secret belum dikonfigurasi"}
	}
	exp := s.now().Add(s.ttl())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		claimAssociationID: a.ID,
		"exp":              exp.Unix(),
		"iat":              s.now().Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return Session{}, domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	return Session{Token: signed, ExpiresAt: exp, Association: a}, nil
}

// ParseToken verifies an HS256 token and returns its association id.
func (s AuthService) ParseToken(raw string) (int64, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(s.Now))
	}
	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return s.Secret, nil }, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.UnauthorizedError{Msg: "token kedaluwarsa"}
		}
		return 0, domain.UnauthorizedError{Msg: "token tidak valid"}
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.UnauthorizedError{Msg: "token tidak valid"}
	}
	id, ok := claims[claimAssociationID].(float64)
	if !ok || id <= 0 {
		return 0, domain.UnauthorizedError{Msg: "token tidak valid"}
	}
	return int64(id), nil
}
