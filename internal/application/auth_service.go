package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
	"github.com/blogora/blogora/pkg/helpers"
	"github.com/blogora/blogora/pkg/mailer"
)

// AuthService drives the account lifecycle: registration, login, email
// verification and password reset. Verification and reset share the same
// token primitive since both prove control of the email address.
type AuthService struct {
	Users        repository.UserRepository
	Tokens       repository.TokenRepository
	Mail         EmailSender
	JWT          *helpers.JWTManager
	ClientDomain string
	Logger       *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, mail EmailSender, jwt *helpers.JWTManager, clientDomain string, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Users:        users,
		Tokens:       tokens,
		Mail:         mail,
		JWT:          jwt,
		ClientDomain: clientDomain,
		Logger:       logger,
	}
}

// Register creates an unverified account and emails the verification link.
// A failed delivery fails the whole operation; the caller must not be told
// to check their inbox when nothing was sent.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	if err := s.sendVerificationEmail(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates and issues a signed access token. Unverified accounts
// never receive a token; a verification email is re-sent when no token was
// pending.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	if !u.IsVerified {
		secret, err := helpers.GenTokenSecret()
		if err != nil {
			return nil, "", err
		}
		t, created, err := s.Tokens.Issue(ctx, u.ID, secret)
		if err != nil {
			return nil, "", err
		}
		// Resend only when a fresh token had to be issued; a pending one
		// means the earlier email is still valid.
		if created {
			if err := s.sendVerifyLink(ctx, u, t.Secret); err != nil {
				return nil, "", err
			}
		}
		return nil, "", ErrAccountNotVerified
	}
	token, err := s.JWT.Generate(u.ID, u.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// VerifyAccount consumes the token and flips the account to verified in one
// atomic step. A second attempt with the same link fails: the token is gone.
func (s *AuthService) VerifyAccount(ctx context.Context, userID, secret string) error {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidLink
		}
		return err
	}
	if err := s.Tokens.ConsumeForVerification(ctx, userID, secret); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidLink
		}
		return err
	}
	return nil
}

// RequestPasswordReset reuses the pending token or issues a new one, then
// emails the reset link. The account state does not change.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownEmail
		}
		return err
	}
	secret, err := helpers.GenTokenSecret()
	if err != nil {
		return err
	}
	t, _, err := s.Tokens.Issue(ctx, u.ID, secret)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/reset-password/%s/%s", s.ClientDomain, u.ID, t.Secret)
	html, err := mailer.ResetPasswordHTML(link)
	if err != nil {
		return err
	}
	if err := s.Mail.Send(ctx, u.Email, "Reset password", html); err != nil {
		return fmt.Errorf("%w: sending reset email: %v", ErrUpstream, err)
	}
	return nil
}

// ValidateResetLink checks a reset link without consuming the token.
func (s *AuthService) ValidateResetLink(ctx context.Context, userID, secret string) error {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidLink
		}
		return err
	}
	ok, err := s.Tokens.Exists(ctx, userID, secret)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidLink
	}
	return nil
}

// ConfirmPasswordReset stores the new password and consumes the token
// atomically. Reset proves email ownership, so non-admin accounts come out
// verified regardless of prior state.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, userID, secret, newPassword string) error {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidLink
		}
		return err
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Tokens.ConsumeForPasswordReset(ctx, userID, secret, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidLink
		}
		return err
	}
	return nil
}

func (s *AuthService) sendVerificationEmail(ctx context.Context, u *entity.User) error {
	secret, err := helpers.GenTokenSecret()
	if err != nil {
		return err
	}
	t, _, err := s.Tokens.Issue(ctx, u.ID, secret)
	if err != nil {
		return err
	}
	return s.sendVerifyLink(ctx, u, t.Secret)
}

func (s *AuthService) sendVerifyLink(ctx context.Context, u *entity.User, secret string) error {
	link := fmt.Sprintf("%s/users/%s/verify/%s", s.ClientDomain, u.ID, secret)
	html, err := mailer.VerifyEmailHTML(link)
	if err != nil {
		return err
	}
	if err := s.Mail.Send(ctx, u.Email, "Verify your email", html); err != nil {
		return fmt.Errorf("%w: sending verification email: %v", ErrUpstream, err)
	}
	return nil
}
