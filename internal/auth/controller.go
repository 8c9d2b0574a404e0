// Package auth handles sign-in and logout against the admin API, backed by
// the persisted session store.
package auth

import (
	"context"

	"go.uber.org/zap"

	apperrors "marketadmin/internal/errors"
	"marketadmin/internal/notify"
)

type API interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// Session is the credential holder mutated on login and logout.
type Session interface {
	Set(token string) error
	Clear() error
	Authenticated() bool
}

type Controller struct {
	api      API
	session  Session
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewController(api API, session Session, notifier notify.Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		api:      api,
		session:  session,
		notifier: notifier,
		logger:   logger,
	}
}

// SignIn exchanges credentials for a token and persists it.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	var details []apperrors.ValidationDetail
	if email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("credentials are incomplete", details...)
	}

	token, err := c.api.SignIn(ctx, email, password)
	if err != nil {
		c.logger.Error("sign-in failed", zap.String("email", email), zap.Error(err))
		c.notifier.Error("Error", "Invalid credentials, please try again.")
		return err
	}

	if err := c.session.Set(token); err != nil {
		c.logger.Error("persisting session token", zap.Error(err))
		c.notifier.Error("Error", "Failed to store session")
		return apperrors.NewInternalError("persisting session token", err)
	}

	c.notifier.Success("Success", "Logged in successfully")
	return nil
}

// Logout clears the credential in memory and on disk.
func (c *Controller) Logout() error {
	if err := c.session.Clear(); err != nil {
		c.logger.Error("clearing session", zap.Error(err))
		c.notifier.Error("Error", "Failed to log out")
		return err
	}
	c.notifier.Success("Logged out successfully", "You have been securely logged out of your account.")
	return nil
}

func (c *Controller) Authenticated() bool {
	return c.session.Authenticated()
}
