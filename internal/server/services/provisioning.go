// Package services contains server-side business logic. This file implements
// ProvisioningService, which runs the signup state machine (request code,
// verify code and set password) and password login.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/common"
	"github.com/dmitrijs2005/campusgate/internal/logging"
	"github.com/dmitrijs2005/campusgate/internal/server/config"
	"github.com/dmitrijs2005/campusgate/internal/server/models"
	"github.com/dmitrijs2005/campusgate/internal/server/notify"
	"github.com/dmitrijs2005/campusgate/internal/server/otp"
	"github.com/dmitrijs2005/campusgate/internal/server/repositories/accounts"
)

// Hasher is the password hashing collaborator.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
	DummyVerify(ctx context.Context, plaintext string)
}

// RoleClassifier derives an account role from an email address.
type RoleClassifier interface {
	Classify(email string) models.Role
}

// ProvisioningService provides account operations:
// - RequestSignup: validate the email and mail a one-time code
// - VerifySignup: consume the code and create the account
// - Login: check a password against the stored digest
type ProvisioningService struct {
	accounts accounts.Repository
	otps     otp.Store
	hasher   Hasher
	sender   notify.Sender
	roles    RoleClassifier
	logger   logging.Logger

	otpValidity time.Duration
	hashTimeout time.Duration
	mailTimeout time.Duration
}

// NewProvisioningService wires the collaborators together using the
// timeouts and OTP validity from server config.
func NewProvisioningService(
	repo accounts.Repository,
	otps otp.Store,
	hasher Hasher,
	sender notify.Sender,
	roles RoleClassifier,
	logger logging.Logger,
	cfg *config.Config,
) *ProvisioningService {
	return &ProvisioningService{
		accounts:    repo,
		otps:        otps,
		hasher:      hasher,
		sender:      sender,
		roles:       roles,
		logger:      logger.With("module", "provisioning"),
		otpValidity: cfg.OTPValidity,
		hashTimeout: cfg.HashTimeout,
		mailTimeout: cfg.MailTimeout,
	}
}

// RequestSignup issues a code for email and mails it. An existing account
// yields ErrAccountExists and leaves the OTP store untouched. A delivery
// failure yields ErrDeliveryFailed; the issued code stays valid.
func (s *ProvisioningService) RequestSignup(ctx context.Context, email string) error {
	email = models.NormalizeEmail(email)
	if email == "" {
		return common.ErrMissingFields
	}
	if s.roles.Classify(email) == models.RoleUnknown {
		return common.ErrInvalidDomain
	}

	exists, err := s.accounts.Exists(ctx, email)
	if err != nil {
		return s.fault(ctx, common.ErrRepositoryFault, "account lookup failed", email, err)
	}
	if exists {
		return common.ErrAccountExists
	}

	code, err := s.otps.Issue(ctx, email)
	if err != nil {
		return s.fault(ctx, common.ErrRepositoryFault, "otp issue failed", email, err)
	}

	subject, body := notify.OTPMessage(code, s.otpValidity)

	sendCtx, cancel := withTimeout(ctx, s.mailTimeout)
	defer cancel()
	if err := s.sender.Send(sendCtx, email, subject, body); err != nil {
		s.logger.Warn(ctx, "otp delivery failed", "email", email, "error", err)
		return fmt.Errorf("%w: %w", common.ErrDeliveryFailed, err)
	}

	s.logger.Info(ctx, "otp issued", "email", email)
	return nil
}

// VerifySignup consumes code and, if it matches, creates the account with
// the role derived from email. The code is spent even when a later step
// fails.
func (s *ProvisioningService) VerifySignup(ctx context.Context, email, code, password string) error {
	email = models.NormalizeEmail(email)
	if email == "" || code == "" || password == "" {
		return common.ErrMissingFields
	}

	role := s.roles.Classify(email)
	if role == models.RoleUnknown {
		// No code is ever issued for such an address.
		return common.ErrInvalidOTP
	}

	ok, err := s.otps.Consume(ctx, email, code)
	if err != nil {
		return s.fault(ctx, common.ErrRepositoryFault, "otp consume failed", email, err)
	}
	if !ok {
		return common.ErrInvalidOTP
	}

	exists, err := s.accounts.Exists(ctx, email)
	if err != nil {
		return s.fault(ctx, common.ErrRepositoryFault, "account lookup failed", email, err)
	}
	if exists {
		return common.ErrAccountExists
	}

	hashCtx, cancel := withTimeout(ctx, s.hashTimeout)
	defer cancel()
	digest, err := s.hasher.Hash(hashCtx, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidPassword) {
			return err
		}
		return s.fault(ctx, common.ErrHashingFault, "password hashing failed", email, err)
	}

	err = s.accounts.Insert(ctx, &models.Account{Email: email, PasswordHash: digest, Role: role})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return common.ErrAccountExists
		}
		return s.fault(ctx, common.ErrRepositoryFault, "account insert failed", email, err)
	}

	s.logger.Info(ctx, "account created", "email", email, "role", role)
	return nil
}

// Login returns the account for email when password matches. Unknown
// emails and wrong passwords both yield ErrInvalidCredentials. The returned
// account never carries the password digest.
func (s *ProvisioningService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.ErrMissingFields
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, s.fault(ctx, common.ErrRepositoryFault, "account lookup failed", email, err)
	}

	hashCtx, cancel := withTimeout(ctx, s.hashTimeout)
	defer cancel()

	if account == nil {
		s.hasher.DummyVerify(hashCtx, password)
		return nil, common.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(hashCtx, password, account.PasswordHash)
	if err != nil {
		return nil, s.fault(ctx, common.ErrHashingFault, "password verify failed", email, err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return account.Public(), nil
}

func (s *ProvisioningService) fault(ctx context.Context, kind error, msg, email string, cause error) error {
	s.logger.Error(ctx, msg, "email", email, "error", cause)
	return fmt.Errorf("%w: %w", kind, cause)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
