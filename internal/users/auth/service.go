// Copyright (c) 2026 Code2Lead. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/ctxutil"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/metrics"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/validate"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/uuid"
)

var (
	nameRegex     = regexp.MustCompile(`^[a-zA-Z ]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// # Contracts & Types

// PasswordHasher hashes and checks passwords. [*sec.PasswordHasher] implements it.
type PasswordHasher interface {
	Hash(context context.Context, plain string) (string, error)
	Verify(context context.Context, plain, hash string) (bool, error)
}

// TokenIssuer signs session tokens. [*sec.TokenService] implements it.
type TokenIssuer interface {
	Issue(identity sec.Identity, ttl time.Duration) (string, error)
}

// Service implements user authentication and account lifecycle use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed with the lockout and enumeration rules in mind.
type Service struct {
	userRepository UserRepository
	attempts       AttemptTracker
	hasher         PasswordHasher
	tokens         TokenIssuer
	tokenTTL       time.Duration
	metrics        *metrics.Prom
	now            func() time.Time
}

// NewService constructs a new [Service] with necessary dependencies.
// prom may be nil when metrics are not collected.
func NewService(
	userRepo UserRepository,
	attempts AttemptTracker,
	hasher PasswordHasher,
	tokens TokenIssuer,
	tokenTTL time.Duration,
	prom *metrics.Prom,
) *Service {
	return &Service{
		userRepository: userRepo,
		attempts:       attempts,
		hasher:         hasher,
		tokens:         tokens,
		tokenTTL:       tokenTTL,
		metrics:        prom,
		now:            time.Now,
	}
}

// # Normalization

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername trims and lower-cases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

func (input *RegisterInput) normalize() {
	input.Name = strings.TrimSpace(input.Name)
	input.Username = NormalizeUsername(input.Username)
	input.Email = NormalizeEmail(input.Email)
}

func (input *RegisterInput) validate(validator *validate.Validator) {
	validator.Required(FieldName, input.Name).
		MinLen(FieldName, input.Name, NameMinLength).
		MaxLen(FieldName, input.Name, NameMaxLength).
		Match(FieldName, input.Name, nameRegex, "Name can only contain letters and spaces").
		Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, UsernameMinLength).
		MaxLen(FieldUsername, input.Username, UsernameMaxLength).
		Match(FieldUsername, input.Username, usernameRegex, "Username can only contain letters, numbers, and underscores").
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		StrongPassword(FieldPassword, input.Password, PasswordMinLength)
}

/*
RegisterAdmin validates, hashes, and persists a new administrator account.

Description: No existence check happens before the write. The storage unique
constraints decide, and their violations surface as ErrEmailExists or
ErrUsernameExists.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: Validation, Conflict or storage errors
*/
func (service *Service) RegisterAdmin(context context.Context, input RegisterInput) (*User, error) {
	input.normalize()

	validator := &validate.Validator{}
	input.validate(validator)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.create(context, input, sec.RoleAdmin)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "admin_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// CreateUserInput holds the data an admin supplies to create an account.
type CreateUserInput struct {
	RegisterInput
	// Role must be "user" or "trainer"; empty means "user".
	Role string
}

/*
CreateUser lets an admin create a user or trainer account.

Parameters:
  - context: context.Context
  - input: CreateUserInput

Returns:
  - *User: Created entity
  - error: Validation (including a disallowed role), Conflict or storage errors
*/
func (service *Service) CreateUser(context context.Context, input CreateUserInput) (*User, error) {
	input.normalize()
	if input.Role == "" {
		input.Role = string(sec.RoleUser)
	}

	validator := &validate.Validator{}
	input.validate(validator)
	validator.OneOf(FieldRole, input.Role, string(sec.RoleUser), string(sec.RoleTrainer))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.create(context, input.RegisterInput, sec.UserRole(input.Role))
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_created_by_admin",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

func (service *Service) create(context context.Context, input RegisterInput, role sec.UserRole) (*User, error) {
	start := time.Now()
	hashedPassword, err := service.hasher.Hash(context, input.Password)
	service.metrics.ObserveHash("hash", time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:            uuid.New(),
		Name:          input.Name,
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  hashedPassword,
		Role:          role,
		IsActive:      true,
		PublicProfile: true,
		Studies:       []Study{},
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_create_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is a successfully established session.
type LoginResult struct {
	Token string
	User  *User
}

/*
Login validates credentials and issues a session token.

Description: The checks run in a fixed order.
  - An unknown email gives INVALID_CREDENTIALS.
  - A locked account gives ACCOUNT_LOCKED.
  - A wrong password counts a failure and gives INVALID_CREDENTIALS.
  - A deactivated account gives ACCOUNT_DEACTIVATED.

Unknown email and wrong password produce the same error. The activation state
is only revealed to callers who know the password.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Signed token and the account
  - error: Unauthorized, Locked, AccountState or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	logger := ctxutil.GetLogger(context)
	email := NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).
		Email(FieldEmail, email).
		Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// 1. Resolve the account. A missing account reads exactly like a wrong password.
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		if isNotFound(err) {
			service.metrics.ObserveLogin(metrics.LoginRejected)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// 2. Lockout. Tracker outages must not block every login, so they only warn.
	locked, err := service.attempts.IsLocked(context, user.ID)
	if err != nil {
		logger.WarnContext(context, "login_lock_check_failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}
	if locked {
		service.metrics.ObserveLogin(metrics.LoginLocked)
		return nil, ErrAccountLocked
	}

	// 3. Password
	start := time.Now()
	matches, err := service.hasher.Verify(context, input.Password, user.PasswordHash)
	service.metrics.ObserveHash("verify", time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("auth_service_verify_failed: %w", err)
	}

	if !matches {
		nowLocked, err := service.attempts.RecordFailure(context, user.ID)
		if err != nil {
			logger.WarnContext(context, "login_failure_record_failed", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		if nowLocked {
			logger.WarnContext(context, "account_locked", slog.String("user_id", user.ID))
		}
		service.metrics.ObserveLogin(metrics.LoginRejected)
		return nil, ErrInvalidCredentials
	}

	// 4. Activation
	if !user.IsActive {
		service.metrics.ObserveLogin(metrics.LoginDeactivated)
		return nil, ErrAccountDeactivated
	}

	// 5. Success bookkeeping
	if err := service.attempts.Reset(context, user.ID); err != nil {
		logger.WarnContext(context, "login_attempts_reset_failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	loginTime := service.now().UTC()
	if err := service.userRepository.TouchLastLogin(context, user.ID, loginTime); err != nil {
		return nil, fmt.Errorf("auth_service_touch_last_login_failed: %w", err)
	}
	user.LastLogin = &loginTime

	token, err := service.tokens.Issue(user.Identity(), service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.metrics.ObserveLogin(metrics.LoginSucceeded)
	logger.InfoContext(context, "user_logged_in", slog.String("user_id", user.ID))

	return &LoginResult{Token: token, User: user}, nil
}

// # Account Lifecycle

// ListUsersInput selects one page of the user listing.
type ListUsersInput struct {
	Page  int
	Limit int
	Role  string
}

/*
ListUsers returns one page of accounts, newest first.

Returns:
  - []*User: The requested page
  - int: Total number of matching accounts
  - error: Validation (unknown role) or storage errors
*/
func (service *Service) ListUsers(context context.Context, input ListUsersInput) ([]*User, int, error) {
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role != "" && !sec.UserRole(role).Valid() {
		return nil, 0, validate.RequiredError(FieldRole, "Role must be one of: admin, trainer, user")
	}

	filter := UserFilter{Role: sec.UserRole(role)}
	filter.Page = input.Page
	filter.Limit = input.Limit
	filter.Params = filter.Params.Normalize()

	users, total, err := service.userRepository.List(context, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("auth_service_list_users_failed: %w", err)
	}
	return users, total, nil
}

// DeactivateUser blocks future logins for the account. Already-issued tokens stay valid until expiry.
func (service *Service) DeactivateUser(context context.Context, id string) (*User, error) {
	return service.setActive(context, id, false)
}

// ActivateUser re-enables logins for the account.
func (service *Service) ActivateUser(context context.Context, id string) (*User, error) {
	return service.setActive(context, id, true)
}

func (service *Service) setActive(context context.Context, id string, active bool) (*User, error) {
	if !uuid.Valid(id) {
		return nil, ErrUserNotFound
	}

	user, err := service.userRepository.SetActive(context, id, active)
	if err != nil {
		return nil, fmt.Errorf("auth_service_set_active_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_activation_changed",
		slog.String("user_id", user.ID),
		slog.Bool("is_active", user.IsActive),
	)

	return user, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
