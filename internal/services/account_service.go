package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebuilds/internal/infra"
	"carebuilds/internal/models/db_models"
	"carebuilds/internal/models/request_models"
	"carebuilds/internal/models/response_models"
	"carebuilds/internal/repositories"
	"carebuilds/pkg/logger"
	mem "carebuilds/pkg/memcache"
	"carebuilds/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	Me(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, request request_models.OnboardingRequest) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
	IsActiveAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	revoked     mem.TokenRevocationStore
	cfg         infra.Config
	clock       utils.Clock
	log         *logger.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.TokenRevocationStore,
	cfg infra.Config,
	clock utils.Clock,
	log *logger.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		cfg:         cfg,
		clock:       clock,
		log:         log.With("service", "AccountService"),
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	name := strings.TrimSpace(request.Name)
	email := normalizeEmail(request.Email)
	if name == "" || email == "" || request.Password == "" {
		return nil, utils.InvalidInput("Name, email, and password are required")
	}

	existing, err := a.accountRepo.FindByEmail(ctx, nil, email)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		BaseModel:    db_models.BaseModel{CreatedAt: a.clock.Now().UTC()},
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		IsAdmin:      a.isAdminEmail(email),
		Language:     db_models.DefaultLanguage,
		Goals:        []string{},
		IsActive:     true,
	}
	if err := a.accountRepo.Create(ctx, nil, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.DatabaseError(err)
	}

	a.log.Info("Registered user", "user_id", user.ID, "is_admin", user.IsAdmin)
	return a.issueToken(user)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	email := normalizeEmail(request.Email)
	if email == "" || request.Password == "" {
		return nil, utils.InvalidInput("Email and password are required")
	}

	user, err := a.accountRepo.FindByEmail(ctx, nil, email)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	now := a.clock.Now().UTC()
	if err := a.accountRepo.UpdateLastLogin(ctx, nil, user.ID, now); err != nil {
		return nil, utils.DatabaseError(err)
	}
	user.LastLogin = &now

	return a.issueToken(user)
}

// Logout revokes the token id until the token would have expired.
func (a *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return utils.ErrUnauthenticated
	}

	ttl := a.tokens.TTL()
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(a.clock.Now())
	}
	if ttl <= 0 {
		return nil
	}
	if err := a.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return utils.DatabaseError(err)
	}
	return nil
}

func (a *AccountService) Me(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

func (a *AccountService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, request request_models.OnboardingRequest) (*response_models.UserResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Language != nil {
		user.Language = strings.TrimSpace(*request.Language)
	}
	if request.AgeGroup != nil {
		user.AgeGroup = strings.TrimSpace(*request.AgeGroup)
	}
	user.Goals = cleanGoals(request.Goals)

	if err := a.accountRepo.Save(ctx, nil, user); err != nil {
		return nil, utils.DatabaseError(err)
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, utils.InvalidInput("Name cannot be empty")
		}
		user.Name = name
	}
	if request.Language != nil {
		user.Language = strings.TrimSpace(*request.Language)
	}
	if request.AgeGroup != nil {
		user.AgeGroup = strings.TrimSpace(*request.AgeGroup)
	}
	if request.Goals != nil {
		user.Goals = cleanGoals(*request.Goals)
	}

	if err := a.accountRepo.Save(ctx, nil, user); err != nil {
		return nil, utils.DatabaseError(err)
	}

	resp := response_models.NewUserResponse(user)
	return &resp, nil
}

func (a *AccountService) IsActiveAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := a.accountRepo.FindByID(ctx, nil, userID)
	if err != nil {
		return false, utils.DatabaseError(err)
	}
	return user != nil && user.IsAdmin && user.IsActive, nil
}

// EnsureDefaultAdmin creates the configured admin account on first start and
// restores its admin flag if it was registered as a plain user.
func (a *AccountService) EnsureDefaultAdmin(ctx context.Context) error {
	email := normalizeEmail(a.cfg.AdminEmail)
	if email == "" || a.cfg.AdminPass == "" {
		a.log.Warn("Admin seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD is empty")
		return nil
	}

	existing, err := a.accountRepo.FindByEmail(ctx, nil, email)
	if err != nil {
		return utils.DatabaseError(err)
	}
	if existing != nil {
		if existing.IsAdmin {
			return nil
		}
		existing.IsAdmin = true
		if err := a.accountRepo.Save(ctx, nil, existing); err != nil {
			return utils.DatabaseError(err)
		}
		a.log.Info("Promoted configured admin account", "user_id", existing.ID)
		return nil
	}

	hashedPassword, err := utils.HashPassword(a.cfg.AdminPass)
	if err != nil {
		return err
	}
	admin := &db_models.User{
		Name:         a.cfg.AdminName,
		Email:        email,
		PasswordHash: hashedPassword,
		IsAdmin:      true,
		Language:     db_models.DefaultLanguage,
		Goals:        []string{},
		IsActive:     true,
	}
	if err := a.accountRepo.Create(ctx, nil, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return utils.DatabaseError(err)
	}

	a.log.Info("Seeded admin account", "user_id", admin.ID, "email", email)
	return nil
}

func (a *AccountService) findUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := a.accountRepo.FindByID(ctx, nil, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AccountService) issueToken(user *db_models.User) (*response_models.AuthResponse, error) {
	role := utils.RoleUser
	if user.IsAdmin {
		role = utils.RoleAdmin
	}

	token, claims, err := a.tokens.CreateToken(user.ID, role)
	if err != nil {
		return nil, err
	}

	return &response_models.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      response_models.NewUserResponse(user),
	}, nil
}

func (a *AccountService) isAdminEmail(email string) bool {
	admin := normalizeEmail(a.cfg.AdminEmail)
	return admin != "" && email == admin
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cleanGoals(goals []string) []string {
	out := make([]string, 0, len(goals))
	for _, g := range goals {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
