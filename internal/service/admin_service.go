package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ficmh/techfest-api/internal/auth"
	"github.com/ficmh/techfest-api/internal/config"
	"github.com/ficmh/techfest-api/internal/domain"
	"github.com/ficmh/techfest-api/internal/repository"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// AdminService owns admin authentication, account creation, and the
// superadmin handover. It is the only writer of the role column.
type AdminService struct {
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// AdminDependencies encapsulates requirements for the admin service.
type AdminDependencies struct {
	AdminRepo repository.AdminRepository
	Logger    *zap.Logger
}

// NewAdminService builds the service.
func NewAdminService(cfg config.Config, deps AdminDependencies) *AdminService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		admins:     deps.AdminRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// Login authenticates an admin by email and password. Unknown email and
// wrong password fail identically so callers cannot enumerate accounts.
func (s *AdminService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewStoreUnavailable(err)
	}

	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(admin)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return admin, token, exp, nil
}

// AddAdmin creates a new account. The record is always created with the
// plain admin role; this path never touches the superadmin count.
func (s *AdminService) AddAdmin(ctx context.Context, username, email, password string) (*domain.Admin, error) {
	email = strings.TrimSpace(email)

	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail(email)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	admin := &domain.Admin{
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return admin, nil
}

// HandoverSuperAdmin moves the superadmin role from the caller to the
// target. The two row updates are not transactional: the target is
// promoted first and the caller demoted second, so a crash in between
// leaves two superadmins (visible to the invariant check) rather than
// zero (a lockout nobody can recover from through the API).
func (s *AdminService) HandoverSuperAdmin(ctx context.Context, callerID, targetID string) (*domain.Admin, error) {
	if callerID == targetID {
		return nil, apperrors.NewNoSelfHandover()
	}

	target, err := s.admins.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("admin", map[string]any{"id": targetID})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	if err := s.admins.UpdateRole(ctx, target.ID, domain.RoleSuperAdmin); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if err := s.admins.UpdateRole(ctx, callerID, domain.RoleAdmin); err != nil {
		s.logger.Warn("handover demotion failed; two superadmins remain until resolved",
			zap.String("caller_id", callerID),
			zap.String("target_id", targetID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreUnavailable(err)
	}

	target.Role = domain.RoleSuperAdmin
	return target, nil
}

// ListAdmins returns all accounts for the panel.
func (s *AdminService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return admins, nil
}

// CheckSuperadminInvariant counts superadmin records once at process start
// and logs when the count is off. It never mutates and never fails:
// auto-repair could demote a legitimate account mid-handover, and a
// diagnostic must not block startup.
func (s *AdminService) CheckSuperadminInvariant(ctx context.Context) {
	count, err := s.admins.CountByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		s.logger.Warn("unable to verify superadmin invariant", zap.Error(err))
		return
	}
	switch {
	case count == 0:
		s.logger.Warn("no superadmin exists")
	case count > 1:
		s.logger.Warn("multiple superadmins found; resolve manually", zap.Int64("count", count))
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AdminService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
