package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jits_backend/internal/auth"
	"jits_backend/internal/email"
	"jits_backend/internal/logger"
	"jits_backend/internal/models"
	"jits_backend/internal/repositories"
	"jits_backend/internal/services/dto"
	"jits_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	companyName             = "Jharkhand IT Solutions"
	passwordResetSubject    = "Password Reset Request - " + companyName
	passwordResetSentMsg    = "If your email is registered, you will receive a password reset link."
	invalidCredentialsMsg   = "Invalid credentials."
	incorrectCurrentPwdMsg  = "Incorrect current password."
	passwordLengthMsgFormat = "%s must be at least %d characters long."
	passwordTooLongFormat   = "%s must be at most %d characters long."
)

type AuthService interface {
	Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest) (*models.User, string, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*models.User, string, error)
	Me(ctx context.Context, db *gorm.DB, userID string) (*models.User, error)
	UpdatePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdatePasswordRequest) error
	// RequestPasswordReset всегда отвечает одинаково, есть такой email или нет
	RequestPasswordReset(ctx context.Context, db *gorm.DB, req *dto.RequestPasswordResetRequest) (string, error)
	ResetPassword(ctx context.Context, db *gorm.DB, rawToken string, req *dto.ResetPasswordRequest) error
	// SeedFirstAdmin создает администратора, если в базе еще нет ни одного
	SeedFirstAdmin(ctx context.Context, db *gorm.DB, email, password string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenService
	emailProvider email.Provider
	checkPassword func(password, hash string) bool
	frontendURL   string
	resetTTL      time.Duration
	now           func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenService,
	emailProvider email.Provider,
	frontendURL string,
	resetTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
		frontendURL:   strings.TrimRight(frontendURL, "/"),
		resetTTL:      resetTTL,
		checkPassword: auth.CheckPasswordHash,
		now:           time.Now,
	}
}

// Signup - регистрация обычного пользователя
func (s *AuthServiceImpl) Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest) (*models.User, string, error) {
	emailAddr := normalizeEmail(req.Email)
	if err := checkPasswordLength("Password", req.Password); err != nil {
		return nil, "", err
	}

	if _, err := s.userRepo.FindByEmail(db, emailAddr); err == nil {
		return nil, "", apperrors.Validation("auth", "User already exists with this email.")
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, "", apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		// параллельная регистрация с тем же email
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, "", apperrors.Validation("auth", "User already exists with this email.")
		}
		return nil, "", apperrors.InternalError(err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	logger.CtxInfo(ctx, "User signed up", "user_id", user.ID)
	return user, token, nil
}

// Login - одинаковый ответ для неизвестного email и неверного пароля
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			s.checkPassword(req.Password, auth.DummyPasswordHash())
			return nil, "", apperrors.InvalidCredentials(invalidCredentialsMsg)
		}
		return nil, "", apperrors.InternalError(err)
	}

	if !s.checkPassword(req.Password, user.PasswordHash) {
		return nil, "", apperrors.InvalidCredentials(invalidCredentialsMsg)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	logger.CtxInfo(ctx, "User logged in", "user_id", user.ID)
	return user, token, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NotFound("auth", "User not found.")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdatePassword - смена пароля. Выданные токены остаются действительными.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdatePasswordRequest) error {
	switch {
	case req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmNewPassword == "":
		return apperrors.Validation("auth", "All password fields are required.")
	case req.NewPassword != req.ConfirmNewPassword:
		return apperrors.Validation("auth", "New passwords do not match.")
	case req.NewPassword == req.CurrentPassword:
		return apperrors.Validation("auth", "New password cannot be the same as the current password.")
	}
	if err := checkPasswordLength("New password", req.NewPassword); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NotFound("auth", "User not found.")
		}
		return apperrors.InternalError(err)
	}

	if !s.checkPassword(req.CurrentPassword, user.PasswordHash) {
		return apperrors.InvalidCredentials(incorrectCurrentPwdMsg)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Password updated", "user_id", user.ID)
	return nil
}

// RequestPasswordReset выдает одноразовый токен и отправляет ссылку на почту.
// Если письмо не ушло, токен отзывается, а клиент получает тот же ответ.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, db *gorm.DB, req *dto.RequestPasswordResetRequest) (string, error) {
	emailAddr := normalizeEmail(req.Email)
	if emailAddr == "" {
		return "", apperrors.Validation("auth", "Please provide an email address.")
	}

	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			logger.CtxInfo(ctx, "Password reset requested for unknown email")
			return passwordResetSentMsg, nil
		}
		return "", apperrors.InternalError(err)
	}

	rawToken, hash, err := auth.NewResetToken()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	expiresAt := s.now().Add(s.resetTTL)
	user.ResetTokenHash = &hash
	user.ResetTokenExpiresAt = &expiresAt
	if err := s.userRepo.Update(db, user); err != nil {
		return "", apperrors.InternalError(err)
	}

	data := email.TemplateData{
		"Name":      user.Name,
		"Company":   companyName,
		"ResetURL":  fmt.Sprintf("%s/reset-password/%s", s.frontendURL, rawToken),
		"ExpiresIn": fmt.Sprintf("%d minutes", int(s.resetTTL.Minutes())),
	}
	if err := s.emailProvider.SendTemplate(ctx, []string{user.Email}, passwordResetSubject, email.TemplatePasswordReset, data); err != nil {
		logger.CtxWithError(ctx, "Failed to send password reset email, revoking token", err, "user_id", user.ID)
		user.ClearResetToken()
		if rbErr := s.userRepo.Update(db, user); rbErr != nil {
			logger.CtxWithError(ctx, "Failed to revoke password reset token", rbErr, "user_id", user.ID)
		}
		return passwordResetSentMsg, nil
	}

	logger.CtxInfo(ctx, "Password reset email sent", "user_id", user.ID)
	return passwordResetSentMsg, nil
}

// ResetPassword - смена пароля по токену из письма
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, db *gorm.DB, rawToken string, req *dto.ResetPasswordRequest) error {
	switch {
	case req.Password == "" || req.ConfirmPassword == "":
		return apperrors.Validation("auth", "Please provide and confirm your new password.")
	case req.Password != req.ConfirmPassword:
		return apperrors.Validation("auth", "Passwords do not match.")
	}
	if err := checkPasswordLength("Password", req.Password); err != nil {
		return err
	}

	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return apperrors.TokenInvalidOrExpired()
	}

	user, err := s.userRepo.FindByResetTokenHash(db, auth.HashResetToken(rawToken), s.now())
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.TokenInvalidOrExpired()
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	user.ClearResetToken()
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Password reset completed", "user_id", user.ID)
	return nil
}

func (s *AuthServiceImpl) SeedFirstAdmin(ctx context.Context, db *gorm.DB, emailAddr, password string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" || password == "" {
		return nil
	}
	if err := checkPasswordLength("First admin password", password); err != nil {
		return err
	}

	admins, err := s.userRepo.CountByRole(db, models.UserRoleAdmin)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins > 0 {
		return nil
	}

	user, err := s.userRepo.FindByEmail(db, emailAddr)
	switch {
	case err == nil:
		// уже зарегистрирован - повышаем роль
		user.Role = models.UserRoleAdmin
		if err := s.userRepo.Update(db, user); err != nil {
			return fmt.Errorf("promote first admin: %w", err)
		}
	case errors.Is(err, repositories.ErrRecordNotFound):
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		user = &models.User{
			Name:         "Admin",
			Email:        emailAddr,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
		}
		if err := s.userRepo.Create(db, user); err != nil {
			return fmt.Errorf("create first admin: %w", err)
		}
	default:
		return fmt.Errorf("find first admin: %w", err)
	}

	logger.CtxInfo(ctx, "First admin ready", "user_id", user.ID, "email", user.Email)
	return nil
}

func (s *AuthServiceImpl) issueToken(user *models.User) (string, error) {
	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// checkPasswordLength - длина в байтах, bcrypt отвергает пароли длиннее auth.MaxPasswordLength
func checkPasswordLength(label, password string) error {
	switch {
	case len(password) < auth.MinPasswordLength:
		return apperrors.Validation("auth", fmt.Sprintf(passwordLengthMsgFormat, label, auth.MinPasswordLength))
	case len(password) > auth.MaxPasswordLength:
		return apperrors.Validation("auth", fmt.Sprintf(passwordTooLongFormat, label, auth.MaxPasswordLength))
	}
	return nil
}
