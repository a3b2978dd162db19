package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	jwtService   service.JWTService
	logger       *zap.Logger
}

func NewAuthService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login проверяет табельный номер и пароль и выдает пару токенов.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	employee, err := s.employeeRepo.FindByPersonnelNumber(ctx, payload.PersonnelNumber)
	if err != nil {
		// Не раскрываем, существует ли сотрудник.
		s.logger.Warn("Попытка входа с неизвестным табельным номером")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !employee.Active {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !employee.PasswordHash.Valid || !utils.CheckPasswordHash(payload.Password, employee.PasswordHash.String) {
		s.logger.Warn("Неверный пароль", zap.Uint64("employee_id", employee.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(employee.ID, employee.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Успешный вход", zap.Uint64("employee_id", employee.ID))
	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenTTL().Seconds()),
	}, nil
}

// Refresh обменивает refresh-токен на новую пару.
func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	employee, err := s.employeeRepo.FindEmployee(ctx, claims.EmployeeID)
	if err != nil || !employee.Active {
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(employee.ID, employee.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenTTL().Seconds()),
	}, nil
}
