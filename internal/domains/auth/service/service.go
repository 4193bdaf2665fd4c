package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frigate/config"
	"frigate/infras/jwt"
	"frigate/infras/otel"
	"frigate/internal/domains/auth/model"
	"frigate/internal/domains/auth/model/dto"
	"frigate/internal/domains/auth/repository"
	"frigate/shared"
	"frigate/shared/constant"
	gDto "frigate/shared/dto"
	"frigate/shared/failure"
	"frigate/shared/password"
	"frigate/shared/timezone"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	repo       repository.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(repo repository.Admin, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	usernameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Username,
				Table:    model.TableName,
			},
		},
	}

	admin, err := s.repo.Get(ctx, usernameFilter)
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized("invalid username or password") // nolint:wrapcheck
	}

	if admin.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized("invalid username or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid username or password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, admin.ID)

	if err := s.repo.Update(ctx, updatedFields, usernameFilter); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Username = admin.Username

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
