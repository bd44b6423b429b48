package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/api/metrics"
	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
	"github.com/venuelink/venue-services/internal/pkg/password"
	"github.com/venuelink/venue-services/internal/pkg/token"
)

// AuthService implements registration, login and token refresh.
type AuthService struct {
	repo       ports.AuthRepository
	codec      *token.Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, codec *token.Codec, accessTTL, refreshTTL time.Duration, log zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, codec: codec, accessTTL: accessTTL, refreshTTL: refreshTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	digest, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: digest,
		FullName:     input.FullName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || pass == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Same failure as a wrong password so login cannot be used
			// to probe which emails exist.
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		return nil, nil, domain.ErrUserInactive
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, nil, err
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.repo.Update(ctx, user); err != nil {
		// Login already succeeded; a failed timestamp write is not worth
		// failing the request over.
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return pair, user, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.codec.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrUserInactive
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return pair, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
		user.PhoneVerified = false
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) SetActive(ctx context.Context, userID string, active bool) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Bool("active", active).Msg("account status changed")
	return user, nil
}

func (s *AuthService) issuePair(userID string) (*ports.TokenPair, error) {
	access, err := s.codec.Issue(userID, token.TypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.Issue(userID, token.TypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessExpiresAt: time.Now().UTC().Add(s.accessTTL),
	}, nil
}
