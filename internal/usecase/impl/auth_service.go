// Package impl contains the implementation of the application's business logic.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "resq/internal/delivery/context"
	"resq/internal/domain/entity"
	domainerrors "resq/internal/domain/errors"
	"resq/internal/domain/repository"
	"resq/internal/domain/service"
	"resq/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.SessionTokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.SessionTokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterRescuer checks for a duplicate, hashes the password and then inserts the
// account and its skill links in one transaction.
func (srv *authService) RegisterRescuer(ctx context.Context, input *usecase.RegisterRescuerInput) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Info("Starting rescuer registration", slog.String("email", email))

	exists, err := srv.accountRepo.ExistsByEmail(ctx, entity.VariantRescuer, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for existing rescuer")
	}
	if exists {
		srv.log(ctx).Warn("Rescuer email already registered", slog.String("email", email))

		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("duplicate rescuer email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		ID:           strings.TrimSpace(input.ID),
		Variant:      entity.VariantRescuer,
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        email,
		PasswordHash: hash,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
	}
	account.NormalizeLocation()

	requested := entity.NormalizeSkillNames(input.Skills)

	var skills []string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create rescuer")
		}

		if len(requested) == 0 {
			return nil
		}

		skillRepo := repoFactory.SkillRepo()
		if err := skillRepo.LinkSkills(ctx, account.ID, requested); err != nil {
			return errors.Wrap(err, "failed to link rescuer skills")
		}

		linked, err := skillRepo.ListByRescuer(ctx, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to read back rescuer skills")
		}
		skills = skillNames(requested, linked)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Rescuer registration aborted", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Rescuer registered", slog.String("rescuerID", account.ID), slog.Int("skills", len(skills)))

	return &usecase.RegisterOutput{Account: usecase.NewAccountInfo(account, skills)}, nil
}

// Login verifies the credential against the account of the requested variant and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	variant, err := entity.ParseVariant(input.Variant)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "type",
			Rule:    "oneof",
			Message: "type must be one of rescuer, authority, organization",
		})
	}

	email := strings.TrimSpace(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, variant, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Login for unregistered email", slog.String("variant", variant.String()), slog.String("email", email))

		return nil, domainerrors.NewNotRegisteredError(variant.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password", slog.String("variant", variant.String()), slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	issued, err := srv.tokenService.Issue(account.Email, variant)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSessionSigningFailed, err.Error())
	}

	srv.log(ctx).Info("Login succeeded", slog.String("variant", variant.String()), slog.String("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:     issued.Token,
		ExpiresAt: issued.Claim.ExpiresAt,
		Variant:   variant,
		Account:   usecase.NewAccountInfo(account, nil),
	}, nil
}

// Session verifies a session token and returns what it asserts.
func (srv *authService) Session(ctx context.Context, token string) (*usecase.SessionOutput, error) {
	if token == "" {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("missing session token")
	}

	claim, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}

	return &usecase.SessionOutput{
		Email:     claim.Email,
		Variant:   claim.Variant,
		IssuedAt:  claim.IssuedAt,
		ExpiresAt: claim.ExpiresAt,
	}, nil
}

// skillNames returns the linked catalog names in the order they were requested.
func skillNames(requested []string, linked []*entity.Skill) []string {
	pos := make(map[string]int, len(requested))
	for i, name := range requested {
		pos[name] = i
	}

	names := make([]string, 0, len(linked))
	for _, s := range linked {
		names = append(names, s.Name)
	}
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(rank(pos, a), rank(pos, b))
	})

	return names
}

func rank(pos map[string]int, name string) int {
	if i, ok := pos[name]; ok {
		return i
	}

	return len(pos)
}
