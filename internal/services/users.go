package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/dbx"
	"TAREAS_BACK-END/internal/logging"
	"TAREAS_BACK-END/internal/models"
	"TAREAS_BACK-END/internal/repositories/repomanager"
)

const maxPasswordBytes = 72

// PasswordHasher is satisfied by auth.BcryptHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
	CompareDummy(password string) bool
}

// TokenIssuer is satisfied by auth.TokenManager.
type TokenIssuer interface {
	Issue(subject string) (string, error)
	TTL() time.Duration
}

type UserService struct {
	db          dbx.Pool
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer
	log         logging.Logger
}

func NewUserService(db dbx.Pool, m repomanager.RepositoryManager, hasher PasswordHasher, tokens TokenIssuer, log logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		log:         log,
	}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, common.Validation("Faltan datos de usuario")
	}
	if len(password) > maxPasswordBytes {
		return nil, common.Validation("La contraseña no puede superar 72 bytes")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		return nil, s.internal(ctx, "hash password", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		taken, err := repo.EmailTaken(ctx, email, 0)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrConflict
		}

		user, err = repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.Conflict("Ese usuario ya existe")
		}
		return nil, s.internal(ctx, "create user", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.Validation("Faltan datos")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.CompareDummy(password)
			return nil, common.Unauthorized("Credenciales inválidas")
		}
		return nil, s.internal(ctx, "find user", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, common.Unauthorized("Credenciales inválidas")
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, s.internal(ctx, "issue token", err)
	}

	return &models.Session{Token: token, TokenType: "Bearer", ExpiresIn: s.tokens.TTL()}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFound("Usuario no encontrado")
		}
		return nil, s.internal(ctx, "get profile", err)
	}
	return user, nil
}

// UpdateProfile changes only the supplied fields of the caller's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) error {
	if upd.Empty() {
		return common.Validation("No hay campos para actualizar")
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return common.Validation("'nombre' no puede estar vacío")
		}
		upd.Name = &name
	}
	if upd.Email != nil {
		email := NormalizeEmail(*upd.Email)
		if email == "" {
			return common.Validation("'email' no puede estar vacío")
		}
		upd.Email = &email
	}

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if upd.Email != nil {
			taken, err := repo.EmailTaken(ctx, *upd.Email, userID)
			if err != nil {
				return err
			}
			if taken {
				return common.ErrConflict
			}
		}
		return repo.UpdateProfile(ctx, userID, upd)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrConflict):
		return common.Conflict("Ese email ya está en uso")
	case errors.Is(err, common.ErrNotFound):
		return common.NotFound("Usuario no encontrado")
	default:
		return s.internal(ctx, "update profile", err)
	}
}

func (s *UserService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if current == "" || next == "" {
		return common.Validation("Faltan datos")
	}
	if len(next) > maxPasswordBytes {
		return common.Validation("La contraseña no puede superar 72 bytes")
	}

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !s.hasher.Compare(user.PasswordHash, current) {
			return common.Unauthorized("La contraseña actual es incorrecta")
		}

		hash, err := s.hasher.Hash(next)
		if err != nil {
			return err
		}
		return repo.UpdatePasswordHash(ctx, userID, hash)
	})
	switch {
	case err == nil:
		s.log.Info(ctx, "password changed", "user_id", userID)
		return nil
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrValidation):
		return err
	case errors.Is(err, common.ErrNotFound):
		return common.NotFound("Usuario no encontrado")
	default:
		return s.internal(ctx, "change password", err)
	}
}

// internal logs the cause and hides it behind common.ErrInternal.
func (s *UserService) internal(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, op+" failed", "error", err)
	return common.ErrInternal
}
