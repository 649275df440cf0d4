package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/dbx"
	"TAREAS_BACK-END/internal/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and fills in ID and CreatedAt. A duplicate e-mail
// yields common.ErrConflict.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO usuarios (nombre, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, creado_en`

	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, nombre, email, password_hash, creado_en FROM usuarios
		 WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, nombre, email, password_hash, creado_en FROM usuarios
		 WHERE email = $1`

	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// EmailTaken reports whether a user other than excludeID holds email.
// Pass 0 to check against every user.
func (r *PostgresRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1 AND id <> $2)`

	var taken bool
	if err := r.db.QueryRow(ctx, query, email, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return taken, nil
}

// UpdateProfile writes only the supplied fields. Zero affected rows yields
// common.ErrNotFound; a duplicate e-mail yields common.ErrConflict.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) error {
	b := &updateBuilder{}
	if upd.Name != nil {
		b.set(columnName, *upd.Name)
	}
	if upd.Email != nil {
		b.set(columnEmail, *upd.Email)
	}
	if b.empty() {
		return nil
	}

	query, args := b.build(id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	query :=
		`UPDATE usuarios SET password_hash = $1
		 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, hash, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}

	return nil
}

// column is a fixed, compile-time column identifier of usuarios. Values never
// reach the SQL text; only $n placeholders do.
type column string

const (
	columnName  column = "nombre"
	columnEmail column = "email"
)

type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) set(col column, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, string(col)+" = $"+strconv.Itoa(len(b.args)))
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

func (b *updateBuilder) build(id int64) (string, []any) {
	args := append(append([]any{}, b.args...), id)
	query := "UPDATE usuarios SET " + strings.Join(b.sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args))
	return query, args
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
