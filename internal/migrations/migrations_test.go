package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedFilesAreGooseAnnotated(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, names, 2)

	for _, name := range names {
		body, err := fs.ReadFile(Migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMigrations_SchemaMatchesRepositories(t *testing.T) {
	body, err := fs.ReadFile(Migrations, "00002_create_tareas.sql")
	require.NoError(t, err)
	s := string(body)
	for _, col := range []string{"descripcion", "usuario_id", "creada_en"} {
		assert.True(t, strings.Contains(s, col), col)
	}
}

func TestUp_CallsGooseWithEmbeddedRoot(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, Up(context.Background(), new(sql.DB)))
	assert.Equal(t, ".", gotDir)
}

func TestUp_PropagatesGooseError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("dirty database")
	}

	err := Up(context.Background(), new(sql.DB))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
}
