package repomanager

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"TAREAS_BACK-END/internal/repositories/tasks"
	"TAREAS_BACK-END/internal/repositories/users"
)

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	var m RepositoryManager = NewPostgresRepositoryManager()

	require.IsType(t, &users.PostgresRepository{}, m.Users(mock))
	require.IsType(t, &tasks.PostgresRepository{}, m.Tasks(mock))
	require.NoError(t, mock.ExpectationsWereMet(), "factories must not touch the database")
}
