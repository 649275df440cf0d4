package repomanager

import (
	"TAREAS_BACK-END/internal/dbx"
	"TAREAS_BACK-END/internal/repositories/tasks"
	"TAREAS_BACK-END/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path can run against the pool or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
