package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"TAREAS_BACK-END/internal/auth"
	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/dbx"
	"TAREAS_BACK-END/internal/logging"
	"TAREAS_BACK-END/internal/models"
	tasksrepo "TAREAS_BACK-END/internal/repositories/tasks"
	usersrepo "TAREAS_BACK-END/internal/repositories/users"
)

// --- transaction fakes ---

type fakeTx struct {
	pgx.Tx
	pool *fakePool
}

func (t *fakeTx) Commit(context.Context) error {
	t.pool.commits++
	return t.pool.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.pool.rollbacks++
	return nil
}

// fakePool only opens transactions; the in-memory repos ignore the handle.
type fakePool struct {
	dbx.DBTX
	begins, commits, rollbacks int
	beginErr, commitErr        error
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	p.begins++
	return &fakeTx{pool: p}, nil
}

// --- in-memory store ---

type memStore struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	tasks  map[int64]*models.Task
	nextID int64
	clock  time.Time

	lastLimit, lastOffset int

	// injected failures
	usersErr error
	tasksErr error
}

func newMemStore() *memStore {
	return &memStore{
		users: map[int64]*models.User{},
		tasks: map[int64]*models.Task{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return nil, common.ErrConflict
		}
	}
	u.ID = r.s.id()
	u.CreatedAt = r.s.tick()
	cp := *u
	r.s.users[u.ID] = &cp
	return u, nil
}

func (r memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r memUsers) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return false, r.s.usersErr
	}
	for _, u := range r.s.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) UpdateProfile(_ context.Context, id int64, upd models.ProfileUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return common.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	return nil
}

func (r memUsers) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

type memTasks struct{ s *memStore }

func (r memTasks) ListByOwner(_ context.Context, ownerID int64, limit, offset int) ([]models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.tasksErr != nil {
		return nil, r.s.tasksErr
	}
	r.s.lastLimit, r.s.lastOffset = limit, offset
	var owned []models.Task
	for _, t := range r.s.tasks {
		if t.OwnerID == ownerID {
			owned = append(owned, *t)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})
	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (r memTasks) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.tasksErr != nil {
		return nil, r.s.tasksErr
	}
	t.ID = r.s.id()
	t.CreatedAt = r.s.tick()
	cp := *t
	r.s.tasks[t.ID] = &cp
	return t, nil
}

func (r memTasks) GetByOwner(_ context.Context, id, ownerID int64) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r memTasks) UpdateDescription(_ context.Context, id, ownerID int64, description string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.tasksErr != nil {
		return r.s.tasksErr
	}
	t, ok := r.s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return common.ErrNotFound
	}
	t.Description = description
	return nil
}

func (r memTasks) Delete(_ context.Context, id, ownerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return common.ErrNotFound
	}
	delete(r.s.tasks, id)
	return nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository { return memUsers{m.s} }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasksrepo.Repository { return memTasks{m.s} }

// --- helpers ---

var errStoreDown = errors.New("store down")

type fixture struct {
	store *memStore
	pool  *fakePool
	users *UserService
	tasks *TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	store := newMemStore()
	pool := &fakePool{}
	rm := &fakeRepoManager{s: store}
	return &fixture{
		store: store,
		pool:  pool,
		users: NewUserService(pool, rm, hasher, tokens, logging.Nop{}),
		tasks: NewTaskService(pool, rm, logging.Nop{}),
	}
}

func (f *fixture) register(t *testing.T, name, email, password string) *models.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), name, email, password)
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }
