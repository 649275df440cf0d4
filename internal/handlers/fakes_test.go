package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"TAREAS_BACK-END/internal/models"
	"TAREAS_BACK-END/internal/utils"
)

type fakeUserService struct {
	registerOut *models.User
	loginOut    *models.Session
	profileOut  *models.User
	err         error

	gotName, gotEmail, gotPassword string
	gotUpdate                      models.ProfileUpdate
	gotUserID                      int64
}

func (f *fakeUserService) Register(_ context.Context, name, email, password string) (*models.User, error) {
	f.gotName, f.gotEmail, f.gotPassword = name, email, password
	return f.registerOut, f.err
}

func (f *fakeUserService) Login(_ context.Context, email, password string) (*models.Session, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.loginOut, f.err
}

func (f *fakeUserService) GetProfile(_ context.Context, userID int64) (*models.User, error) {
	f.gotUserID = userID
	return f.profileOut, f.err
}

func (f *fakeUserService) UpdateProfile(_ context.Context, userID int64, upd models.ProfileUpdate) error {
	f.gotUserID, f.gotUpdate = userID, upd
	return f.err
}

func (f *fakeUserService) ChangePassword(_ context.Context, userID int64, current, next string) error {
	f.gotUserID, f.gotPassword = userID, current+"->"+next
	return f.err
}

type fakeTaskService struct {
	page  *models.TaskPage
	task  *models.Task
	err   error
	calls []string

	gotUserID, gotTaskID int64
	gotPage, gotSize     int
	gotDesc              string
}

func (f *fakeTaskService) List(_ context.Context, userID int64, page, pageSize int) (*models.TaskPage, error) {
	f.calls = append(f.calls, "list")
	f.gotUserID, f.gotPage, f.gotSize = userID, page, pageSize
	return f.page, f.err
}

func (f *fakeTaskService) Create(_ context.Context, userID int64, description string) (*models.Task, error) {
	f.calls = append(f.calls, "create")
	f.gotUserID, f.gotDesc = userID, description
	return f.task, f.err
}

func (f *fakeTaskService) Get(_ context.Context, userID, taskID int64) (*models.Task, error) {
	f.calls = append(f.calls, "get")
	f.gotUserID, f.gotTaskID = userID, taskID
	return f.task, f.err
}

func (f *fakeTaskService) Update(_ context.Context, userID, taskID int64, description string) error {
	f.calls = append(f.calls, "update")
	f.gotUserID, f.gotTaskID, f.gotDesc = userID, taskID, description
	return f.err
}

func (f *fakeTaskService) Delete(_ context.Context, userID, taskID int64) error {
	f.calls = append(f.calls, "delete")
	f.gotUserID, f.gotTaskID = userID, taskID
	return f.err
}

var created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("X", 2*3600))

// authed builds a request as if AuthMiddleware had accepted user userID.
func authed(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(utils.WithUserID(req.Context(), userID))
}
