package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TAREAS_BACK-END/internal/common"
	"TAREAS_BACK-END/internal/models"
)

func TestGetMe(t *testing.T) {
	svc := &fakeUserService{profileOut: &models.User{ID: 3, Name: "Ana", Email: "ana@x.com", PasswordHash: "h", CreatedAt: created}}
	rec := httptest.NewRecorder()
	NewProfileHandler(svc).GetMe(rec, authed(http.MethodGet, "/usuarios/me", "", 3))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"nombre":"Ana","email":"ana@x.com","creado_en":"2024-05-01T08:00:00Z"}`, rec.Body.String())
	assert.Equal(t, int64(3), svc.gotUserID)
}

func TestGetMe_Gone(t *testing.T) {
	svc := &fakeUserService{err: common.NotFound("Usuario no encontrado")}
	rec := httptest.NewRecorder()
	NewProfileHandler(svc).GetMe(rec, authed(http.MethodGet, "/usuarios/me", "", 3))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile_PassesOnlySuppliedFields(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantName  *string
		wantEmail *string
	}{
		{name: "name only", body: `{"nombre":"Bea"}`, wantName: strPtr("Bea")},
		{name: "email only", body: `{"email":"b@x.com"}`, wantEmail: strPtr("b@x.com")},
		{name: "null email", body: `{"nombre":"Bea","email":null}`, wantName: strPtr("Bea")},
		{name: "nothing", body: `{}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeUserService{}
			rec := httptest.NewRecorder()
			NewProfileHandler(svc).Update(rec, authed(http.MethodPut, "/usuarios/me", tc.body, 3))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantName, svc.gotUpdate.Name)
			assert.Equal(t, tc.wantEmail, svc.gotUpdate.Email)
		})
	}
}

func TestUpdateProfile_Conflict(t *testing.T) {
	svc := &fakeUserService{err: common.Conflict("Ese email ya está en uso")}
	rec := httptest.NewRecorder()
	NewProfileHandler(svc).Update(rec, authed(http.MethodPut, "/usuarios/me", `{"email":"a@x.com"}`, 3))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestChangePassword(t *testing.T) {
	svc := &fakeUserService{}
	rec := httptest.NewRecorder()
	NewProfileHandler(svc).ChangePassword(rec, authed(http.MethodPut, "/usuarios/me/password",
		`{"current_password":"old","new_password":"new"}`, 3))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "old->new", svc.gotPassword)
	assert.JSONEq(t, `{"mensaje":"Contraseña actualizada"}`, rec.Body.String())
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc := &fakeUserService{err: common.Unauthorized("La contraseña actual es incorrecta")}
	rec := httptest.NewRecorder()
	NewProfileHandler(svc).ChangePassword(rec, authed(http.MethodPut, "/usuarios/me/password",
		`{"current_password":"bad","new_password":"new"}`, 3))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func strPtr(s string) *string { return &s }
