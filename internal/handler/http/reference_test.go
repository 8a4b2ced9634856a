package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/beichen-observer/internal/service"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/models"
)

func TestListUsers_QueryParameters(t *testing.T) {
	router, m := newMockedRouter(t, false)

	m.references.EXPECT().ListUsers(gomock.Any(), models.UserFilter{Role: models.RoleTeacher, Page: 2, PageSize: 1000}).
		Return(models.Page[models.User]{
			Data:  []models.User{{ID: "u1", Name: "王老师", Role: models.RoleTeacher}},
			Total: 21, Page: 2, PageSize: 1000,
		}, nil)

	rr := serve(router, http.MethodGet, "/api/users?role=TEACHER&page=2&pageSize=1000", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	page := decodeBody[models.Page[models.User]](t, rr)
	assert.Equal(t, 21, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "王老师", page.Data[0].Name)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestListUsers_MalformedNumbersUseDefaults(t *testing.T) {
	router, m := newMockedRouter(t, false)

	m.references.EXPECT().ListUsers(gomock.Any(), models.UserFilter{}).Return(models.Page[models.User]{Page: 1, PageSize: 20}, nil)

	rr := serve(router, http.MethodGet, "/api/users?page=first&pageSize=lots", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"total":0,"page":1,"pageSize":20}`, rr.Body.String())
}

func TestCampusAndClasses(t *testing.T) {
	router, m := newMockedRouter(t, false)

	m.references.EXPECT().CreateCampus(gomock.Any(), models.CreateCampusRequest{Name: "北辰幼儿园"}).
		Return(models.ReferenceEntity{ID: "c1", Name: "北辰幼儿园"}, nil)
	m.references.EXPECT().ListCampuses(gomock.Any()).Return(nil, nil)
	m.references.EXPECT().ListClasses(gomock.Any(), "c1").
		Return([]models.ReferenceEntity{{ID: "k1", Name: "大一班", CampusID: "c1"}}, nil)

	rr := serve(router, http.MethodPost, "/api/campus", models.CreateCampusRequest{Name: "北辰幼儿园"})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"c1","name":"北辰幼儿园"}`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/api/campus", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/api/classes?campusId=c1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"k1","name":"大一班","campusId":"c1"}]`, rr.Body.String())
}

func TestCreateReferenceErrors(t *testing.T) {
	router, m := newMockedRouter(t, false)

	m.references.EXPECT().CreateClass(gomock.Any(), gomock.Any()).Return(models.ReferenceEntity{}, service.ErrInvalidDataProvided)
	m.references.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	rr := serve(router, http.MethodPost, "/api/classes", models.CreateClassRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(router, http.MethodPost, "/api/users", models.CreateUserRequest{Name: "王老师", Email: "wang@beichen.cn", Role: models.RoleTeacher})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{store.ErrRecordNotFound, http.StatusNotFound},
		{store.ErrInvalidRecord, http.StatusBadRequest},
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrWrongCredentials, http.StatusUnauthorized},
		{service.ErrAuthDisabled, http.StatusNotImplemented},
		{store.ErrReferenceAlreadyExists, http.StatusConflict},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
