package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ajju-1209/hostel-management/internal/app/routes"
	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/internal/domain/services/container"
	"github.com/ajju-1209/hostel-management/internal/error/code"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/config"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t         *testing.T
	router    *gin.Engine
	container *container.ServiceContainer
	tokens    map[string]string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(logger.Silent))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db, "auto"))

	cfg := &config.Config{JWTSecretKey: "test-secret", OTPLength: 6}
	c := container.NewServiceContainer(db, cfg)

	s := &testServer{t: t, router: routes.NewRouter(c), container: c, tokens: map[string]string{}}
	for email, role := range map[string]string{
		"a@x.com":     models.RoleResident,
		"m@x.com":     models.RoleAdmin,
		"staff@x.com": models.RoleStaff,
	} {
		u := &models.User{Email: email, FirstName: "F", LastName: "L", UserRole: role}
		require.NoError(t, c.Users().CreateUser(context.Background(), u, "password"))
		token, err := c.JWT().GenerateToken(email, role)
		require.NoError(t, err)
		s.tokens[email] = token
	}
	return s
}

func (s *testServer) do(method, path, as string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[as])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func (s *testServer) createCustom(issueType, text string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/complaints/create", "a@x.com", gin.H{
		"complaintType":     "custom",
		"issueType":         issueType,
		"descriptionCustom": text,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var view struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &view))
	return view.ID
}

func TestCreateComplaint(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/complaints/create", "a@x.com", gin.H{
		"complaintType":     "custom",
		"issueType":         "plumbing",
		"descriptionCustom": "leak",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, code.ErrSuccess, env.Code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "a@x.com", data["createdBy"])
	assert.Equal(t, "custom", data["complaintType"])
	assert.Equal(t, "plumbing", data["issueType"])
	assert.Equal(t, "leak", data["descriptionCustom"])
	assert.Equal(t, "pending", data["status"])
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["createdOnDate"])
	assert.NotContains(t, data, "descriptionStandard")
}

func TestCreateComplaint_InvalidData(t *testing.T) {
	s := newTestServer(t)

	bodies := []gin.H{
		{"complaintType": "other", "issueType": "plumbing", "descriptionCustom": "leak"},
		{"complaintType": "standard", "issueType": "plumbing", "descriptionStandard": 42},
		{"complaintType": "custom", "issueType": "plumbing"},
		{"issueType": "plumbing"},
	}
	for _, body := range bodies {
		w, env := s.do(http.MethodPost, "/api/complaints/create", "a@x.com", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid Data", env.Message)
	}
}

func TestCreateComplaint_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodPost, "/api/complaints/create", "", gin.H{"complaintType": "custom"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteComplaint(t *testing.T) {
	s := newTestServer(t)
	id := s.createCustom("plumbing", "leak")

	w, env := s.do(http.MethodDelete, "/api/complaints/delete/"+id, "a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Complaint Deleted", env.Message)

	w, env = s.do(http.MethodGet, "/api/complaints/getByIssue?status=deferred", "a@x.com", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var records []models.Complaint
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)

	// POST 同样可用
	w, env = s.do(http.MethodPost, "/api/complaints/delete/"+id, "m@x.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Complaint Deleted", env.Message)
}

func TestDeleteComplaint_NotFound(t *testing.T) {
	s := newTestServer(t)

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		w, env := s.do(method, "/api/complaints/delete/"+uuid.NewString(), "a@x.com", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, code.ErrComplaintNotFound, env.Code)
		assert.Equal(t, "No complaint found", env.Message)
	}
}

func TestGetForResident_QueryForms(t *testing.T) {
	s := newTestServer(t)
	s.createCustom("plumbing", "leak")
	s.createCustom("electric", "no power")
	s.createCustom("internet", "slow")

	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 3},
		{query: "?issueType=plumbing", want: 1},
		{query: "?issueType=plumbing&issueType=electric", want: 2},
		{query: "?issueType[]=plumbing&issueType[]=internet", want: 2},
		{query: "?issueType=plumbing&status=pending", want: 1},
		{query: "?status[]=assigned&status[]=solved", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w, env := s.do(http.MethodGet, "/api/complaints/getByIssue"+tt.query, "a@x.com", nil)
			require.Equal(t, http.StatusCreated, w.Code)
			var records []models.Complaint
			require.NoError(t, json.Unmarshal(env.Data, &records))
			assert.Len(t, records, tt.want)
		})
	}

	w, env := s.do(http.MethodGet, "/api/complaints/getByIssue?status=closed", "a@x.com", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrComplaintUnsupportedStatus, env.Code)
}

func TestGetForResident_HidesOTP(t *testing.T) {
	s := newTestServer(t)
	id := s.createCustom("plumbing", "leak")

	w, _ := s.do(http.MethodPost, "/api/complaints/admin/update", "m@x.com", gin.H{
		"id": id, "status": "assigned", "assignedTo": "staff@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, as := range []string{"a@x.com", "staff@x.com"} {
		w, env := s.do(http.MethodGet, "/api/complaints/getByIssue", as, nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var records []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &records))
		require.Len(t, records, 1)
		assert.Equal(t, "assigned", records[0]["status"])
		assert.NotContains(t, records[0], "otpAssigned", as)
	}

	// 管理员视图仍然返回验证码
	w, env := s.do(http.MethodGet, "/api/complaints/admin/get", "m@x.com", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Len(t, views[0]["otpAssigned"], 6)
}

func TestGetForAdmin(t *testing.T) {
	s := newTestServer(t)
	s.createCustom("plumbing", "leak")

	w, _ := s.do(http.MethodGet, "/api/complaints/admin/get", "a@x.com", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := s.do(http.MethodGet, "/api/complaints/admin/get?issueType=plumbing", "m@x.com", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	creator, ok := views[0]["complaintCreatorInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a@x.com", creator["email"])
	assert.Equal(t, "resident", creator["userRole"])
	assert.NotContains(t, creator, "password")
	assert.Equal(t, "leak", views[0]["descriptionCustom"])
}

func TestUpdateAdmin(t *testing.T) {
	s := newTestServer(t)
	id := s.createCustom("plumbing", "leak")

	w, env := s.do(http.MethodPost, "/api/complaints/admin/update", "m@x.com", gin.H{
		"id": id, "status": "assigned", "assignedTo": "staff@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var assigned map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &assigned))
	assert.Equal(t, "assigned", assigned["status"])
	assert.Equal(t, "m@x.com", assigned["assignedBy"])
	person, ok := assigned["assignedPersonInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "staff@x.com", person["email"])
	assert.NotContains(t, assigned, "otpAssigned")

	w, env = s.do(http.MethodPost, "/api/complaints/admin/update", "m@x.com", gin.H{"id": id, "status": "solved"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"solved"}`, string(env.Data))
}

func TestUpdateAdmin_Errors(t *testing.T) {
	s := newTestServer(t)
	id := s.createCustom("plumbing", "leak")

	tests := []struct {
		name     string
		as       string
		body     gin.H
		wantHTTP int
		wantCode int
	}{
		{name: "resident", as: "a@x.com", body: gin.H{"id": id, "status": "solved"}, wantHTTP: http.StatusForbidden, wantCode: code.ErrPermissionDenied},
		{name: "unsupported status", as: "m@x.com", body: gin.H{"id": id, "status": "pending"}, wantHTTP: http.StatusBadRequest, wantCode: code.ErrComplaintUnsupportedStatus},
		{name: "missing assignee", as: "m@x.com", body: gin.H{"id": id, "status": "assigned"}, wantHTTP: http.StatusBadRequest, wantCode: code.ErrComplaintAssigneeRequired},
		{name: "unknown assignee", as: "m@x.com", body: gin.H{"id": id, "status": "assigned", "assignedTo": "nobody@x.com"}, wantHTTP: http.StatusBadRequest, wantCode: code.ErrComplaintAssigneeNotFound},
		{name: "resident assignee", as: "m@x.com", body: gin.H{"id": id, "status": "assigned", "assignedTo": "a@x.com"}, wantHTTP: http.StatusBadRequest, wantCode: code.ErrComplaintAssigneeNotFound},
		{name: "solve pending", as: "m@x.com", body: gin.H{"id": id, "status": "solved"}, wantHTTP: http.StatusBadRequest, wantCode: code.ErrComplaintTransition},
		{name: "not found", as: "m@x.com", body: gin.H{"id": "missing", "status": "solved"}, wantHTTP: http.StatusNotFound, wantCode: code.ErrComplaintNotFound},
		{name: "no id", as: "m@x.com", body: gin.H{"status": "solved"}, wantHTTP: http.StatusBadRequest, wantCode: code.ErrComplaintInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.do(http.MethodPost, "/api/complaints/admin/update", tt.as, tt.body)
			assert.Equal(t, tt.wantHTTP, w.Code)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}
}

func TestUpdateResident(t *testing.T) {
	s := newTestServer(t)
	id := s.createCustom("plumbing", "leak")

	desc, err := s.container.Complaints().CreateStandardDescription(context.Background(), "electric", "No power in room")
	require.NoError(t, err)

	w, env := s.do(http.MethodPost, "/api/complaints/resident/update", "a@x.com", gin.H{
		"id": id, "issueType": "electric", "complaintType": "standard", "descriptionStandard": desc.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "electric", view["issueType"])
	assert.Equal(t, "standard", view["complaintType"])
	assert.Equal(t, "leak", view["descriptionCustom"])
	info, ok := view["standardComplaintDescriptionInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "No power in room", info["description"])

	w, env = s.do(http.MethodPost, "/api/complaints/resident/update", "a@x.com", gin.H{
		"id": uuid.NewString(), "issueType": "electric", "complaintType": "custom", "descriptionCustom": "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No complaint found", env.Message)
}

func TestGetStandardDescriptions(t *testing.T) {
	s := newTestServer(t)
	_, err := s.container.Complaints().CreateStandardDescription(context.Background(), "plumbing", "Tap is leaking")
	require.NoError(t, err)

	w, env := s.do(http.MethodGet, "/api/complaints/descriptions?issueType=plumbing", "a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var descriptions []models.StandardDescription
	require.NoError(t, json.Unmarshal(env.Data, &descriptions))
	require.Len(t, descriptions, 1)
	assert.Equal(t, "Tap is leaking", descriptions[0].Description)
}
