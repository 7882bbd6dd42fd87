package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intered/portal/internal/app/repositories/memory"
	"github.com/intered/portal/internal/config"
	"github.com/intered/portal/internal/pkg/auth"
	"github.com/intered/portal/internal/pkg/session"
)

const adminPassword = "admin-password"

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	cfg    *config.Config
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Database.Driver = "memory"
	cfg.Auth.BcryptCost = auth.MinBcryptCost
	cfg.Auth.AdminPassword = adminPassword
	cfg.JWT.Enabled = true
	cfg.JWT.Secret = "test-secret-with-enough-entropy"

	deps, err := BuildDependencies(context.Background(), cfg, memory.NewStore(), session.NewMemoryStore(), zerolog.Nop())
	require.NoError(t, err)

	return &testAPI{t: t, router: SetupRouter(cfg, deps, zerolog.Nop()), cfg: cfg}
}

type apiResponse struct {
	status  int
	body    map[string]interface{}
	cookies []*http.Cookie
}

func (r apiResponse) data() map[string]interface{} {
	data, _ := r.body["data"].(map[string]interface{})
	return data
}

func (r apiResponse) list() []interface{} {
	list, _ := r.body["data"].([]interface{})
	return list
}

func (r apiResponse) errorCode() string {
	detail, _ := r.body["error"].(map[string]interface{})
	code, _ := detail["code"].(string)
	return code
}

func (r apiResponse) errorField() string {
	detail, _ := r.body["error"].(map[string]interface{})
	field, _ := detail["field"].(string)
	return field
}

// do sends a JSON request. credential is either a session token or "Bearer <jwt>".
func (a *testAPI) do(method, path, credential string, body interface{}) apiResponse {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	switch {
	case strings.HasPrefix(credential, "Bearer "):
		req.Header.Set("Authorization", credential)
	case credential != "":
		req.AddCookie(&http.Cookie{Name: a.cfg.Session.CookieName, Value: credential})
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	resp := apiResponse{status: w.Code, cookies: w.Result().Cookies()}
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp.body), w.Body.String())
	}
	return resp
}

func (a *testAPI) login(username, password string) string {
	a.t.Helper()
	resp := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(a.t, http.StatusOK, resp.status)
	for _, c := range resp.cookies {
		if c.Name == a.cfg.Session.CookieName {
			return c.Value
		}
	}
	a.t.Fatal("login did not set a session cookie")
	return ""
}

func (a *testAPI) create(path, sid string, body interface{}) int64 {
	a.t.Helper()
	resp := a.do(http.MethodPost, path, sid, body)
	require.Equal(a.t, http.StatusCreated, resp.status, resp.body)
	return int64(resp.data()["id"].(float64))
}

func registration(username string) map[string]string {
	return map[string]string{
		"username": username,
		"password": "correct-horse",
		"fullName": "Jane Doe",
		"email":    username + "@intered.example",
	}
}

func TestPing(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "pong", resp.body["message"])
}

func TestRegisterLoginLogout(t *testing.T) {
	api := newTestAPI(t)

	req := registration("jdoe")
	req["role"] = "admin"
	resp := api.do(http.MethodPost, "/api/auth/register", "", req)
	require.Equal(t, http.StatusCreated, resp.status)
	assert.Equal(t, "staff", resp.data()["role"], "anonymous registration never grants admin")
	assert.NotContains(t, resp.data(), "password")

	resp = api.do(http.MethodPost, "/api/auth/register", "", registration("jdoe"))
	assert.Equal(t, http.StatusConflict, resp.status)
	assert.Equal(t, "username", resp.errorField())

	resp = api.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "jdoe", "password": "wrong-horse"})
	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.NotContains(t, resp.body, "data")
	assert.Empty(t, resp.cookies)

	unknown := api.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "nobody", "password": "wrong-horse"})
	assert.Equal(t, resp.status, unknown.status)
	assert.Equal(t, resp.errorCode(), unknown.errorCode())

	sid := api.login("jdoe", "correct-horse")
	resp = api.do(http.MethodGet, "/api/auth/current-user", sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "jdoe", resp.data()["username"])

	resp = api.do(http.MethodPost, "/api/auth/logout", sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.NotEmpty(t, resp.cookies)
	assert.True(t, resp.cookies[0].MaxAge < 0, "logout expires the cookie")

	resp = api.do(http.MethodGet, "/api/auth/current-user", sid, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.status)

	resp = api.do(http.MethodGet, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, resp.status, "logout without a session succeeds")
}

func TestLoginCookieFlags(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": adminPassword})
	require.Equal(t, http.StatusOK, resp.status)
	require.Len(t, resp.cookies, 1)
	assert.True(t, resp.cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, resp.cookies[0].SameSite)
}

func TestRegisterValidation(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodPost, "/api/auth/register", "", map[string]string{"username": "a b", "password": "short"})
	require.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "VAL_001", resp.errorCode())

	detail := resp.body["error"].(map[string]interface{})
	issues := detail["details"].([]interface{})
	fields := map[string]bool{}
	for _, issue := range issues {
		fields[issue.(map[string]interface{})["field"].(string)] = true
	}
	assert.True(t, fields["username"])
	assert.True(t, fields["password"])
	assert.True(t, fields["email"])
}

func TestAdminAssignsRoles(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin", adminPassword)

	req := registration("carol")
	req["role"] = "counselor"
	resp := api.do(http.MethodPost, "/api/auth/register", admin, req)
	require.Equal(t, http.StatusCreated, resp.status)
	assert.Equal(t, "counselor", resp.data()["role"])

	api.do(http.MethodPost, "/api/auth/register", "", registration("dave"))
	staff := api.login("dave", "correct-horse")
	req = registration("erin")
	req["role"] = "admin"
	resp = api.do(http.MethodPost, "/api/auth/register", staff, req)
	assert.Equal(t, http.StatusForbidden, resp.status)
}

func TestBearerToken(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodPost, "/api/auth/token", "", map[string]string{"username": "admin", "password": adminPassword})
	require.Equal(t, http.StatusOK, resp.status)
	token := resp.data()["accessToken"].(string)

	resp = api.do(http.MethodGet, "/api/auth/current-user", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "admin", resp.data()["username"])

	resp = api.do(http.MethodGet, "/api/students", "Bearer not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.status)
}

func TestGates(t *testing.T) {
	api := newTestAPI(t)
	api.do(http.MethodPost, "/api/auth/register", "", registration("dave"))
	staff := api.login("dave", "correct-horse")
	admin := api.login("admin", adminPassword)
	studentID := api.create("/api/students", staff, map[string]interface{}{"firstName": "Ada"})

	tests := []struct {
		name   string
		method string
		path   string
		sid    string
		status int
	}{
		{"anonymous list", http.MethodGet, "/api/students", "", http.StatusUnauthorized},
		{"anonymous stats", http.MethodGet, "/api/stats/summary", "", http.StatusUnauthorized},
		{"staff list users", http.MethodGet, "/api/users", staff, http.StatusForbidden},
		{"admin list users", http.MethodGet, "/api/users", admin, http.StatusOK},
		{"staff delete student", http.MethodDelete, fmt.Sprintf("/api/students/%d", studentID), staff, http.StatusForbidden},
		{"bad id", http.MethodGet, "/api/students/abc", staff, http.StatusBadRequest},
		{"zero id", http.MethodGet, "/api/students/0", staff, http.StatusBadRequest},
		{"missing student", http.MethodGet, "/api/students/999", staff, http.StatusNotFound},
		{"bad stage", http.MethodGet, "/api/students/filter/stage/graduated", staff, http.StatusBadRequest},
		{"bad student id for applications", http.MethodGet, "/api/applications/student/x", staff, http.StatusBadRequest},
		{"admin delete student", http.MethodDelete, fmt.Sprintf("/api/students/%d", studentID), admin, http.StatusNoContent},
		{"delete again", http.MethodDelete, fmt.Sprintf("/api/students/%d", studentID), admin, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.do(tt.method, tt.path, tt.sid, nil)
			assert.Equal(t, tt.status, resp.status, resp.body)
		})
	}
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin", adminPassword)

	me := api.do(http.MethodGet, "/api/auth/current-user", admin, nil)
	id := int64(me.data()["id"].(float64))

	resp := api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", id), admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.status)
}

func TestAdminCannotChangeOwnRole(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin", adminPassword)

	me := api.do(http.MethodGet, "/api/auth/current-user", admin, nil)
	id := int64(me.data()["id"].(float64))

	resp := api.do(http.MethodPut, fmt.Sprintf("/api/users/%d", id), admin, map[string]string{"role": "staff"})
	assert.Equal(t, http.StatusForbidden, resp.status)
	assert.Equal(t, "FORBIDDEN", resp.errorCode())

	me = api.do(http.MethodGet, "/api/auth/current-user", admin, nil)
	assert.Equal(t, "admin", me.data()["role"])
}

func TestPasswordChangeEndsSessions(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin", adminPassword)

	resp := api.do(http.MethodPost, "/api/auth/register", "", registration("jdoe"))
	require.Equal(t, http.StatusCreated, resp.status)
	userID := int64(resp.data()["id"].(float64))
	staff := api.login("jdoe", "correct-horse")

	resp = api.do(http.MethodPut, fmt.Sprintf("/api/users/%d", userID), admin, map[string]string{"password": "battery-staple"})
	require.Equal(t, http.StatusOK, resp.status, resp.body)

	resp = api.do(http.MethodGet, "/api/auth/current-user", staff, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.status)

	staff = api.login("jdoe", "battery-staple")
	resp = api.do(http.MethodGet, "/api/auth/current-user", staff, nil)
	assert.Equal(t, http.StatusOK, resp.status)
}

func TestStudentReferences(t *testing.T) {
	api := newTestAPI(t)
	sid := api.login("admin", adminPassword)
	agentID := api.create("/api/agents", sid, map[string]interface{}{"name": "Priya Shah"})

	resp := api.do(http.MethodPost, "/api/students", sid, `{"firstName":"Ada","agentId":"none"}`)
	require.Equal(t, http.StatusCreated, resp.status)
	assert.Nil(t, resp.data()["agentId"])
	assert.Equal(t, "inquiry", resp.data()["stage"])

	resp = api.do(http.MethodPost, "/api/students", sid, fmt.Sprintf(`{"firstName":"Grace","agentId":"%d"}`, agentID))
	require.Equal(t, http.StatusCreated, resp.status)
	assert.EqualValues(t, agentID, resp.data()["agentId"])
	studentID := int64(resp.data()["id"].(float64))

	resp = api.do(http.MethodGet, fmt.Sprintf("/api/students/%d", studentID), sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "Priya Shah", resp.data()["agentName"])
	assert.Nil(t, resp.data()["universityName"])

	resp = api.do(http.MethodPost, "/api/students", sid, `{"firstName":"Alan","agentId":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, resp.status)

	resp = api.do(http.MethodPost, "/api/students", sid, `{"firstName":"Alan","agentId":999}`)
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "agentId", resp.errorField())

	resp = api.do(http.MethodPut, fmt.Sprintf("/api/students/%d", studentID), sid, `{"agentId":null}`)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Nil(t, resp.data()["agentId"])
	assert.Equal(t, "Grace", resp.data()["firstName"], "absent keys are untouched")
}

func TestApplicationLifecycle(t *testing.T) {
	api := newTestAPI(t)
	sid := api.login("admin", adminPassword)

	var studentID int64
	for i := 0; i < 5; i++ {
		studentID = api.create("/api/students", sid, map[string]interface{}{"firstName": fmt.Sprintf("Student %d", i+1)})
	}
	require.EqualValues(t, 5, studentID)

	universityID := api.create("/api/universities", sid, map[string]interface{}{"name": "University of Leeds"})
	otherUniversityID := api.create("/api/universities", sid, map[string]interface{}{"name": "University of York"})
	programID := api.create("/api/programs", sid, map[string]interface{}{
		"name": "MSc Data Science", "level": "master", "universityId": universityID,
	})

	resp := api.do(http.MethodPost, "/api/applications", sid, fmt.Sprintf(
		`{"studentId":"5","universityId":"%d","programId":%d,"agentId":"none"}`, universityID, programID))
	require.Equal(t, http.StatusCreated, resp.status, resp.body)
	assert.EqualValues(t, 5, resp.data()["studentId"])
	assert.Nil(t, resp.data()["agentId"])
	assert.Equal(t, "document_collection", resp.data()["stage"])
	applicationID := int64(resp.data()["id"].(float64))

	resp = api.do(http.MethodPost, "/api/applications", sid, fmt.Sprintf(
		`{"studentId":5,"universityId":%d,"programId":%d}`, otherUniversityID, programID))
	assert.Equal(t, http.StatusBadRequest, resp.status, "program must belong to the university")

	resp = api.do(http.MethodPost, "/api/applications", sid, `{"studentId":"none","universityId":1,"programId":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.status)

	resp = api.do(http.MethodGet, "/api/applications/student/5", sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Len(t, resp.list(), 1)
	enriched := resp.list()[0].(map[string]interface{})
	assert.Equal(t, "Student 5", enriched["studentName"])
	assert.Equal(t, "University of Leeds", enriched["universityName"])
	assert.Equal(t, "MSc Data Science", enriched["programName"])

	resp = api.do(http.MethodPut, fmt.Sprintf("/api/applications/%d", applicationID), sid, `{"stage":"under_review"}`)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "under_review", resp.data()["stage"])

	resp = api.do(http.MethodPut, fmt.Sprintf("/api/applications/%d", applicationID), sid, `{"programId":"none"}`)
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "programId", resp.errorField())

	resp = api.do(http.MethodGet, fmt.Sprintf("/api/applications/university/%d", otherUniversityID), sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Empty(t, resp.list())

	resp = api.do(http.MethodGet, "/api/applications/filter/stage/under_review", sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Len(t, resp.list(), 1)

	resp = api.do(http.MethodDelete, fmt.Sprintf("/api/universities/%d", universityID), sid, nil)
	require.Equal(t, http.StatusNoContent, resp.status)

	resp = api.do(http.MethodGet, fmt.Sprintf("/api/applications/%d", applicationID), sid, nil)
	assert.Equal(t, http.StatusNotFound, resp.status, "applications go with their university")
}

func TestUpdateClearsDates(t *testing.T) {
	api := newTestAPI(t)
	sid := api.login("admin", adminPassword)

	studentID := api.create("/api/students", sid, map[string]interface{}{"firstName": "Ada", "dateOfBirth": "2001-05-17"})
	universityID := api.create("/api/universities", sid, map[string]interface{}{
		"name": "University of Leeds", "agreementDate": "2024-01-01", "agreementExpiry": "2030-01-01",
	})
	programID := api.create("/api/programs", sid, map[string]interface{}{
		"name": "MSc Data Science", "level": "master", "universityId": universityID, "startDate": "2025-09-22",
	})
	applicationID := api.create("/api/applications", sid, map[string]interface{}{
		"studentId": studentID, "universityId": universityID, "programId": programID,
		"applicationDate": "2025-02-01", "decisionDate": "2030-02-01",
	})

	tests := []struct {
		path  string
		field string
	}{
		{fmt.Sprintf("/api/applications/%d", applicationID), "decisionDate"},
		{fmt.Sprintf("/api/students/%d", studentID), "dateOfBirth"},
		{fmt.Sprintf("/api/universities/%d", universityID), "agreementExpiry"},
		{fmt.Sprintf("/api/programs/%d", programID), "startDate"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			resp := api.do(http.MethodPut, tt.path, sid, fmt.Sprintf(`{%q:null}`, tt.field))
			require.Equal(t, http.StatusOK, resp.status, resp.body)
			assert.Nil(t, resp.data()[tt.field])

			resp = api.do(http.MethodGet, tt.path, sid, nil)
			require.Equal(t, http.StatusOK, resp.status)
			assert.Nil(t, resp.data()[tt.field])
		})
	}

	resp := api.do(http.MethodGet, fmt.Sprintf("/api/universities/%d", universityID), sid, nil)
	assert.Equal(t, "2024-01-01T00:00:00Z", resp.data()["agreementDate"], "absent keys are untouched")

	resp = api.do(http.MethodPut, fmt.Sprintf("/api/applications/%d", applicationID), sid, `{"applicationDate":null}`)
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "applicationDate", resp.errorField())
}

func TestStageCounts(t *testing.T) {
	api := newTestAPI(t)
	sid := api.login("admin", adminPassword)

	api.create("/api/students", sid, map[string]interface{}{"firstName": "Ada"})
	api.create("/api/students", sid, map[string]interface{}{"firstName": "Grace", "stage": "offer"})
	api.create("/api/students", sid, map[string]interface{}{"firstName": "Alan", "stage": "offer", "isHighPriority": true})

	resp := api.do(http.MethodGet, "/api/stats/students/stage-counts", sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, map[string]interface{}{"inquiry": float64(1), "offer": float64(2)}, resp.data())

	resp = api.do(http.MethodGet, "/api/stats/applications/stage-counts", sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Empty(t, resp.data())

	resp = api.do(http.MethodGet, "/api/stats/summary", sid, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.EqualValues(t, 3, resp.data()["students"])
	assert.EqualValues(t, 1, resp.data()["highPriorityStudents"])
	assert.EqualValues(t, 1, resp.data()["users"])
}
