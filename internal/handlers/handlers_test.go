package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/db"
	"github.com/sibyct/timesheet/internal/auth"
	"github.com/sibyct/timesheet/internal/models"
	"github.com/sibyct/timesheet/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.ClientProject{},
		&models.TimesheetEntry{},
	))

	db.DB = gdb

	return router.NewRouter()
}

func createAccount(t *testing.T, userID int, username, password string, role int) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		UserID:    userID,
		Username:  username,
		Password:  hash,
		Role:      role,
		FirstName: "Test",
	}
	require.NoError(t, db.DB.Create(&user).Error)
}

func login(t *testing.T, server *gin.Engine, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(gin.H{"username": username, "password": password})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response struct {
		Token string `json:"token"`
		Role  int    `json:"role"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)

	return response.Token
}

func doJSON(server *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, &body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	server.ServeHTTP(recorder, request)
	return recorder
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server := setupServer(t)
	createAccount(t, 1, "alice", "secret123", models.RoleEmployee)

	recorder := doJSON(server, http.MethodPost, "/user/login", "", gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(server, http.MethodPost, "/user/login", "", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTimesheetRoutesRequireAuth(t *testing.T) {
	server := setupServer(t)

	recorder := doJSON(server, http.MethodGet, "/time/getUserTimeLogin", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(server, http.MethodGet, "/time/getUserTimeLogin", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminRoutesForbiddenForEmployees(t *testing.T) {
	server := setupServer(t)
	createAccount(t, 1, "alice", "secret123", models.RoleEmployee)

	token := login(t, server, "alice", "secret123")

	recorder := doJSON(server, http.MethodGet, "/admin/getuserInfo", token, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestGetUserTimeLoginMaterializesEpochWeek(t *testing.T) {
	server := setupServer(t)
	createAccount(t, 1, "alice", "secret123", models.RoleEmployee)

	token := login(t, server, "alice", "secret123")

	recorder := doJSON(server, http.MethodGet, "/time/getUserTimeLogin", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response struct {
		Data       []models.TimesheetEntry `json:"data"`
		DateRanges []string                `json:"dateRanges"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Len(t, response.Data, 7)
	require.NotEmpty(t, response.DateRanges)
	assert.Equal(t, "08/01/2016-08/07/2016", response.DateRanges[0])
}

func TestUpdateAndSubmitTimeSheet(t *testing.T) {
	server := setupServer(t)
	createAccount(t, 1, "alice", "secret123", models.RoleEmployee)

	token := login(t, server, "alice", "secret123")

	recorder := doJSON(server, http.MethodPost, "/time/getDateInfoBetweenDates", token, gin.H{"date": "08/01/2016-08/07/2016"})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var week struct {
		Data []models.TimesheetEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &week))
	require.Len(t, week.Data, 7)

	update := gin.H{
		"dataNeedToUpdate": []gin.H{{
			"id":          week.Data[0].ID,
			"date":        "08/01/2016",
			"clients":     "Acme",
			"project":     "Website",
			"projectType": "Billable",
			"hours":       8,
			"comments":    "kickoff",
		}},
		"newData": []gin.H{},
		"name":    "Alice",
	}

	recorder = doJSON(server, http.MethodPost, "/time/updateTimeSheet", token, update)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = doJSON(server, http.MethodPost, "/time/submitTimeSheet", token, update)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var saved struct {
		Data []models.TimesheetEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &saved))
	require.Len(t, saved.Data, 1)
	assert.Equal(t, 1, saved.Data[0].Submitted)
	assert.EqualValues(t, 8, saved.Data[0].Hours)
}

func TestExportToExcelReturnsCSVAttachment(t *testing.T) {
	server := setupServer(t)
	createAccount(t, 1, "boss", "secret123", models.RoleAdmin)

	entry := models.TimesheetEntry{
		UserID:    2,
		Date:      time.Date(2016, time.August, 3, 0, 0, 0, 0, time.UTC),
		Client:    "Acme",
		Project:   "Website",
		Hours:     8,
		Submitted: 1,
	}
	require.NoError(t, db.DB.Create(&entry).Error)

	token := login(t, server, "boss", "secret123")

	recorder := doJSON(server, http.MethodPost, "/admin/exportToExcel", token, gin.H{})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, recorder.Body.String(), "08/03/2016")
}

func TestChangePassword(t *testing.T) {
	server := setupServer(t)
	createAccount(t, 1, "alice", "secret123", models.RoleEmployee)

	token := login(t, server, "alice", "secret123")

	recorder := doJSON(server, http.MethodPost, "/user/changePassword", token, gin.H{"password": "newsecret"})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Old password no longer works, new one does.
	recorder = doJSON(server, http.MethodPost, "/user/login", "", gin.H{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	login(t, server, "alice", "newsecret")
}
