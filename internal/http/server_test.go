package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	httpserver "salesledger/internal/http"
	"salesledger/internal/models"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hierarchy{},
		&models.Package{},
		&models.Prelead{},
		&models.Lead{},
		&models.Opportunity{},
		&models.SalesTeamMember{},
		&models.AuditLog{},
	))

	return httpserver.NewRouter(db, testSecret), db
}

func signToken(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShareEventRequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/share", "", gin.H{
		"kind": "grant", "record_type": "lead", "record_id": 1,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestShareEventGrantRevokeFlow(t *testing.T) {
	r, db := newTestServer(t)

	svc := models.User{Email: "svc@example.com", Status: models.UserActive}
	require.NoError(t, db.Create(&svc).Error)
	rep := models.User{Email: "rep@example.com", Status: models.UserActive}
	require.NoError(t, db.Create(&rep).Error)
	lead := models.Lead{Name: "L1"}
	require.NoError(t, db.Create(&lead).Error)

	token := signToken(t, svc.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/share", token, gin.H{
		"kind":         "grant",
		"record_type":  "lead",
		"record_id":    lead.ID,
		"principal_id": rep.ID,
		"access_mask":  "Read",
	})
	require.Equal(t, http.StatusOK, w.Code)

	listPath := fmt.Sprintf("/api/v1/team-members?record_type=lead&record_id=%d&active=true", lead.ID)
	w = doJSON(t, r, http.MethodGet, listPath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Members []models.SalesTeamMember `json:"members"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Members, 1)
	require.Equal(t, rep.ID, listed.Members[0].UserID)

	w = doJSON(t, r, http.MethodPost, "/api/v1/events/share", token, gin.H{
		"kind":         "revoke",
		"record_type":  "lead",
		"record_id":    lead.ID,
		"principal_id": rep.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, listPath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Empty(t, listed.Members)

	w = doJSON(t, r, http.MethodGet, "/api/v1/audit", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var audited struct {
		Logs []models.AuditLog `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &audited))
	require.Len(t, audited.Logs, 2)
}

func TestShareEventMissingPrincipalIsConsumed(t *testing.T) {
	r, db := newTestServer(t)

	svc := models.User{Email: "svc@example.com", Status: models.UserActive}
	require.NoError(t, db.Create(&svc).Error)
	token := signToken(t, svc.ID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/share", token, gin.H{
		"kind":        "grant",
		"record_type": "lead",
		"record_id":   7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var members int64
	require.NoError(t, db.Model(&models.SalesTeamMember{}).Count(&members).Error)
	require.EqualValues(t, 0, members)
}

func TestLoginAndMe(t *testing.T) {
	r, db := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)
	role := "Sales Manager"
	u := models.User{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: string(hash),
		Status:       models.UserActive,
		Role:         &role,
	}
	require.NoError(t, db.Create(&u).Error)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "admin@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = doJSON(t, r, http.MethodGet, "/api/v1/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Email string  `json:"email"`
		Role  *string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	require.Equal(t, "admin@example.com", me.Email)
	require.NotNil(t, me.Role)
}
