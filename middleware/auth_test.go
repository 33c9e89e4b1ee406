package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ezsail-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scoped", RequireAuth(), func(c *gin.Context) {
		userID, operatorID, hotelID, role := CallerScope(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":     userID,
			"operator_id": operatorID,
			"hotel_id":    hotelID,
			"role":        role,
		})
	})
	r.GET("/admin-only", RequireAuth(), RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := testRouter()
	opID := uint(7)
	user := &models.User{
		Email:      "b2b@aegean.example",
		Role:       models.RoleB2B,
		OperatorID: &opID,
	}
	user.ID = 42

	token, err := SignToken(user, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/scoped", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":42`)
	require.Contains(t, w.Body.String(), `"operator_id":7`)
	require.Contains(t, w.Body.String(), `"role":"b2b"`)

	w = doGet(r, "/scoped", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "/scoped", "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r := testRouter()
	user := &models.User{Email: "x@y.example", Role: models.RoleAdmin}
	user.ID = 1

	token, err := SignToken(user, -time.Minute)
	require.NoError(t, err)

	w := doGet(r, "/scoped", token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	r := testRouter()

	admin := &models.User{Email: "root@ezsail.example", Role: models.RoleAdmin}
	admin.ID = 1
	adminToken, err := SignToken(admin, time.Hour)
	require.NoError(t, err)

	hotelID := uint(3)
	concierge := &models.User{Email: "desk@cavo.example", Role: models.RoleConcierge, HotelID: &hotelID}
	concierge.ID = 2
	conciergeToken, err := SignToken(concierge, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/admin-only", adminToken)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doGet(r, "/admin-only", conciergeToken)
	require.Equal(t, http.StatusForbidden, w.Code)
}
