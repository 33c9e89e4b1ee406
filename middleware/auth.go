package middleware

import (
	"net/http"
	"time"

	"ezsail-backend/models"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session identity: role plus the operator/hotel scope
// the role implies.
type Claims struct {
	UserID     uint   `json:"user_id"`
	Role       string `json:"role"`
	OperatorID uint   `json:"operator_id,omitempty"`
	HotelID    uint   `json:"hotel_id,omitempty"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(utils.EnvOrDefault("JWT_SECRET", "dev-insecure-secret-change-me"))
}

// SignToken creates a signed session token for a user.
func SignToken(user *models.User, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    "ezsail-backend",
		},
	}
	if user.OperatorID != nil {
		claims.OperatorID = *user.OperatorID
	}
	if user.HotelID != nil {
		claims.HotelID = *user.HotelID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// RequireAuth validates Bearer JWT, places claims into context and continues.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.unauthorized", "message": "missing or invalid Authorization header"}})
			return
		}
		tokenString := authHeader[7:]

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.unauthorized", "message": "invalid or expired token"}})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("operator_id", claims.OperatorID)
		c.Set("hotel_id", claims.HotelID)
		c.Next()
	}
}

// RequireRoles ensures the authenticated principal has one of the allowed
// roles. Runs after RequireAuth.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	roleSet := map[string]struct{}{}
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := roleSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"code": "error.forbidden", "message": "insufficient role"}})
			return
		}
		c.Next()
	}
}

// CallerScope reads the identity the auth middleware stored in the context.
func CallerScope(c *gin.Context) (userID, operatorID, hotelID uint, role string) {
	userID = c.GetUint("user_id")
	operatorID = c.GetUint("operator_id")
	hotelID = c.GetUint("hotel_id")
	role = c.GetString("role")
	return
}
