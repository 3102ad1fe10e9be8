package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/db"
	"github.com/sibyct/timesheet/internal/auth"
	"github.com/sibyct/timesheet/internal/models"
	"github.com/sibyct/timesheet/internal/types"
)

type AuthenticatedUser struct {
	UserID    int    `json:"userId"`
	Username  string `json:"username"`
	Role      int    `json:"role"`
	FirstName string `json:"firstName"`
}

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Authorization header format must be Bearer {token}"})
			return
		}

		token, err := auth.VerifyJWT(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Invalid or expired token"})
			return
		}

		claims, ok := auth.ParseClaims(token)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Invalid token claims"})
			return
		}

		var user models.User

		if err := db.DB.Where("user_id = ?", claims.UserID).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			UserID:    user.UserID,
			Username:  user.Username,
			Role:      user.Role,
			FirstName: user.FirstName,
		})
		ctx.Next()
	}
}

// AdminMiddleware gates the /admin group; it assumes AuthMiddleware already
// ran and stored the current user.
func AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		user, ok := value.(AuthenticatedUser)

		if !exists || !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
			return
		}

		if user.Role != models.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "Forbidden: Admins only"})
			return
		}

		ctx.Next()
	}
}
