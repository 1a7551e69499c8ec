package middleware

import (
	"log"
	"net/http"
	"strings"

	"bookvault/internal/models"
	"bookvault/internal/service"
	"bookvault/internal/util"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware 校验 Bearer token，并在 context 里放入当前用户。
// It is a pure gate: it only reads, then forwards or rejects.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) URL 查询参数 ?token=xxx（用于下载等无法自定义 Header 的场景）
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(auth.JWTSecret(), tokenStr)
		if err != nil {
			// expired / bad signature / malformed are one outcome outwardly
			log.Printf("auth: rejected token (%s)", util.TokenErrorKind(err))
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired token")
			c.Abort()
			return
		}

		user, err := auth.ResolveIdentity(c.Request.Context(), claims.UserID)
		if err != nil {
			// account gone since issuance, or provider failure; either way
			// the caller is not authenticated
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed by AuthMiddleware,
// or nil when the request never passed the gate.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
