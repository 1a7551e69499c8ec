package handler

import (
	"errors"
	"log"
	"net/http"

	"bookvault/internal/apperr"
	"bookvault/internal/util"

	"github.com/gin-gonic/gin"
)

// writeServiceError translates a service error into HTTP status, business
// code and a safe message. Provider details are logged, never echoed.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrDuplicateEmail):
		util.Error(c, http.StatusConflict, util.CodeConflict, "user with this email already exists")
	case errors.Is(err, apperr.ErrInvalidCredentials):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
	case errors.Is(err, apperr.ErrUnknownIdentity):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired token")
	case errors.Is(err, apperr.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "book not found")
	case errors.Is(err, apperr.ErrAccessDenied):
		util.Error(c, http.StatusForbidden, util.CodeForbidden, "access denied: this book belongs to another user")
	case errors.Is(err, apperr.ErrUpload):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "image upload failed")
	default:
		log.Printf("handler: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}
