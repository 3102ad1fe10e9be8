package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/internal/apperr"
)

// respondError maps a service error onto the wire: typed application errors
// keep their status and message, anything else becomes a logged 500.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperr.Error

	if errors.As(err, &appErr) {
		ctx.JSON(appErr.Code, gin.H{"status": appErr.Message})
		return
	}

	log.Printf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"status": "Internal server error"})
}
