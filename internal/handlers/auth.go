package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/db"
	"github.com/sibyct/timesheet/internal/auth"
	"github.com/sibyct/timesheet/internal/models"
	"github.com/sibyct/timesheet/internal/types"
	"github.com/sibyct/timesheet/internal/utils"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Username and password are required"})
		return
	}

	var user models.User

	err := db.DB.Where("username = ?", req.Username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Invalid credentials"})
			return
		}
		respondError(ctx, err)
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(user.UserID, user.Username, user.Role, user.FirstName)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token":  token,
		"role":   user.Role,
		"status": "Login successful!",
	})
}

func Logout(ctx *gin.Context) {
	// Token invalidation is client-side: tokens are short-lived and there
	// is no server-side session to tear down.
	ctx.JSON(http.StatusOK, gin.H{"status": "Bye!"})
}

func IsAuthenticated(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"authenticate": true,
		"userData": types.UserResponse{
			UserID:    currentUser.UserID,
			Username:  currentUser.Username,
			Role:      currentUser.Role,
			FirstName: currentUser.FirstName,
		},
	})
}

func ChangePassword(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		return
	}

	var req ChangePasswordRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Password must be at least 6 characters"})
		return
	}

	hash, err := auth.HashPassword(req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	err = db.DB.Model(&models.User{}).
		Where("username = ?", currentUser.Username).
		Update("password", hash).Error

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
