package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/db"
	"github.com/sibyct/timesheet/internal/services"
	"github.com/sibyct/timesheet/internal/utils"
)

type DateRangeRequest struct {
	Date string `json:"date" binding:"required"` // "MM/DD/YYYY-MM/DD/YYYY"
}

// GetUserTimeLogin is the post-login landing call: it builds the full week
// selector and materializes the epoch week that anchors it.
func GetUserTimeLogin(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		return
	}

	now := time.Now()
	weeks := services.BuildWeeklyRanges(now)

	start, end, err := services.ParseRange(weeks[0])

	if err != nil {
		respondError(ctx, err)
		return
	}

	result, err := services.GetOrInitWeek(db.DB, start, end, userID, weeks, now)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func GetDateInfoBetweenDates(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		return
	}

	var req DateRangeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Date range is required"})
		return
	}

	start, end, err := services.ParseRange(req.Date)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": err.Error()})
		return
	}

	result, err := services.GetOrInitWeek(db.DB, start, end, userID, nil, time.Now())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func UpdateTimeSheet(ctx *gin.Context) {
	saveTimeSheet(ctx, 0)
}

func SubmitTimeSheet(ctx *gin.Context) {
	saveTimeSheet(ctx, 1)
}

func saveTimeSheet(ctx *gin.Context, submitted int) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		return
	}

	var params services.SaveEntriesParams

	if err := ctx.ShouldBindJSON(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid request"})
		return
	}

	params.UserID = currentUser.UserID
	if params.Name == "" {
		params.Name = currentUser.FirstName
	}

	data, err := services.SaveEntries(db.DB, params, submitted)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data, "status": "Saved Successfully"})
}

type ProfileResponse struct {
	Username     string      `json:"username"`
	ContractType string      `json:"contractType"`
	HourlyPay    float64     `json:"hourlyPay"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	EmailAddress string      `json:"emailAddress"`
	PhoneNo      string      `json:"phoneNo"`
	Address      string      `json:"address"`
	Address2     string      `json:"address2"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	PostalCode   string      `json:"postalCode"`
	Projects     interface{} `json:"projects"`
	Clients      interface{} `json:"clients"`
}

func GetProfileInfo(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		return
	}

	user, err := services.GetProfile(db.DB, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	profile := ProfileResponse{
		Username:     user.Username,
		ContractType: user.ContractType,
		HourlyPay:    user.HourlyPay,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
		PhoneNo:      user.PhoneNo,
		Address:      user.Address,
		Address2:     user.Address2,
		City:         user.City,
		State:        user.State,
		PostalCode:   user.PostalCode,
		Projects:     user.Projects,
		Clients:      user.Clients,
	}

	ctx.JSON(http.StatusOK, gin.H{"data": profile, "status": "Retrieved Successfully"})
}

func SaveProfileInfo(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized"})
		return
	}

	var input services.ProfileInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid request"})
		return
	}

	if err := services.SaveProfile(db.DB, userID, input); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Saved Successfully"})
}
