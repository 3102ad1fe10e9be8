package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/db"
	"github.com/sibyct/timesheet/internal/services"
)

func GetUserInfo(ctx *gin.Context) {
	users, err := services.GetUsers(db.DB)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users, "status": "Retrieved Successfully"})
}

// GetUserID seeds the registration form with the last assigned userId and
// the client list.
func GetUserID(ctx *gin.Context) {
	form, err := services.GetRegisterFormData(db.DB)

	if err != nil {
		respondError(ctx, err)
		return
	}

	data := []interface{}{}
	if form.LastUser != nil {
		data = append(data, form.LastUser)
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data, "projects": form.Clients})
}

func Register(ctx *gin.Context) {
	var input services.RegisterInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Username and userId are required"})
		return
	}

	tempPassword, err := services.RegisterUser(db.DB, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": input, "status": "saved", "tempPassword": tempPassword})
}

func DeleteUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid user id"})
		return
	}

	users, err := services.DeleteUser(db.DB, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users, "status": "Retrieved Successfully"})
}

func UpdateUserDetails(ctx *gin.Context) {
	var input services.UpdateUserInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Username is required"})
		return
	}

	users, err := services.UpdateUser(db.DB, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users, "status": "saved"})
}

func GetSearchDetails(ctx *gin.Context) {
	var criteria services.SearchCriteria

	if err := ctx.ShouldBindJSON(&criteria); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid search criteria"})
		return
	}

	results, err := services.Search(db.DB, criteria)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": results})
}

type SaveAdminDataRequest struct {
	DataToUpdate   []services.AdminEntryInput `json:"dataToUpdate"`
	SearchCriteria services.SearchCriteria    `json:"searchCriteria"`
}

func SaveAdminData(ctx *gin.Context) {
	var req SaveAdminDataRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid request"})
		return
	}

	results, err := services.SaveAdminData(db.DB, req.DataToUpdate, req.SearchCriteria)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": results})
}

type ExportRequest struct {
	services.SearchCriteria
	Format string `json:"format"` // "" for CSV, "xlsx" for a workbook
}

func ExportToExcel(ctx *gin.Context) {
	var req ExportRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid search criteria"})
		return
	}

	if req.Format == "xlsx" {
		content, err := services.ExportXLSX(db.DB, req.SearchCriteria)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.Header("Content-Disposition", "attachment; filename=timesheet.xlsx")
		ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
		return
	}

	content, err := services.ExportCSV(db.DB, req.SearchCriteria)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=timesheet.csv")
	ctx.Data(http.StatusOK, "text/csv", content)
}

func ResetPassword(ctx *gin.Context) {
	username := ctx.Param("username")

	tempPassword, err := services.ResetPassword(db.DB, username)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset successful", "tempPassword": tempPassword})
}
