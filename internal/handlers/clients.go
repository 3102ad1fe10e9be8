package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/db"
	"github.com/sibyct/timesheet/internal/services"
)

func GetProjectList(ctx *gin.Context) {
	clients, err := services.GetClients(db.DB)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": clients, "status": "Retrieved"})
}

type SaveProjectListRequest struct {
	NewClients  []services.ClientInput `json:"newClients"`
	UpdatedList []services.ClientInput `json:"updatedList"`
}

func SaveProjectList(ctx *gin.Context) {
	var req SaveProjectListRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid request"})
		return
	}

	clients, err := services.SaveClients(db.DB, req.NewClients, req.UpdatedList)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": clients, "status": "saved"})
}

func DeleteProjectList(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "Invalid client id"})
		return
	}

	if err := services.DeleteClient(db.DB, uint(id)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func GetProjectListAndUserList(ctx *gin.Context) {
	result, err := services.GetClientsAndUsers(db.DB)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
