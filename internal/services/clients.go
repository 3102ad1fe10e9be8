package services

import (
	"errors"

	"github.com/sibyct/timesheet/internal/apperr"
	"github.com/sibyct/timesheet/internal/models"
	"github.com/sibyct/timesheet/internal/types"
	"gorm.io/gorm"
)

// ClientInput is a client row from the admin project-list editor. Rows with
// a zero ID are new clients.
type ClientInput struct {
	ID         uint               `json:"id"`
	ClientName string             `json:"clientName" binding:"required"`
	Projects   []types.ProjectRef `json:"projects"`
}

func GetClients(gdb *gorm.DB) ([]models.Client, error) {
	var clients []models.Client

	err := gdb.Preload("Projects").Order("client_name asc").Find(&clients).Error
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// SaveClients inserts the new clients and applies updates to existing ones,
// replacing each updated client's project list wholesale, then returns the
// refreshed list.
func SaveClients(gdb *gorm.DB, newClients []ClientInput, updatedList []ClientInput) ([]models.Client, error) {
	for _, input := range newClients {
		client := models.Client{
			ClientName: input.ClientName,
			Projects:   toClientProjects(input.Projects),
		}
		if err := gdb.Create(&client).Error; err != nil {
			return nil, err
		}
	}

	for _, input := range updatedList {
		var client models.Client

		if err := gdb.First(&client, input.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Client not found")
			}
			return nil, err
		}

		err := gdb.Model(&client).Update("client_name", input.ClientName).Error
		if err != nil {
			return nil, err
		}

		err = gdb.Unscoped().Where("client_id = ?", client.ID).Delete(&models.ClientProject{}).Error
		if err != nil {
			return nil, err
		}

		projects := toClientProjects(input.Projects)
		if len(projects) > 0 {
			for i := range projects {
				projects[i].ClientID = client.ID
			}
			if err := gdb.Create(&projects).Error; err != nil {
				return nil, err
			}
		}
	}

	return GetClients(gdb)
}

func DeleteClient(gdb *gorm.DB, id uint) error {
	var client models.Client

	if err := gdb.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Client not found")
		}
		return err
	}

	if err := gdb.Where("client_id = ?", id).Delete(&models.ClientProject{}).Error; err != nil {
		return err
	}

	return gdb.Delete(&client).Error
}

// ClientsAndUsers feeds the admin user-assignment screen.
type ClientsAndUsers struct {
	ClientsList []models.Client `json:"clientsList"`
	UserList    []models.User   `json:"userList"`
}

func GetClientsAndUsers(gdb *gorm.DB) (ClientsAndUsers, error) {
	clients, err := GetClients(gdb)
	if err != nil {
		return ClientsAndUsers{}, err
	}

	users, err := GetUsers(gdb)
	if err != nil {
		return ClientsAndUsers{}, err
	}

	return ClientsAndUsers{ClientsList: clients, UserList: users}, nil
}

func toClientProjects(refs []types.ProjectRef) []models.ClientProject {
	var projects []models.ClientProject

	for _, ref := range refs {
		projects = append(projects, models.ClientProject{ProjectName: ref.ProjectName})
	}

	return projects
}
