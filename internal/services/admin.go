package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/sibyct/timesheet/internal/apperr"
	"github.com/sibyct/timesheet/internal/auth"
	"github.com/sibyct/timesheet/internal/models"
	"github.com/sibyct/timesheet/internal/types"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRef mirrors the search form's user selector, which posts the chosen
// employee as an object.
type UserRef struct {
	UserID int `json:"userId"`
}

// SearchCriteria is the admin search form. Empty fields are skipped; every
// present field is ANDed, and submitted == 1 is always enforced so admins
// only ever see finalized entries.
type SearchCriteria struct {
	FromDate    string   `json:"fromDate"`
	ToDate      string   `json:"toDate"`
	Project     string   `json:"project"`
	Client      string   `json:"client"`
	ProjectType string   `json:"projectType"`
	Users       *UserRef `json:"users"`
}

func applyCriteria(gdb *gorm.DB, criteria SearchCriteria) (*gorm.DB, error) {
	query := gdb.Model(&models.TimesheetEntry{})

	if criteria.FromDate != "" {
		from, err := ParseDate(criteria.FromDate)
		if err != nil {
			return nil, apperr.BadRequest(err.Error())
		}
		query = query.Where("date >= ?", from)
	}

	if criteria.ToDate != "" {
		to, err := ParseDate(criteria.ToDate)
		if err != nil {
			return nil, apperr.BadRequest(err.Error())
		}
		query = query.Where("date <= ?", to)
	}

	if criteria.Project != "" {
		query = query.Where("admin_project = ?", criteria.Project)
	}

	if criteria.Client != "" {
		query = query.Where("admin_client = ?", criteria.Client)
	}

	if criteria.ProjectType != "" {
		query = query.Where("admin_project_type = ?", criteria.ProjectType)
	}

	if criteria.Users != nil {
		query = query.Where("user_id = ?", criteria.Users.UserID)
	}

	return query.Where("submitted = ?", 1), nil
}

func Search(gdb *gorm.DB, criteria SearchCriteria) ([]models.TimesheetEntry, error) {
	query, err := applyCriteria(gdb, criteria)
	if err != nil {
		return nil, err
	}

	var rows []models.TimesheetEntry

	if err := query.Order("date asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// AdminEntryInput is one row as edited in the admin review table. The
// admin-prefixed fields override the employee's originals independently.
type AdminEntryInput struct {
	ID               uint    `json:"id"`
	UserID           int     `json:"userId"`
	Date             string  `json:"date"`
	AdminTime        float64 `json:"adminTime"`
	AdminComments    string  `json:"adminComments"`
	AdminProject     string  `json:"adminProject"`
	AdminClient      string  `json:"adminClient"`
	AdminProjectType string  `json:"adminProjectType"`
}

// SaveAdminData writes admin overrides row by row, then re-runs the search
// with the original criteria so the admin table reflects server truth.
func SaveAdminData(gdb *gorm.DB, rows []AdminEntryInput, criteria SearchCriteria) ([]models.TimesheetEntry, error) {
	for _, entry := range rows {
		date, err := ParseDate(entry.Date)
		if err != nil {
			return nil, apperr.BadRequest(err.Error())
		}

		err = gdb.Model(&models.TimesheetEntry{}).
			Where("id = ? AND user_id = ?", entry.ID, entry.UserID).
			Updates(map[string]interface{}{
				"date":               date,
				"admin_time":         entry.AdminTime,
				"admin_comments":     entry.AdminComments,
				"admin_project":      entry.AdminProject,
				"admin_client":       entry.AdminClient,
				"admin_project_type": entry.AdminProjectType,
			}).Error
		if err != nil {
			return nil, err
		}
	}

	return Search(gdb, criteria)
}

var exportHeader = []string{"Date", "User Id", "Client", "Project", "Project Type", "Hours Worked", "Comments"}

// ExportCSV renders the search result as RFC4180 CSV in the fixed export
// column order.
func ExportCSV(gdb *gorm.DB, criteria SearchCriteria) ([]byte, error) {
	rows, err := Search(gdb, criteria)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format(DateLayout),
			strconv.Itoa(row.UserID),
			row.Client,
			row.Project,
			row.ProjectType,
			strconv.FormatFloat(row.Hours, 'f', -1, 64),
			row.Comments,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportXLSX renders the same export as a real workbook.
func ExportXLSX(gdb *gorm.DB, criteria SearchCriteria) ([]byte, error) {
	rows, err := Search(gdb, criteria)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	header := make([]interface{}, len(exportHeader))
	for i, col := range exportHeader {
		header[i] = col
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			row.Date.Format(DateLayout),
			row.UserID,
			row.Client,
			row.Project,
			row.ProjectType,
			row.Hours,
			row.Comments,
		}
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// RegisterInput is the admin registration form.
type RegisterInput struct {
	Username     string             `json:"username" binding:"required"`
	UserID       int                `json:"userId" binding:"required"`
	HourlyPay    float64            `json:"hourlyPay"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	EmailAddress string             `json:"emailAddress"`
	PhoneNo      string             `json:"phoneNo"`
	ContractType string             `json:"contractType"`
	Address      string             `json:"address"`
	Address2     string             `json:"address2"`
	ProjectList  []types.ProjectRef `json:"projectList"`
	ClientsList  []types.ClientRef  `json:"clientsList"`
}

func GetUsers(gdb *gorm.DB) ([]models.User, error) {
	var users []models.User

	err := gdb.Where("role = ?", models.RoleEmployee).Order("user_id asc").Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

// RegisterFormData seeds the registration form: the highest-numbered user
// (to derive the next sequential userId) and the full client list.
type RegisterFormData struct {
	LastUser *models.User
	Clients  []models.Client
}

func GetRegisterFormData(gdb *gorm.DB) (RegisterFormData, error) {
	var data RegisterFormData

	var lastUser models.User
	err := gdb.Order("user_id desc").First(&lastUser).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return data, err
	}
	if err == nil {
		data.LastUser = &lastUser
	}

	if err := gdb.Preload("Projects").Find(&data.Clients).Error; err != nil {
		return data, err
	}

	return data, nil
}

// RegisterUser creates an employee account with a generated temp password
// and returns that password for one-time display.
func RegisterUser(gdb *gorm.DB, input RegisterInput) (string, error) {
	var existing models.User

	err := gdb.Where("username = ? OR user_id = ?", input.Username, input.UserID).First(&existing).Error
	if err == nil {
		return "", apperr.Conflict("duplicatesFound")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	projects, clients, err := validateAssignments(gdb, input.ProjectList, input.ClientsList)
	if err != nil {
		return "", err
	}

	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return "", err
	}

	user := models.User{
		UserID:       input.UserID,
		Username:     input.Username,
		Password:     hash,
		Role:         models.RoleEmployee,
		ContractType: input.ContractType,
		HourlyPay:    input.HourlyPay,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		PhoneNo:      input.PhoneNo,
		Address:      input.Address,
		Address2:     input.Address2,
		Projects:     projects,
		Clients:      clients,
	}

	if err := gdb.Create(&user).Error; err != nil {
		return "", err
	}

	return tempPassword, nil
}

// UpdateUserInput is the admin user-details form, keyed by username.
type UpdateUserInput struct {
	Username     string             `json:"username" binding:"required"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	EmailAddress string             `json:"emailAddress"`
	PhoneNo      string             `json:"phoneNo"`
	ContractType string             `json:"contractType"`
	Address      string             `json:"address"`
	Address2     string             `json:"address2"`
	Projects     []types.ProjectRef `json:"projects"`
	Clients      []types.ClientRef  `json:"clients"`
}

func UpdateUser(gdb *gorm.DB, input UpdateUserInput) ([]models.User, error) {
	var user models.User

	if err := gdb.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}

	projects, clients, err := validateAssignments(gdb, input.Projects, input.Clients)
	if err != nil {
		return nil, err
	}

	err = gdb.Model(&models.User{}).
		Where("username = ?", input.Username).
		Updates(map[string]interface{}{
			"first_name":    input.FirstName,
			"last_name":     input.LastName,
			"email_address": input.EmailAddress,
			"phone_no":      input.PhoneNo,
			"contract_type": input.ContractType,
			"address":       input.Address,
			"address2":      input.Address2,
			"projects":      projects,
			"clients":       clients,
		}).Error
	if err != nil {
		return nil, err
	}

	return GetUsers(gdb)
}

func DeleteUser(gdb *gorm.DB, userID int) ([]models.User, error) {
	// Hard delete: a soft-deleted tombstone would keep holding the unique
	// username/userId, blocking a replacement account from reusing them.
	err := gdb.Unscoped().Where("user_id = ?", userID).Delete(&models.User{}).Error
	if err != nil {
		return nil, err
	}

	return GetUsers(gdb)
}

// ResetPassword replaces the user's password with a fresh temp password and
// returns it for one-time display.
func ResetPassword(gdb *gorm.DB, username string) (string, error) {
	var user models.User

	if err := gdb.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("User not found")
		}
		return "", err
	}

	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return "", err
	}

	err = gdb.Model(&models.User{}).Where("username = ?", username).Update("password", hash).Error
	if err != nil {
		return "", err
	}

	return tempPassword, nil
}

// validateAssignments checks every assigned client and project name against
// the clients table before snapshotting them onto the user. The snapshots
// stay denormalized, but unknown references are rejected instead of being
// silently stored.
func validateAssignments(gdb *gorm.DB, projects []types.ProjectRef, clients []types.ClientRef) (datatypes.JSON, datatypes.JSON, error) {
	var known []models.Client

	if err := gdb.Preload("Projects").Find(&known).Error; err != nil {
		return nil, nil, err
	}

	clientNames := make(map[string]bool)
	projectNames := make(map[string]bool)

	for _, client := range known {
		clientNames[client.ClientName] = true
		for _, project := range client.Projects {
			projectNames[project.ProjectName] = true
		}
	}

	for _, project := range projects {
		if !projectNames[project.ProjectName] {
			return nil, nil, apperr.BadRequest("Unknown project: " + project.ProjectName)
		}
	}

	for _, client := range clients {
		if !clientNames[client.ClientName] {
			return nil, nil, apperr.BadRequest("Unknown client: " + client.ClientName)
		}
		for _, project := range client.Projects {
			if !projectNames[project.ProjectName] {
				return nil, nil, apperr.BadRequest("Unknown project: " + project.ProjectName)
			}
		}
	}

	if projects == nil {
		projects = []types.ProjectRef{}
	}
	if clients == nil {
		clients = []types.ClientRef{}
	}

	projectsJSON, err := json.Marshal(projects)
	if err != nil {
		return nil, nil, err
	}

	clientsJSON, err := json.Marshal(clients)
	if err != nil {
		return nil, nil, err
	}

	return datatypes.JSON(projectsJSON), datatypes.JSON(clientsJSON), nil
}
