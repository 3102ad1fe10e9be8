package services

import (
	"errors"
	"time"

	"github.com/sibyct/timesheet/internal/apperr"
	"github.com/sibyct/timesheet/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var emptyJSONList = datatypes.JSON([]byte("[]"))

// WeekData is the employee timesheet payload: the materialized rows for the
// requested range plus the week selector and the user's assigned
// project/client lists.
type WeekData struct {
	Data       []models.TimesheetEntry `json:"data"`
	DateRanges []string                `json:"dateRanges"`
	Projects   datatypes.JSON          `json:"projects"`
	Clients    datatypes.JSON          `json:"clients"`
}

// EntryInput is one timesheet row as edited by the employee. Rows with a
// zero ID are new; the rest update existing rows in place.
type EntryInput struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Client      string  `json:"clients"`
	Project     string  `json:"project"`
	ProjectType string  `json:"projectType"`
	Hours       float64 `json:"hours"`
	Comments    string  `json:"comments"`
}

type SaveEntriesParams struct {
	Updates []EntryInput `json:"dataNeedToUpdate"`
	Inserts []EntryInput `json:"newData"`
	Name    string       `json:"name"`
	UserID  int          `json:"-"`
}

// GetOrInitWeek returns all entries for the user in [start,end],
// guaranteeing every date in the range has a row. Missing rows are created
// on read: an untouched range gets one zero-hour row per day, and a range
// whose last row ended mid-week in the past is backfilled through today.
// Repeated calls within the same day are idempotent.
func GetOrInitWeek(gdb *gorm.DB, start, end time.Time, userID int, ranges []string, now time.Time) (WeekData, error) {
	start = Midnight(start)
	end = Midnight(end)
	today := Midnight(now)

	fetch := func() ([]models.TimesheetEntry, error) {
		var rows []models.TimesheetEntry
		err := gdb.
			Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
			Order("date asc").
			Find(&rows).Error
		return rows, err
	}

	rows, err := fetch()
	if err != nil {
		return WeekData{}, err
	}

	var user models.User

	if err := gdb.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return WeekData{}, err
		}
	}

	build := func(data []models.TimesheetEntry) WeekData {
		result := WeekData{
			Data:       data,
			DateRanges: ranges,
			Projects:   user.Projects,
			Clients:    user.Clients,
		}
		if result.DateRanges == nil {
			result.DateRanges = []string{}
		}
		if len(result.Projects) == 0 {
			result.Projects = emptyJSONList
		}
		if len(result.Clients) == 0 {
			result.Clients = emptyJSONList
		}
		return result
	}

	if len(rows) == 0 {
		blanks := blankEntries(userID, start, end)
		if len(blanks) > 0 {
			if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&blanks).Error; err != nil {
				return WeekData{}, err
			}
		}
		rows, err = fetch()
		if err != nil {
			return WeekData{}, err
		}
		return build(rows), nil
	}

	lastDate := Midnight(rows[len(rows)-1].Date)

	if isoWeekday(lastDate) != 7 && lastDate.Before(today) {
		// The backfill runs through today, which can reach past the
		// requested range into weeks the user already materialized.
		// Days that exist are left alone; the (user_id, date) unique
		// index turns any crash-retry race into a no-op as well.
		blanks := blankEntries(userID, lastDate.AddDate(0, 0, 1), today)
		if len(blanks) > 0 {
			if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&blanks).Error; err != nil {
				return WeekData{}, err
			}
		}
		rows, err = fetch()
		if err != nil {
			return WeekData{}, err
		}
	}

	return build(rows), nil
}

func blankEntries(userID int, from, to time.Time) []models.TimesheetEntry {
	var entries []models.TimesheetEntry

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		entries = append(entries, models.TimesheetEntry{
			UserID: userID,
			Date:   day,
		})
	}

	return entries
}

// SaveEntries applies an employee save (submitted=0) or final submit
// (submitted=1). Existing rows are updated through an (id, user_id)
// compound filter so a forged id cannot touch another user's row; new rows
// are inserted with the user attached. Both paths mirror the employee
// values into the admin fields. The full covering date span is re-read and
// returned so the client refreshes from server truth.
func SaveEntries(gdb *gorm.DB, params SaveEntriesParams, submitted int) ([]models.TimesheetEntry, error) {
	if len(params.Updates) == 0 && len(params.Inserts) == 0 {
		return []models.TimesheetEntry{}, nil
	}

	var minDate, maxDate time.Time

	span := func(date time.Time) {
		if minDate.IsZero() || date.Before(minDate) {
			minDate = date
		}
		if maxDate.IsZero() || date.After(maxDate) {
			maxDate = date
		}
	}

	for _, entry := range params.Updates {
		date, err := ParseDate(entry.Date)
		if err != nil {
			return nil, apperr.BadRequest(err.Error())
		}
		span(date)

		updates := map[string]interface{}{
			"date":               date,
			"first_name":         params.Name,
			"client":             entry.Client,
			"project":            entry.Project,
			"project_type":       entry.ProjectType,
			"hours":              entry.Hours,
			"comments":           entry.Comments,
			"submitted":          submitted,
			"saved":              1,
			"admin_time":         entry.Hours,
			"admin_comments":     entry.Comments,
			"admin_project":      entry.Project,
			"admin_client":       entry.Client,
			"admin_project_type": entry.ProjectType,
		}

		err = gdb.Model(&models.TimesheetEntry{}).
			Where("id = ? AND user_id = ?", entry.ID, params.UserID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	if len(params.Inserts) > 0 {
		var toInsert []models.TimesheetEntry

		for _, entry := range params.Inserts {
			date, err := ParseDate(entry.Date)
			if err != nil {
				return nil, apperr.BadRequest(err.Error())
			}
			span(date)

			toInsert = append(toInsert, models.TimesheetEntry{
				UserID:           params.UserID,
				Date:             date,
				FirstName:        params.Name,
				Client:           entry.Client,
				Project:          entry.Project,
				ProjectType:      entry.ProjectType,
				Hours:            entry.Hours,
				Comments:         entry.Comments,
				Submitted:        submitted,
				Saved:            1,
				AdminTime:        entry.Hours,
				AdminComments:    entry.Comments,
				AdminProject:     entry.Project,
				AdminClient:      entry.Client,
				AdminProjectType: entry.ProjectType,
			})
		}

		if err := gdb.Create(&toInsert).Error; err != nil {
			return nil, err
		}
	}

	var rows []models.TimesheetEntry

	err := gdb.
		Where("user_id = ? AND date >= ? AND date <= ?", params.UserID, minDate, maxDate).
		Order("date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// ProfileInput carries the employee-editable profile fields.
type ProfileInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	PhoneNo      string `json:"phoneNo"`
	Address      string `json:"address"`
	Address2     string `json:"address2"`
}

func GetProfile(gdb *gorm.DB, userID int) (*models.User, error) {
	var user models.User

	if err := gdb.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}

	return &user, nil
}

func SaveProfile(gdb *gorm.DB, userID int, input ProfileInput) error {
	return gdb.Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"first_name":    input.FirstName,
			"last_name":     input.LastName,
			"email_address": input.EmailAddress,
			"phone_no":      input.PhoneNo,
			"address":       input.Address,
			"address2":      input.Address2,
		}).Error
}
