package services

import (
	"testing"

	"github.com/sibyct/timesheet/internal/models"
	"github.com/sibyct/timesheet/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveClientsInsertsAndUpdates(t *testing.T) {
	gdb := newTestDB(t)

	clients, err := SaveClients(gdb, []ClientInput{
		{ClientName: "Acme", Projects: []types.ProjectRef{{ProjectName: "Website"}, {ProjectName: "Mobile"}}},
		{ClientName: "Initech", Projects: []types.ProjectRef{{ProjectName: "Migration"}}},
	}, nil)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	// Alphabetical by client name.
	assert.Equal(t, "Acme", clients[0].ClientName)
	require.Len(t, clients[0].Projects, 2)

	// Rename and replace the project list wholesale.
	updated, err := SaveClients(gdb, nil, []ClientInput{{
		ID:         clients[1].ID,
		ClientName: "Initrode",
		Projects:   []types.ProjectRef{{ProjectName: "Audit"}},
	}})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	assert.Equal(t, "Initrode", updated[1].ClientName)
	require.Len(t, updated[1].Projects, 1)
	assert.Equal(t, "Audit", updated[1].Projects[0].ProjectName)

	_, err = SaveClients(gdb, nil, []ClientInput{{ID: 999, ClientName: "Ghost"}})
	assert.Error(t, err)
}

func TestDeleteClient(t *testing.T) {
	gdb := newTestDB(t)

	clients, err := SaveClients(gdb, []ClientInput{
		{ClientName: "Acme", Projects: []types.ProjectRef{{ProjectName: "Website"}}},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, DeleteClient(gdb, clients[0].ID))

	remaining, err := GetClients(gdb)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	assert.Error(t, DeleteClient(gdb, clients[0].ID))
}

func TestGetClientsAndUsers(t *testing.T) {
	gdb := newTestDB(t)
	createEmployee(t, gdb, 1, "alice")

	admin := models.User{UserID: 99, Username: "admin", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, gdb.Create(&admin).Error)

	_, err := SaveClients(gdb, []ClientInput{{ClientName: "Acme"}}, nil)
	require.NoError(t, err)

	result, err := GetClientsAndUsers(gdb)
	require.NoError(t, err)

	require.Len(t, result.ClientsList, 1)
	require.Len(t, result.UserList, 1)
	assert.Equal(t, "alice", result.UserList[0].Username)
}
