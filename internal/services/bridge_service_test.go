package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/internal/models/db_models"
)

func TestGroupRecentLogsKeepsFiveNewest(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	// newest first across both integrations, as the repository returns them
	var logs []db_models.ICalSyncLog
	for i := 6; i >= 0; i-- {
		for _, id := range []uuid.UUID{first, second} {
			logs = append(logs, db_models.ICalSyncLog{
				ID:            uuid.New(),
				IntegrationID: id,
				StartedAt:     base.Add(time.Duration(i) * time.Hour),
			})
		}
	}

	grouped := GroupRecentLogs(logs, MaxLogsPerIntegration)

	for _, id := range []uuid.UUID{first, second} {
		require.Len(t, grouped[id], 5)
		assert.Equal(t, base.Add(6*time.Hour), grouped[id][0].StartedAt)
		assert.Equal(t, base.Add(2*time.Hour), grouped[id][4].StartedAt)
		for i := 1; i < len(grouped[id]); i++ {
			assert.True(t, grouped[id][i-1].StartedAt.After(grouped[id][i].StartedAt))
		}
	}
}

func TestGroupRoomsByTypeSortsByName(t *testing.T) {
	t1, t2 := uuid.New(), uuid.New()
	rooms := []db_models.Room{
		{RoomTypeID: t1, Name: "B"},
		{RoomTypeID: t1, Name: "A"},
	}

	grouped := GroupRoomsByType(rooms)

	require.Len(t, grouped[t1.String()], 2)
	assert.Equal(t, "A", grouped[t1.String()][0].Name)
	assert.Equal(t, "B", grouped[t1.String()][1].Name)
	assert.Empty(t, grouped[t2.String()])
}

func TestGroupRoomsByTypeIsLocaleAware(t *testing.T) {
	typeID := uuid.New()
	rooms := []db_models.Room{
		{RoomTypeID: typeID, Name: "Zimmer"},
		{RoomTypeID: typeID, Name: "Éclair"},
		{RoomTypeID: typeID, Name: "apple"},
	}

	grouped := GroupRoomsByType(rooms)[typeID.String()]

	names := []string{grouped[0].Name, grouped[1].Name, grouped[2].Name}
	assert.Equal(t, []string{"apple", "Éclair", "Zimmer"}, names)
}

type fakeBridgeRepo struct {
	integrations []db_models.ICalIntegration
	logs         []db_models.ICalSyncLog
	events       []db_models.ICalUnassignedEvent
	logQueries   int
}

func (f *fakeBridgeRepo) ListIntegrations(context.Context, uuid.UUID) ([]db_models.ICalIntegration, error) {
	return f.integrations, nil
}

func (f *fakeBridgeRepo) ListSyncLogs(context.Context, []uuid.UUID) ([]db_models.ICalSyncLog, error) {
	f.logQueries++
	return f.logs, nil
}

func (f *fakeBridgeRepo) ListUnassigned(context.Context, uuid.UUID) ([]db_models.ICalUnassignedEvent, error) {
	return f.events, nil
}

func TestListIntegrationsUsesOneLogQuery(t *testing.T) {
	in1 := db_models.ICalIntegration{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	in2 := db_models.ICalIntegration{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	repo := &fakeBridgeRepo{
		integrations: []db_models.ICalIntegration{in1, in2},
		logs:         []db_models.ICalSyncLog{{IntegrationID: in1.ID, Status: "ok"}},
	}

	res, err := NewBridgeService(repo, &fakeRoomRepo{}).ListIntegrations(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.logQueries)
	require.Len(t, res.Integrations, 2)
	assert.Len(t, res.Integrations[0].Logs, 1)
	assert.NotNil(t, res.Integrations[1].Logs)
	assert.Empty(t, res.Integrations[1].Logs)
}

func TestListUnassignedGroupsRoomsOfPropertyTypes(t *testing.T) {
	propertyID := uuid.New()
	t1 := db_models.RoomType{BaseModel: db_models.BaseModel{ID: uuid.New()}, PropertyID: propertyID, Name: "T1"}
	t2 := db_models.RoomType{BaseModel: db_models.BaseModel{ID: uuid.New()}, PropertyID: propertyID, Name: "T2"}
	rooms := &fakeRoomRepo{
		roomTypes: []db_models.RoomType{t1, t2},
		rooms: []db_models.Room{
			{RoomTypeID: t1.ID, PropertyID: propertyID, Name: "B"},
			{RoomTypeID: t1.ID, PropertyID: propertyID, Name: "A"},
		},
	}

	res, err := NewBridgeService(&fakeBridgeRepo{}, rooms).ListUnassigned(context.Background(), propertyID)

	require.NoError(t, err)
	assert.Len(t, res.RoomTypes, 2)
	assert.NotNil(t, res.Events)
	got := res.RoomsByType[t1.ID.String()]
	require.Len(t, got, 2)
	assert.Equal(t, []string{"A", "B"}, []string{got[0].Name, got[1].Name})
	assert.Empty(t, res.RoomsByType[t2.ID.String()])
}
