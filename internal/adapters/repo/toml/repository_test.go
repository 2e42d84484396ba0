package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsched/slotgrid/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	projectPath := filepath.Join(t.TempDir(), "project.toml")
	config := viper.New()
	config.Set(ProjectPathKey, projectPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo, projectPath
}

func fixtureProject() domain.Project {
	return domain.Project{
		Sessions: []*domain.Session{
			{
				ID:            1,
				Title:         "Storage deep dive",
				Tracks:        []string{"storage"},
				Duration:      60,
				Capacity:      30,
				Chairs:        []domain.Chair{{Login: "ada", Name: "Ada"}},
				ConflictsWith: []domain.SessionID{2},
			},
			{ID: 2, Title: "Lightning talks", Duration: 30, Capacity: 10},
		},
		Rooms: []domain.Room{
			{Name: "aurora", Capacity: 40, Position: 1},
		},
		Slots: []domain.Slot{
			{
				Name:     "mon-10",
				Start:    time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
				End:      time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
				Duration: 60,
				Position: 1,
			},
		},
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	project := fixtureProject()

	require.NoError(t, repo.Save(context.Background(), project))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, project, got)
}

func TestRepositoryLoadMissingFileIsFatal(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestRepositoryAssignSessionUpdatesOneRecord(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), fixtureProject()))

	room := domain.RoomID("aurora")
	slot := domain.SlotID("mon-10")
	require.NoError(t, repo.AssignSession(context.Background(), 1, &room, &slot))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	first, err := got.Session(1)
	require.NoError(t, err)
	require.NotNil(t, first.Room)
	assert.Equal(t, room, *first.Room)
	require.NotNil(t, first.Slot)
	assert.Equal(t, slot, *first.Slot)

	second, err := got.Session(2)
	require.NoError(t, err)
	assert.Nil(t, second.Room)
}

func TestRepositoryAssignUnknownSession(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), fixtureProject()))

	room := domain.RoomID("aurora")
	err := repo.AssignSession(context.Background(), 99, &room, nil)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, projectPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(projectPath, []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	assert.ErrorContains(t, err, "unsupported project schema version")
}

func TestRepositoryRejectsMalformedProject(t *testing.T) {
	t.Parallel()

	repo, projectPath := newTestRepository(t)
	payload := `version = 1

[[sessions]]
id = 1
title = ""
duration = 60
`
	require.NoError(t, os.WriteFile(projectPath, []byte(payload), 0o600))

	_, err := repo.Load(context.Background())
	assert.ErrorContains(t, err, "title is required")
}
