package persist

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/classboard/internal/board"
	"github.com/mmynk/classboard/internal/models"
	"github.com/mmynk/classboard/internal/storage"
)

// memStore is an in-memory storage.Store.
type memStore struct {
	data map[string][]byte
	err  error
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

var defaults = models.Settings{CapacityClass: models.CapacityElementaryMiddle, GroupCount: 3}

func sampleState() models.AppState {
	return models.AppState{
		Settings: models.Settings{CapacityClass: models.CapacityHigh, GroupCount: 4},
		People: []models.Person{
			{ID: "p1", Name: "Ava", Gender: models.GenderFemale, LabelIDs: []string{"t1"}, Group: 2},
			{ID: "p2", Name: "Ben", LabelIDs: []string{}, Group: models.Unassigned},
		},
		Labels: models.DefaultLabels(),
		Rules:  []models.Rule{{ID: "r1", MemberIDs: []string{"p1", "p2"}}},
	}
}

func TestLocal_LoadMissing(t *testing.T) {
	l := NewLocal(newMemStore())
	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLocal_SaveLoad(t *testing.T) {
	store := newMemStore()
	l := NewLocal(store)
	ctx := context.Background()

	require.NoError(t, l.Save(ctx, sampleState()))
	raw := string(store.data[StorageKey])
	assert.Contains(t, raw, `"assignedClassId":"2"`)
	assert.Contains(t, raw, `"assignedClassId":null`)
	assert.Contains(t, raw, `"schoolLevel":"HIGH"`)

	got, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleState(), got)
}

func TestLocal_CorruptDocument(t *testing.T) {
	store := newMemStore()
	store.data[StorageKey] = []byte("{not json")

	_, err := NewLocal(store).Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrNotFound))
}

func TestLocal_WriteThroughBoard(t *testing.T) {
	store := newMemStore()
	l := NewLocal(store)
	ctx := board.WithConfirmation(context.Background(), true)

	b := board.Open(ctx, l, board.Options{})
	_, err := b.AddPerson(ctx, "Chloe", models.GenderFemale, nil)
	require.NoError(t, err)

	reopened := board.Open(ctx, l, board.Options{})
	require.Len(t, reopened.State().People, 1)
	assert.Equal(t, "Chloe", reopened.State().People[0].Name)
}

func TestProjects_SaveOpenList(t *testing.T) {
	fs := memfs.New()
	p := NewProjects(fs, defaults)
	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	name, err := p.Save(sampleState(), day)
	require.NoError(t, err)
	assert.Equal(t, "classboard-project_2024-03-05.json", name)

	_, err = p.Save(sampleState(), day.AddDate(0, 0, 1))
	require.NoError(t, err)

	names, err := p.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"classboard-project_2024-03-06.json", "classboard-project_2024-03-05.json"}, names)

	data, err := util.ReadFile(fs, name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"students\": [")

	got, err := p.Open(name)
	require.NoError(t, err)
	assert.Equal(t, sampleState(), got)
}

func TestDecodeProject_Defaults(t *testing.T) {
	got, err := DecodeProject(strings.NewReader(`{"students":[],"tags":[]}`), defaults)
	require.NoError(t, err)

	assert.Equal(t, defaults, got.Settings)
	assert.Equal(t, []models.Rule{}, got.Rules)
	assert.Empty(t, got.People)
}

func TestDecodeProject_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing tags", `{"students":[]}`},
		{"missing students", `{"tags":[]}`},
		{"null students", `{"students":null,"tags":[]}`},
		{"not json", `<xml/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProject(strings.NewReader(tt.doc), defaults)
			assert.ErrorIs(t, err, ErrInvalidProject)
		})
	}
}

func TestImportRejectedLeavesBoardUnchanged(t *testing.T) {
	ctx := board.WithConfirmation(context.Background(), true)
	b := board.New(sampleState(), board.Options{})
	before := b.State()

	if _, err := DecodeProject(strings.NewReader(`{"students":[{"id":"x","name":"X"}]}`), defaults); err == nil {
		t.Fatal("expected invalid project")
	}
	assert.Equal(t, before, b.State())
	assert.False(t, b.CanUndo())

	var buf bytes.Buffer
	require.NoError(t, EncodeProject(&buf, sampleState()))
	imported, err := DecodeProject(&buf, defaults)
	require.NoError(t, err)
	require.NoError(t, b.ReplaceAll(ctx, imported))
	assert.True(t, b.CanUndo())
}
