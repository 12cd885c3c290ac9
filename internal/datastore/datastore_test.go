package datastore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGet(t *testing.T) {
	s := NewMemStore()
	id := uuid.New()
	require.NoError(t, s.Save(Record{ID: id, TypeTag: "planetoid", Data: []byte("x")}))

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "planetoid", got.TypeTag)
}

func TestGetMissingReturnsError(t *testing.T) {
	s := NewMemStore()
	_, err := s.Get(uuid.New())
	assert.Error(t, err)
}

func TestQueryFiltersByTypeTag(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Save(Record{ID: uuid.New(), TypeTag: "planetoid"}))
	require.NoError(t, s.Save(Record{ID: uuid.New(), TypeTag: "moon"}))

	planets, err := s.Query(Query{TypeTag: "planetoid"})
	require.NoError(t, err)
	assert.Len(t, planets, 1)

	all, err := s.Query(Query{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteRemovesRecord(t *testing.T) {
	s := NewMemStore()
	id := uuid.New()
	require.NoError(t, s.Save(Record{ID: id}))
	require.NoError(t, s.Delete(id))

	_, err := s.Get(id)
	assert.Error(t, err)
}

func TestDeleteMissingReturnsError(t *testing.T) {
	s := NewMemStore()
	assert.Error(t, s.Delete(uuid.New()))
}
