// Package datastore specifies the data-store contract the generation
// pipeline treats as an external collaborator (spec §6): get/query/save/
// delete over persisted bodies, identified by uuid.UUID. A concrete
// database-backed store is explicitly out of scope (see DESIGN.md's
// dropped-dependency notes on pgx/mongo-driver/go-redis); this package
// ships only the interface plus an in-memory reference implementation,
// exercised by this package's tests; no other package in this module
// imports it.
//
// Grounded on the teacher's internal/repository pattern (an interface
// with Get/Save/Delete plus a query method) before that package was
// dropped as a web-service concern - the interface shape survives here,
// generalized to planetoid snapshots instead of game-world rows.
package datastore

import (
	"sync"

	"github.com/google/uuid"
	"github.com/thousandworlds/planetoid/internal/perr"
)

// Record is whatever the caller's serialization layer produces for one
// persisted body - this package never inspects its contents, matching
// the spec's "serialization is an external collaborator" stance (§6).
type Record struct {
	ID      uuid.UUID
	TypeTag string
	Data    []byte
}

// Query narrows Query() calls; an empty Query matches everything.
type Query struct {
	TypeTag string
}

// Store is the abstract persistence contract.
type Store interface {
	Get(id uuid.UUID) (Record, error)
	Query(q Query) ([]Record, error)
	Save(r Record) error
	Delete(id uuid.UUID) error
}

// memStore is the in-memory reference Store.
type memStore struct {
	mu   sync.RWMutex
	recs map[uuid.UUID]Record
}

// NewMemStore returns a Store backed by an in-process map, safe for
// concurrent use.
func NewMemStore() Store {
	return &memStore{recs: make(map[uuid.UUID]Record)}
}

func (s *memStore) Get(id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recs[id]
	if !ok {
		return Record{}, perr.New(perr.CodeMissingCollaborator, "no record for id %s", id)
	}
	return r, nil
}

func (s *memStore) Query(q Query) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Record
	for _, r := range s.recs {
		if q.TypeTag != "" && r.TypeTag != q.TypeTag {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *memStore) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[r.ID] = r
	return nil
}

func (s *memStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recs[id]; !ok {
		return perr.New(perr.CodeMissingCollaborator, "no record for id %s", id)
	}
	delete(s.recs, id)
	return nil
}
