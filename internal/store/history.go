// Package store persists a local history of verification runs in LevelDB.
//
// Key scheme — "|" as separator so digests and ids stay unambiguous:
//
//	r|<id>            → Record JSON          (primary record)
//	d|<digest>|<id>   → nil                  (index by recomputed core digest)
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	prefixRecord = "r|"
	prefixDigest = "d|"
)

// Record is one remembered verification run.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	Digest    string    `json:"digest"`
	Result    string    `json:"result"`
	BadCoils  int       `json:"bad_coils"`
	Steps     int       `json:"trajectory_steps"`
	SeedUsed  float64   `json:"seed_used"`
	BlendMode string    `json:"blend_mode"`
}

// History is the LevelDB-backed run log.
type History struct {
	db *leveldb.DB
}

// Open opens (or creates) the history database at dir. LevelDB is
// single-writer; a second concurrent opener gets an error here.
func Open(dir string) (*History, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open history at %s: %w", dir, err)
	}
	return &History{db: db}, nil
}

// Close releases the database.
func (h *History) Close() error { return h.db.Close() }

// Put stores a run record, assigning its ID and timestamp when unset, and
// returns the stored record.
func (h *History) Put(rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	blob, err := json.Marshal(rec)
	if err != nil {
		return Record{}, err
	}

	batch := new(leveldb.Batch)
	batch.Put([]byte(prefixRecord+rec.ID), blob)
	if rec.Digest != "" {
		batch.Put([]byte(prefixDigest+rec.Digest+"|"+rec.ID), nil)
	}
	if err := h.db.Write(batch, nil); err != nil {
		return Record{}, fmt.Errorf("write history record: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. limit <= 0 means all.
func (h *History) List(limit int) ([]Record, error) {
	recs, err := h.scan(prefixRecord)
	if err != nil {
		return nil, err
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt.After(recs[j].CreatedAt) })
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// ByDigest returns every run recorded for one core digest, newest first.
func (h *History) ByDigest(digest string) ([]Record, error) {
	iter := h.db.NewIterator(util.BytesPrefix([]byte(prefixDigest+digest+"|")), nil)
	defer iter.Release()

	var recs []Record
	for iter.Next() {
		key := string(iter.Key())
		id := key[len(prefixDigest)+len(digest)+1:]
		blob, err := h.db.Get([]byte(prefixRecord+id), nil)
		if err != nil {
			continue // index entry for a purged record
		}
		var rec Record
		if err := json.Unmarshal(blob, &rec); err != nil {
			return nil, fmt.Errorf("decode history record %s: %w", id, err)
		}
		recs = append(recs, rec)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt.After(recs[j].CreatedAt) })
	return recs, nil
}

func (h *History) scan(prefix string) ([]Record, error) {
	iter := h.db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	var recs []Record
	for iter.Next() {
		var rec Record
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, fmt.Errorf("decode history record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, iter.Error()
}
