package marks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/lixenwraith/vi-mandel/viewport"
	"github.com/lixenwraith/vi-mandel/vmath"
)

var bucketName = []byte("marks")

// openTimeout bounds the wait for the file lock held by another running instance
const openTimeout = time.Second

// record is the stored JSON form of a mark
type record struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (r record) state() viewport.State {
	return viewport.State{Scale: r.Scale, Offset: vmath.Point{X: r.X, Y: r.Y}}
}

// Bolt keeps marks in a bolt database file
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database at path
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("marks: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("marks: create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Set(name rune, st viewport.State) error {
	if err := checkName(name); err != nil {
		return err
	}
	value, err := json.Marshal(record{Scale: st.Scale, X: st.Offset.X, Y: st.Offset.Y})
	if err != nil {
		return err
	}

	tx, err := b.db.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Bucket(bucketName).Put([]byte(string(name)), value); err != nil {
		return err
	}
	return tx.Commit()
}

func (b *Bolt) Get(name rune) (viewport.State, bool, error) {
	if err := checkName(name); err != nil {
		return viewport.State{}, false, err
	}

	var (
		rec   record
		found bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bucketName).Get([]byte(string(name)))
		if value == nil {
			return nil
		}
		found = true
		return json.Unmarshal(value, &rec)
	})
	if err != nil {
		return viewport.State{}, false, fmt.Errorf("marks: read %q: %w", name, err)
	}
	return rec.state(), found, nil
}

func (b *Bolt) List() (map[rune]viewport.State, error) {
	out := make(map[rune]viewport.State)
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			var rec record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("mark %q: %w", k, err)
			}
			name := []rune(string(k))
			if len(name) != 1 {
				return nil
			}
			out[name[0]] = rec.state()
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("marks: list: %w", err)
	}
	return out, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
