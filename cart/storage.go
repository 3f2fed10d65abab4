package cart

import (
	"os"
	"path/filepath"
)

// SnapshotKey is the durable-storage key the serialized cart lives under.
const SnapshotKey = "myShopCart"

// Storage is the durable key/value surface the cart snapshots to. Load must
// return (nil, nil) when the key has never been written.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// FileStorage keeps snapshots as JSON files inside a directory, one file per
// key. It is the single-device durable store for a local session.
type FileStorage struct {
	Dir string
}

func (f FileStorage) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, key+".json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (f FileStorage) Save(key string, data []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.Dir, key+".json"), data, 0o644)
}
