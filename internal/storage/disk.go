package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"travelplan-frontend/pkg/logger"
)

// DiskStore 把每个槽位写成数据目录下的一个 JSON 文件，
// 内存中保留一份缓存，重启后从磁盘恢复。
type DiskStore struct {
	dataDir string
	mu      sync.RWMutex
	cache   map[string][]byte
}

func NewDiskStore(dataDir string) *DiskStore {
	return &DiskStore{
		dataDir: dataDir,
		cache:   make(map[string][]byte),
	}
}

func (d *DiskStore) Init() error {
	if err := os.MkdirAll(d.dataDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageInit, err)
	}

	if err := d.loadSlots(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageInit, err)
	}

	logger.Info("Disk store initialized successfully")
	return nil
}

func (d *DiskStore) Close() error {
	return nil
}

func (d *DiskStore) loadSlots() error {
	entries, err := os.ReadDir(d.dataDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(d.dataDir, entry.Name()))
		if err != nil {
			logger.Errorf("Failed to load slot file %s: %v", entry.Name(), err)
			continue
		}

		slot := entry.Name()[:len(entry.Name())-len(".json")]
		d.cache[slot] = data
	}

	return nil
}

func (d *DiskStore) slotPath(slot string) string {
	return filepath.Join(d.dataDir, slot+".json")
}

func (d *DiskStore) Get(slot string, v interface{}) error {
	d.mu.RLock()
	data, exists := d.cache[slot]
	d.mu.RUnlock()

	if !exists {
		raw, err := os.ReadFile(d.slotPath(slot))
		if err != nil {
			if os.IsNotExist(err) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: %v", ErrFileOperation, err)
		}
		data = raw

		d.mu.Lock()
		d.cache[slot] = data
		d.mu.Unlock()
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

func (d *DiskStore) Set(slot string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.WriteFile(d.slotPath(slot), data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrFileOperation, err)
	}

	d.cache[slot] = data
	return nil
}

func (d *DiskStore) Clear(slot string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.cache, slot)

	if err := os.Remove(d.slotPath(slot)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrFileOperation, err)
	}
	return nil
}
