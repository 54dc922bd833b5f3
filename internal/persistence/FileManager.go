package persistence

import (
	"dsatrack/internal/models"
	"dsatrack/internal/persistence/interfaces"
	"dsatrack/internal/providers"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

type FileManager struct {
	store      *models.DocumentStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store *models.DocumentStore, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

// SaveToFile writes a compressed snapshot of the store. The file is replaced
// atomically through a temporary sibling.
func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.store.Snapshot()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile replaces the store contents with the snapshot in fileName.
// A missing file leaves the store untouched.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Infof(providers.TypeApp, "No snapshot at %s, starting empty", fileName)
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(decompressedData, &snapshot); err != nil {
		return err
	}
	if snapshot.Version > models.SnapshotVersion {
		return fmt.Errorf("snapshot version %d is newer than supported version %d", snapshot.Version, models.SnapshotVersion)
	}
	if snapshot.Version < models.SnapshotVersion {
		f.logger.Warnf(providers.TypeApp, "Loading snapshot with old version %d", snapshot.Version)
	}

	f.store.Restore(&snapshot)
	return nil
}
