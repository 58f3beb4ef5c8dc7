// Package flatfile provides a pipe-delimited text file implementation of the
// storage.Store interface, one file per entity kind.
//
// Saves overwrite the target file in place. There is no temp-file rename and
// no backup, so a crash mid-save can leave a truncated file behind. Field
// values are written as-is: a delimiter inside any field other than a plan
// description corrupts that record for the next load.
package flatfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/storage"
)

// File names inside the data directory.
const (
	PlansFile     = "plans.txt"
	EquipmentFile = "equipment.txt"
	MembersFile   = "members.txt"
)

// Ensure FileStore implements storage.Store
var _ storage.Store = (*FileStore)(nil)

// FileStore implements storage.Store on top of three text files.
type FileStore struct {
	plansPath     string
	equipmentPath string
	membersPath   string
	logger        *slog.Logger
}

// New creates a FileStore rooted at dir. Nothing is read or created until
// the first load or save.
func New(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		plansPath:     filepath.Join(dir, PlansFile),
		equipmentPath: filepath.Join(dir, EquipmentFile),
		membersPath:   filepath.Join(dir, MembersFile),
		logger:        logger,
	}
}

// Close is a no-op; files are opened per operation.
func (s *FileStore) Close() error {
	return nil
}

// LoadPlans reads the plans file.
func (s *FileStore) LoadPlans(ctx context.Context) ([]models.Plan, error) {
	return load(ctx, s.logger, s.plansPath, PlanCodec)
}

// SavePlans overwrites the plans file.
func (s *FileStore) SavePlans(ctx context.Context, plans []models.Plan) error {
	return save(ctx, s.logger, s.plansPath, PlanCodec, plans)
}

// LoadEquipment reads the equipment file.
func (s *FileStore) LoadEquipment(ctx context.Context) ([]models.Equipment, error) {
	return load(ctx, s.logger, s.equipmentPath, EquipmentCodec)
}

// SaveEquipment overwrites the equipment file.
func (s *FileStore) SaveEquipment(ctx context.Context, equipment []models.Equipment) error {
	return save(ctx, s.logger, s.equipmentPath, EquipmentCodec, equipment)
}

// LoadMembers reads the members file.
func (s *FileStore) LoadMembers(ctx context.Context) ([]models.Member, error) {
	return load(ctx, s.logger, s.membersPath, MemberCodec)
}

// SaveMembers overwrites the members file.
func (s *FileStore) SaveMembers(ctx context.Context, members []models.Member) error {
	return save(ctx, s.logger, s.membersPath, MemberCodec, members)
}

// load returns whatever can be read from path. A missing or unreadable file
// means an empty list, and a damaged file means the records before the
// damage. Both are logged, neither is returned as an error.
func load[T any](ctx context.Context, logger *slog.Logger, path string, codec Codec[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("No file found, starting with an empty list", "kind", codec.Kind, "path", path)
		} else {
			logger.Warn("Cannot open file, starting with an empty list", "kind", codec.Kind, "path", path, "error", err)
		}
		return nil, nil
	}
	defer f.Close()

	records, err := codec.Read(f)
	if err != nil {
		logger.Warn("Partial load, ignoring the rest of the file",
			"kind", codec.Kind,
			"path", path,
			"loaded", len(records),
			"error", err,
		)
		return records, nil
	}

	logger.Info("Loaded records", "kind", codec.Kind, "path", path, "count", len(records))
	return records, nil
}

func save[T any](ctx context.Context, logger *slog.Logger, path string, codec Codec[T], records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s file for writing: %w", codec.Kind, err)
	}

	if err := codec.Write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to save %s records: %w", codec.Kind, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s file: %w", codec.Kind, err)
	}

	logger.Info("Saved records", "kind", codec.Kind, "path", path, "count", len(records))
	return nil
}
