package editor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goerz/fmtlatex/internal/logger"
)

// BackupManager keeps timestamped copies of files that are about to be
// overwritten by in-place formatting.
type BackupManager struct {
	backupDir string
}

// NewBackupManager creates a new BackupManager. If backupDir is empty,
// backups are created next to the original file.
func NewBackupManager(backupDir string) *BackupManager {
	return &BackupManager{
		backupDir: backupDir,
	}
}

// CreateBackup creates a backup of the specified file and returns the
// backup path.
func (m *BackupManager) CreateBackup(path string) (string, error) {
	logger.Debug("creating backup", logger.String("path", path))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", path)
	}

	timestamp := time.Now().Format("20060102_150405")
	var backupPath string
	if m.backupDir != "" {
		if err := os.MkdirAll(m.backupDir, 0755); err != nil {
			logger.Error("failed to create backup directory", err)
			return "", fmt.Errorf("failed to create backup directory: %w", err)
		}
		backupName := fmt.Sprintf("%s.backup_%s", filepath.Base(path), timestamp)
		backupPath = filepath.Join(m.backupDir, backupName)
	} else {
		backupPath = path + ".backup_" + timestamp
	}

	if err := copyFile(path, backupPath); err != nil {
		logger.Error("failed to copy file", err)
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	logger.Info("backup created", logger.String("backupPath", backupPath))
	return backupPath, nil
}

// Restore restores a file from its backup.
func (m *BackupManager) Restore(backupPath, originalPath string) error {
	logger.Debug("restoring from backup",
		logger.String("backupPath", backupPath),
		logger.String("originalPath", originalPath))

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup does not exist: %s", backupPath)
	}
	return copyFile(backupPath, originalPath)
}

// copyFile copies src to dst, preserving the source file's permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
