package path

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Builder path.
type Builder struct {
	workbookDir  string
	workbookName string
	backupDir    string
	uuidFunc     func() string
}

// NewBuilder ...
// backupDir is optional, empty value turns backups off.
func NewBuilder(
	workbookDir string,
	workbookName string,
	backupDir string,
	uuidFunc func() string,
) (*Builder, error) {
	if backupDir != "" {
		if err := os.MkdirAll(backupDir, 0o755); err != nil {
			return nil, fmt.Errorf("backup dir %s: %w", backupDir, err)
		}
	}

	return &Builder{
		workbookDir:  workbookDir,
		workbookName: workbookName,
		backupDir:    backupDir,
		uuidFunc:     uuidFunc,
	}, nil
}

// Workbook returns path to workbook.
func (b *Builder) Workbook() string {
	return filepath.Join(b.workbookDir, b.workbookName)
}

// Backup copies file to backup dir under unique name and returns the copy path.
// Returns empty path if backups are off.
func (b *Builder) Backup(src string) (dst string, err error) {
	if b.backupDir == "" {
		return
	}

	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()

	dst = filepath.Join(b.backupDir, b.uuidFunc()+"-"+filepath.Base(src))
	out, err := os.Create(dst)
	if err != nil {
		dst = ""
		return
	}
	_, err = io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		dst = ""
	}
	return
}
