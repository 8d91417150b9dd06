package i18n

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

// LoadFS loads every locales/<lang>.yaml catalog found in fsys.
func LoadFS(bundle *Bundle, fsys fs.FS) error {
	files, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return fmt.Errorf("i18n: list catalogs: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("i18n: no catalogs found")
	}

	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", file, err)
		}
		lang := strings.TrimSuffix(path.Base(file), ".yaml")
		if err := bundle.LoadMessages(lang, data); err != nil {
			return err
		}
	}

	if bundle.log != nil {
		bundle.log.Info("i18n catalogs loaded", slog.Int("languages", len(files)))
	}
	return nil
}

// NewDefaultBundle builds a Bundle from the embedded catalogs.
func NewDefaultBundle(log *slog.Logger) (*Bundle, error) {
	b := NewBundle(log)
	if err := LoadFS(b, LocaleFS); err != nil {
		return nil, err
	}
	return b, nil
}
