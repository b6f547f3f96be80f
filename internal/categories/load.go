package categories

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-faster/jx"

	"tidy/internal/logging"
)

// Load reads the category table from path. A missing file is seeded with the
// built-in defaults (best effort; a write failure is logged and tolerated). A
// file that exists but does not parse is left untouched and the defaults are
// returned instead. Load never fails: callers always get a usable table.
func Load(path string, logger *slog.Logger) *Table {
	if logger == nil {
		logger = logging.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if werr := writeTable(path, defaultCategories()); werr != nil {
				logger.Warn("could not seed default category table",
					logging.String("path", path),
					logging.Error(werr),
				)
			} else {
				logger.Info("wrote default category table", logging.String("path", path))
			}
			return DefaultTable()
		}
		logger.Warn("could not read category table; using built-in defaults",
			logging.String("path", path),
			logging.Error(err),
		)
		return DefaultTable()
	}

	cats, err := decodeTable(data)
	if err != nil {
		logger.Warn("category table is malformed; using built-in defaults",
			logging.String("path", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix or delete the file to regenerate defaults"),
		)
		return DefaultTable()
	}
	return NewTable(cats)
}

// decodeTable parses the JSON object while preserving key order, since
// lookup precedence equals document order.
func decodeTable(data []byte) ([]Category, error) {
	d := jx.DecodeBytes(data)
	var cats []Category
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var exts []string
		if err := d.Arr(func(d *jx.Decoder) error {
			ext, err := d.Str()
			if err != nil {
				return err
			}
			exts = append(exts, ext)
			return nil
		}); err != nil {
			return err
		}
		cats = append(cats, Category{Name: key, Extensions: exts})
		return nil
	}); err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, errors.New("no categories defined")
	}
	return cats, nil
}

func writeTable(path string, cats []Category) error {
	var e jx.Encoder
	e.SetIdent(2)
	e.ObjStart()
	for _, cat := range cats {
		e.FieldStart(cat.Name)
		e.ArrStart()
		for _, ext := range cat.Extensions {
			e.Str(ext)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
	return os.WriteFile(path, append(e.Bytes(), '\n'), 0o644)
}
