package registry

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
)

// kindFiles maps each registry kind to its definition file name inside the
// data directory
var kindFiles = map[entities.Kind]string{
	entities.KindConsumable: "consumables.json",
	entities.KindWeapon:     "weapons.json",
	entities.KindArmor:      "armors.json",
}

// NewFileStore loads the three definition files from the data directory
// into an in-memory registry. All three files must exist; an empty array is
// a valid file. Duplicate ids within a file fail the load, unlike note
// typos, because a broken table is an authoring error worth failing fast on.
func NewFileStore(dataDir string) (Registry, error) {
	tables := make(map[entities.Kind][]entities.Entity, len(kindFiles))

	for _, kind := range entities.Kinds() {
		path := filepath.Join(dataDir, kindFiles[kind])

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFoundf("definition file %s not found", path)
			}
			return nil, errors.Wrapf(err, "failed to read definition file %s", path)
		}

		var file File
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument,
				"definition file %s is not valid JSON", path)
		}

		table := make([]entities.Entity, 0, len(file))
		for _, doc := range file {
			table = append(table, doc.toEntity(kind))
		}
		tables[kind] = table

		slog.Info("Loaded entity definitions",
			"kind", kind,
			"file", path,
			"count", len(table),
		)
	}

	return newStore(tables)
}
