package registry

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/forgebound/crafting-api/internal/entities"
)

// Document models one entity row in a definition file. It is shared with
// the schema command so authors get a machine-readable document for editor
// validation of their data files.
type Document struct {
	ID          int            `json:"id" jsonschema:"required,title=Entity id,minimum=1,description=Positive identifier unique within the file"`
	Name        string         `json:"name" jsonschema:"required,title=Display name,description=Name shown in catalog rows and craft messages"`
	Description string         `json:"description,omitempty" jsonschema:"title=Description,description=Flavor text shown in the detail view"`
	Icon        int            `json:"icon,omitempty" jsonschema:"title=Icon index,description=Icon sheet index used by the presentation host"`
	Note        string         `json:"note,omitempty" jsonschema:"title=Annotation,description=Free-form annotation text; may embed recipe blocks and tag markers"`
	Stats       *StatsDocument `json:"stats,omitempty" jsonschema:"title=Combat stats,description=Present on weapons and armor only"`
}

// StatsDocument models the optional combat stats object
type StatsDocument struct {
	Attack  int `json:"attack,omitempty" jsonschema:"title=Attack,description=Attack contribution when equipped"`
	Defense int `json:"defense,omitempty" jsonschema:"title=Defense,description=Defense contribution when equipped"`
}

// File is the canonical shape of one definition file: an ordered array of
// documents. Array order is declaration order and drives catalog ordering.
type File []Document

// toEntity converts a document row into the runtime entity value
func (d Document) toEntity(kind entities.Kind) entities.Entity {
	entity := entities.Entity{
		Ref:         entities.NewRef(kind, d.ID),
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Note:        d.Note,
	}
	if d.Stats != nil {
		entity.Stats = &entities.CombatStats{
			Attack:  d.Stats.Attack,
			Defense: d.Stats.Defense,
		}
	}
	return entity
}

// SchemaJSON reflects the definition file format into a JSON Schema
// document, indented for human consumption.
func SchemaJSON() ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	docSchema := reflector.ReflectFromType(reflect.TypeOf(Document{}))
	docSchema.Version = ""
	docSchema.Title = "Entity Definition"
	docSchema.Description = "One entity row of a definition file."

	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Type:        "array",
		Title:       "Entity Definition File",
		Description: "Ordered entity definitions for one registry kind; array order is declaration order.",
		Items:       docSchema,
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
