package instruments

import (
	"fmt"
	"io"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/dto/responses"
	"outcomes-service/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func (c *Catalog) ConvertIntoExport() responses.CatalogExport {
	joints := c.ListJoints()
	export := responses.CatalogExport{Joints: make([]responses.JointExport, 0, len(joints))}
	for _, joint := range joints {
		details := make([]responses.InstrumentDetail, 0, len(joint.Instruments))
		for _, instrument := range joint.Instruments {
			details = append(details, instrument.ConvertIntoDetail(joint.Key))
		}
		export.Joints = append(export.Joints, responses.JointExport{
			Key:         joint.Key,
			Name:        joint.Name,
			Instruments: details,
		})
	}
	return export
}

// ExportCatalog writes the whole catalog to w as json or yaml.
func ExportCatalog(catalog *Catalog, format string, w io.Writer) error {
	export := catalog.ConvertIntoExport()

	switch strings.ToLower(format) {
	case constvars.ExportFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(export); err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		return nil
	case constvars.ExportFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(export); err != nil {
			return fmt.Errorf("encoding catalog as yaml: %w", err)
		}
		return encoder.Close()
	default:
		return exceptions.ErrUnknownExportFormat(nil, format)
	}
}
