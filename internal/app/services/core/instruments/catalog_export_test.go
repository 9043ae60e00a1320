package instruments

import (
	"bytes"
	"errors"
	"outcomes-service/internal/pkg/dto/responses"
	"outcomes-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCatalog(DefaultCatalog(), "json", &buf))

	var export responses.CatalogExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))
	require.Len(t, export.Joints, 6)

	knee := export.Joints[0]
	assert.Equal(t, "joelho", knee.Key)
	require.NotEmpty(t, knee.Instruments)
	assert.Equal(t, "joelho", knee.Instruments[0].JointKey)
	assert.NotEmpty(t, knee.Instruments[0].Questions)
}

func TestExportCatalogYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCatalog(DefaultCatalog(), "YAML", &buf))

	var export responses.CatalogExport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &export))
	require.Len(t, export.Joints, 6)

	first := export.Joints[0].Instruments[0]
	assert.NotEmpty(t, first.ID, "summary fields are inlined")
	assert.Equal(t, first.QuestionCount, len(first.Questions))
	assert.Contains(t, buf.String(), "short_name:")
}

func TestExportCatalogUnknownFormat(t *testing.T) {
	err := ExportCatalog(DefaultCatalog(), "csv", &bytes.Buffer{})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 400, customErr.StatusCode)
}
