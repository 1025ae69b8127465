package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterDataset() Dataset {
	data := Dataset{Title: "Roster", Headers: []string{"id", "name"}}
	data.AddRow("1", "Lee Ann")
	data.AddRow("2", "Ray, Bob")
	data.AddRow("3")
	return data
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(rosterDataset())
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,Lee Ann\n2,\"Ray, Bob\"\n3,\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.EqualError(t, err, "csv requires at least one header")
}

func TestExportersRejectMisalignedRows(t *testing.T) {
	data := Dataset{Headers: []string{"a", "b"}, Rows: [][]string{{"1"}}}
	_, err := NewCSVExporter().Render(data)
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(data)
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(rosterDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
