package assets

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

type page struct {
	Products    []row
	ShowDetails bool
	Vendors     []string
	Version     string
}

func TestTemplates(t *testing.T) {
	tmpl := Templates()

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "index.html", page{
		Products:    []row{{ID: "1", Name: "<Widget>"}},
		ShowDetails: true,
		Vendors:     []string{"ABC.com"},
		Version:     "1",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<td>&lt;Widget&gt;</td>")
	assert.Contains(t, out, "<li>ABC.com</li>")
	assert.Contains(t, out, "Version: 1")
}

func TestTemplatesHideDetails(t *testing.T) {
	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, "index.html", page{Vendors: []string{"ABC.com"}})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "ABC.com")
	assert.NotContains(t, buf.String(), "Catalog Detail")
}

func TestPublic(t *testing.T) {
	f, err := Public().Open("css/main.css")
	require.NoError(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), "table.products")
}
