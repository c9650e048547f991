package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docJSON = `{
  "name": "Doc Name",
  "emissiveAmount": 0.25,
  "grimeAmount": 0.5,
  "scratchAmount": 0.5,
  "swatches": [{
    "swatchId": "S1", "groupName": "Armor", "ior": 1.5,
    "normalTextureTransform": [1, 1],
    "colorVariant": {"topColor": [1, 1, 1], "midColor": [1, 1, 1], "botColor": [1, 1, 1]},
    "scratchColor": [0, 0, 0],
    "colorGradientMap": "", "normalPath": ""
  }],
  "regionLayers": {
    "helmet": {"material": "cvw_1_layered", "layers": [{"swatch": "S1"}]}
  }
}`

func setupResources(t *testing.T, cache string) (resources, input string) {
	t.Helper()
	dir := t.TempDir()
	resources = filepath.Join(dir, "Resources")
	require.NoError(t, os.MkdirAll(resources, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(resources, "template.py"), []byte("ior = IOR_1 grime = GRIMEAMOUNT scratch = SCRATCHAMOUNT emit = UNIEMITAMOUNT # COATINGNAME/REGIONNAME\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(resources, "groups.ini"), []byte("[scratches]\nArmor = 3\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(resources, "cache.ini"), []byte(cache), 0644))

	input = filepath.Join(dir, "coating.json")
	require.NoError(t, os.WriteFile(input, []byte(docJSON), 0644))
	return resources, input
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	resources, input := setupResources(t, "[Paths]\ndetailMaps =\noutput = "+out+"\n")

	_, err := execute(t, "", "-i", input, "-n", "Mint", "--resources", resources)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(out, "Mint", "Mint_helmet.py"))
	require.NoError(t, err)
	assert.Equal(t, "ior = 1.5 grime = 0.5 scratch = 1.5 emit = 0.25 # Mint/helmet\n", string(raw))

	_, err = os.Stat(filepath.Join(out, "Mint", "manifest.json"))
	assert.NoError(t, err)
}

func TestGenerate_DefaultsNameFromDocument(t *testing.T) {
	out := t.TempDir()
	resources, input := setupResources(t, "[Paths]\noutput = "+out+"\n")

	_, err := execute(t, "", "-i", input, "--resources", resources, "--preview", "webp")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "Doc Name", "Doc Name_helmet.py"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "Doc Name", "Doc Name_helmet.webp"))
	assert.NoError(t, err)
}

func TestGenerate_PromptsForOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chosen")
	resources, input := setupResources(t, "[Paths]\ndetailMaps =\noutput =\n")

	stdout, err := execute(t, out+"\n", "-i", input, "-n", "Mint", "--resources", resources)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Please give a folder")

	_, err = os.Stat(filepath.Join(out, "Mint", "Mint_helmet.py"))
	require.NoError(t, err)

	cache, err := os.ReadFile(filepath.Join(resources, "cache.ini"))
	require.NoError(t, err)
	assert.Contains(t, string(cache), out)
}

func TestGenerate_Errors(t *testing.T) {
	out := t.TempDir()
	resources, input := setupResources(t, "[Paths]\noutput = "+out+"\n")

	_, err := execute(t, "", "-n", "Mint", "--resources", resources)
	assert.Error(t, err, "missing -i")

	_, err = execute(t, "", "-i", input, "--resources", resources, "--preview", "gif")
	assert.Error(t, err)

	_, err = execute(t, "", "-i", input, "--resources", resources, "--template", filepath.Join(resources, "nope.py"))
	assert.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coating.schema.json")

	_, err := execute(t, "", "schema", "--out", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"regionLayers"`)
}
