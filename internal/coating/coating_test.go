package coating

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "name": "Mint Condition",
  "grimeSwatch": "g1",
  "emissiveAmount": 0.5,
  "grimeAmount": 0.25,
  "scratchAmount": 1,
  "swatches": [
    {
      "swatchId": "S1",
      "groupName": "Armor",
      "ior": 1.5,
      "normalTextureTransform": [2, 3],
      "roughness": 0.4,
      "colorVariant": {"id": "cv", "topColor": [1, 0, 0], "midColor": [0, 1, 0], "botColor": [0, 0, 1]},
      "scratchColor": [0.1, 0.2, 0.3],
      "colorGradientMap": "a\\b.png",
      "normalPath": "c\\d.png"
    }
  ],
  "regionLayers": {
    "zeta": {"material": "cvw_1_layered", "bodyPart": "helmet", "layers": [{"swatch": "S1", "colorBlend": true}]},
    "alpha": {"material": "cvw_7_layered", "layers": []},
    "mid": {"material": "cvw_4_layered", "layers": [{"swatch": ""}, {"swatch": "S1", "ignoreTexelDensity": true}]}
  }
}`

const sampleYAML = `name: Mint Condition
grimeSwatch: g1
emissiveAmount: 0.5
grimeAmount: 0.25
scratchAmount: 1
swatches:
  - swatchId: S1
    groupName: Armor
    ior: 1.5
    normalTextureTransform: [2, 3]
    roughness: 0.4
    colorVariant: {id: cv, topColor: [1, 0, 0], midColor: [0, 1, 0], botColor: [0, 0, 1]}
    scratchColor: [0.1, 0.2, 0.3]
    colorGradientMap: 'a\b.png'
    normalPath: 'c\d.png'
regionLayers:
  zeta:
    material: cvw_1_layered
    bodyPart: helmet
    layers: [{swatch: S1, colorBlend: true}]
  alpha:
    material: cvw_7_layered
    layers: []
  mid:
    material: cvw_4_layered
    layers: [{swatch: ""}, {swatch: S1, ignoreTexelDensity: true}]
`

func checkSample(t *testing.T, c *Coating) {
	t.Helper()

	assert.Equal(t, "Mint Condition", c.Name)
	assert.Equal(t, "g1", c.GrimeSwatch)
	assert.Equal(t, float32(0.5), c.EmissiveAmount)
	assert.Equal(t, float32(0.25), c.GrimeAmount)
	assert.Equal(t, float32(1), c.ScratchAmount)

	require.Len(t, c.Swatches, 1)
	s := c.Swatches[0]
	assert.Equal(t, "S1", s.SwatchID)
	assert.Equal(t, "Armor", s.GroupName)
	assert.Equal(t, float32(1.5), s.IOR)
	assert.Equal(t, []float32{2, 3}, s.NormalTextureTransform)
	assert.Equal(t, []float32{0, 0, 1}, s.ColorVariant.BotColor)
	assert.Equal(t, "cv", s.ColorVariant.ID)
	assert.Equal(t, `a\b.png`, s.ColorGradientMap)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, c.RegionLayers.Names())
	regions := make(map[string]Region)
	for name, r := range c.RegionLayers.All() {
		regions[name] = r
	}
	zeta, ok := regions["zeta"]
	require.True(t, ok)
	assert.Equal(t, Region{Material: "cvw_1_layered", BodyPart: "helmet", Layers: []Layer{{Swatch: "S1", ColorBlend: true}}}, zeta)

	mid := regions["mid"]
	require.Len(t, mid.Layers, 2)
	assert.Empty(t, mid.Layers[0].Swatch)
	assert.True(t, mid.Layers[1].IgnoreTexelDensity)
}

func TestParse_JSON(t *testing.T) {
	c, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	checkSample(t, c)
}

func TestParse_YAML(t *testing.T) {
	c, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	checkSample(t, c)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "coating.json")
	yamlPath := filepath.Join(dir, "coating.YML")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0644))

	for _, path := range []string{jsonPath, yamlPath} {
		c, err := Load(path)
		require.NoError(t, err, path)
		checkSample(t, c)
	}

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestParse_DuplicateRegion(t *testing.T) {
	_, err := Parse([]byte(`{"regionLayers": {"a": {"material": "x"}, "a": {"material": "y"}}}`), FormatJSON)
	require.ErrorIs(t, err, ErrDuplicateRegion)

	_, err = Parse([]byte("regionLayers:\n  a: {material: x}\n  a: {material: y}\n"), FormatYAML)
	require.ErrorIs(t, err, ErrDuplicateRegion)
}

func TestParse_BadRegionLayers(t *testing.T) {
	_, err := Parse([]byte(`{"regionLayers": [1, 2]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("regionLayers: [1, 2]\n"), FormatYAML)
	assert.Error(t, err)
}

func TestParse_NullRegionLayers(t *testing.T) {
	c, err := Parse([]byte(`{"name": "x", "regionLayers": null}`), FormatJSON)
	require.NoError(t, err)
	assert.Zero(t, c.RegionLayers.Len())
}

func TestRegionMap_All(t *testing.T) {
	var m RegionMap
	require.NoError(t, m.Set("b", Region{Material: "1"}))
	require.NoError(t, m.Set("a", Region{Material: "2"}))
	require.ErrorIs(t, m.Set("b", Region{}), ErrDuplicateRegion)

	var names []string
	for name, r := range m.All() {
		names = append(names, name+"="+r.Material)
	}
	assert.Equal(t, []string{"b=1", "a=2"}, names)
	assert.Equal(t, 2, m.Len())
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("x.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("x"))
	assert.Equal(t, FormatYAML, FormatFromPath("x.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("X.YML"))
}

func TestBuildIndex(t *testing.T) {
	idx, err := BuildIndex([]Swatch{{SwatchID: "a", GroupName: "one"}, {SwatchID: "b", GroupName: "two"}})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	s, err := idx.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, "two", s.GroupName)

	_, err = idx.Lookup("c")
	require.ErrorIs(t, err, ErrUnknownSwatchID)
	assert.Contains(t, err.Error(), `"c"`)
}

func TestBuildIndex_Duplicate(t *testing.T) {
	_, err := BuildIndex([]Swatch{{SwatchID: "a"}, {SwatchID: "a"}})
	require.ErrorIs(t, err, ErrDuplicateSwatchID)
	assert.Contains(t, err.Error(), `"a"`)
}
