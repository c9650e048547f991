package coating

// Coating is one armor coating document as exported by the Waypoint API.
type Coating struct {
	Name           string    `json:"name" yaml:"name"`
	GrimeSwatch    string    `json:"grimeSwatch" yaml:"grimeSwatch"`
	EmissiveAmount float32   `json:"emissiveAmount" yaml:"emissiveAmount"`
	GrimeAmount    float32   `json:"grimeAmount" yaml:"grimeAmount"`
	ScratchAmount  float32   `json:"scratchAmount" yaml:"scratchAmount"`
	Swatches       []Swatch  `json:"swatches" yaml:"swatches"`
	RegionLayers   RegionMap `json:"regionLayers" yaml:"regionLayers"`
}

// Swatch holds the shader parameters applied to one layer slot.
type Swatch struct {
	SwatchID               string       `json:"swatchId" yaml:"swatchId"`
	GroupName              string       `json:"groupName" yaml:"groupName"`
	IOR                    float32      `json:"ior" yaml:"ior"`
	NormalTextureTransform []float32    `json:"normalTextureTransform" yaml:"normalTextureTransform"` // x, y
	Roughness              float32      `json:"roughness" yaml:"roughness"`
	RoughnessBlack         float32      `json:"roughnessBlack" yaml:"roughnessBlack"`
	RoughnessWhite         float32      `json:"roughnessWhite" yaml:"roughnessWhite"`
	ScratchMetallic        float32      `json:"scratchMetallic" yaml:"scratchMetallic"`
	ScratchRoughness       float32      `json:"scratchRoughness" yaml:"scratchRoughness"`
	ScratchAlbedoTint      float32      `json:"scratchAlbedoTint" yaml:"scratchAlbedoTint"`
	ScratchBrightness      float32      `json:"scratchBrightness" yaml:"scratchBrightness"`
	ScratchIOR             float32      `json:"scratchIor" yaml:"scratchIor"`
	Metallic               float32      `json:"metallic" yaml:"metallic"`
	EmissiveAmount         float32      `json:"emissiveAmount" yaml:"emissiveAmount"`
	EmissiveIntensity      float32      `json:"emissiveIntensity" yaml:"emissiveIntensity"`
	ColorVariant           ColorVariant `json:"colorVariant" yaml:"colorVariant"`
	ScratchColor           []float32    `json:"scratchColor" yaml:"scratchColor"` // r, g, b
	ColorGradientMap       string       `json:"colorGradientMap" yaml:"colorGradientMap"`
	NormalPath             string       `json:"normalPath" yaml:"normalPath"`
	ColorVariantID         string       `json:"colorVariantId,omitempty" yaml:"colorVariantId,omitempty"`
}

// ColorVariant is the three-stop gradient tint of a swatch. Each color is linear r, g, b.
type ColorVariant struct {
	ID       string    `json:"id,omitempty" yaml:"id,omitempty"`
	TopColor []float32 `json:"topColor" yaml:"topColor"`
	MidColor []float32 `json:"midColor" yaml:"midColor"`
	BotColor []float32 `json:"botColor" yaml:"botColor"`
}

// Region is one body region of the armor and the layers painted on it.
type Region struct {
	Material string  `json:"material" yaml:"material"`
	BodyPart string  `json:"bodyPart,omitempty" yaml:"bodyPart,omitempty"`
	Layers   []Layer `json:"layers" yaml:"layers"`
}

// Layer references a swatch by id. The blend flags are carried for the
// document schema only; script generation does not read them.
type Layer struct {
	Swatch             string `json:"swatch" yaml:"swatch"`
	ColorBlend         bool   `json:"colorBlend" yaml:"colorBlend"`
	NormalBlend        bool   `json:"normalBlend" yaml:"normalBlend"`
	IgnoreTexelDensity bool   `json:"ignoreTexelDensity" yaml:"ignoreTexelDensity"`
}
