package script

import (
	"fmt"
	"strconv"
	"strings"

	"infinite-coating-tool/internal/coating"
)

// Coating-wide tokens.
const (
	TokenGrimeAmount    = "GRIMEAMOUNT"
	TokenScratchAmount  = "SCRATCHAMOUNT"
	TokenUniEmitAmount  = "UNIEMITAMOUNT"
	TokenRegionName     = "REGIONNAME"
	TokenCoatingName    = "COATINGNAME"
	TokenDetailMapsPath = "DETAILMAPS"
)

type replacement struct {
	token string
	value string
}

func apply(text string, reps []replacement) string {
	for _, r := range reps {
		text = strings.ReplaceAll(text, r.token, r.value)
	}
	return text
}

// FormatFloat renders a value the way it is written into scripts: shortest
// decimal that round-trips the float32, never in exponent form.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// EscapePath doubles backslashes for use inside a script string literal.
func EscapePath(p string) string {
	return strings.ReplaceAll(p, `\`, `\\`)
}

func globalReplacements(c *coating.Coating, edgeWear int) []replacement {
	return []replacement{
		{TokenGrimeAmount, FormatFloat(c.GrimeAmount)},
		{TokenScratchAmount, FormatFloat(c.ScratchAmount * float32(edgeWear))},
		{TokenUniEmitAmount, FormatFloat(c.EmissiveAmount)},
	}
}

func checkVectors(s coating.Swatch) error {
	fields := []struct {
		name string
		v    []float32
		n    int
	}{
		{"normalTextureTransform", s.NormalTextureTransform, 2},
		{"scratchColor", s.ScratchColor, 3},
		{"colorVariant.topColor", s.ColorVariant.TopColor, 3},
		{"colorVariant.midColor", s.ColorVariant.MidColor, 3},
		{"colorVariant.botColor", s.ColorVariant.BotColor, 3},
	}
	for _, f := range fields {
		if len(f.v) < f.n {
			return fmt.Errorf("script: %w: swatch %q field %s has %d values, want %d",
				ErrMalformedSwatch, s.SwatchID, f.name, len(f.v), f.n)
		}
	}
	return nil
}

// slotReplacements lists the per-slot tokens for slot n (1-based). Tokens
// that end with another token (SCRATCHIOR_n, SCRATCHMETAL_n) come before it.
func slotReplacements(n int, s coating.Swatch) ([]replacement, error) {
	if err := checkVectors(s); err != nil {
		return nil, err
	}

	var reps []replacement
	add := func(name, value string) {
		reps = append(reps, replacement{name + "_" + strconv.Itoa(n), value})
	}
	addVec := func(prefix string, v []float32) {
		for i := 0; i < 3; i++ {
			add(prefix+strconv.Itoa(i), FormatFloat(v[i]))
		}
	}

	add("GROUPNAME", s.GroupName)

	add("SCRATCHIOR", FormatFloat(s.ScratchIOR))
	add("IOR", FormatFloat(s.IOR))

	add("SCALEX", FormatFloat(s.NormalTextureTransform[0]))
	add("SCALEY", FormatFloat(s.NormalTextureTransform[1]))

	add("ROUGHNESSB", FormatFloat(s.RoughnessBlack))
	add("ROUGHNESSW", FormatFloat(s.RoughnessWhite))
	add("ROUGHNESS", FormatFloat(s.Roughness))

	add("SCRATCHMETAL", FormatFloat(s.ScratchMetallic))
	add("SCRATCHROUGH", FormatFloat(s.ScratchRoughness))
	add("SCRATCHALBTINT", FormatFloat(s.ScratchAlbedoTint))
	add("SCRATCHBRIGHT", FormatFloat(s.ScratchBrightness))

	add("METAL", FormatFloat(s.Metallic))
	add("EMITAMOUNT", FormatFloat(s.EmissiveAmount))
	add("EMITINTENSE", FormatFloat(s.EmissiveIntensity))

	addVec("TOPCOLOR", s.ColorVariant.TopColor)
	addVec("MIDCOLOR", s.ColorVariant.MidColor)
	addVec("BOTCOLOR", s.ColorVariant.BotColor)
	addVec("SCRCOLOR", s.ScratchColor)

	add("GRADMASK", EscapePath(s.ColorGradientMap))
	add("NORMAL", EscapePath(s.NormalPath))

	return reps, nil
}
