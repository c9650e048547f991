package layermask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := map[string]string{
		"cvw_7_layered":        "01111111",
		"cvw_4_layered":        "01110001",
		"cvw_1_layered":        "00000001",
		"cvw_7_layered_damage": "11111111",
		"cvw_4_layered_damage": "11110001",
		"cvw_1_layered_damage": "10000001",
	}
	for material, want := range cases {
		t.Run(material, func(t *testing.T) {
			m, err := Resolve(material)
			require.NoError(t, err)
			assert.Equal(t, want, m.String())
		})
	}
	assert.Len(t, Materials(), len(cases))
}

func TestResolve_Unknown(t *testing.T) {
	for _, material := range []string{"", "cvw_8_layered", "CVW_7_LAYERED", "cvw_7_layered "} {
		_, err := Resolve(material)
		require.ErrorIs(t, err, ErrUnknownMaterial, material)
		assert.Contains(t, err.Error(), material)
	}
}

func TestMask_Active(t *testing.T) {
	m, err := Resolve("cvw_4_layered")
	require.NoError(t, err)

	var active []int
	for i := -1; i <= Slots; i++ {
		if m.Active(i) {
			active = append(active, i)
		}
	}
	assert.Equal(t, []int{0, 4, 5, 6}, active)
	assert.Equal(t, 4, m.Count())
}

func TestMask_Count(t *testing.T) {
	assert.Equal(t, 0, Mask(0).Count())
	assert.Equal(t, 7, Mask(0b0111_1111).Count())
	assert.Equal(t, 8, Mask(0xff).Count())
}
