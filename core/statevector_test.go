package core

import (
	"testing"

	"github.com/sf-go/sf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateVector_InitAndRoundTrip(t *testing.T) {
	sv := NewStateVector()
	require.Equal(t, sf.SUCCESS, sv.Init(&StateVectorConfig{
		Elements: []ElementConfig{
			{Name: "temperature", Type: sf.Float64},
			{Name: "armed", Type: sf.Bool},
			{Name: "mode", Type: sf.Uint8},
		},
		Regions: []RegionConfig{
			{Name: "sensors", Elements: []string{"temperature", "armed"}},
			{Name: "control", Elements: []string{"mode"}},
		},
	}))

	temp, res := GetElement[float64](sv, "temperature")
	require.Equal(t, sf.SUCCESS, res)
	temp.Write(21.5)
	assert.Equal(t, 21.5, temp.Read())

	armed, res := GetElement[bool](sv, "armed")
	require.Equal(t, sf.SUCCESS, res)
	armed.Write(true)
	assert.True(t, armed.Read())

	mode, res := GetElement[uint8](sv, "mode")
	require.Equal(t, sf.SUCCESS, res)
	mode.Write(2)
	assert.Equal(t, uint8(2), mode.Read())

	region, res := sv.GetRegion("sensors")
	require.Equal(t, sf.SUCCESS, res)
	assert.Equal(t, uint32(9), region.Size())
}

// Regions are optional: an elements-only state vector initializes and
// serves elements normally, and GetRegion reports that no regions exist.
func TestStateVector_ElementsOnlyNoRegions(t *testing.T) {
	sv := NewStateVector()
	require.Equal(t, sf.SUCCESS, sv.Init(&StateVectorConfig{
		Elements: []ElementConfig{
			{Name: "foo", Type: sf.Int32},
			{Name: "bar", Type: sf.Bool},
		},
	}))

	foo, res := GetElement[int32](sv, "foo")
	require.Equal(t, sf.SUCCESS, res)
	foo.Write(-7)
	assert.Equal(t, int32(-7), foo.Read())

	_, res = sv.GetRegion("foo")
	assert.Equal(t, sf.E_SV_EMPTY, res)
}

func TestStateVector_UnknownNameFails(t *testing.T) {
	sv := NewStateVector()
	require.Equal(t, sf.SUCCESS, sv.Init(&StateVectorConfig{
		Elements: []ElementConfig{{Name: "a", Type: sf.Uint8}},
		Regions:  []RegionConfig{{Name: "r", Elements: []string{"a"}}},
	}))
	_, res := sv.GetIElement("nope")
	assert.Equal(t, sf.E_SV_KEY, res)
	_, res = sv.GetRegion("nope")
	assert.Equal(t, sf.E_SV_KEY, res)
}

func TestStateVector_TypeMismatchFails(t *testing.T) {
	sv := NewStateVector()
	require.Equal(t, sf.SUCCESS, sv.Init(&StateVectorConfig{
		Elements: []ElementConfig{{Name: "a", Type: sf.Uint8}},
	}))
	_, res := GetElement[uint32](sv, "a")
	assert.Equal(t, sf.E_SV_TYPE, res)
}

func TestStateVector_DuplicateElementNameFails(t *testing.T) {
	sv := NewStateVector()
	res := sv.Init(&StateVectorConfig{
		Elements: []ElementConfig{
			{Name: "a", Type: sf.Uint8},
			{Name: "a", Type: sf.Uint8},
		},
	})
	assert.Equal(t, sf.E_SV_ELEM_DUPE, res)
}

func TestStateVector_DuplicateRegionNameFails(t *testing.T) {
	sv := NewStateVector()
	res := sv.Init(&StateVectorConfig{
		Elements: []ElementConfig{
			{Name: "a", Type: sf.Uint8},
			{Name: "b", Type: sf.Uint8},
		},
		Regions: []RegionConfig{
			{Name: "r", Elements: []string{"a"}},
			{Name: "r", Elements: []string{"b"}},
		},
	})
	assert.Equal(t, sf.E_SV_RGN_DUPE, res)
}

// When regions are present they must tile the element list exactly:
// every element covered, in declaration order, with nothing left over.
func TestStateVector_RegionsMustTileElementsExactly(t *testing.T) {
	elems := []ElementConfig{
		{Name: "a", Type: sf.Uint8},
		{Name: "b", Type: sf.Uint16},
		{Name: "c", Type: sf.Uint32},
	}

	t.Run("straggler element not covered by any region", func(t *testing.T) {
		sv := NewStateVector()
		res := sv.Init(&StateVectorConfig{
			Elements: elems,
			Regions:  []RegionConfig{{Name: "r", Elements: []string{"a", "b"}}},
		})
		assert.Equal(t, sf.E_SV_LAYOUT, res)
	})

	t.Run("region names elements out of declaration order", func(t *testing.T) {
		sv := NewStateVector()
		res := sv.Init(&StateVectorConfig{
			Elements: elems,
			Regions: []RegionConfig{
				{Name: "r1", Elements: []string{"b", "a"}},
				{Name: "r2", Elements: []string{"c"}},
			},
		})
		assert.Equal(t, sf.E_SV_LAYOUT, res)
	})

	t.Run("region names an unknown element", func(t *testing.T) {
		sv := NewStateVector()
		res := sv.Init(&StateVectorConfig{
			Elements: elems,
			Regions: []RegionConfig{
				{Name: "r1", Elements: []string{"a", "nope"}},
				{Name: "r2", Elements: []string{"b", "c"}},
			},
		})
		assert.Equal(t, sf.E_SV_LAYOUT, res)
	})

	t.Run("empty region", func(t *testing.T) {
		sv := NewStateVector()
		res := sv.Init(&StateVectorConfig{
			Elements: elems,
			Regions: []RegionConfig{
				{Name: "r1", Elements: nil},
				{Name: "r2", Elements: []string{"a", "b", "c"}},
			},
		})
		assert.Equal(t, sf.E_SV_LAYOUT, res)
	})
}

func TestStateVector_EmptyConfigFails(t *testing.T) {
	sv := NewStateVector()
	assert.Equal(t, sf.E_SV_EMPTY, sv.Init(&StateVectorConfig{}))
}

func TestStateVector_ReInitFails(t *testing.T) {
	sv := NewStateVector()
	cfg := &StateVectorConfig{Elements: []ElementConfig{{Name: "a", Type: sf.Uint8}}}
	require.Equal(t, sf.SUCCESS, sv.Init(cfg))
	assert.Equal(t, sf.E_SV_REINIT, sv.Init(cfg))
}
