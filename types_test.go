package sf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementType_SizeAndString(t *testing.T) {
	cases := []struct {
		t    ElementType
		size uint32
		str  string
	}{
		{Int8, 1, "INT8"},
		{Uint8, 1, "UINT8"},
		{Bool, 1, "BOOL"},
		{Int16, 2, "INT16"},
		{Uint16, 2, "UINT16"},
		{Int32, 4, "INT32"},
		{Uint32, 4, "UINT32"},
		{Float32, 4, "FLOAT32"},
		{Int64, 8, "INT64"},
		{Uint64, 8, "UINT64"},
		{Float64, 8, "FLOAT64"},
	}
	for _, c := range cases {
		assert.Equal(t, c.size, c.t.Size())
		assert.Equal(t, c.str, c.t.String())
	}
}

func TestElementTypeOf(t *testing.T) {
	assert.Equal(t, Int32, ElementTypeOf[int32]())
	assert.Equal(t, Uint64, ElementTypeOf[uint64]())
	assert.Equal(t, Bool, ElementTypeOf[bool]())
	assert.Equal(t, Float64, ElementTypeOf[float64]())
}

func TestTaskMode_String(t *testing.T) {
	assert.Equal(t, "Disable", ModeDisable.String())
	assert.Equal(t, "Safe", ModeSafe.String())
	assert.Equal(t, "Enable", ModeEnable.String())
	assert.Equal(t, "TaskMode(7)", TaskMode(7).String())
}

func TestNoStateAndNoTimeAreReserved(t *testing.T) {
	assert.Equal(t, uint32(0), NoState)
	assert.Equal(t, uint64(1<<64-1), NoTime)
}
