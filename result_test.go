package sf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_OkAndError(t *testing.T) {
	assert.True(t, SUCCESS.Ok())
	assert.False(t, E_ASSERT.Ok())
	assert.Equal(t, "success", SUCCESS.Error())
	assert.Equal(t, "assertion failure", E_ASSERT.Error())
}

func TestResult_UnknownCodeFormatsNumerically(t *testing.T) {
	assert.Equal(t, "sf: result 99999", Result(99999).Error())
}

func TestAssert(t *testing.T) {
	assert.Equal(t, SUCCESS, Assert(true))
	assert.Equal(t, E_ASSERT, Assert(false))
}

func TestAssertCapture_RecordsFirstFailureSite(t *testing.T) {
	EnableAssertCapture(true)
	defer EnableAssertCapture(false)

	_, ok := LastAssertCapture()
	assert.False(t, ok)

	Assert(false)
	cap, ok := LastAssertCapture()
	assert.True(t, ok)
	assert.Contains(t, cap.File, "result_test.go")
}
