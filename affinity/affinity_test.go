package affinity

import (
	"testing"

	"github.com/momentics/hioload-thread/api"
	"gotest.tools/v3/assert"
)

func TestSetAffinity_NegativeCPU(t *testing.T) {
	err := SetAffinity(-1)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
	assert.Equal(t, api.CodeOf(err), api.ErrCodeInvalidArgument)
}
