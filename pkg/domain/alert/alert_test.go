package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := New(7, 2, 3, "X", "Y")

	assert.Equal(t, PluginID, a.PluginID)
	assert.Equal(t, 50005, a.PluginID)
	assert.Equal(t, SourcePassive, a.Source)
	assert.Equal(t, int64(7), a.HistoryReferenceID)
	assert.Equal(t, 2, a.Risk)
	assert.Equal(t, 3, a.Confidence)
	assert.Equal(t, "X", a.Name)
	assert.Equal(t, "Y", a.Description)
	assert.False(t, a.CreatedAt.IsZero())
}
