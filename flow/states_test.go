package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleUsage(t *testing.T) {
	s := &CreateState{}

	s.ToggleUsage("running")
	s.ToggleUsage("basketball")
	assert.Equal(t, []string{"running", "basketball"}, s.Draft.Usage)
	assert.True(t, s.HasUsage("running"))

	s.ToggleUsage("running")
	assert.Equal(t, []string{"basketball"}, s.Draft.Usage, "a second tap unselects")
	assert.False(t, s.HasUsage("running"))
}

func TestAddGalleryImageDedupes(t *testing.T) {
	s := &CreateState{}

	assert.True(t, s.AddGalleryImage("file-a", 10))
	assert.True(t, s.AddGalleryImage("file-b", 11))
	assert.False(t, s.AddGalleryImage("file-a", 12), "re-delivered photo is ignored")

	assert.Equal(t, []int64{10, 11}, s.Draft.GalleryIDs)
	assert.True(t, s.SeenGalleryFile("file-a"))
	assert.False(t, s.SeenGalleryFile("file-c"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get(1)
	assert.False(t, ok)

	store.Set(1, &CreateState{FlowID: "f1"})
	store.Set(2, &LinkState{FlowID: "f2"})

	st, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "create", st.FlowName())

	store.Clear(1)
	_, ok = store.Get(1)
	assert.False(t, ok)

	st, ok = store.Get(2)
	require.True(t, ok)
	assert.Equal(t, "link", st.FlowName())
}
