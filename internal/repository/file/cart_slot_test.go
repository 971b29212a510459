package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSlot_LoadMissing(t *testing.T) {
	slot, err := NewCartSlot(t.TempDir(), "fashionhive_cart")
	require.NoError(t, err)

	data, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestCartSlot_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewCartSlot(dir, "fashionhive_cart")
	require.NoError(t, err)

	require.NoError(t, slot.Save([]byte(`{"first":true}`)))
	require.NoError(t, slot.Save([]byte(`{"second":true}`)))

	data, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"second":true}`, string(data))
	assert.Equal(t, filepath.Join(dir, "fashionhive_cart.json"), slot.Path())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCartSlot_RejectsBadKeys(t *testing.T) {
	_, err := NewCartSlot(t.TempDir(), "")
	assert.Error(t, err)

	_, err = NewCartSlot(t.TempDir(), "../escape")
	assert.Error(t, err)
}
