package xpgx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Skipped   string    `db:"-"`
}

type row struct {
	Base
	Visible  string `db:"visible"`
	Untagged string
	secret   string
	RawText  *string `db:"raw"`
}

func TestCollectFieldsTagsAndDefaults(t *testing.T) {
	v := row{}
	fields := collectFields(reflect.ValueOf(&v).Elem())

	assert.Contains(t, fields, "visible")
	assert.Contains(t, fields, "raw")
	// untagged fields fall back to the lowercased name
	assert.Contains(t, fields, "untagged")
	// embedded structs are flattened
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "created_at")

	assert.NotContains(t, fields, "skipped")
	assert.NotContains(t, fields, "secret")
}

func TestCollectFieldsAddressable(t *testing.T) {
	v := row{}
	fields := collectFields(reflect.ValueOf(&v).Elem())

	f, ok := fields["visible"]
	require.True(t, ok)
	f.SetString("written")
	assert.Equal(t, "written", v.Visible)

	id, ok := fields["id"]
	require.True(t, ok)
	id.SetInt(7)
	assert.Equal(t, int64(7), v.Base.ID)
}

func TestCollectFieldsOuterWins(t *testing.T) {
	type shadow struct {
		Base
		ID int64 `db:"id"`
	}

	v := shadow{}
	fields := collectFields(reflect.ValueOf(&v).Elem())

	fields["id"].SetInt(3)
	assert.Equal(t, int64(3), v.ID)
	assert.Zero(t, v.Base.ID)
}

func TestIsScannable(t *testing.T) {
	assert.True(t, isScannable(reflect.TypeOf(time.Time{})))
	assert.False(t, isScannable(reflect.TypeOf(row{})))
}
