package qrcode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestBuilderStateMachine(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, StateIdle, b.State())

	// generate tanpa kelas terpilih
	_, err := b.Generate()
	assert.ErrorIs(t, err, ErrNoClass)

	b.Select(ClassInfo{ID: "1", Name: "Matematika Dasar", Teacher: "Dr. Susanto"})
	assert.Equal(t, StateConfigured, b.State())

	// unduh sebelum generate
	_, err = b.PNG(256)
	assert.ErrorIs(t, err, ErrNotGenerated)
	_, err = b.Content()
	assert.ErrorIs(t, err, ErrNotGenerated)

	_, err = b.Generate()
	assert.NoError(t, err)
	assert.Equal(t, StateGenerated, b.State())

	b.Reset()
	assert.Equal(t, StateIdle, b.State())
	_, err = b.Generate()
	assert.ErrorIs(t, err, ErrNoClass)
}

func TestGeneratePayload(t *testing.T) {
	b := NewBuilder()
	b.Select(ClassInfo{ID: "3", Name: "Kimia Dasar", Teacher: "Mr. Wijaya"})
	assert.NoError(t, b.Configure(TypeCustom, "120", "ruang lab 2"))

	content, err := b.Generate()
	assert.NoError(t, err)

	var p Payload
	assert.NoError(t, json.Unmarshal(content, &p))
	assert.Equal(t, TypeCustom, p.Type)
	assert.Equal(t, "3", p.Class.ID)
	assert.Equal(t, "Kimia Dasar", p.Class.Name)
	assert.Equal(t, "Mr. Wijaya", p.Class.Teacher)
	assert.Equal(t, "120", p.Expiration)
	assert.Equal(t, "ruang lab 2", p.CustomData)
	assert.NotEmpty(t, p.Timestamp)

	// kunci JSON harus persis seperti yang dibaca pemindai
	for _, key := range []string{`"type"`, `"class"`, `"timestamp"`, `"expiration"`, `"customData"`} {
		assert.Contains(t, string(content), key)
	}
}

func TestGenerateDefaults(t *testing.T) {
	b := NewBuilder()
	b.Select(ClassInfo{ID: "1", Name: "Fisika Dasar", Teacher: "Mrs. Hartono"})

	content, err := b.Generate()
	assert.NoError(t, err)

	var p Payload
	assert.NoError(t, json.Unmarshal(content, &p))
	assert.Equal(t, TypeAttendance, p.Type)
	assert.Equal(t, DefaultExpiration, p.Expiration)
	assert.Empty(t, p.CustomData)
}

func TestConfigureInvalidType(t *testing.T) {
	b := NewBuilder()
	assert.Error(t, b.Configure("undangan", "", ""))
	// string kosong = biarkan bawaan
	assert.NoError(t, b.Configure("", "", ""))
}

func TestPNG(t *testing.T) {
	b := NewBuilder()
	b.Select(ClassInfo{ID: "1", Name: "Biologi Dasar", Teacher: "Dr. Wulandari"})
	_, err := b.Generate()
	assert.NoError(t, err)

	png, err := b.PNG(256)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestFilename(t *testing.T) {
	b := NewBuilder()
	_, err := b.Filename()
	assert.ErrorIs(t, err, ErrNotGenerated)

	b.Select(ClassInfo{ID: "5", Name: "Sejarah Indonesia", Teacher: "Mrs. Suharto"})
	_, err = b.Generate()
	assert.NoError(t, err)

	name, err := b.Filename()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "qr-code-Sejarah Indonesia-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}

// Memilih kelas baru membatalkan payload lama.
func TestSelectInvalidatesContent(t *testing.T) {
	b := NewBuilder()
	b.Select(ClassInfo{ID: "1", Name: "Matematika Dasar", Teacher: "Dr. Susanto"})
	_, err := b.Generate()
	assert.NoError(t, err)

	b.Select(ClassInfo{ID: "2", Name: "Fisika Dasar", Teacher: "Mrs. Hartono"})
	assert.Equal(t, StateConfigured, b.State())
	_, err = b.Content()
	assert.ErrorIs(t, err, ErrNotGenerated)
}
