package qrcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	qrc "github.com/skip2/go-qrcode"
)

// Jenis QR yang didukung halaman kode QR.
type Type string

const (
	TypeAttendance   Type = "attendance"
	TypeRegistration Type = "registration"
	TypeCustom       Type = "custom"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAttendance, TypeRegistration, TypeCustom:
		return true
	default:
		return false
	}
}

// DefaultExpiration adalah masa berlaku bawaan dalam menit.
const DefaultExpiration = "60"

var (
	// ErrNoClass: generate dipanggil sebelum kelas dipilih.
	ErrNoClass = errors.New("qrcode: no class selected")
	// ErrNotGenerated: unduh/preview dipanggil sebelum payload dibuat.
	ErrNotGenerated = errors.New("qrcode: not generated yet")
)

// State mengikuti alur halaman: Idle → Configured → Generated → (reset) Idle.
type State int

const (
	StateIdle State = iota
	StateConfigured
	StateGenerated
)

// ClassInfo adalah kelas terpilih seperti yang diberikan pemanggil
// (id, nama, nama guru pengampu).
type ClassInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
}

// Payload adalah isi QR apa adanya; dipindai klien, jadi bentuk JSON-nya
// tidak boleh berubah.
type Payload struct {
	Type       Type      `json:"type"`
	Class      ClassInfo `json:"class"`
	Timestamp  string    `json:"timestamp"`
	Expiration string    `json:"expiration"`
	CustomData string    `json:"customData"`
}

// Builder menyimpan state form QR. Tidak aman dipakai paralel;
// serialisasi akses menjadi tanggung jawab pemanggil.
type Builder struct {
	typ        Type
	class      *ClassInfo
	expiration string
	customData string

	content []byte // payload JSON setelah Generate
}

func NewBuilder() *Builder {
	return &Builder{typ: TypeAttendance, expiration: DefaultExpiration}
}

func (b *Builder) State() State {
	switch {
	case b.content != nil:
		return StateGenerated
	case b.class != nil:
		return StateConfigured
	default:
		return StateIdle
	}
}

// Select memilih kelas dan membuka field lain untuk diubah. Payload yang
// sudah dibuat sebelumnya hangus.
func (b *Builder) Select(c ClassInfo) {
	b.class = &c
	b.content = nil
}

// Configure mengganti jenis, masa berlaku, dan data kustom. Nilai kosong
// dibiarkan pada bawaan.
func (b *Builder) Configure(typ Type, expiration, customData string) error {
	if typ != "" {
		if !typ.Valid() {
			return fmt.Errorf("qrcode: unknown type %q", typ)
		}
		b.typ = typ
	}
	if expiration != "" {
		b.expiration = expiration
	}
	b.customData = customData
	return nil
}

// Generate menyusun payload JSON dengan stempel waktu pembuatan (ISO-8601).
func (b *Builder) Generate() ([]byte, error) {
	if b.class == nil {
		return nil, ErrNoClass
	}
	p := Payload{
		Type:       b.typ,
		Class:      *b.class,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Expiration: b.expiration,
		CustomData: b.customData,
	}
	content, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	b.content = content
	return content, nil
}

// Content mengembalikan payload terakhir yang dibuat.
func (b *Builder) Content() ([]byte, error) {
	if b.content == nil {
		return nil, ErrNotGenerated
	}
	return b.content, nil
}

// PNG merasterisasi payload menjadi gambar persegi berukuran size piksel.
func (b *Builder) PNG(size int) ([]byte, error) {
	if b.content == nil {
		return nil, ErrNotGenerated
	}
	png, err := qrc.Encode(string(b.content), qrc.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}
	return png, nil
}

// Filename membentuk nama file unduhan: qr-code-<nama kelas>-<epoch ms>.png.
func (b *Builder) Filename() (string, error) {
	if b.content == nil || b.class == nil {
		return "", ErrNotGenerated
	}
	return fmt.Sprintf("qr-code-%s-%d.png", b.class.Name, time.Now().UnixMilli()), nil
}

// Reset mengembalikan form ke kondisi awal (type=attendance, expiration=60,
// tanpa kelas/data kustom).
func (b *Builder) Reset() {
	b.typ = TypeAttendance
	b.class = nil
	b.expiration = DefaultExpiration
	b.customData = ""
	b.content = nil
}
