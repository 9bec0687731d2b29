package engine

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upload struct {
	pix      []byte
	w, h     int
	channels int
}

type bind struct {
	slot   int
	handle uint32
}

// fakeTextureDevice records device calls and hands out sequential
// handles starting at 1.
type fakeTextureDevice struct {
	next     uint32
	uploads  []upload
	binds    []bind
	released []uint32
	fail     error
}

func (d *fakeTextureDevice) Upload(pix []byte, w, h, channels int) (uint32, error) {
	if d.fail != nil {
		return 0, d.fail
	}
	d.uploads = append(d.uploads, upload{pix: pix, w: w, h: h, channels: channels})
	d.next++
	return d.next, nil
}

func (d *fakeTextureDevice) Bind(slot int, handle uint32) {
	d.binds = append(d.binds, bind{slot: slot, handle: handle})
}

func (d *fakeTextureDevice) Release(handle uint32) {
	d.released = append(d.released, handle)
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func opaqueImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func translucentImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
		}
	}
	return img
}

func TestLoadOpaqueUploadsRGB(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)

	require.NoError(t, reg.Load(writePNG(t, opaqueImage(4, 2)), "desk"))

	require.Len(t, dev.uploads, 1)
	up := dev.uploads[0]
	assert.Equal(t, 3, up.channels)
	assert.Equal(t, 4, up.w)
	assert.Equal(t, 2, up.h)
	assert.Len(t, up.pix, 4*2*3)
	assert.Equal(t, 1, reg.FindHandle("desk"))
	assert.Equal(t, 0, reg.FindSlot("desk"))
}

func TestLoadTranslucentUploadsRGBA(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)

	require.NoError(t, reg.Load(writePNG(t, translucentImage(2, 2)), "shade"))

	require.Len(t, dev.uploads, 1)
	assert.Equal(t, 4, dev.uploads[0].channels)
	assert.Len(t, dev.uploads[0].pix, 2*2*4)
	// straight alpha, not premultiplied: {200 100 50} stays put
	assert.Equal(t, []byte{200, 100, 50, 128}, dev.uploads[0].pix[:4])
}

func TestLoadTranslucentFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128}) // top row
	img.SetNRGBA(0, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 64})    // bottom row

	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)
	require.NoError(t, reg.Load(writePNG(t, img), "stripe"))

	pix := dev.uploads[0].pix
	assert.Equal(t, []byte{10, 20, 30, 64}, pix[:4])
	assert.Equal(t, []byte{200, 100, 50, 128}, pix[4:8])
}

func TestLoadFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255}) // top row red
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255}) // bottom row blue

	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)
	require.NoError(t, reg.Load(writePNG(t, img), "stripe"))

	// the bottom row of the file becomes the first uploaded row
	pix := dev.uploads[0].pix
	assert.Equal(t, []byte{0, 0, 255}, pix[:3])
	assert.Equal(t, []byte{255, 0, 0}, pix[3:6])
}

func TestLoadRejectsGrayscale(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)

	err := reg.Load(writePNG(t, gray), "gray")
	assert.ErrorContains(t, err, "channel count 1")
	assert.Empty(t, dev.uploads)
	assert.Zero(t, reg.Len())
}

func TestLoadMissingFile(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)

	err := reg.Load(filepath.Join(t.TempDir(), "nope.png"), "missing")
	assert.Error(t, err)
	assert.Zero(t, reg.Len())
	assert.Equal(t, -1, reg.FindHandle("missing"))
}

func TestLoadDeviceFailureLeavesRegistryUnchanged(t *testing.T) {
	dev := &fakeTextureDevice{fail: fmt.Errorf("out of memory")}
	reg := NewTextureRegistry(dev)

	err := reg.Load(writePNG(t, opaqueImage(2, 2)), "desk")
	assert.ErrorContains(t, err, "out of memory")
	assert.Zero(t, reg.Len())
}

func TestSlotIsRegistrationOrder(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)
	path := writePNG(t, opaqueImage(2, 2))

	for _, tag := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Load(path, tag))
	}

	assert.Equal(t, 0, reg.FindSlot("a"))
	assert.Equal(t, 1, reg.FindSlot("b"))
	assert.Equal(t, 2, reg.FindSlot("c"))

	reg.BindAll()
	require.Len(t, dev.binds, 3)
	for i, b := range dev.binds {
		assert.Equal(t, i, b.slot)
		assert.Equal(t, uint32(i+1), b.handle)
	}
}

func TestBindByTag(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)
	path := writePNG(t, opaqueImage(2, 2))
	require.NoError(t, reg.Load(path, "a"))
	require.NoError(t, reg.Load(path, "b"))

	assert.Equal(t, 1, reg.Bind("b"))
	require.Len(t, dev.binds, 1)
	assert.Equal(t, bind{slot: 1, handle: 2}, dev.binds[0])

	assert.Equal(t, -1, reg.Bind("nope"))
	assert.Len(t, dev.binds, 1)
}

func TestDuplicateTagFirstWins(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)
	path := writePNG(t, opaqueImage(2, 2))
	require.NoError(t, reg.Load(path, "wood"))
	require.NoError(t, reg.Load(path, "wood"))

	assert.Equal(t, 1, reg.FindHandle("wood"))
	assert.Equal(t, 0, reg.FindSlot("wood"))
	assert.Equal(t, 2, reg.Len())
}

func TestLoadCapacity(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)
	path := writePNG(t, opaqueImage(2, 2))

	for i := 0; i < MaxTextureSlots; i++ {
		require.NoError(t, reg.Load(path, fmt.Sprintf("tex%d", i)))
	}

	err := reg.Load(path, "overflow")
	assert.ErrorContains(t, err, "slots in use")
	assert.Equal(t, MaxTextureSlots, reg.Len())
	assert.Len(t, dev.uploads, MaxTextureSlots)
}

func TestDestroyReleasesAll(t *testing.T) {
	dev := &fakeTextureDevice{}
	reg := NewTextureRegistry(dev)
	path := writePNG(t, opaqueImage(2, 2))
	require.NoError(t, reg.Load(path, "a"))
	require.NoError(t, reg.Load(path, "b"))

	reg.Destroy()

	assert.Equal(t, []uint32{1, 2}, dev.released)
	assert.Zero(t, reg.Len())
	assert.Equal(t, -1, reg.FindHandle("a"))
}
