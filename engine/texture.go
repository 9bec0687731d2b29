package engine

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
)

// MaxTextureSlots caps the registry at the number of texture units the
// renderer binds; slot index equals registration index.
const MaxTextureSlots = 16

// TextureDevice is the GPU side of the registry: upload decoded pixels,
// bind a handle to a texture unit, release a handle. The GL
// implementation lives in device.go; tests substitute their own.
type TextureDevice interface {
	Upload(pix []byte, width, height, channels int) (uint32, error)
	Bind(slot int, handle uint32)
	Release(handle uint32)
}

type textureEntry struct {
	tag    string
	handle uint32
}

// TextureRegistry loads image files into GPU textures and maps tags to
// handles. It exclusively owns the uploaded handles. The bind slot of a
// texture is its registration index, so registration order is
// load-bearing.
type TextureRegistry struct {
	dev     TextureDevice
	entries []textureEntry
}

func NewTextureRegistry(dev TextureDevice) *TextureRegistry {
	return &TextureRegistry{dev: dev}
}

// Load decodes the image at path, uploads it and registers the handle
// under tag. Only 3- and 4-channel images are supported. On any failure
// the registry is left unchanged.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextureSlots {
		return fmt.Errorf("load %s: all %d texture slots in use", path, MaxTextureSlots)
	}

	pix, w, h, channels, err := decodePixels(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if channels != 3 && channels != 4 {
		return fmt.Errorf("load %s: unsupported channel count %d", path, channels)
	}

	handle, err := r.dev.Upload(pix, w, h, channels)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	r.entries = append(r.entries, textureEntry{tag: tag, handle: handle})
	return nil
}

// FindHandle returns the handle registered under tag, or -1 when the tag
// is unknown. First registration wins for duplicate tags.
func (r *TextureRegistry) FindHandle(tag string) int {
	for _, e := range r.entries {
		if e.tag == tag {
			return int(e.handle)
		}
	}
	return -1
}

// FindSlot returns the texture unit index for tag, or -1 when the tag is
// unknown.
func (r *TextureRegistry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.tag == tag {
			return i
		}
	}
	return -1
}

// BindAll binds every registered texture to the unit matching its
// registration index.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.dev.Bind(i, e.handle)
	}
}

// Bind binds the texture registered under tag to its unit and returns
// the unit index, or -1 when the tag is unknown.
func (r *TextureRegistry) Bind(tag string) int {
	slot := r.FindSlot(tag)
	if slot < 0 {
		return -1
	}
	r.dev.Bind(slot, r.entries[slot].handle)
	return slot
}

// Destroy releases every handle and empties the registry.
func (r *TextureRegistry) Destroy() {
	for _, e := range r.entries {
		r.dev.Release(e.handle)
	}
	r.entries = nil
}

func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// decodePixels reads an image file and returns tightly packed RGB or
// RGBA bytes, flipped vertically so the first row is the bottom of the
// image (bitmap files store the top row first; GL expects UV origin at
// the bottom left).
func decodePixels(path string) (pix []byte, w, h, channels int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("decode: %w", err)
	}

	channels = channelCount(img)

	b := img.Bounds()
	w, h = b.Dx(), b.Dy()

	switch channels {
	case 4:
		// FlipV premultiplies alpha; flip during packing instead so
		// the uploaded bytes keep straight alpha
		straight, ok := img.(*image.NRGBA)
		if !ok {
			straight = image.NewNRGBA(b)
			draw.Draw(straight, b, img, b.Min, draw.Src)
		}
		pix = make([]byte, 0, w*h*4)
		for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := straight.NRGBAAt(x, y)
				pix = append(pix, c.R, c.G, c.B, c.A)
			}
		}
	case 3:
		flipped := transform.FlipV(img)
		pix = make([]byte, 0, w*h*3)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := flipped.RGBAAt(x, y)
				pix = append(pix, c.R, c.G, c.B)
			}
		}
	}
	return pix, w, h, channels, nil
}

// channelCount reports the channel depth of the decoded image: 1 for
// grayscale, 4 when an alpha channel is in use, 3 otherwise.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	// classification is by pixel content, not storage format: an image
	// whose alpha channel is entirely opaque uploads as 3-channel RGB.
	// jpeg decodes to YCbCr, always opaque; png with a used alpha
	// channel reports non-opaque
	if op, ok := img.(interface{ Opaque() bool }); ok && !op.Opaque() {
		return 4
	}
	return 3
}
