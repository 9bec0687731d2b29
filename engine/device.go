package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLTextureDevice implements TextureDevice against the current OpenGL
// context. Textures are uploaded with repeat wrapping, linear filtering
// and generated mipmaps.
type GLTextureDevice struct{}

func (GLTextureDevice) Upload(pix []byte, width, height, channels int) (uint32, error) {
	var internal int32
	var format uint32
	switch channels {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("upload: unsupported channel count %d", channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// rows are tightly packed, which breaks the default 4-byte alignment
	// for RGB images
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

func (GLTextureDevice) Bind(slot int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (GLTextureDevice) Release(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
