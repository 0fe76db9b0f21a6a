// Package glrender draws graphics.Canvas calls with OpenGL 4.1.
package glrender

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/gamestack/internal/graphics"
	"github.com/Faultbox/gamestack/internal/logger"
	"github.com/Faultbox/gamestack/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Presenter shows a finished frame. *platform.Window implements it.
type Presenter interface {
	SwapBuffers()
}

// Renderer implements graphics.Canvas. Every draw call is issued
// immediately, so draw order is call order.
type Renderer struct {
	width, height int
	presenter     Presenter

	solidShader  uint32
	spriteShader uint32
	solidProj    int32
	spriteProj   int32
	spriteTex    int32

	solidVAO, solidVBO   uint32
	spriteVAO, spriteVBO uint32

	// Uploaded images, keyed by identity. Images are immutable.
	textures map[*graphics.Image]uint32

	// Text textures live for one frame.
	frameTextures []uint32

	proj math.Mat4
}

var _ graphics.Canvas = (*Renderer)(nil)

// New creates a renderer. An OpenGL context must be current.
func New(width, height int, presenter Presenter) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		presenter: presenter,
		textures:  make(map[*graphics.Image]uint32),
	}

	var err error
	r.solidShader, err = compileProgram(solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	r.spriteShader, err = compileProgram(spriteVertexShader, spriteFragmentShader)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("create sprite shader: %w", err)
	}
	r.solidProj = gl.GetUniformLocation(r.solidShader, gl.Str("uProjection\x00"))
	r.spriteProj = gl.GetUniformLocation(r.spriteShader, gl.Str("uProjection\x00"))
	r.spriteTex = gl.GetUniformLocation(r.spriteShader, gl.Str("uTexture\x00"))

	// Solid: pos(2) + color(4).
	r.solidVAO, r.solidVBO = createBuffers(2, 4)
	// Sprite: pos(2) + uv(2).
	r.spriteVAO, r.spriteVBO = createBuffers(2, 2)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r.Resize(width, height)
	return r, nil
}

// Resize updates the viewport and projection.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.proj = math.ScreenOrtho(float32(width), float32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Clear fills the frame with c.
func (r *Renderer) Clear(c graphics.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, w, h float32, c graphics.Color) {
	vertices := []float32{
		x, y, c.R, c.G, c.B, c.A,
		x + w, y, c.R, c.G, c.B, c.A,
		x + w, y + h, c.R, c.G, c.B, c.A,
		x, y, c.R, c.G, c.B, c.A,
		x + w, y + h, c.R, c.G, c.B, c.A,
		x, y + h, c.R, c.G, c.B, c.A,
	}

	gl.UseProgram(r.solidShader)
	gl.UniformMatrix4fv(r.solidProj, 1, false, r.proj.Ptr())
	drawTriangles(r.solidVAO, r.solidVBO, vertices, 6)
}

// DrawImage draws img at its natural size with the top-left corner at (x, y).
func (r *Renderer) DrawImage(img *graphics.Image, x, y float32) {
	tex, ok := r.textures[img]
	if !ok {
		tex = uploadTexture(img)
		r.textures[img] = tex
	}
	w, h := img.Size()
	r.drawTexture(tex, x, y, float32(w), float32(h))
}

// DrawText rasterizes text with f and draws it with the top-left corner at (x, y).
func (r *Renderer) DrawText(f *graphics.Font, text string, x, y float32, c graphics.Color) error {
	if f == nil || f.Closed() {
		return fmt.Errorf("draw text %q: font is nil or closed", text)
	}
	if text == "" {
		return nil
	}
	img := f.Rasterize(text, c)
	tex := uploadTexture(img)
	r.frameTextures = append(r.frameTextures, tex)
	w, h := img.Size()
	r.drawTexture(tex, x, y, float32(w), float32(h))
	return nil
}

// Present swaps buffers and frees this frame's text textures.
func (r *Renderer) Present() error {
	if len(r.frameTextures) > 0 {
		gl.DeleteTextures(int32(len(r.frameTextures)), &r.frameTextures[0])
		r.frameTextures = r.frameTextures[:0]
	}
	if r.presenter != nil {
		r.presenter.SwapBuffers()
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Close releases all GL objects.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("textures", len(r.textures)))

	for img, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
		delete(r.textures, img)
	}
	if len(r.frameTextures) > 0 {
		gl.DeleteTextures(int32(len(r.frameTextures)), &r.frameTextures[0])
		r.frameTextures = nil
	}
	for _, vao := range []*uint32{&r.solidVAO, &r.spriteVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&r.solidVBO, &r.spriteVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if r.solidShader != 0 {
		gl.DeleteProgram(r.solidShader)
	}
	if r.spriteShader != 0 {
		gl.DeleteProgram(r.spriteShader)
	}
}

func (r *Renderer) drawTexture(tex uint32, x, y, w, h float32) {
	vertices := []float32{
		x, y, 0, 0,
		x + w, y, 1, 0,
		x + w, y + h, 1, 1,
		x, y, 0, 0,
		x + w, y + h, 1, 1,
		x, y + h, 0, 1,
	}

	gl.UseProgram(r.spriteShader)
	gl.UniformMatrix4fv(r.spriteProj, 1, false, r.proj.Ptr())
	gl.Uniform1i(r.spriteTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	drawTriangles(r.spriteVAO, r.spriteVBO, vertices, 6)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func drawTriangles(vao, vbo uint32, vertices []float32, count int32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, count)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// createBuffers makes a VAO/VBO pair with a vec2 position at location 0 and
// an attribute of size extra at location 1.
func createBuffers(posSize, extra int32) (uint32, uint32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := (posSize + extra) * 4
	gl.VertexAttribPointerWithOffset(0, posSize, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, extra, gl.FLOAT, false, stride, uintptr(posSize*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

func uploadTexture(img *graphics.Image) uint32 {
	pix := img.RGBA()
	w, h := img.Size()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pix.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
