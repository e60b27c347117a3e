package renderer

import (
	"pickview/internal/camera"
	"pickview/internal/physics"
	"pickview/internal/profiling"
	"pickview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera

	ClearColor mgl32.Vec3
}

// NewRenderer configures GL state and initializes the given renderables
func NewRenderer(cam *camera.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		camera:      cam,
		ClearColor:  mgl32.Vec3{0.12, 0.13, 0.16},
	}

	for i, renderable := range rs {
		if err := renderable.Init(); err != nil {
			// Release the ones that did come up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}
	return r, nil
}

// Render draws one frame of s. selected, if set, is outlined.
func (r *Renderer) Render(s *scene.Scene, selected physics.Pickable) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.ClearColor[0], r.ClearColor[1], r.ClearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:   r.camera,
		Scene:    s,
		Selected: selected,
		View:     r.camera.ViewMatrix(),
		Proj:     r.camera.ProjectionMatrix(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport resizes the GL viewport and every renderable. The camera's
// aspect ratio is owned by the picker, which receives the same resize.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
