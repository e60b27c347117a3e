package wireframe

import (
	"path/filepath"

	"pickview/internal/graphics"
	"pickview/internal/graphics/renderer"
	"pickview/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/wireframe"
)

var (
	WireframeVertShader = filepath.Join(ShadersDir, "wireframe.vert")
	WireframeFragShader = filepath.Join(ShadersDir, "wireframe.frag")
)

// outlineScale pushes the outline just outside the box faces.
const outlineScale = 1.01

// Wireframe outlines the selected object
type Wireframe struct {
	shader *graphics.Shader
	edges  *graphics.Mesh

	Color mgl32.Vec3
}

func NewWireframe() *Wireframe {
	return &Wireframe{Color: mgl32.Vec3{1, 1, 1}}
}

func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(WireframeVertShader, WireframeFragShader)
	if err != nil {
		return err
	}
	w.edges = graphics.NewMesh(graphics.CubeWireframeVertices(), 3)
	return nil
}

func (w *Wireframe) Render(ctx renderer.RenderContext) {
	sel := ctx.Selected
	if sel == nil {
		return
	}
	defer profiling.Track("renderer.wireframe")()

	model := sel.Transform().
		Mul4(sel.Bounds().UnitCubeMatrix()).
		Mul4(mgl32.Scale3D(outlineScale, outlineScale, outlineScale))

	w.shader.Use()
	w.shader.SetMat4("proj", ctx.Proj)
	w.shader.SetMat4("view", ctx.View)
	w.shader.SetMat4("model", model)
	w.shader.SetVec3("color", w.Color)

	w.edges.Bind()
	w.edges.Draw(gl.LINES)
}

func (w *Wireframe) Dispose() {
	if w.edges != nil {
		w.edges.Delete()
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}

func (w *Wireframe) SetViewport(width, height int) {}
