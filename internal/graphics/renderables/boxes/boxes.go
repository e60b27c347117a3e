package boxes

import (
	"path/filepath"

	"pickview/internal/graphics"
	"pickview/internal/graphics/renderer"
	"pickview/internal/profiling"
	"pickview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/boxes"

	// transparentAlpha is the opacity of materials flagged Transparent.
	transparentAlpha = 0.6
)

var (
	BoxesVertShader = filepath.Join(ShadersDir, "boxes.vert")
	BoxesFragShader = filepath.Join(ShadersDir, "boxes.frag")
)

// Boxes draws every visible scene object as a lit box. The material's
// emissive term is what shows the hover highlight.
type Boxes struct {
	shader *graphics.Shader
	cube   *graphics.Mesh

	LightDir mgl32.Vec3
}

func NewBoxes() *Boxes {
	return &Boxes{LightDir: mgl32.Vec3{-0.4, -1, -0.3}}
}

func (b *Boxes) Init() error {
	var err error
	b.shader, err = graphics.NewShader(BoxesVertShader, BoxesFragShader)
	if err != nil {
		return err
	}
	b.cube = graphics.NewMesh(graphics.CubeVertices(), 3, 3)
	return nil
}

// Render draws opaque objects first, then transparent ones blended over them
func (b *Boxes) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.boxes")()

	b.shader.Use()
	b.shader.SetMat4("view", ctx.View)
	b.shader.SetMat4("proj", ctx.Proj)
	b.shader.SetVec3("lightDir", b.LightDir)
	b.cube.Bind()

	var transparent []*scene.Object
	for _, obj := range ctx.Scene.Objects() {
		switch {
		case !obj.Visible:
		case obj.Material.Transparent:
			transparent = append(transparent, obj)
		default:
			b.draw(obj, 1)
		}
	}

	if len(transparent) > 0 {
		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
		for _, obj := range transparent {
			b.draw(obj, transparentAlpha)
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

func (b *Boxes) draw(obj *scene.Object, alpha float32) {
	emissive, intensity := obj.Emissive()

	b.shader.SetMat4("model", obj.Transform().Mul4(obj.Bounds().UnitCubeMatrix()))
	b.shader.SetVec3("color", obj.Material.Color)
	b.shader.SetVec3("emissive", emissive)
	b.shader.SetFloat("emissiveIntensity", intensity)
	b.shader.SetFloat("alpha", alpha)
	b.cube.Draw(gl.TRIANGLES)
}

func (b *Boxes) Dispose() {
	if b.cube != nil {
		b.cube.Delete()
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}

func (b *Boxes) SetViewport(width, height int) {}
