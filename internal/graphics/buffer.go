package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// Mesh is a vertex array holding interleaved float32 attributes.
type Mesh struct {
	vao    uint32
	vbo    uint32
	stride int32
	count  int32
}

// NewMesh uploads vertices and describes their layout: sizes lists the
// component count of each attribute, bound to locations 0, 1, ...
func NewMesh(vertices []float32, sizes ...int32) *Mesh {
	var perVertex int32
	for _, n := range sizes {
		perVertex += n
	}
	m := &Mesh{stride: perVertex * 4, count: int32(len(vertices)) / perVertex}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var offset uintptr
	for loc, n := range sizes {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), n, gl.FLOAT, false, m.stride, offset)
		offset += uintptr(n) * 4
	}
	gl.BindVertexArray(0)
	return m
}

// Bind makes the mesh current for Draw calls.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Draw issues one draw call over every vertex; the mesh must be bound.
func (m *Mesh) Draw(mode uint32) {
	gl.DrawArrays(mode, 0, m.count)
}

// Delete releases the GL objects. Safe to call twice.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
