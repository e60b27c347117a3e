package interaction_test

import (
	"testing"

	"pickview/internal/camera"
	"pickview/internal/highlight"
	"pickview/internal/input"
	"pickview/internal/interaction"
	"pickview/internal/scene"
	"pickview/internal/viewport"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	scene  *scene.Scene
	cam    *camera.Camera
	fx     *highlight.Effector
	picker *interaction.Picker

	floor, a, b *scene.Object
}

// newFixture lines up a floor slab, box A and box B along the camera's view
// axis at distances of roughly 5, 9 and 14.
func newFixture() *fixture {
	f := &fixture{scene: scene.New(), cam: camera.New(800, 600), fx: highlight.New()}
	f.cam.Position = mgl32.Vec3{0, 0, 10}
	f.cam.Target = mgl32.Vec3{0, 0, 0}

	f.floor = scene.NewBox("floor", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 1, 0.2}, mgl32.Vec3{0.5, 0.5, 0.5}).SetClickable(false)
	f.a = scene.NewBox("A", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 0, 1})
	f.b = scene.NewBox("B", mgl32.Vec3{0, 0, -5}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 1, 0})
	f.scene.Add(f.floor, f.a, f.b)

	f.picker = interaction.NewPicker(viewport.New(800, 600), f.cam, f.scene, f.fx)
	return f
}

func TestPickerHoverSkipsFloor(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.picker.PointerMove(400, 300))

	hits := f.picker.LastHits()
	require.Len(t, hits, 3)
	assert.Equal(t, "floor", hits[0].Object.Name())
	assert.Equal(t, "A", hits[1].Object.Name())
	assert.Equal(t, "B", hits[2].Object.Name())
	assert.InDelta(t, 9.0, hits[1].Distance, 0.2)

	assert.Same(t, f.a, f.picker.Machine().Hovered())
	c, i := f.a.Emissive()
	assert.Equal(t, highlight.HoverColor, c)
	assert.Equal(t, float32(highlight.HoverIntensity), i)
}

func TestPickerTopDownCamera(t *testing.T) {
	f := newFixture()
	f.cam.Position = mgl32.Vec3{0, 30, 0}
	far := scene.NewBox("far", mgl32.Vec3{50, 0, 50}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{1, 1, 0})
	f.scene.Add(far)

	require.NoError(t, f.picker.PointerMove(400, 300))

	hits := f.picker.LastHits()
	require.Len(t, hits, 1)
	assert.Same(t, f.a, hits[0].Object)
	assert.InDelta(t, 28.9, hits[0].Distance, 1e-3)
	assert.Same(t, f.a, f.picker.Machine().Hovered())
}

func TestPickerMissAndOutOfBounds(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.picker.PointerMove(400, 300))
	require.NoError(t, f.picker.PointerMove(0, 0))
	assert.Empty(t, f.picker.LastHits())
	assert.Nil(t, f.picker.Machine().Hovered())

	require.NoError(t, f.picker.PointerMove(-500, 5000))
	assert.Empty(t, f.picker.LastHits())

	c, _ := f.a.Emissive()
	assert.Equal(t, highlight.Baseline, c)
}

func TestPickerDegenerateViewport(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.picker.PointerMove(400, 300))

	f.picker.SetViewport(viewport.Viewport{Width: 0, Height: 600})
	err := f.picker.PointerMove(10, 10)
	assert.ErrorIs(t, err, viewport.ErrDegenerateViewport)
	assert.Same(t, f.a, f.picker.Machine().Hovered(), "failed pick leaves state untouched")

	f.picker.SetViewport(viewport.New(800, 600))
	assert.NoError(t, f.picker.PointerMove(0, 0))
	assert.Nil(t, f.picker.Machine().Hovered())
}

func TestPickerSelection(t *testing.T) {
	f := newFixture()
	var names []string
	f.picker.Machine().OnSelectionChanged(func(ev interaction.SelectionEvent) {
		names = append(names, ev.Name())
	})

	require.NoError(t, f.picker.PointerMove(400, 300))
	f.picker.PointerClick(400, 300)
	assert.Same(t, f.a, f.picker.Machine().Selected())
	assert.Same(t, f.a, f.picker.Machine().Hovered())

	require.NoError(t, f.picker.PointerMove(0, 0))
	assert.Same(t, f.a, f.picker.Machine().Selected(), "moving away keeps the selection")

	f.picker.PointerClick(0, 0)
	assert.Nil(t, f.picker.Machine().Selected())
	assert.Equal(t, []string{"A", ""}, names)
}

func TestPickerFrustumCullAgrees(t *testing.T) {
	f := newFixture()
	f.picker.Caster.FrustumCull = true

	require.NoError(t, f.picker.PointerMove(400, 300))
	assert.Len(t, f.picker.LastHits(), 3)
	assert.Same(t, f.a, f.picker.Machine().Hovered())
}

func TestPickerHiddenObjectsAreNotCandidates(t *testing.T) {
	f := newFixture()
	f.a.Visible = false
	f.scene.Invalidate()

	require.NoError(t, f.picker.PointerMove(400, 300))
	assert.Same(t, f.b, f.picker.Machine().Hovered())
}

func TestPickerEventsFromQueue(t *testing.T) {
	f := newFixture()
	q := input.NewQueue()
	f.picker.Attach(q)

	q.PushMove(400, 300)
	q.PushButton(input.ButtonLeft, true)
	q.PushButton(input.ButtonLeft, false)
	q.PushResize(600, 600)
	q.Dispatch()

	assert.Same(t, f.a, f.picker.Machine().Selected())
	assert.Equal(t, viewport.New(600, 600), f.picker.Viewport())
	assert.InDelta(t, 1.0, f.cam.AspectRatio, 1e-6)

	q.PushResize(0, 0)
	q.PushMove(1, 1)
	q.Dispatch()
	assert.Same(t, f.a, f.picker.Machine().Hovered(), "move on a zero-area surface is skipped")
	assert.InDelta(t, 1.0, f.cam.AspectRatio, 1e-6)
}

// orderedSource checks the hovered box's glow at the moment it is detached.
type orderedSource struct {
	t        *testing.T
	obj      *scene.Object
	detached int
}

func (s *orderedSource) Subscribe(func(input.Event)) func() {
	return func() {
		s.detached++
		c, _ := s.obj.Emissive()
		assert.Equal(s.t, highlight.Baseline, c, "highlight reverted before detach")
	}
}

func TestPickerTeardown(t *testing.T) {
	f := newFixture()
	q := input.NewQueue()
	src := &orderedSource{t: t, obj: f.a}
	f.picker.Attach(q)
	f.picker.Attach(src)

	var hovers int
	f.picker.Machine().OnHoverChanged(func(interaction.HoverEvent) { hovers++ })

	q.PushMove(400, 300)
	q.Dispatch()
	require.Equal(t, 1, hovers)

	f.picker.Teardown()
	f.picker.Teardown()
	assert.Equal(t, 1, src.detached)
	assert.Equal(t, 0, q.Subscribers())
	assert.Nil(t, f.picker.Machine().Hovered())
	assert.Nil(t, f.fx.Active())

	// Nothing reacts once torn down.
	assert.NoError(t, f.picker.PointerMove(400, 300))
	f.picker.PointerClick(400, 300)
	f.picker.Attach(q)
	assert.Equal(t, 0, q.Subscribers())
	c, _ := f.a.Emissive()
	assert.Equal(t, highlight.Baseline, c)
	assert.Equal(t, 1, hovers)
}
