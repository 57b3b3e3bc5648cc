package invaders

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sprite is anything that can live in a Group.
type Sprite interface {
	comparable
	Bounds() core.Rect
	Update(s *Settings)
	Draw(dst *core.Screen)
}

// Group is an ordered collection of sprites. Iteration follows insertion
// order, which keeps every pass over a group deterministic.
type Group[T Sprite] struct {
	sprites []T
}

// NewGroup creates an empty group.
func NewGroup[T Sprite]() *Group[T] {
	return &Group[T]{}
}

// Add appends sprites to the group.
func (g *Group[T]) Add(sprites ...T) {
	g.sprites = append(g.sprites, sprites...)
}

// Remove deletes a sprite. It reports whether the sprite was a member.
func (g *Group[T]) Remove(s T) bool {
	i := slices.Index(g.sprites, s)
	if i < 0 {
		return false
	}
	g.sprites = slices.Delete(g.sprites, i, i+1)
	return true
}

// RemoveFunc deletes every sprite matching the predicate and returns them
// in group order.
func (g *Group[T]) RemoveFunc(match func(T) bool) []T {
	var removed []T
	kept := g.sprites[:0]
	for _, s := range g.sprites {
		if match(s) {
			removed = append(removed, s)
		} else {
			kept = append(kept, s)
		}
	}
	clear(g.sprites[len(kept):])
	g.sprites = kept
	return removed
}

// Empty removes all sprites.
func (g *Group[T]) Empty() {
	clear(g.sprites)
	g.sprites = g.sprites[:0]
}

// Len returns the number of sprites.
func (g *Group[T]) Len() int {
	return len(g.sprites)
}

// Sprites returns a copy of the members, safe to iterate while the group changes.
func (g *Group[T]) Sprites() []T {
	return slices.Clone(g.sprites)
}

// Update calls Update on every sprite.
func (g *Group[T]) Update(s *Settings) {
	for _, sp := range g.sprites {
		sp.Update(s)
	}
}

// Draw calls Draw on every sprite.
func (g *Group[T]) Draw(dst *core.Screen) {
	for _, sp := range g.sprites {
		sp.Draw(dst)
	}
}

// Collision records one sprite from the first group and everything it
// removed from the second.
type Collision[A, B Sprite] struct {
	Sprite A
	Hits   []B
}

// GroupCollide tests every sprite in ga against gb and removes both sides
// of each overlap. Sprites of gb removed by an earlier member of ga are no
// longer tested, so each of them appears in at most one Collision.
func GroupCollide[A, B Sprite](ga *Group[A], gb *Group[B]) []Collision[A, B] {
	var out []Collision[A, B]
	for _, a := range ga.Sprites() {
		r := a.Bounds()
		hits := gb.RemoveFunc(func(b B) bool {
			return r.Intersects(b.Bounds())
		})
		if len(hits) == 0 {
			continue
		}
		ga.Remove(a)
		out = append(out, Collision[A, B]{Sprite: a, Hits: hits})
	}
	return out
}

// CollideAny returns the first sprite in g overlapping r.
func CollideAny[T Sprite](r core.Rect, g *Group[T]) (T, bool) {
	for _, s := range g.sprites {
		if r.Intersects(s.Bounds()) {
			return s, true
		}
	}
	var zero T
	return zero, false
}
