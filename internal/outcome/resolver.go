package outcome

import (
	crand "crypto/rand"
	"encoding/binary"
)

// DrawFunc returns a uniform random value in [0, 100). The default is
// backed by crypto/rand; a provably-fair chain or a fixed sequence can be
// swapped in.
type DrawFunc func() float64

// Face is one displayable outcome with its display weight. Weights are
// cosmetic: they shape which losing outcome is shown, never whether the
// bet won.
type Face struct {
	Name   string
	Weight int
}

// Resolver decides bet outcomes from an adjusted probability.
type Resolver struct {
	draw DrawFunc
}

// NewResolver creates a resolver with the default secure draw source.
func NewResolver() *Resolver {
	return &Resolver{draw: SecureDraw}
}

// NewResolverWithDraw creates a resolver with an injected draw source.
func NewResolverWithDraw(draw DrawFunc) *Resolver {
	return &Resolver{draw: draw}
}

// Resolve reports whether a bet at the given probability wins. The
// probability must already be inside the variant safety band.
func (r *Resolver) Resolve(probability float64) bool {
	return r.draw() <= probability
}

// PickFace selects a face from the weighted set. Used to pick which losing
// outcome is displayed for non-binary games. Zero total weight falls back
// to the first face.
func (r *Resolver) PickFace(faces []Face) string {
	if len(faces) == 0 {
		return ""
	}

	total := 0
	for _, f := range faces {
		total += f.Weight
	}
	if total <= 0 {
		return faces[0].Name
	}

	// Reuse the [0,100) draw scaled onto the weight range.
	target := int(r.draw() / 100 * float64(total))
	for _, f := range faces {
		target -= f.Weight
		if target < 0 {
			return f.Name
		}
	}
	return faces[len(faces)-1].Name
}

// Payout returns the amount credited for a resolved bet: amount times the
// variant multiplier on a win, zero on a loss.
func Payout(amount, multiplier int64, won bool) int64 {
	if !won {
		return 0
	}
	return amount * multiplier
}

// SecureDraw returns a uniform value in [0, 100) from crypto/rand.
func SecureDraw() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; treat a failure
		// as a losing draw rather than guessing.
		return 100
	}
	// 53 bits of entropy, same construction as math/rand's Float64.
	n := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(n) / (1 << 53) * 100
}
