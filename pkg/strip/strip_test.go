package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	calls []string
}

func (r *recorder) Advance()         { r.calls = append(r.calls, "advance") }
func (r *recorder) Retreat()         { r.calls = append(r.calls, "retreat") }
func (r *recorder) Pause()           { r.calls = append(r.calls, "pause") }
func (r *recorder) Resume()          { r.calls = append(r.calls, "resume") }
func (r *recorder) RecomputeBounds() { r.calls = append(r.calls, "recompute") }

func TestStep(t *testing.T) {
	r := &recorder{}

	Step(r, Forward)
	Step(r, Backward)
	Step(r, 0)

	assert.Equal(t, []string{"advance", "retreat"}, r.calls)
}
