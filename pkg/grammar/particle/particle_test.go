package particle_test

import (
	"testing"

	"github.com/aretw0/duet/pkg/grammar/particle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const closestSample = "p=<3,0,0>, v=<2,0,0>, a=<-1,0,0>\np=<4,0,0>, v=<0,0,0>, a=<-2,0,0>"

const collisionSample = `p=<-6,0,0>, v=< 3,0,0>, a=< 0,0,0>
p=<-4,0,0>, v=< 2,0,0>, a=< 0,0,0>
p=<-2,0,0>, v=< 1,0,0>, a=< 0,0,0>
p=< 3,0,0>, v=<-1,0,0>, a=< 0,0,0>`

func TestParseLine(t *testing.T) {
	got, err := particle.ParseLine("p=<3,0,0>, v=<2,0,0>, a=<-1,0,0>")
	require.NoError(t, err)
	assert.Equal(t, particle.Particle{
		P: particle.Vec3{X: 3},
		V: particle.Vec3{X: 2},
		A: particle.Vec3{X: -1},
	}, got)
	assert.Equal(t, "p=<3,0,0>, v=<2,0,0>, a=<-1,0,0>", got.String())
}

func TestParse_Strict(t *testing.T) {
	_, err := particle.Parse("p=<1,2,3>, v=<0,0,0>, a=<0,0,0>\np=<1,2>, v=<0,0,0>, a=<0,0,0>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestVec3_Manhattan(t *testing.T) {
	assert.Equal(t, int64(6), particle.Vec3{X: -1, Y: 2, Z: -3}.Manhattan())
}

func TestPositionAt(t *testing.T) {
	p := particle.Particle{P: particle.Vec3{X: 3}, V: particle.Vec3{X: 2}, A: particle.Vec3{X: -1}}
	// Ticks move it to 4, 4, 3.
	assert.Equal(t, particle.Vec3{X: 6}, p.PositionAt(0))
	assert.Equal(t, particle.Vec3{X: 8}, p.PositionAt(1))
	assert.Equal(t, particle.Vec3{X: 8}, p.PositionAt(2))
	assert.Equal(t, particle.Vec3{X: 6}, p.PositionAt(3))
}

func TestClosest(t *testing.T) {
	ps, err := particle.Parse(closestSample)
	require.NoError(t, err)
	assert.Equal(t, 0, particle.Closest(ps))
	assert.Equal(t, -1, particle.Closest(nil))
}

func TestSurvivors(t *testing.T) {
	ps, err := particle.Parse(collisionSample)
	require.NoError(t, err)
	assert.Equal(t, 1, particle.Survivors(ps, particle.DefaultHorizon))
	assert.Equal(t, 4, particle.Survivors(ps, 1))
}
