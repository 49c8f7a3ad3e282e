package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingletonsAreComparable(t *testing.T) {
	assert.Equal(t, K, K)
	assert.NotEqual(t, K, S)
	assert.NotEqual(t, I, V)
}

func TestDotAndQuestionCarryPayload(t *testing.T) {
	d1 := Dot{Ch: 'X'}
	d2 := Dot{Ch: 'X'}
	d3 := Dot{Ch: 'Y'}
	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3)

	q1 := Question{Ch: 'a'}
	q2 := Question{Ch: 'b'}
	assert.NotEqual(t, q1, q2)
}

func TestRefcountAuditTracksConstruction(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()
	ResetCounters()

	k1 := NewK1(I)
	s1 := NewS1(I)
	s2 := NewS2(I, V)
	d1 := NewD1(ExprFunction{Fun: I})
	cont := NewCont(TermCont)

	snap := Snapshot()
	assert.Equal(t, int64(1), snap.Allocs[KindK1])
	assert.Equal(t, int64(1), snap.Allocs[KindS1])
	assert.Equal(t, int64(1), snap.Allocs[KindS2])
	assert.Equal(t, int64(1), snap.Allocs[KindD1])
	assert.Equal(t, int64(1), snap.Allocs[KindContFn])
	assert.False(t, snap.Balanced())

	ReleaseFunc(k1)
	ReleaseFunc(s1)
	ReleaseFunc(s2)
	ReleaseFunc(d1)
	ReleaseFunc(cont)

	snap = Snapshot()
	assert.True(t, snap.Balanced())
}

func TestReleaseFuncIsNoopForSingletons(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()
	ResetCounters()

	ReleaseFunc(K)
	ReleaseFunc(I)
	ReleaseFunc(Dot{Ch: 'z'})

	snap := Snapshot()
	for k := Kind(0); k < numKinds; k++ {
		assert.Zero(t, snap.Frees[k])
	}
}
