package engine

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectModifiers_EmptyPoolOrZeroMax(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []domain.Modifier{testutil.NewTestModifier("a", "A")}

	assert.Empty(t, SelectModifiers(nil, 3, rng))
	assert.Empty(t, SelectModifiers(pool, 0, rng))
}

func TestSelectModifiers_SingleModifierPool(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []domain.Modifier{testutil.NewTestModifier("a", "A")}

	for i := 0; i < 20; i++ {
		got := SelectModifiers(pool, 3, rng)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	}
}

func TestSelectModifiers_PrefersDistinctTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []domain.Modifier{
		testutil.NewTestModifier("s1", "점수1", testutil.WithModifierType("점수")),
		testutil.NewTestModifier("s2", "점수2", testutil.WithModifierType("점수")),
		testutil.NewTestModifier("t1", "시간1", testutil.WithModifierType("시간")),
		testutil.NewTestModifier("t2", "시간2", testutil.WithModifierType("시간")),
		testutil.NewTestModifier("p1", "벌칙1", testutil.WithModifierType("벌칙")),
		testutil.NewTestModifier("p2", "벌칙2", testutil.WithModifierType("벌칙")),
	}

	for trial := 0; trial < 200; trial++ {
		got := SelectModifiers(pool, 3, rng)
		types := make(map[string]bool)
		for _, m := range got {
			types[m.Type] = true
		}
		assert.Len(t, types, len(got), "trial %d: selection with room for every type repeated a type", trial)
	}
}

func TestSelectModifiers_FillsBeyondTypeCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []domain.Modifier{
		testutil.NewTestModifier("a", "A"),
		testutil.NewTestModifier("b", "B"),
		testutil.NewTestModifier("c", "C"),
	}

	sawThree := false
	for trial := 0; trial < 100; trial++ {
		got := SelectModifiers(pool, 3, rng)
		if len(got) == 3 {
			sawThree = true
		}
	}
	assert.True(t, sawThree, "second pass should fill from one shared type")
}

// TestSelectModifiers_Invariants property-tests count bounds, uniqueness,
// and mutual exclusion over random pools.
func TestSelectModifiers_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := []string{"점수", "시간", "벌칙", "미션", "규칙 변형"}

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(8) + 1
		pool := make([]domain.Modifier, n)
		for i := range pool {
			id := string(rune('a' + i))
			pool[i] = testutil.NewTestModifier(id, "mod-"+id, testutil.WithModifierType(types[rng.Intn(len(types))]))
		}
		// Random one-directional incompatibilities.
		for i := range pool {
			if rng.Intn(3) == 0 {
				other := pool[rng.Intn(n)].ID
				if other != pool[i].ID {
					pool[i].IncompatibleWith = append(pool[i].IncompatibleWith, other)
				}
			}
		}
		maxCount := rng.Intn(4)

		got := SelectModifiers(pool, maxCount, rng)

		assert.LessOrEqual(t, len(got), maxCount, "trial %d", trial)
		if maxCount > 0 {
			assert.NotEmpty(t, got, "trial %d: non-empty pool must yield a modifier", trial)
		}
		seen := make(map[string]bool)
		for _, m := range got {
			assert.False(t, seen[m.ID], "trial %d: %s selected twice", trial, m.ID)
			seen[m.ID] = true
		}
		for _, m := range got {
			for _, id := range m.IncompatibleWith {
				assert.False(t, seen[id], "trial %d: %s selected with incompatible %s", trial, m.ID, id)
			}
		}
	}
}

func TestSelectModifiers_SameSeedSameSelection(t *testing.T) {
	pool := testutil.NewTestBundle().Modifiers
	a := SelectModifiers(pool, 3, rand.New(rand.NewSource(99)))
	b := SelectModifiers(pool, 3, rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}
