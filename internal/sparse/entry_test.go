package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec_EntryKind(t *testing.T) {
	v := newTestVec(t, 4)
	v.Insert(1, 11)

	switch e := v.Entry(1).(type) {
	case *OccupiedEntry[uint16, int]:
		assert.Equal(t, uint16(1), e.Key())
		assert.Equal(t, 11, e.Get())
	default:
		t.Fatalf("Entry(1) = %T, want occupied", e)
	}

	switch e := v.Entry(2).(type) {
	case *VacantEntry[uint16, int]:
		assert.Equal(t, uint16(2), e.Key())
	default:
		t.Fatalf("Entry(2) = %T, want vacant", e)
	}
}

func TestEntry_AndModifyOrInsert(t *testing.T) {
	v := newTestVec(t, 4)
	add := func(key uint16, delta int) {
		v.Entry(key).AndModify(func(p *int) { *p += delta }).OrInsert(delta)
	}

	add(3, 5)
	add(3, -2)
	add(3, 10)
	add(0, 1)

	got, _ := v.Get(3)
	assert.Equal(t, 13, got)
	got, _ = v.Get(0)
	assert.Equal(t, 1, got)
	assert.Equal(t, 2, v.Len())
}

func TestEntry_OrInsertVariants(t *testing.T) {
	tests := []struct {
		name   string
		insert func(e Entry[uint16, int]) *int
		want   int
	}{
		{
			name:   "OrInsert",
			insert: func(e Entry[uint16, int]) *int { return e.OrInsert(7) },
			want:   7,
		},
		{
			name:   "OrInsertWith",
			insert: func(e Entry[uint16, int]) *int { return e.OrInsertWith(func() int { return 8 }) },
			want:   8,
		},
		{
			name:   "OrInsertWithKey",
			insert: func(e Entry[uint16, int]) *int { return e.OrInsertWithKey(func(k uint16) int { return int(k) * 100 }) },
			want:   300,
		},
		{
			name:   "OrDefault",
			insert: func(e Entry[uint16, int]) *int { return e.OrDefault() },
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/vacant", func(t *testing.T) {
			v := newTestVec(t, 4)
			p := tt.insert(v.Entry(3))
			require.NotNil(t, p)
			assert.Equal(t, tt.want, *p)
			got, ok := v.Get(3)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
		t.Run(tt.name+"/occupied", func(t *testing.T) {
			v := newTestVec(t, 4)
			v.Insert(3, -1)
			p := tt.insert(v.Entry(3))
			require.NotNil(t, p)
			assert.Equal(t, -1, *p, "occupied entry keeps its value")
			assert.Equal(t, 1, v.Len())
		})
	}
}

func TestEntry_LazyValueNotComputedWhenOccupied(t *testing.T) {
	v := newTestVec(t, 4)
	v.Insert(0, 1)

	called := false
	v.Entry(0).OrInsertWith(func() int {
		called = true
		return 0
	})
	assert.False(t, called)
}

func TestOccupiedEntry_ReplaceAndRemove(t *testing.T) {
	v := newTestVec(t, 8)
	v.Insert(2, 20)
	v.Insert(5, 50)

	e, ok := v.Entry(2).(*OccupiedEntry[uint16, int])
	require.True(t, ok)

	assert.Equal(t, 20, e.Replace(21))
	assert.Equal(t, 21, e.Get())

	*e.GetMut() += 1
	assert.Equal(t, 22, e.Remove())

	assert.False(t, v.Contains(2))
	got, ok := v.Get(5)
	assert.True(t, ok)
	assert.Equal(t, 50, got)
	assert.NoError(t, v.Validate())
}

func TestOccupiedEntry_StaleHandlePanics(t *testing.T) {
	t.Run("after own remove", func(t *testing.T) {
		v := newTestVec(t, 4)
		v.Insert(1, 1)
		e := v.Entry(1).(*OccupiedEntry[uint16, int])
		e.Remove()

		assert.Panics(t, func() { e.Get() })
		assert.Panics(t, func() { e.Remove() })
		assert.Panics(t, func() { e.Replace(2) })
	})

	t.Run("after element moved by another remove", func(t *testing.T) {
		v := newTestVec(t, 4)
		v.Insert(0, 0)
		v.Insert(1, 1)
		last := v.Entry(1).(*OccupiedEntry[uint16, int])

		v.Remove(0)

		assert.Panics(t, func() { last.Get() })
		got, ok := v.Get(1)
		assert.True(t, ok)
		assert.Equal(t, 1, got)
	})
}

func TestVacantEntry_InsertEntry(t *testing.T) {
	v := newTestVec(t, 4)

	o := v.Entry(3).InsertEntry(9)
	assert.Equal(t, uint16(3), o.Key())
	assert.Equal(t, 9, o.Get())

	o = v.Entry(3).InsertEntry(10)
	assert.Equal(t, 10, o.Get())
	assert.Equal(t, 1, v.Len())
}

func TestVacantEntry_Insert(t *testing.T) {
	v := newTestVec(t, 4)

	prev, replaced := v.Entry(1).Insert(4)
	assert.False(t, replaced)
	assert.Zero(t, prev)

	prev, replaced = v.Entry(1).Insert(5)
	assert.True(t, replaced)
	assert.Equal(t, 4, prev)
}

func TestVacantEntry_Panics(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		v := newTestVec(t, 4)
		e := v.Entry(9)
		_, vacant := e.(*VacantEntry[uint16, int])
		require.True(t, vacant)
		assert.Panics(t, func() { e.OrInsert(1) })
		assert.Equal(t, 0, v.Len())
	})

	t.Run("reused handle", func(t *testing.T) {
		v := newTestVec(t, 4)
		e := v.Entry(2)
		e.OrInsert(1)
		assert.Panics(t, func() { e.OrInsert(2) })
		got, _ := v.Get(2)
		assert.Equal(t, 1, got)
		assert.NoError(t, v.Validate())
	})
}

func TestVacantEntry_AndModifyIsNoop(t *testing.T) {
	v := newTestVec(t, 4)
	called := false

	e := v.Entry(0).AndModify(func(*int) { called = true })

	assert.False(t, called)
	assert.False(t, v.Contains(0))
	_, vacant := e.(*VacantEntry[uint16, int])
	assert.True(t, vacant)
}
