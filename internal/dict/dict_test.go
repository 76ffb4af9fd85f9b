package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(key, value int) Entry[int, int] { return Entry[int, int]{Key: key, Named: true, Value: value} }
func anon(value int) Entry[int, int]       { return Entry[int, int]{Value: value} }

func TestNew(t *testing.T) {
	d := New[int, int](30201)
	assert.Equal(t, 30201, d.Cap())
	assert.Empty(t, d.Entries())
}

func TestGet(t *testing.T) {
	d := New[int, int](11)
	_, err := d.Insert(4, 3)
	require.NoError(t, err)

	v, ok := d.Get(4)
	assert.True(t, ok, "expected 4 to be found")
	assert.Equal(t, 3, v)

	_, ok = d.Get(339)
	assert.False(t, ok, "expected no match for 339")
}

func TestInsert(t *testing.T) {
	d := New[int, int](30201)
	addr, err := d.Insert(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, addr)
	addr, err = d.Insert(4, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, addr)
	assert.Equal(t, []Entry[int, int]{named(2, 3), named(4, 5)}, d.Entries())
}

func TestInsertReplaces(t *testing.T) {
	d := New[int, int](30201)
	_, err := d.Insert(4, 3)
	require.NoError(t, err)
	_, err = d.Insert(4, 5)
	require.NoError(t, err)
	assert.Equal(t, []Entry[int, int]{named(4, 5)}, d.Entries())
}

func TestInsertShiftsAddresses(t *testing.T) {
	d := New[int, int](8)
	for _, key := range []int{10, 20, 30, 40} {
		_, err := d.Insert(key, key)
		require.NoError(t, err)
	}

	for key, want := range map[int]int{10: 0, 20: 1, 30: 2, 40: 3} {
		addr, ok := d.Addr(key)
		require.True(t, ok)
		assert.Equal(t, want, addr, "expected %v address before rename", key)
	}

	addr, err := d.Insert(20, 21)
	require.NoError(t, err)
	assert.Equal(t, 3, addr, "renamed entry moves to the end")

	for key, want := range map[int]int{10: 0, 30: 1, 40: 2, 20: 3} {
		addr, ok := d.Addr(key)
		require.True(t, ok)
		assert.Equal(t, want, addr, "expected %v address after rename", key)
	}
}

func TestInsertRemovesOnlyFirstMatch(t *testing.T) {
	d := New[int, int](8)
	_, err := d.Append(1)
	require.NoError(t, err)
	_, err = d.Insert(7, 2)
	require.NoError(t, err)
	_, err = d.Insert(7, 3)
	require.NoError(t, err)
	assert.Equal(t, []Entry[int, int]{anon(1), named(7, 3)}, d.Entries())
}

func TestOverflow(t *testing.T) {
	d := New[int, int](1)
	_, err := d.Insert(4, 3)
	require.NoError(t, err)

	_, err = d.Insert(34, 5)
	assert.Equal(t, ErrOverflow, err)
	_, err = d.Append(5)
	assert.Equal(t, ErrOverflow, err)
	assert.Equal(t, []Entry[int, int]{named(4, 3)}, d.Entries(), "prior entries must be unchanged")

	_, err = d.Insert(4, 9)
	require.NoError(t, err, "replacing at capacity frees a slot first")
	assert.Equal(t, []Entry[int, int]{named(4, 9)}, d.Entries())
}

func TestAppendAnonymous(t *testing.T) {
	d := New[int, int](4)
	addr, err := d.Append(0)
	require.NoError(t, err)
	assert.Equal(t, 0, addr)

	// anonymous slots are never found by key, even the zero key
	_, ok := d.Get(0)
	assert.False(t, ok)
	_, ok = d.Addr(0)
	assert.False(t, ok)
}

func TestAtSet(t *testing.T) {
	d := New[int, int](4)
	_, err := d.Insert(1, 10)
	require.NoError(t, err)
	_, err = d.Append(0)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 99))
	ent, ok := d.At(1)
	require.True(t, ok)
	assert.Equal(t, anon(99), ent)

	require.NoError(t, d.Set(0, 11))
	ent, ok = d.At(0)
	require.True(t, ok)
	assert.Equal(t, named(1, 11), ent, "set keeps the key")

	for _, addr := range []int{-1, 2, 100} {
		_, ok := d.At(addr)
		assert.False(t, ok, "expected no entry @%v", addr)
		assert.Equal(t, ErrUndefinedAccess, d.Set(addr, 1), "expected undefined access @%v", addr)
	}
}

func TestClear(t *testing.T) {
	d := New[int, int](30201)
	_, _ = d.Insert(2, 3)
	_, _ = d.Insert(4, 5)
	d.Clear()
	assert.Empty(t, d.Entries())
	assert.Equal(t, 0, d.Len())
}
