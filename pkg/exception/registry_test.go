package exception

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
)

func newTestRegistry(t *testing.T, capacity int) *Registry {
	t.Helper()
	return New(Config{Capacity: capacity, BufferMax: 32})
}

func TestNewAppliesDefaults(t *testing.T) {
	r := New(Config{})

	cfg := r.Config()
	assert.Equal(t, DefaultBufferMax, cfg.BufferMax)
	assert.Equal(t, DefaultCapacity, cfg.Capacity)
	assert.Equal(t, DefaultIDOffset, cfg.IDOffset)
	assert.Equal(t, StrategyBuffered, cfg.Strategy)
	assert.Equal(t, DefaultCapacity, r.Cap())
	assert.Zero(t, r.Len())
}

func TestAddDuplicateRejection(t *testing.T) {
	r := newTestRegistry(t, 8)

	_, err := r.Add("A", "d", 1)
	require.NoError(t, err)

	_, err = r.Add("A", "d2", 2)
	assert.ErrorIs(t, err, ErrDuplicate, "same name")

	_, err = r.Add("B", "d", 1)
	assert.ErrorIs(t, err, ErrDuplicate, "same id")

	assert.Equal(t, 1, r.Len())
}

func TestAddDuplicateCarriesCode(t *testing.T) {
	r := newTestRegistry(t, 4)
	_, err := r.Add("A", "", 1)
	require.NoError(t, err)

	_, err = r.Add("A", "", 2)
	require.Error(t, err)
	assert.True(t, exfcerror.HasCode(err, exfcerror.CodeDuplicateEntry))

	var structured *exfcerror.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, "Registry.Add", structured.Operation())
	assert.Equal(t, "A", structured.Details()["name"])
}

func TestRoundTrip(t *testing.T) {
	r := newTestRegistry(t, 8)
	_, err := r.Add("first", "", 7)
	require.NoError(t, err)

	i, err := r.Add("X", "desc", 42)
	require.NoError(t, err)

	got, err := r.FindByName("X")
	require.NoError(t, err)
	assert.Equal(t, i, got)

	got, err = r.FindByID(42)
	require.NoError(t, err)
	assert.Equal(t, i, got)

	got, err = r.FindByRecord(Record{Name: "X", ID: 42})
	require.NoError(t, err)
	assert.Equal(t, i, got)

	rec, err := r.At(i)
	require.NoError(t, err)
	assert.Equal(t, Record{Name: "X", Description: "desc", ID: 42}, rec)

	got, err = r.RemoveByName("X")
	require.NoError(t, err)
	assert.Equal(t, i, got)

	_, err = r.FindByName("X")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.FindByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveByID(t *testing.T) {
	r := newTestRegistry(t, 4)
	_, err := r.Add("A", "", 1)
	require.NoError(t, err)
	i, err := r.Add("B", "", 2)
	require.NoError(t, err)

	got, err := r.RemoveByID(2)
	require.NoError(t, err)
	assert.Equal(t, i, got)
	assert.Equal(t, 1, r.Len())

	_, err = r.RemoveByID(2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.RemoveByName("B")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveLeavesHoleUntilCompaction(t *testing.T) {
	r := newTestRegistry(t, 4)
	for i, name := range []string{"A", "B", "C"} {
		_, err := r.Add(name, "", i+1)
		require.NoError(t, err)
	}

	_, err := r.RemoveByName("A")
	require.NoError(t, err)

	idx, err := r.FindByName("B")
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "removal does not move other records")

	first, err := r.First()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	// the next insertion compacts first
	idx, err = r.Add("D", "", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = r.FindByName("B")
	require.NoError(t, err)
	assert.Zero(t, idx)
}

func TestCapacityBoundary(t *testing.T) {
	r := newTestRegistry(t, 3)
	for i := 0; i < 3; i++ {
		idx, err := r.Add("E"+strconv.Itoa(i), "", i)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	before, err := r.GetAll()
	require.NoError(t, err)

	_, err = r.Add("overflow", "", 99)
	require.ErrorIs(t, err, ErrFull)
	assert.True(t, exfcerror.HasCode(err, exfcerror.CodeCapacityExceeded))

	after, err := r.GetAll()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, _, err = r.AddNext("overflow", "")
	assert.ErrorIs(t, err, ErrFull)
}

func TestFullRegistryAcceptsAfterRemoval(t *testing.T) {
	r := newTestRegistry(t, 2)
	_, err := r.Add("A", "", 1)
	require.NoError(t, err)
	_, err = r.Add("B", "", 2)
	require.NoError(t, err)

	_, err = r.RemoveByName("A")
	require.NoError(t, err)

	idx, err := r.Add("C", "", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	all, err := r.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []Record{{Name: "B", ID: 2}, {Name: "C", ID: 3}}, all)
}

func TestArgumentValidation(t *testing.T) {
	r := newTestRegistry(t, 4)

	tests := []struct {
		name string
		call func() error
	}{
		{"add empty name", func() error { _, err := r.Add("", "d", 1); return err }},
		{"add negative id", func() error { _, err := r.Add("A", "d", -1); return err }},
		{"add next empty name", func() error { _, _, err := r.AddNext("", "d"); return err }},
		{"remove empty name", func() error { _, err := r.RemoveByName(""); return err }},
		{"remove negative id", func() error { _, err := r.RemoveByID(-3); return err }},
		{"find empty name", func() error { _, err := r.FindByName(""); return err }},
		{"find negative id", func() error { _, err := r.FindByID(-1); return err }},
		{"find record negative id", func() error { _, err := r.FindByRecord(Record{Name: "A", ID: -1}); return err }},
		{"at out of range", func() error { _, err := r.At(4); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.False(t, IsFatal(err))
		})
	}
	assert.Zero(t, r.Len())
}

func TestEmptyDescriptionAllowed(t *testing.T) {
	r := newTestRegistry(t, 2)
	_, err := r.Add("A", "", 0)
	assert.NoError(t, err)
}

func TestFindByRecord(t *testing.T) {
	r := newTestRegistry(t, 4)
	_, err := r.Add("A", "d", 1)
	require.NoError(t, err)
	_, err = r.Add("B", "d", 2)
	require.NoError(t, err)

	_, err = r.FindByRecord(Record{})
	assert.ErrorIs(t, err, ErrRejected)
	assert.True(t, exfcerror.HasCode(err, exfcerror.CodeRejected))

	_, err = r.FindByRecord(Record{Name: "A", ID: 2})
	assert.ErrorIs(t, err, ErrNotFound, "name and id in different slots")

	idx, err := r.FindByRecord(Record{Name: "B", Description: "other", ID: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "description is not part of the match")
}

func TestFindByNameIsCaseSensitive(t *testing.T) {
	r := newTestRegistry(t, 4)
	_, err := r.Add("Timeout", "", 1)
	require.NoError(t, err)

	_, err = r.FindByName("timeout")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Add("timeout", "", 2)
	assert.NoError(t, err, "names differing in case are distinct")
}

func TestAddNext(t *testing.T) {
	r := New(Config{Capacity: 8, IDOffset: 10})

	_, err := r.Add("ten", "", 10)
	require.NoError(t, err)
	_, err = r.Add("twelve", "", 12)
	require.NoError(t, err)

	idx, id, err := r.AddNext("auto", "d")
	require.NoError(t, err)
	assert.Equal(t, 11, id)
	assert.Equal(t, 2, idx)

	_, id, err = r.AddNext("auto2", "")
	require.NoError(t, err)
	assert.Equal(t, 13, id)

	_, _, err = r.AddNext("auto", "")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestFirstLast(t *testing.T) {
	r := newTestRegistry(t, 5)

	_, err := r.First()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Last()
	assert.ErrorIs(t, err, ErrNotFound)

	for i, name := range []string{"A", "B", "C", "D"} {
		_, err := r.Add(name, "", i)
		require.NoError(t, err)
	}
	_, err = r.RemoveByName("A")
	require.NoError(t, err)
	_, err = r.RemoveByName("D")
	require.NoError(t, err)

	first, err := r.First()
	require.NoError(t, err)
	last, err := r.Last()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, last)
}

func TestAtEmptySlot(t *testing.T) {
	r := newTestRegistry(t, 2)
	_, err := r.At(0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterBuiltins(t *testing.T) {
	r := New(Config{Capacity: 16, IDOffset: 1})
	require.NoError(t, r.RegisterBuiltins())

	all, err := r.GetAll()
	require.NoError(t, err)
	assert.Equal(t, Builtins(1), all)

	idx, err := r.FindByName("BufferOverflowException")
	require.NoError(t, err)
	rec, err := r.At(idx)
	require.NoError(t, err)
	assert.Equal(t, 8, rec.ID)

	assert.ErrorIs(t, r.RegisterBuiltins(), ErrDuplicate)
}

func TestRegisterBuiltinsIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		prepare func(t *testing.T, r *Registry)
		want    error
		wantLen int
	}{
		{
			name:    "capacity below catalogue",
			cfg:     Config{Capacity: 3, IDOffset: 1},
			want:    ErrFull,
			wantLen: 0,
		},
		{
			name: "too few free slots",
			cfg:  Config{Capacity: 9, IDOffset: 1},
			prepare: func(t *testing.T, r *Registry) {
				_, err := r.Add("First", "", 100)
				require.NoError(t, err)
				_, err = r.Add("Second", "", 101)
				require.NoError(t, err)
			},
			want:    ErrFull,
			wantLen: 2,
		},
		{
			name: "id collision",
			cfg:  Config{Capacity: 16, IDOffset: 1},
			prepare: func(t *testing.T, r *Registry) {
				_, err := r.Add("Custom", "", 5)
				require.NoError(t, err)
			},
			want:    ErrDuplicate,
			wantLen: 1,
		},
		{
			name: "name collision",
			cfg:  Config{Capacity: 16, IDOffset: 1},
			prepare: func(t *testing.T, r *Registry) {
				_, err := r.Add("OutOfMemoryException", "", 200)
				require.NoError(t, err)
			},
			want:    ErrDuplicate,
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.cfg)
			if tt.prepare != nil {
				tt.prepare(t, r)
			}

			err := r.RegisterBuiltins()
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.wantLen, r.Len())

			_, err = r.FindByName("Exception")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestRegisterBuiltinsExactFit(t *testing.T) {
	r := New(Config{Capacity: len(Builtins(0)), IDOffset: 1})
	require.NoError(t, r.RegisterBuiltins())
	assert.Equal(t, r.Cap(), r.Len())
}

func TestGetAllReturnsCopy(t *testing.T) {
	r := newTestRegistry(t, 2)
	_, err := r.Add("A", "", 1)
	require.NoError(t, err)

	all, err := r.GetAll()
	require.NoError(t, err)
	all[0].Name = "changed"

	_, err = r.FindByName("A")
	assert.NoError(t, err)
}

func TestFatalOnOversizedStrings(t *testing.T) {
	r := New(Config{Capacity: 4, BufferMax: 8, IDOffset: 1})
	long := strings.Repeat("x", 9)

	_, err := r.Add(long, "d", 1)
	require.Error(t, err)
	require.True(t, IsFatal(err))

	fatal, ok := AsFatal(err)
	require.True(t, ok)
	assert.Equal(t, Builtin(KindBufferOverflow, 1), fatal.Exception)
	assert.Equal(t, "registry_test.go", fatal.Location.File)
	assert.NotZero(t, fatal.Location.Line)
	assert.Contains(t, fatal.Message, "name of 9 bytes")
	assert.Equal(t, exfcerror.CodeBufferOverflow, exfcerror.GetCode(err))
	assert.Equal(t, exfcerror.SeverityCritical, exfcerror.GetSeverity(err))

	_, err = r.Add("ok", long, 1)
	assert.True(t, IsFatal(err), "oversized description")

	_, err = r.FindByName(long)
	assert.True(t, IsFatal(err))
	_, err = r.RemoveByName(long)
	assert.True(t, IsFatal(err))
	_, _, err = r.AddNext(long, "")
	assert.True(t, IsFatal(err))

	_, err = r.Add(strings.Repeat("x", 8), "", 1)
	assert.NoError(t, err, "a name of exactly BufferMax bytes fits")
	assert.Equal(t, 1, r.Len())
}

func TestFatalOnNilRegistry(t *testing.T) {
	var r *Registry

	_, err := r.Add("A", "", 1)
	fatal, ok := AsFatal(err)
	require.True(t, ok)
	assert.Equal(t, "InvalidNullPointerException", fatal.Exception.Name)
	assert.Equal(t, DefaultIDOffset+int(KindInvalidNullPointer), fatal.Exception.ID)
	assert.Equal(t, exfcerror.CodeNullReference, fatal.Code())

	_, err = r.GetAll()
	assert.True(t, IsFatal(err))
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Cap())
}

func TestFatalOnUninitializedRegistry(t *testing.T) {
	r := &Registry{}

	_, err := r.FindByID(1)
	fatal, ok := AsFatal(err)
	require.True(t, ok)
	assert.Equal(t, "InstanceFailureException", fatal.Exception.Name)
	assert.True(t, exfcerror.HasCode(err, exfcerror.CodeUninitialized))

	_, err = r.Compact()
	assert.True(t, IsFatal(err))
}

func TestUniquenessUnderRandomOperations(t *testing.T) {
	for _, strategy := range []Strategy{StrategyBuffered, StrategyInPlace} {
		t.Run(strategy.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			r := New(Config{Capacity: 16, Strategy: strategy})

			for step := 0; step < 2000; step++ {
				name := "N" + strconv.Itoa(rng.Intn(24))
				id := rng.Intn(24)

				switch rng.Intn(4) {
				case 0, 1:
					_, err := r.Add(name, "", id)
					if err != nil {
						require.True(t,
							errors.Is(err, ErrDuplicate) || errors.Is(err, ErrFull),
							"unexpected error: %v", err)
					}
				case 2:
					_, _ = r.RemoveByName(name)
				case 3:
					_, _ = r.RemoveByID(id)
				}

				assertUnique(t, r)
			}
		})
	}
}

func assertUnique(t *testing.T, r *Registry) {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	names := make(map[string]bool)
	ids := make(map[int]bool)
	count := 0
	for _, s := range r.slots {
		if !s.occupied {
			continue
		}
		count++
		require.False(t, names[s.rec.Name], "duplicate name %q", s.rec.Name)
		require.False(t, ids[s.rec.ID], "duplicate id %d", s.rec.ID)
		names[s.rec.Name] = true
		ids[s.rec.ID] = true
	}
	require.Equal(t, count, r.count)
}

func TestConcurrentAccess(t *testing.T) {
	r := New(Config{Capacity: 256})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 32; i++ {
				id := w*32 + i
				name := "W" + strconv.Itoa(id)
				if _, err := r.Add(name, "", id); err != nil {
					t.Errorf("Add(%s): %v", name, err)
					return
				}
				if i%2 == 0 {
					_, _ = r.RemoveByID(id)
				}
				_, _ = r.GetAll()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 128, r.Len())
	assertUnique(t, r)
}
