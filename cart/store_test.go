package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiehub/entity"
)

func burger() *entity.MenuItem {
	m := &entity.MenuItem{Name: "Classic Burger", Price: 1000, Picture: "burger.png"}
	m.ID = 1
	m.Toppings = []entity.Topping{{Name: "Lettuce"}, {Name: "Onion"}}
	m.Toppings[0].ID = 11
	m.Toppings[1].ID = 12
	m.SideOptions = []entity.SideOption{{Name: "Fries", Price: 250}, {Name: "Coleslaw", Price: 150}}
	m.SideOptions[0].ID = 21
	m.SideOptions[1].ID = 22
	return m
}

func TestAddMergesSameConfiguration(t *testing.T) {
	s := NewStore()
	first := s.Add(burger(), 2, []uint{11}, []uint{21}, 0.5)
	second := s.Add(burger(), 1, []uint{11}, []uint{21}, 0.8)

	snap := s.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, first.LineID, second.LineID, "merge must preserve line identity")
	assert.Equal(t, 3, snap.Lines[0].Quantity)
	assert.Equal(t, int64((1000+250)*3), snap.Subtotal)
	assert.Equal(t, 3, snap.ItemCount)
}

func TestAddDifferentCustomizationNewLine(t *testing.T) {
	s := NewStore()
	s.Add(burger(), 1, nil, nil, 0)
	s.Add(burger(), 1, []uint{11}, nil, 0)
	s.Add(burger(), 1, nil, []uint{21}, 0)

	snap := s.Snapshot()
	assert.Len(t, snap.Lines, 3)
	assert.Equal(t, 3, snap.ItemCount)
	assert.Equal(t, int64(1000+1000+1250), snap.Subtotal)
}

func TestAddCollapsesDuplicateSelectionIDs(t *testing.T) {
	s := NewStore()
	first := s.Add(burger(), 1, nil, []uint{21}, 0)
	second := s.Add(burger(), 1, nil, []uint{21, 21}, 0)

	snap := s.Snapshot()
	require.Len(t, snap.Lines, 1, "duplicated ids must not split the line")
	assert.Equal(t, first.LineID, second.LineID)
	require.Len(t, snap.Lines[0].Sides, 1)
	assert.Equal(t, int64(1000+250), snap.Lines[0].PerUnit(), "side delta charged once per unit")
	assert.Equal(t, int64((1000+250)*2), snap.Subtotal)

	s.Add(burger(), 1, []uint{11, 11, 12}, nil, 0)
	snap = s.Snapshot()
	require.Len(t, snap.Lines, 2)
	assert.Len(t, snap.Lines[1].Toppings, 2)
}

func TestMergeKeyIgnoresSelectionOrder(t *testing.T) {
	s := NewStore()
	s.Add(burger(), 1, []uint{11, 12}, []uint{21, 22}, 0)
	s.Add(burger(), 1, []uint{12, 11}, []uint{22, 21}, 0)
	assert.Len(t, s.Snapshot().Lines, 1)
}

func TestAddClampsQuantity(t *testing.T) {
	s := NewStore()
	s.Add(burger(), 0, nil, nil, 0)
	snap := s.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	line := s.Add(burger(), 2, nil, nil, 0)

	s.UpdateQuantity(line.LineID, 5)
	snap := s.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 5, snap.Lines[0].Quantity)
	assert.Equal(t, int64(5000), snap.Subtotal)

	s.UpdateQuantity(line.LineID, 0)
	snap = s.Snapshot()
	assert.True(t, snap.Empty())
	assert.Zero(t, snap.Subtotal)
	assert.Zero(t, snap.ItemCount)

	// unknown id is a no-op, not an error
	s.UpdateQuantity("missing", 3)
	assert.True(t, s.Snapshot().Empty())
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(burger(), 1, nil, nil, 0)
	s.Remove("missing")
	assert.Len(t, s.Snapshot().Lines, 1)
}

func TestRemovedConfigurationCanBeReadded(t *testing.T) {
	s := NewStore()
	line := s.Add(burger(), 1, []uint{11}, nil, 0)
	s.Remove(line.LineID)
	again := s.Add(burger(), 1, []uint{11}, nil, 0)
	assert.NotEqual(t, line.LineID, again.LineID, "line ids are never reused")
	assert.Len(t, s.Snapshot().Lines, 1)
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add(burger(), 2, nil, nil, 0)
	s.Clear()
	snap := s.Snapshot()
	assert.True(t, snap.Empty())
	assert.Zero(t, snap.Subtotal)
	assert.Zero(t, snap.ItemCount)
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(burger(), 1, []uint{11}, nil, 0)
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 50, snap.Lines[0].Quantity)
}

func TestSubscribeSeesMutations(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	// initial snapshot arrives immediately
	snap := <-ch
	assert.True(t, snap.Empty())

	s.Add(burger(), 2, nil, nil, 0)
	snap = <-ch
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, int64(2000), snap.Subtotal)

	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewStore()
	s.Add(burger(), 1, []uint{11}, nil, 0)
	snap := s.Snapshot()
	snap.Lines[0].Quantity = 99
	snap.Lines[0].Toppings[0].Name = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, 1, fresh.Lines[0].Quantity)
	assert.Equal(t, "Lettuce", fresh.Lines[0].Toppings[0].Name)
}
