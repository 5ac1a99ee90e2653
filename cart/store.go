// Package cart holds the in-progress selection for one user session.
// A Store is in-memory, owned by the session that created it, and
// observable: every mutation publishes a fresh snapshot to
// subscribers so dependent views stay live without polling.
package cart

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"foodiehub/entity"
)

// Selection is one chosen customization. Price is the per-unit delta;
// toppings are always zero.
type Selection struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Line is one distinct item+customization configuration in the cart.
// Product fields are copied from the catalog at add time.
type Line struct {
	LineID     string      `json:"lineId"`
	ItemID     uint        `json:"itemId"`
	ItemName   string      `json:"itemName"`
	ItemImage  string      `json:"itemImage"`
	UnitPrice  int64       `json:"unitPrice"`
	Quantity   int         `json:"quantity"`
	Toppings   []Selection `json:"toppings"`
	Sides      []Selection `json:"sides"`
	SpicyLevel float64     `json:"spicyLevel"`
}

// PerUnit is the line's per-unit price including side deltas.
func (l Line) PerUnit() int64 {
	p := l.UnitPrice
	for _, s := range l.Sides {
		p += s.Price
	}
	return p
}

// Total is the line total: per-unit price × quantity.
func (l Line) Total() int64 {
	return l.PerUnit() * int64(l.Quantity)
}

// Snapshot is an immutable view of the cart at one point in time.
type Snapshot struct {
	Lines     []Line `json:"lines"`
	Subtotal  int64  `json:"subtotal"`
	ItemCount int    `json:"itemCount"`
}

// Empty reports whether the snapshot holds no lines.
func (s Snapshot) Empty() bool { return len(s.Lines) == 0 }

// Store is the mutable working cart. All mutations serialize under
// one mutex so concurrent adds (rapid double-tap) cannot lose
// increments.
type Store struct {
	mu    sync.Mutex
	lines []*Line          // insertion order preserved
	index map[string]*Line // merge key -> line
	subs  map[chan Snapshot]struct{}
}

func NewStore() *Store {
	return &Store{
		index: make(map[string]*Line),
		subs:  make(map[chan Snapshot]struct{}),
	}
}

// mergeKey identifies "the same" configuration: item plus the
// normalized topping and side selections. Spicy level is display-only
// and deliberately excluded.
func mergeKey(itemID uint, toppings, sides []Selection) string {
	t := make([]int, 0, len(toppings))
	for _, s := range toppings {
		t = append(t, int(s.ID))
	}
	sort.Ints(t)
	d := make([]int, 0, len(sides))
	for _, s := range sides {
		d = append(d, int(s.ID))
	}
	sort.Ints(d)
	return fmt.Sprintf("%d|t%v|s%v", itemID, t, d)
}

// Add puts qty units of the item, with the given customization, into
// the cart. Quantities below 1 are clamped to 1. Selection ids are
// treated as a set: duplicates collapse to one selection. If a line
// with the same configuration already exists its quantity is increased
// and its LineID kept, so observers can diff stably. Returns the
// resulting line.
func (s *Store) Add(item *entity.MenuItem, qty int, toppingIDs, sideIDs []uint, spicy float64) Line {
	if qty < 1 {
		qty = 1
	}
	if spicy < 0 {
		spicy = 0
	} else if spicy > 1 {
		spicy = 1
	}

	toppings := make([]Selection, 0, len(toppingIDs))
	seen := make(map[uint]struct{}, len(toppingIDs))
	for _, id := range toppingIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		for _, t := range item.Toppings {
			if t.ID == id {
				toppings = append(toppings, Selection{ID: t.ID, Name: t.Name})
				break
			}
		}
	}
	sides := make([]Selection, 0, len(sideIDs))
	seen = make(map[uint]struct{}, len(sideIDs))
	for _, id := range sideIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		for _, o := range item.SideOptions {
			if o.ID == id {
				sides = append(sides, Selection{ID: o.ID, Name: o.Name, Price: o.Price})
				break
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := mergeKey(item.ID, toppings, sides)
	if line, ok := s.index[key]; ok {
		line.Quantity += qty
		out := *line
		s.publish()
		return out
	}

	line := &Line{
		LineID:     uuid.NewString(),
		ItemID:     item.ID,
		ItemName:   item.Name,
		ItemImage:  item.Picture,
		UnitPrice:  item.Price,
		Quantity:   qty,
		Toppings:   toppings,
		Sides:      sides,
		SpicyLevel: spicy,
	}
	s.lines = append(s.lines, line)
	s.index[key] = line
	out := *line
	s.publish()
	return out
}

// Remove deletes the line if present; an unknown id is a no-op.
func (s *Store) Remove(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeLocked(lineID) {
		s.publish()
	}
}

// UpdateQuantity sets the line's quantity; qty <= 0 removes the line.
// An unknown id is a no-op.
func (s *Store) UpdateQuantity(lineID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty <= 0 {
		if s.removeLocked(lineID) {
			s.publish()
		}
		return
	}
	for _, l := range s.lines {
		if l.LineID == lineID {
			l.Quantity = qty
			s.publish()
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return
	}
	s.lines = nil
	s.index = make(map[string]*Line)
	s.publish()
}

func (s *Store) removeLocked(lineID string) bool {
	for i, l := range s.lines {
		if l.LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			delete(s.index, mergeKey(l.ItemID, l.Toppings, l.Sides))
			return true
		}
	}
	return false
}

// Snapshot returns the current cart state. The returned value shares
// nothing with the store's internals.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Lines: make([]Line, 0, len(s.lines))}
	for _, l := range s.lines {
		cp := *l
		cp.Toppings = append([]Selection(nil), l.Toppings...)
		cp.Sides = append([]Selection(nil), l.Sides...)
		snap.Lines = append(snap.Lines, cp)
		snap.Subtotal += l.Total()
		snap.ItemCount += l.Quantity
	}
	return snap
}

// Subscribe registers an observer. The channel receives the current
// snapshot immediately and a new one after every mutation. Slow
// subscribers miss intermediate states, never block mutations. The
// returned func cancels the subscription.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Snapshot, 16)
	s.subs[ch] = struct{}{}
	ch <- s.snapshotLocked()
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Store) publish() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
