// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Fixed-capacity exception registry
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

import (
	"sync"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
)

// fatalSkip locates a fatal condition at the caller of an exported method.
// Checks that raise fatals are called directly from exported methods.
const fatalSkip = 3

// Registry is a fixed-capacity store of exception records. Occupied records
// have pairwise distinct names and pairwise distinct ids. All methods are
// safe for concurrent use; each call holds the registry lock until it returns.
type Registry struct {
	mu      sync.Mutex
	slots   []slot
	count   int
	cfg     Config
	compact compactFunc
}

// New creates an empty registry. Unset configuration values take their
// defaults.
func New(cfg Config) *Registry {
	cfg.applyDefaults()
	return &Registry{
		slots:   make([]slot, cfg.Capacity),
		cfg:     cfg,
		compact: compactorFor(cfg.Strategy),
	}
}

// Config returns the effective configuration
func (r *Registry) Config() Config {
	if r == nil {
		return DefaultConfig()
	}
	return r.cfg
}

// Len returns the number of occupied slots. A nil registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the fixed capacity
func (r *Registry) Cap() int {
	if r == nil {
		return 0
	}
	return len(r.slots)
}

// Add stores a new record and returns its slot index. A record whose name or
// id is already present yields ErrDuplicate; a registry without a free slot
// yields ErrFull and is left untouched.
func (r *Registry) Add(name, description string, id int) (int, error) {
	const op = "Registry.Add"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	if err := r.checkStrings(op, name, description); err != nil {
		return -1, err
	}
	if err := checkArguments(op, name, id); err != nil {
		return -1, err
	}

	return r.insert(op, Record{Name: name, Description: description, ID: id})
}

// AddNext stores a new record under the smallest unused id not below the
// configured id offset.
func (r *Registry) AddNext(name, description string) (index, id int, err error) {
	const op = "Registry.AddNext"
	if err := r.acquire(op); err != nil {
		return -1, -1, err
	}
	defer r.mu.Unlock()

	if err := r.checkStrings(op, name, description); err != nil {
		return -1, -1, err
	}
	if err := checkArguments(op, name, r.cfg.IDOffset); err != nil {
		return -1, -1, err
	}

	if i := r.indexByName(name); i >= 0 {
		return -1, -1, duplicateName(op, name, i)
	}

	id = r.nextID()
	index, err = r.insert(op, Record{Name: name, Description: description, ID: id})
	if err != nil {
		return -1, -1, err
	}
	return index, id, nil
}

// RegisterBuiltins adds the predefined exception catalogue using the
// configured id offset. Either every builtin is added or none: a name or id
// already present yields ErrDuplicate and too few free slots yield ErrFull.
func (r *Registry) RegisterBuiltins() error {
	const op = "Registry.RegisterBuiltins"
	if err := r.acquire(op); err != nil {
		return err
	}
	defer r.mu.Unlock()

	builtins := Builtins(r.cfg.IDOffset)
	for _, rec := range builtins {
		if i := r.indexByName(rec.Name); i >= 0 {
			return duplicateName(op, rec.Name, i)
		}
		if i := r.indexByID(rec.ID); i >= 0 {
			return duplicateID(op, rec.ID, i)
		}
	}
	if free := len(r.slots) - r.count; free < len(builtins) {
		return outcome(ErrFull, op, "not enough free slots for the builtin catalogue").
			WithDetail("free", free).
			WithDetail("required", len(builtins))
	}

	for _, rec := range builtins {
		if _, err := r.insert(op, rec); err != nil {
			return err
		}
	}
	return nil
}

// RemoveByName clears the slot holding name and returns its index
func (r *Registry) RemoveByName(name string) (int, error) {
	const op = "Registry.RemoveByName"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	if err := r.checkStrings(op, name, ""); err != nil {
		return -1, err
	}
	if err := checkArguments(op, name, 0); err != nil {
		return -1, err
	}

	i := r.indexByName(name)
	if i < 0 {
		return -1, notFound(op, "name", name)
	}
	r.clear(i)
	return i, nil
}

// RemoveByID clears the slot holding id and returns its index
func (r *Registry) RemoveByID(id int) (int, error) {
	const op = "Registry.RemoveByID"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	if id < 0 {
		return -1, negativeID(op, id)
	}

	i := r.indexByID(id)
	if i < 0 {
		return -1, notFound(op, "id", id)
	}
	r.clear(i)
	return i, nil
}

// FindByName returns the index of the first slot whose name matches exactly
func (r *Registry) FindByName(name string) (int, error) {
	const op = "Registry.FindByName"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	if err := r.checkStrings(op, name, ""); err != nil {
		return -1, err
	}
	if err := checkArguments(op, name, 0); err != nil {
		return -1, err
	}

	i := r.indexByName(name)
	if i < 0 {
		return -1, notFound(op, "name", name)
	}
	return i, nil
}

// FindByID returns the index of the slot holding id
func (r *Registry) FindByID(id int) (int, error) {
	const op = "Registry.FindByID"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	if id < 0 {
		return -1, negativeID(op, id)
	}

	i := r.indexByID(id)
	if i < 0 {
		return -1, notFound(op, "id", id)
	}
	return i, nil
}

// FindByRecord returns the index of the slot whose name and id both match
// rec. The zero Record is rejected with ErrRejected.
func (r *Registry) FindByRecord(rec Record) (int, error) {
	const op = "Registry.FindByRecord"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	if rec.IsZero() {
		return -1, outcome(ErrRejected, op, "the empty record is not a valid query")
	}
	if err := r.checkStrings(op, rec.Name, rec.Description); err != nil {
		return -1, err
	}
	if err := checkArguments(op, rec.Name, rec.ID); err != nil {
		return -1, err
	}

	for i := range r.slots {
		if r.slots[i].occupied && r.slots[i].rec.Equal(rec) {
			return i, nil
		}
	}
	return -1, notFound(op, "record", rec.String())
}

// At returns the record stored at index
func (r *Registry) At(index int) (Record, error) {
	const op = "Registry.At"
	if err := r.acquire(op); err != nil {
		return Record{}, err
	}
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.slots) {
		return Record{}, outcome(ErrInvalidArgument, op, "index out of range").
			WithDetail("index", index).
			WithDetail("capacity", len(r.slots))
	}
	if !r.slots[index].occupied {
		return Record{}, notFound(op, "index", index)
	}
	return r.slots[index].rec, nil
}

// First returns the lowest occupied index
func (r *Registry) First() (int, error) {
	const op = "Registry.First"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	for i := range r.slots {
		if r.slots[i].occupied {
			return i, nil
		}
	}
	return -1, outcome(ErrNotFound, op, "registry is empty")
}

// Last returns the highest occupied index
func (r *Registry) Last() (int, error) {
	const op = "Registry.Last"
	if err := r.acquire(op); err != nil {
		return -1, err
	}
	defer r.mu.Unlock()

	for i := len(r.slots) - 1; i >= 0; i-- {
		if r.slots[i].occupied {
			return i, nil
		}
	}
	return -1, outcome(ErrNotFound, op, "registry is empty")
}

// Compact removes the holes left by removals and returns the number of
// occupied slots.
func (r *Registry) Compact() (int, error) {
	if err := r.acquire("Registry.Compact"); err != nil {
		return 0, err
	}
	defer r.mu.Unlock()

	return r.compact(r.slots), nil
}

// GetAll compacts the registry and returns a copy of the occupied records in
// storage order.
func (r *Registry) GetAll() ([]Record, error) {
	if err := r.acquire("Registry.GetAll"); err != nil {
		return nil, err
	}
	defer r.mu.Unlock()

	n := r.compact(r.slots)
	records := make([]Record, n)
	for i := 0; i < n; i++ {
		records[i] = r.slots[i].rec
	}
	return records, nil
}

// acquire locks the registry or reports why it cannot be used
func (r *Registry) acquire(op string) error {
	if r == nil {
		return newFatal(KindInvalidNullPointer, DefaultIDOffset, fatalSkip,
			"%s called on a nil registry", op)
	}
	if r.slots == nil || r.compact == nil {
		return newFatal(KindInstanceFailure, DefaultIDOffset, fatalSkip,
			"%s called on a registry not created by New", op)
	}
	r.mu.Lock()
	return nil
}

// checkStrings enforces the buffer limit on name and description
func (r *Registry) checkStrings(op, name, description string) error {
	limit := r.cfg.BufferMax
	if len(name) > limit {
		return newFatal(KindBufferOverflow, r.cfg.IDOffset, fatalSkip,
			"%s: name of %d bytes exceeds the buffer of %d bytes", op, len(name), limit)
	}
	if len(description) > limit {
		return newFatal(KindBufferOverflow, r.cfg.IDOffset, fatalSkip,
			"%s: description of %d bytes exceeds the buffer of %d bytes", op, len(description), limit)
	}
	return nil
}

func checkArguments(op, name string, id int) error {
	if name == "" {
		return outcome(ErrInvalidArgument, op, "name must not be empty")
	}
	if id < 0 {
		return negativeID(op, id)
	}
	return nil
}

// insert stores rec after duplicate checks; the lock is held
func (r *Registry) insert(op string, rec Record) (int, error) {
	for i := range r.slots {
		s := &r.slots[i]
		if !s.occupied {
			continue
		}
		if QuickMatch(s.rec.Name, rec.Name, true) {
			return -1, duplicateName(op, rec.Name, i)
		}
		if ord, _ := Compare(&s.rec, &rec); ord == Identical {
			return -1, duplicateID(op, rec.ID, i)
		}
	}

	n := r.compact(r.slots)
	if n >= len(r.slots) {
		return -1, outcome(ErrFull, op, "no free slot").
			WithDetail("capacity", len(r.slots))
	}

	r.slots[n] = slot{rec: rec, occupied: true}
	r.count = n + 1
	return n, nil
}

func (r *Registry) clear(i int) {
	r.slots[i] = slot{}
	r.count--
}

func (r *Registry) indexByName(name string) int {
	for i := range r.slots {
		if r.slots[i].occupied && QuickMatch(r.slots[i].rec.Name, name, true) {
			return i
		}
	}
	return -1
}

func (r *Registry) indexByID(id int) int {
	for i := range r.slots {
		if r.slots[i].occupied && r.slots[i].rec.ID == id {
			return i
		}
	}
	return -1
}

// nextID returns the smallest unused id not below the id offset
func (r *Registry) nextID() int {
	used := make(map[int]struct{}, r.count)
	for i := range r.slots {
		if r.slots[i].occupied {
			used[r.slots[i].rec.ID] = struct{}{}
		}
	}

	id := r.cfg.IDOffset
	for {
		if _, taken := used[id]; !taken {
			return id
		}
		id++
	}
}

func notFound(op, key string, value interface{}) *exfcerror.Error {
	return outcome(ErrNotFound, op, "no record with this "+key).
		WithDetail(key, value)
}

func duplicateName(op, name string, index int) *exfcerror.Error {
	return outcome(ErrDuplicate, op, "name already registered").
		WithDetail("name", name).
		WithDetail("index", index)
}

func duplicateID(op string, id, index int) *exfcerror.Error {
	return outcome(ErrDuplicate, op, "id already registered").
		WithDetail("id", id).
		WithDetail("index", index)
}

func negativeID(op string, id int) *exfcerror.Error {
	return outcome(ErrInvalidArgument, op, "id must not be negative").
		WithDetail("id", id)
}
