// Package registry implements the L2 dispatch layer: a priority-ranked,
// interval-indexed map from (operation, threading, memory model, qubit
// count) to the backend that should execute it, with a bounded
// memoization cache. One Registry instance serves exactly one operation
// kind (GateOp, GeneratorOp or MatrixOp); callers get a kind-specific
// singleton from operationregistry.go.
package registry

import (
	"math"
	"sync"

	"github.com/cwbudde/qsim-core/internal/backend"
	"github.com/cwbudde/qsim-core/internal/kerr"
)

// Interval is a non-empty integer interval of qubit counts [Lo, Hi]. Hi<0
// represents +Inf.
type Interval struct {
	Lo int
	Hi int
}

// Contains reports whether n falls within the interval.
func (iv Interval) Contains(n int) bool {
	if n < iv.Lo {
		return false
	}

	return iv.Hi < 0 || n <= iv.Hi
}

func (iv Interval) overlaps(other Interval) bool {
	aHi, bHi := iv.Hi, other.Hi
	if aHi < 0 {
		aHi = math.MaxInt
	}

	if bHi < 0 {
		bHi = math.MaxInt
	}

	return iv.Lo <= bHi && other.Lo <= aHi
}

// DispatchElement is one priority-ranked kernel binding over a qubit-count
// interval.
type DispatchElement struct {
	Priority uint32
	Interval Interval
	Kernel   backend.Tag
}

// priorityKey identifies one (operation, threading, memory model) slot in
// the registry's element table.
type priorityKey[Op comparable] struct {
	Op  Op
	Key backend.Key
}

// cacheKey identifies one memoized kernelMap query.
type cacheKey struct {
	NQubits     int
	DispatchKey uint32
}

// Registry is the process-wide dispatch table for one operation kind.
// Zero value is not ready for use; construct with New.
type Registry[Op comparable] struct {
	mu sync.Mutex

	// elements maps (op, dispatch key) to its priority set, kept sorted by
	// descending Priority with disjoint intervals within each priority.
	elements map[priorityKey[Op]][]DispatchElement

	cache      map[cacheKey]map[Op]backend.Tag
	cacheOrder []cacheKey

	allOps []Op
}

const cacheCap = 16

// New constructs an empty registry for the given operation kind, tracking
// allOps so kernelMap can enumerate "every known operation".
func New[Op comparable](allOps []Op) *Registry[Op] {
	return &Registry[Op]{
		elements: make(map[priorityKey[Op]][]DispatchElement),
		cache:    make(map[cacheKey]map[Op]backend.Tag),
		allOps:   allOps,
	}
}

// Assign inserts a dispatch element at an explicit priority for one
// (threading, memory model) pair. kernel must be in
// backend.AllowedMemoryModels' allow-list for memory; the (priority,
// interval) must not overlap an
// existing element at the same priority for this (op, threading, memory).
func (r *Registry[Op]) Assign(op Op, threading backend.Threading, memory backend.CPUMemoryModel, priority uint32, interval Interval, kernel backend.Tag) error {
	if !backend.AllowedMemoryModels[memory][kernel] {
		return kerr.ErrKernelNotAllowed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := priorityKey[Op]{Op: op, Key: backend.Key{Threading: threading, Memory: memory}}

	for _, existing := range r.elements[key] {
		if existing.Priority == priority && existing.Interval.overlaps(interval) {
			return kerr.ErrIntervalConflict
		}
	}

	r.elements[key] = insertSorted(r.elements[key], DispatchElement{
		Priority: priority,
		Interval: interval,
		Kernel:   kernel,
	})

	r.invalidateCache()

	return nil
}

// AssignAllThreading is the priority-1 shorthand applying one binding to
// every Threading value for a fixed memory model.
func (r *Registry[Op]) AssignAllThreading(op Op, memory backend.CPUMemoryModel, interval Interval, kernel backend.Tag) error {
	for _, t := range []backend.Threading{backend.SingleThread, backend.MultiThread} {
		if err := r.Assign(op, t, memory, 1, interval, kernel); err != nil {
			return err
		}
	}

	return nil
}

// AssignAllMemoryModel is the priority-2 shorthand applying one binding to
// every CPUMemoryModel value for a fixed threading policy.
func (r *Registry[Op]) AssignAllMemoryModel(op Op, threading backend.Threading, interval Interval, kernel backend.Tag) error {
	for _, m := range []backend.CPUMemoryModel{backend.Unaligned, backend.Aligned256, backend.Aligned512} {
		if err := r.Assign(op, threading, m, 2, interval, kernel); err != nil {
			return err
		}
	}

	return nil
}

// AssignDefault is the priority-0 shorthand applying one binding to every
// (threading, memory model) pair; this is what the default-assignment
// routine uses to install the universal LM fallback.
func (r *Registry[Op]) AssignDefault(op Op, interval Interval, kernel backend.Tag) error {
	for _, t := range []backend.Threading{backend.SingleThread, backend.MultiThread} {
		for _, m := range []backend.CPUMemoryModel{backend.Unaligned, backend.Aligned256, backend.Aligned512} {
			if err := r.Assign(op, t, m, 0, interval, kernel); err != nil {
				return err
			}
		}
	}

	return nil
}

// Remove erases every element at the exact given priority for
// (op, threading, memory). Fails with ErrKeyNotFound if none exists.
func (r *Registry[Op]) Remove(op Op, threading backend.Threading, memory backend.CPUMemoryModel, priority uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := priorityKey[Op]{Op: op, Key: backend.Key{Threading: threading, Memory: memory}}

	elems, ok := r.elements[key]
	if !ok {
		return kerr.ErrKeyNotFound
	}

	kept := elems[:0:0]
	found := false

	for _, e := range elems {
		if e.Priority == priority {
			found = true
			continue
		}

		kept = append(kept, e)
	}

	if !found {
		return kerr.ErrKeyNotFound
	}

	r.elements[key] = kept
	r.invalidateCache()

	return nil
}

// KernelMap resolves, for every known operation, the highest-priority
// dispatch element whose interval contains nQubits, under
// (threading, memory). Fails with ErrNoKernelForQubitCount if any
// operation has no covering interval. Results are memoized in a bounded
// FIFO-ish cache keyed by (nQubits, dispatchKey).
func (r *Registry[Op]) KernelMap(nQubits int, threading backend.Threading, memory backend.CPUMemoryModel) (map[Op]backend.Tag, error) {
	key := backend.Key{Threading: threading, Memory: memory}
	ck := cacheKey{NQubits: nQubits, DispatchKey: key.Pack()}

	r.mu.Lock()

	if cached, ok := r.cache[ck]; ok {
		r.mu.Unlock()
		return cached, nil
	}

	result := make(map[Op]backend.Tag, len(r.allOps))

	for _, op := range r.allOps {
		pk := priorityKey[Op]{Op: op, Key: key}

		tag, found := resolve(r.elements[pk], nQubits)
		if !found {
			r.mu.Unlock()
			return nil, kerr.ErrNoKernelForQubitCount
		}

		result[op] = tag
	}

	r.storeCache(ck, result)
	r.mu.Unlock()

	return result, nil
}

// resolve walks elems (sorted by descending priority) and returns the
// kernel of the first element whose interval contains n.
func resolve(elems []DispatchElement, n int) (backend.Tag, bool) {
	for _, e := range elems {
		if e.Interval.Contains(n) {
			return e.Kernel, true
		}
	}

	return backend.Tag(0), false
}

// insertSorted inserts e into elems keeping descending-priority order.
func insertSorted(elems []DispatchElement, e DispatchElement) []DispatchElement {
	i := 0
	for i < len(elems) && elems[i].Priority >= e.Priority {
		i++
	}

	elems = append(elems, DispatchElement{})
	copy(elems[i+1:], elems[i:])
	elems[i] = e

	return elems
}

func (r *Registry[Op]) invalidateCache() {
	r.cache = make(map[cacheKey]map[Op]backend.Tag)
	r.cacheOrder = r.cacheOrder[:0]
}

func (r *Registry[Op]) storeCache(key cacheKey, value map[Op]backend.Tag) {
	r.cache[key] = value
	r.cacheOrder = append(r.cacheOrder, key)

	if len(r.cacheOrder) > cacheCap {
		oldest := r.cacheOrder[0]
		r.cacheOrder = r.cacheOrder[1:]
		delete(r.cache, oldest)
	}
}
