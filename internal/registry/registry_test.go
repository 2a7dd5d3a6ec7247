package registry

import (
	"testing"

	"github.com/cwbudde/qsim-core/internal/backend"
	"github.com/cwbudde/qsim-core/internal/kerr"
)

func freshGateRegistry(t *testing.T) *Registry[backend.GateOp] {
	t.Helper()

	r := New(allGateOps())
	installGateDefaults(r)

	return r
}

func TestKernelMapDefaultsToLM(t *testing.T) {
	r := freshGateRegistry(t)

	m, err := r.KernelMap(2, backend.SingleThread, backend.Unaligned)
	if err != nil {
		t.Fatalf("KernelMap: %v", err)
	}

	if m[backend.PauliX] != backend.LM {
		t.Fatalf("PauliX = %v, want LM", m[backend.PauliX])
	}
}

func TestAssignOverridesWithinInterval(t *testing.T) {
	r := freshGateRegistry(t)

	if err := r.Assign(backend.PauliX, backend.SingleThread, backend.Aligned512, 5, Interval{Lo: 3, Hi: -1}, backend.AVX512); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	m4, err := r.KernelMap(4, backend.SingleThread, backend.Aligned512)
	if err != nil {
		t.Fatalf("KernelMap(4): %v", err)
	}

	if m4[backend.PauliX] != backend.AVX512 {
		t.Fatalf("n=4 PauliX = %v, want AVX512", m4[backend.PauliX])
	}

	m2, err := r.KernelMap(2, backend.SingleThread, backend.Aligned512)
	if err != nil {
		t.Fatalf("KernelMap(2): %v", err)
	}

	if m2[backend.PauliX] != backend.LM {
		t.Fatalf("n=2 PauliX = %v, want LM fallback", m2[backend.PauliX])
	}
}

func TestAssignRejectsDisallowedKernel(t *testing.T) {
	r := freshGateRegistry(t)

	err := r.Assign(backend.PauliX, backend.SingleThread, backend.Unaligned, 5, Interval{Lo: 0, Hi: -1}, backend.AVX512)
	if err != kerr.ErrKernelNotAllowed {
		t.Fatalf("err = %v, want ErrKernelNotAllowed", err)
	}
}

func TestAssignRejectsIntervalConflict(t *testing.T) {
	r := freshGateRegistry(t)

	if err := r.Assign(backend.PauliX, backend.SingleThread, backend.Aligned512, 5, Interval{Lo: 0, Hi: 5}, backend.AVX512); err != nil {
		t.Fatalf("first Assign: %v", err)
	}

	err := r.Assign(backend.PauliX, backend.SingleThread, backend.Aligned512, 5, Interval{Lo: 3, Hi: -1}, backend.AVX512)
	if err != kerr.ErrIntervalConflict {
		t.Fatalf("err = %v, want ErrIntervalConflict", err)
	}
}

func TestRemoveUnknownKeyFails(t *testing.T) {
	r := freshGateRegistry(t)

	err := r.Remove(backend.PauliX, backend.SingleThread, backend.Aligned512, 7)
	if err != kerr.ErrKeyNotFound {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
}

func TestAssignInvalidatesCache(t *testing.T) {
	r := freshGateRegistry(t)

	if _, err := r.KernelMap(4, backend.SingleThread, backend.Aligned512); err != nil {
		t.Fatalf("warmup KernelMap: %v", err)
	}

	if err := r.Assign(backend.PauliX, backend.SingleThread, backend.Aligned512, 5, Interval{Lo: 3, Hi: -1}, backend.AVX512); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	m, err := r.KernelMap(4, backend.SingleThread, backend.Aligned512)
	if err != nil {
		t.Fatalf("KernelMap after assign: %v", err)
	}

	if m[backend.PauliX] != backend.AVX512 {
		t.Fatalf("stale cache: PauliX = %v, want AVX512", m[backend.PauliX])
	}
}

func TestKernelMapCacheTransparency(t *testing.T) {
	r := freshGateRegistry(t)

	m1, err := r.KernelMap(5, backend.SingleThread, backend.Unaligned)
	if err != nil {
		t.Fatalf("first KernelMap: %v", err)
	}

	m2, err := r.KernelMap(5, backend.SingleThread, backend.Unaligned)
	if err != nil {
		t.Fatalf("second KernelMap: %v", err)
	}

	for op := range m1 {
		if m1[op] != m2[op] {
			t.Fatalf("op %v: before %v after %v", op, m1[op], m2[op])
		}
	}
}

func TestCacheEvictionBounded(t *testing.T) {
	r := freshGateRegistry(t)

	for n := 1; n <= cacheCap+4; n++ {
		if _, err := r.KernelMap(n, backend.SingleThread, backend.Unaligned); err != nil {
			t.Fatalf("KernelMap(%d): %v", n, err)
		}
	}

	if len(r.cacheOrder) > cacheCap {
		t.Fatalf("cache order length = %d, want <= %d", len(r.cacheOrder), cacheCap)
	}

	if len(r.cache) > cacheCap {
		t.Fatalf("cache length = %d, want <= %d", len(r.cache), cacheCap)
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Lo: 3, Hi: -1}
	if iv.Contains(2) {
		t.Fatal("Contains(2) = true, want false")
	}

	if !iv.Contains(3) || !iv.Contains(1000) {
		t.Fatal("unbounded-above interval should contain every n >= Lo")
	}
}
