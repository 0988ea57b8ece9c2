// Package mempool provides sized scratch buffer pools shared across sorts.
package mempool

import (
	"sync"
)

// A sized pool of []T scratch buffers to keep merge passes from allocating
// on every call. Buffers of different element types never share a pool.

var pools sync.Map // key: poolKey, value: *sync.Pool

type poolKey struct {
	elem  any // typed nil pointer, distinct per element type
	class int
}

func keyFor[T any](class int) poolKey {
	return poolKey{elem: (*T)(nil), class: class}
}

// sizeClass rounds n up to the next multiple of 1024 to reduce churn.
func sizeClass(n int) int {
	if n <= 1024 {
		return 1024
	}
	const step = 1024
	r := (n + step - 1) / step
	return r * step
}

func poolFor[T any](class int) *sync.Pool {
	pAny, _ := pools.LoadOrStore(keyFor[T](class), &sync.Pool{New: func() any { return make([]T, class) }})
	p, ok := pAny.(*sync.Pool)
	if !ok {
		return nil
	}
	return p
}

// Get retrieves a []T buffer of n elements from the pool.
// The returned slice has length n but may have larger capacity; its contents
// are whatever the previous user left behind.
// The caller must return it via Put when done.
func Get[T any](n int) []T {
	if n < 0 {
		n = 0
	}
	cls := sizeClass(n)
	p := poolFor[T](cls)
	if p == nil {
		return make([]T, n, cls)
	}
	buf, ok := p.Get().([]T)
	if !ok || cap(buf) < cls {
		buf = make([]T, cls)
	}
	return buf[:n]
}

// Put returns a buffer to the pool. It is safe to pass a nil slice.
func Put[T any](buf []T) {
	if buf == nil {
		return
	}
	// Buffers are filed under the class their capacity fully covers, so a
	// later Get from that class never sees a short buffer.
	c := cap(buf)
	cls := (c / 1024) * 1024
	if cls < 1024 {
		return
	}
	p := poolFor[T](cls)
	if p == nil {
		return
	}
	p.Put(buf[:cap(buf)]) //nolint:staticcheck
}
