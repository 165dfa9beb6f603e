package types

import (
	"sort"
	"sync"

	"golang.org/x/exp/constraints"
)

// Map[T,V] is a generic thread safe map of key type [T] and value type [V]
type Map[T constraints.Ordered, V any] struct {
	m    map[T]V
	lock *sync.Mutex
}

// NewMap[T,V] creates an empty Map
func NewMap[T constraints.Ordered, V any]() *Map[T, V] {
	return &Map[T, V]{
		m:    make(map[T]V),
		lock: new(sync.Mutex),
	}
}

func (s *Map[T, V]) Get(key T) (V, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	val, ok := s.m[key]
	return val, ok
}

func (s *Map[T, V]) Add(key T, val V) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.m[key] = val
}

func (s *Map[T, V]) Remove(key T) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.m, key)
}

func (s *Map[T, V]) Exists(key T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.m[key]
	return ok
}

func (s *Map[T, V]) Size() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.m)
}

func (s *Map[T, V]) RemoveAll() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.m = make(map[T]V)
}

// Keys returns the keys in sorted order.
func (s *Map[T, V]) Keys() []T {
	s.lock.Lock()
	defer s.lock.Unlock()

	keys := make([]T, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// List[V] is a generic thread safe list
type List[V any] struct {
	elems []V
	size  int
	lock  *sync.Mutex
}

// NewEmptyList[V] creates an empty List
func NewEmptyList[V any]() *List[V] {
	return &List[V]{
		elems: make([]V, 0),
		size:  0,
		lock:  new(sync.Mutex),
	}
}

func (l *List[V]) Append(e V) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.elems = append(l.elems, e)
	l.size += 1
}

func (l *List[V]) Elem(index int) (V, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	var res V
	if index < 0 || index >= l.size {
		return res, false
	}
	return l.elems[index], true
}

func (l *List[V]) Size() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.size
}

func (l *List[V]) Iter() []V {
	l.lock.Lock()
	defer l.lock.Unlock()

	res := make([]V, l.size)
	copy(res, l.elems)
	return res
}

func (l *List[V]) RemoveAll() []V {
	l.lock.Lock()
	defer l.lock.Unlock()
	result := make([]V, l.size)
	copy(result, l.elems)
	l.elems = make([]V, 0)
	l.size = 0
	return result
}

// Max[T] abstracts the max function for all ordered types T
func Max[T constraints.Ordered](one, two T) T {
	if one > two {
		return one
	}
	return two
}

// Min[T] abstracts the min function for all ordered types T
func Min[T constraints.Ordered](one, two T) T {
	if one < two {
		return one
	}
	return two
}
