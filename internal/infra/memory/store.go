package memory

import (
	"context"
	"slices"
	"sync"

	"quickmart/internal/domain/model"
)

// *Tに対する制約。採番と複製をエンティティ側に任せる。
type entityPtr[T any] interface {
	*T
	EntityID() int64
	SetEntityID(id int64)
	Clone() T
}

// Store is the in-memory Repository[T].
//
// Every call first sleeps for its simulated latency, observing ctx, and only
// then takes the lock. Calls therefore complete in latency order rather than
// issue order, and a cancelled call leaves the collection untouched.
type Store[T any, P entityPtr[T]] struct {
	mu     sync.Mutex
	items  []T
	delays Delays
	name   string
}

// seedのIDはそのまま使う。IDが0のものには採番する。
func NewStore[T any, P entityPtr[T]](name string, delays Delays, seed []T) *Store[T, P] {
	s := &Store[T, P]{
		items:  make([]T, 0, len(seed)),
		delays: delays,
		name:   name,
	}
	for i := range seed {
		cp := P(&seed[i]).Clone()
		if P(&cp).EntityID() == 0 {
			P(&cp).SetEntityID(s.nextID())
		}
		s.items = append(s.items, cp)
	}
	return s
}

func (s *Store[T, P]) GetAll(ctx context.Context) ([]T, error) {
	if err := wait(ctx, s.delays.List); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.items))
	for i := range s.items {
		out[i] = P(&s.items[i]).Clone()
	}
	return out, nil
}

func (s *Store[T, P]) GetByID(ctx context.Context, id int64) (T, error) {
	return s.find(ctx, func(e P) bool { return e.EntityID() == id })
}

func (s *Store[T, P]) Create(ctx context.Context, entity T) (T, error) {
	if err := wait(ctx, s.delays.Create); err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(entity), nil
}

func (s *Store[T, P]) Update(ctx context.Context, id int64, patch func(*T)) (T, error) {
	var zero T
	if err := wait(ctx, s.delays.Update); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return zero, s.notFound()
	}
	cp := P(&s.items[i]).Clone()
	if patch != nil {
		patch(&cp)
	}
	//IDは変更させない
	P(&cp).SetEntityID(id)
	s.items[i] = cp
	return P(&cp).Clone(), nil
}

func (s *Store[T, P]) Delete(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := wait(ctx, s.delays.Delete); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return zero, s.notFound()
	}
	removed := P(&s.items[i]).Clone()
	s.items = slices.Delete(s.items, i, i+1)
	return removed, nil
}

// 最初に一致したもの
func (s *Store[T, P]) find(ctx context.Context, match func(P) bool) (T, error) {
	var zero T
	if err := wait(ctx, s.delays.Get); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if match(P(&s.items[i])) {
			return P(&s.items[i]).Clone(), nil
		}
	}
	return zero, s.notFound()
}

// 呼び出し側でロック済みであること
func (s *Store[T, P]) insertLocked(entity T) T {
	cp := P(&entity).Clone()
	P(&cp).SetEntityID(s.nextID())
	s.items = append(s.items, cp)
	return P(&cp).Clone()
}

func (s *Store[T, P]) indexOf(id int64) int {
	for i := range s.items {
		if P(&s.items[i]).EntityID() == id {
			return i
		}
	}
	return -1
}

// max(既存ID ∪ {0}) + 1
func (s *Store[T, P]) nextID() int64 {
	var maxID int64
	for i := range s.items {
		if id := P(&s.items[i]).EntityID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func (s *Store[T, P]) notFound() error {
	return model.NewNotFound(s.name + " not found")
}
