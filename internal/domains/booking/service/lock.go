package service

import "sync"

// keyedMutex serializes critical sections per key. The availability check
// and the booking insert must run as one atomic unit per room, otherwise two
// front-desk workstations can both pass the overlap check and double-book;
// the same applies to lifecycle transitions per booking.
type keyedMutex struct {
	locks sync.Map
}

// lock acquires the mutex for key and returns its unlock func.
func (k *keyedMutex) lock(key string) func() {
	value, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu, _ := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}
