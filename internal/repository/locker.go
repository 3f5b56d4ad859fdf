package repository

import (
	"hash/fnv"
	"sync"

	"github.com/Guyuepp/sentence-chain/domain"
)

const DefaultLockStripes = 64

// profileLocker 按 profile 哈希分段加锁，内存占用固定
type profileLocker struct {
	stripes []sync.Mutex
}

var _ domain.Locker = (*profileLocker)(nil)

func NewProfileLocker(stripes int) *profileLocker {
	if stripes <= 0 {
		stripes = DefaultLockStripes
	}
	return &profileLocker{
		stripes: make([]sync.Mutex, stripes),
	}
}

func (l *profileLocker) Lock(profile string) func() {
	h := fnv.New32a()
	h.Write([]byte(profile))
	mu := &l.stripes[h.Sum32()%uint32(len(l.stripes))]
	mu.Lock()
	return mu.Unlock
}
