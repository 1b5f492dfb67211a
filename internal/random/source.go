package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
	"sync"
)

// lockedSource lets generators be shared between test goroutines
type lockedSource struct {
	m   sync.Mutex
	src mathrand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.m.Lock()
	defer s.m.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.m.Lock()
	defer s.m.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.m.Lock()
	defer s.m.Unlock()
	s.src.Seed(seed)
}

// rnd is seeded from crypto/rand once per binary run
var rnd = func() *mathrand.Rand {
	buf := make([]byte, 8)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		panic(err)
	}
	src := mathrand.NewSource(int64(binary.LittleEndian.Uint64(buf))).(mathrand.Source64)
	return mathrand.New(&lockedSource{src: src})
}()
