package transform

import "sync"

// rowPool recycles the uint16 row buffers ApplyImage decodes into.
type rowPool struct {
	pool sync.Pool
}

var rows = &rowPool{}

// get returns a buffer of length n. Contents are unspecified; callers
// overwrite the whole row.
func (p *rowPool) get(n int) *[]uint16 {
	if b, ok := p.pool.Get().(*[]uint16); ok && cap(*b) >= n {
		*b = (*b)[:n]
		return b
	}
	b := make([]uint16, n)
	return &b
}

// put returns b to the pool. The caller must not use b afterwards.
func (p *rowPool) put(b *[]uint16) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
