package pool

import "testing"

func TestPool_GetAllocatesWhenEmpty(t *testing.T) {
	calls := 0
	p := New(func() []byte {
		calls++
		return make([]byte, 16)
	})

	buf := p.Get()
	if len(buf) != 16 {
		t.Fatalf("got buffer of length %d, want 16", len(buf))
	}
	if calls != 1 {
		t.Fatalf("newFn called %d times, want 1", calls)
	}
}

func TestPool_PutGetRoundTrip(t *testing.T) {
	p := New(func() *int { v := 0; return &v })

	item := p.Get()
	*item = 7
	p.Put(item)

	// sync.Pool gives no reuse guarantee, but whatever comes back must be
	// a valid *int.
	got := p.Get()
	if got == nil {
		t.Fatal("Get returned nil")
	}
}
