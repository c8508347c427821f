package callback

import (
	"testing"
	"time"

	"github.com/shardkeeper/filekv/cache"
)

func TestCallback_SetThenGet(t *testing.T) {
	k, err := cache.Build(cache.Options{RootPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer k.Close()

	c := New(k)

	setDone := make(chan cache.Result, 1)
	c.SetAsync("a", []byte("1"), time.Minute, func(r cache.Result) { setDone <- r })

	select {
	case r := <-setDone:
		if r.Err != nil {
			t.Fatalf("SetAsync: %v", r.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("SetAsync callback never fired")
	}

	getDone := make(chan cache.Result, 1)
	c.GetAsync("a", func(r cache.Result) { getDone <- r })

	select {
	case r := <-getDone:
		if r.Err != nil || !r.Found || string(r.Value) != "1" {
			t.Fatalf("GetAsync: value=%q found=%v err=%v", r.Value, r.Found, r.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("GetAsync callback never fired")
	}
}
