package shardlock

import "testing"

func TestIndependentShards(t *testing.T) {
	tbl := New()

	tbl.Lock(10)
	defer tbl.Unlock(10)

	// A different shard id must not be contended by shard 10's lock.
	if !tbl.TryLock(11) {
		t.Fatal("shard 11 should be free while shard 10 is held")
	}
	tbl.Unlock(11)
}

func TestTryLockFailsWhenHeld(t *testing.T) {
	tbl := New()

	tbl.Lock(0)
	defer tbl.Unlock(0)

	if tbl.TryLock(0) {
		t.Fatal("TryLock on an already-held shard must fail")
	}
}

func TestReadersDoNotExcludeEachOther(t *testing.T) {
	tbl := New()

	tbl.RLock(5)
	tbl.RLock(5)
	tbl.RUnlock(5)
	tbl.RUnlock(5)
}

func TestAllShardsAddressable(t *testing.T) {
	tbl := New()
	for id := 0; id < Count; id++ {
		if !tbl.TryLock(uint16(id)) {
			t.Fatalf("shard %d should be free", id)
		}
		tbl.Unlock(uint16(id))
	}
}
