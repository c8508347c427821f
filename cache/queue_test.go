package cache

import (
	"testing"
	"time"
)

func TestQueue_FIFO(t *testing.T) {
	q := newQueue(0)
	for i := 0; i < 3; i++ {
		q.Push(&job{key: string(rune('a' + i))})
	}
	for i := 0; i < 3; i++ {
		j, ok := q.Pop()
		if !ok {
			t.Fatal("unexpected closed queue")
		}
		if want := string(rune('a' + i)); j.key != want {
			t.Fatalf("Pop order: got %q, want %q", j.key, want)
		}
	}
}

func TestQueue_PopBlocksUntilPush(t *testing.T) {
	q := newQueue(0)
	done := make(chan *job)
	go func() {
		j, _ := q.Pop()
		done <- j
	}()

	select {
	case <-done:
		t.Fatal("Pop returned before any Push")
	case <-time.After(20 * time.Millisecond):
	}

	q.Push(&job{key: "x"})
	select {
	case j := <-done:
		if j.key != "x" {
			t.Fatalf("got %q, want x", j.key)
		}
	case <-time.After(time.Second):
		t.Fatal("Pop did not return after Push")
	}
}

func TestQueue_CloseDrainsBuffered(t *testing.T) {
	q := newQueue(0)
	q.Push(&job{key: "a"})
	q.Push(&job{key: "b"})
	q.Close()

	for _, want := range []string{"a", "b"} {
		j, ok := q.Pop()
		if !ok {
			t.Fatalf("expected buffered job %q before closed-and-drained", want)
		}
		if j.key != want {
			t.Fatalf("got %q, want %q", j.key, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop should report closed once drained")
	}
}

func TestQueue_BoundedPushBlocks(t *testing.T) {
	q := newQueue(1)
	q.Push(&job{key: "a"})

	pushed := make(chan struct{})
	go func() {
		q.Push(&job{key: "b"})
		close(pushed)
	}()

	select {
	case <-pushed:
		t.Fatal("bounded Push returned before room was freed")
	case <-time.After(20 * time.Millisecond):
	}

	q.Pop()
	select {
	case <-pushed:
	case <-time.After(time.Second):
		t.Fatal("bounded Push did not unblock after a Pop freed room")
	}
}
