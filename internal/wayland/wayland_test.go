//go:build darwin || freebsd || linux

package wayland

import "testing"

// The client library is absent on test machines; what matters is that
// every entry point degrades to a no-op instead of crashing.

func TestNilBridgeIsSafe(t *testing.T) {
	var b *Bridge
	if b.RequestFrame(0xDEAD) {
		t.Fatal("RequestFrame on nil bridge = true")
	}
	if b.Pending() {
		t.Fatal("Pending on nil bridge = true")
	}
	b.OnDone(func() {})
	b.DestroyPending()
	b.Close()
}

func TestUnopenedBridgeIsSafe(t *testing.T) {
	b := &Bridge{}
	if b.RequestFrame(0xDEAD) {
		t.Fatal("RequestFrame without a loaded library = true")
	}
	b.DestroyPending()
	b.DestroyPending()
	b.Close()
	b.Close()
}

func TestRequestFrameNeedsSurface(t *testing.T) {
	b := &Bridge{lib: 1}
	if b.RequestFrame(0) {
		t.Fatal("RequestFrame with zero surface = true")
	}
}
