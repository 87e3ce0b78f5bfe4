package nui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	closeAfter int // polls before the user closes the window
	polls      int
	close      bool
}

func (w *fakeWindow) ShouldClose() bool                    { return w.close }
func (w *fakeWindow) SetShouldClose(b bool)                { w.close = b }
func (w *fakeWindow) Size() (int, int)                     { return 0, 0 }
func (w *fakeWindow) Resizable() bool                      { return false }
func (w *fakeWindow) RequiredInstanceExtensions() []string { return nil }
func (w *fakeWindow) Destroy()                             {}

func (w *fakeWindow) poll() {
	w.polls++
	if w.polls == w.closeAfter {
		w.close = true
	}
}

func TestLoop(t *testing.T) {
	for _, n := range []int{1, 2, 10} {
		w := &fakeWindow{closeAfter: n}
		Loop(context.Background(), w, w.poll)
		assert.Equal(t, n, w.polls, "closeAfter=%v", n)
	}
}

func TestLoopAlreadyClosed(t *testing.T) {
	w := &fakeWindow{close: true}
	Loop(context.Background(), w, w.poll)
	assert.Zero(t, w.polls)
}

func TestLoopCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &fakeWindow{closeAfter: -1}
	Loop(ctx, w, func() {
		w.poll()
		if w.polls == 3 {
			cancel()
		}
	})
	assert.Equal(t, 3, w.polls)
	assert.True(t, w.ShouldClose())
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Config{Width: 800, Height: 600, Title: "Vulkan"}, cfg)
	assert.NoError(t, cfg.Validate())

	for _, bad := range []Config{{Width: 0, Height: 600}, {Width: 800, Height: -1}} {
		assert.Error(t, bad.Validate(), "%+v", bad)
	}
}
