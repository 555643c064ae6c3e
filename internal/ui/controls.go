package ui

import (
	"context"
	"io"

	"github.com/rickgorman/hashsearch/internal/search"
)

var _ search.Controls = (*KeyControls)(nil)

// KeyControls reads single key presses from a raw terminal.
type KeyControls struct {
	keys chan byte
}

// NewKeyControls starts reading r in the background. Presses are dropped
// while the buffer is full. The goroutine ends when r returns an error.
func NewKeyControls(r io.Reader) *KeyControls {
	k := &KeyControls{keys: make(chan byte, 16)}
	go k.read(r)
	return k
}

func (k *KeyControls) read(r io.Reader) {
	defer close(k.keys)

	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			select {
			case k.keys <- buf[0]:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// Poll returns the next pending key, if any.
func (k *KeyControls) Poll() (search.Key, bool) {
	select {
	case b, ok := <-k.keys:
		if !ok {
			return 0, false
		}
		return TranslateKey(b), true
	default:
		return 0, false
	}
}

// Wait blocks until any key is pressed, input ends, or ctx is done.
func (k *KeyControls) Wait(ctx context.Context) error {
	select {
	case <-k.keys:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TranslateKey maps a key to its control. C shows the current value,
// P pauses and Q or Ctrl-C quits.
func TranslateKey(b byte) search.Key {
	switch b {
	case 'c', 'C', 's', 'S':
		return search.KeyStatus
	case 'p', 'P':
		return search.KeyPause
	case 'q', 'Q', 0x03:
		return search.KeyQuit
	default:
		return search.KeyOther
	}
}
