package tui

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
)

func TestCopyToClipboardUnsupported(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("clipboard tool available")
	}
	if err := copyToClipboard("x"); !errors.Is(err, errNoClipboard) {
		t.Errorf("err = %v, want errNoClipboard", err)
	}
}

func TestDetailCopyWithoutClipboardFlashesError(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("clipboard tool available")
	}
	m := newDetailModel(testClaim(), false)
	m, _ = m.Update(enterKey())
	if m.flash == "" {
		t.Error("copy failure should set a flash")
	}
}
