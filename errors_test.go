package framehost_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agiangrant/framehost"
)

func TestErrorKinds(t *testing.T) {
	root := errors.New("SDL_GL_CreateContext: GLX is not supported")
	err := fmt.Errorf("startup: %w", &framehost.Error{Kind: framehost.PlatformError, Op: "create surface", Err: root})

	if got := framehost.KindOf(err); got != framehost.PlatformError {
		t.Errorf("KindOf() = %v, want %v", got, framehost.PlatformError)
	}
	if !errors.Is(err, root) {
		t.Error("errors.Is(err, root) = false")
	}
	if !errors.Is(err, &framehost.Error{Kind: framehost.PlatformError}) {
		t.Error("errors.Is(err, PlatformError) = false")
	}
	if errors.Is(err, &framehost.Error{Kind: framehost.PlatformError, Op: "set swap interval"}) {
		t.Error("errors.Is matched a different op")
	}
	if errors.Is(err, &framehost.Error{Kind: framehost.ConfigError}) {
		t.Error("errors.Is matched a different kind")
	}
	if got := framehost.KindOf(root); got != framehost.RuntimeError {
		t.Errorf("KindOf(plain) = %v, want %v", got, framehost.RuntimeError)
	}
}

func TestFormatError(t *testing.T) {
	root := errors.New("file does not exist")
	err := &framehost.Error{Kind: framehost.ConfigError, Op: "read Config.toml", Err: fmt.Errorf("core: %w", root)}

	want := "config error: read Config.toml: core: file does not exist\n" +
		"  caused by: core: file does not exist\n" +
		"    caused by: file does not exist"
	if got := framehost.FormatError(err); got != want {
		t.Errorf("FormatError() =\n%s\nwant\n%s", got, want)
	}
	if got := framehost.FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}
}
