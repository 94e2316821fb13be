//go:build !darwin && !linux && !windows

package sdl

import (
	"fmt"
	"runtime"

	"github.com/agiangrant/framehost"
)

// CreateSurface implements framehost.Platform. SDL2 is not loadable here.
func (p *Platform) CreateSurface(framehost.SurfaceConfig) (framehost.Surface, error) {
	return nil, fmt.Errorf("sdl: unsupported platform %s/%s", runtime.GOOS, runtime.GOARCH)
}
