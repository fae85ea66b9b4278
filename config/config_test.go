package config_test

import (
	"strings"
	"testing"

	"github.com/rasterkit/resize/config"
	"github.com/rasterkit/resize/kernel"
)

const sample = `
presets:
  thumbnail:
    kernel: lanczos3
    width: 256
    height: 256
  print:
    kernel: catmullrom
    width: 3000
    height: 2000
`

func TestLoadFromReaderParsesPresets(t *testing.T) {
	cfg, err := config.LoadFromReader(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	thumb, ok := cfg.Presets["thumbnail"]
	if !ok {
		t.Fatal("missing thumbnail preset")
	}
	if thumb.Width != 256 || thumb.Height != 256 {
		t.Errorf("thumbnail dims = %dx%d, want 256x256", thumb.Width, thumb.Height)
	}
	if thumb.Function() != kernel.Lanczos3 {
		t.Errorf("thumbnail kernel = %v, want Lanczos3", thumb.Function())
	}
}

func TestUnknownKernelNameFallsBackToBilinear(t *testing.T) {
	p := config.Preset{Kernel: "not-a-real-kernel"}
	if p.Function() != kernel.Bilinear {
		t.Errorf("Function() = %v, want Bilinear", p.Function())
	}
}
