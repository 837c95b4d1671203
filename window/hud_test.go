package window

import (
	"strings"
	"testing"

	"github.com/phanxgames/sanctuary"
)

func TestStatusText(t *testing.T) {
	ctrl, err := sanctuary.NewController(sanctuary.Config{Width: 80, Height: 50, Seed: 9, ScreenshotDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	got := statusText(ctrl, 60)
	for _, want := range []string{"Mode: sand", "Stage: Sprouting", "Stars: 0", "Next: hope at 5", "FPS: 60.0"} {
		if !strings.Contains(got, want) {
			t.Errorf("status missing %q:\n%s", want, got)
		}
	}

	ctrl.SetMode(sanctuary.ModeStar)
	for range 15 {
		ctrl.AutoPlaceStar()
	}
	got = statusText(ctrl, 0)
	if !strings.Contains(got, "Stars: 15  joy") || strings.Contains(got, "Next:") {
		t.Errorf("status after 15 stars:\n%s", got)
	}
}
