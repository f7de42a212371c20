package notify

import (
	"go-jobwatch-automation/internal/monitor"

	"github.com/gen2brain/beeep"
)

// Desktop pops a system notification on the machine running the monitor.
type Desktop struct{}

func (Desktop) Name() string { return "desktop" }

func (Desktop) Send(ev monitor.Event) error {
	return beeep.Notify("JobWatch", ev.Message, "")
}
