// Package shutdown handles process signals and the appliance's
// one-way power-off action.
package shutdown

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"parley/log"
)

func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}

// PowerOff halts the host. This is the appliance's terminal action;
// in standalone (bench) mode it only logs.
func PowerOff(standalone bool) {
	if standalone {
		log.Info("standalone mode, host power-off skipped")
		return
	}
	log.Info("powering off host")
	if err := exec.Command("shutdown", "-h", "now").Run(); err != nil {
		log.Errorf("power-off failed: %v", err)
	}
}
