package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/highcard-dev/companion/internal/utils/env"
	processutil "github.com/shirou/gopsutil/process"
)

const (
	ServiceModeAuto = "auto"
	ServiceModeOn   = "true"
	ServiceModeOff  = "false"
)

var supervisors = map[string]bool{
	"systemd":      true,
	"launchd":      true,
	"supervisord":  true,
	"runsv":        true,
	"s6-supervise": true,
}

var parentProcessName = func() (string, error) {
	parent, err := processutil.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", err
	}
	return parent.Name()
}

// ResolveServiceMode turns the service-mode setting into a flag. "auto" looks for
// systemd/launchd markers in the environment and then at the parent process.
func ResolveServiceMode(setting string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case ServiceModeOn:
		return true, nil
	case ServiceModeOff:
		return false, nil
	case ServiceModeAuto, "":
		return DetectServiceMode(), nil
	}
	return false, fmt.Errorf("invalid service mode %q, expected auto, true or false", setting)
}

func DetectServiceMode() bool {
	if env.IsSet("INVOCATION_ID") {
		return true
	}
	if xpc := env.CanGet("XPC_SERVICE_NAME"); xpc != "" && xpc != "0" {
		return true
	}
	name, err := parentProcessName()
	if err != nil {
		return false
	}
	return supervisors[name]
}
