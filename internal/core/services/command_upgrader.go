package services

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"text/template"
	"time"

	"github.com/Masterminds/sprig"
	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/highcard-dev/companion/internal/core/ports"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

// CommandUpgrader performs the upgrade outside of the update core: it runs the
// configured command and then asks the host to restart. The supervisor brings the
// new version up.
type CommandUpgrader struct {
	command      string
	restartDelay time.Duration
	state        ports.UpdateStateInterface
	restart      func()
	shell        []string
}

func NewCommandUpgrader(command string, restartDelay time.Duration, state ports.UpdateStateInterface, restart func()) *CommandUpgrader {
	return &CommandUpgrader{
		command:      command,
		restartDelay: restartDelay,
		state:        state,
		restart:      restart,
		shell:        []string{"sh", "-c"},
	}
}

func RenderUpgradeCommand(command string, state domain.UpdateState) (string, error) {
	tmpl, err := template.New("update_command").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(command)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, state); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (u *CommandUpgrader) Upgrade(ctx context.Context, state domain.UpdateState) error {
	if u.command != "" {
		rendered, err := RenderUpgradeCommand(u.command, state)
		if err != nil {
			u.state.SetUpdateInProgress(false)
			return fmt.Errorf("failed to render update command: %w", err)
		}

		logger.Log().Info("Running update command",
			zap.String(logger.LogKeyContext, logger.LogContextUpgrade),
			zap.String("command", rendered),
			zap.String("targetVersion", state.LatestVersion),
		)

		args := append(append([]string{}, u.shell[1:]...), rendered)
		out, err := exec.CommandContext(ctx, u.shell[0], args...).CombinedOutput()
		if err != nil {
			u.state.SetUpdateInProgress(false)
			logger.Log().Error("Update command failed",
				zap.String(logger.LogKeyContext, logger.LogContextUpgrade),
				zap.ByteString("output", out),
				zap.Error(err),
			)
			return fmt.Errorf("update command failed: %w", err)
		}
	} else {
		logger.Log().Warn("No update command configured, restarting only",
			zap.String(logger.LogKeyContext, logger.LogContextUpgrade),
		)
	}

	select {
	case <-ctx.Done():
		u.state.SetUpdateInProgress(false)
		return ctx.Err()
	case <-time.After(u.restartDelay):
	}

	logger.Log().Info("Restarting to apply update",
		zap.String(logger.LogKeyContext, logger.LogContextUpgrade),
	)
	if u.restart != nil {
		u.restart()
	}
	return nil
}
