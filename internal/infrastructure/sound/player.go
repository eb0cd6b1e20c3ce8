// Package sound проигрывает звук уведомления через системный плеер.
package sound

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/jimlawless/whereami"
)

// CommandPlayer запускает внешнюю команду, например "paplay /usr/share/sounds/freedesktop/stereo/message.oga".
type CommandPlayer struct {
	name string
	args []string
}

func NewCommandPlayer(command string) (*CommandPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("empty sound command"))
	}

	return &CommandPlayer{name: fields[0], args: fields[1:]}, nil
}

func (p *CommandPlayer) Play(ctx context.Context) error {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.name, p.args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("%s: %w", msg, err))
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
