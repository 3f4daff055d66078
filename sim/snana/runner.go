package snana

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/medband-sim/medband-sim/sim"
)

// outputTailBytes bounds how much simulator output is attached to a failure.
const outputTailBytes = 4096

// waitDelay bounds how long Run waits for output pipes after the simulator
// is killed. Children that inherited the pipes would otherwise hold Run open.
const waitDelay = 2 * time.Second

// Run implements sim.Simulator. It blocks until the simulator exits or ctx
// is done. With spec.Verbose the simulator's output is logged line by line
// at info level.
func (s *Simulator) Run(ctx context.Context, spec sim.RunSpec) error {
	args := []string{spec.InputFile}
	if spec.Perfect {
		args = append(args, "GENPERFECT", "2")
	}
	cmd := exec.CommandContext(ctx, s.cfg.Executable, args...)
	cmd.Dir = s.cfg.WorkDir
	cmd.WaitDelay = waitDelay
	killProcessGroup(cmd)

	tail := &tailBuffer{max: outputTailBytes}
	var out io.Writer = tail
	if spec.Verbose {
		lw := logrus.StandardLogger().WriterLevel(logrus.InfoLevel)
		defer func() { _ = lw.Close() }()
		out = io.MultiWriter(tail, lw)
	}
	cmd.Stdout = out
	cmd.Stderr = out

	logrus.Infof("Running %s %s in %s", s.cfg.Executable, strings.Join(args, " "), s.cfg.WorkDir)
	if err := cmd.Run(); err != nil {
		if t := tail.String(); t != "" {
			return fmt.Errorf("%s %s: %w\n%s", s.cfg.Executable, spec.InputFile, err, t)
		}
		return fmt.Errorf("%s %s: %w", s.cfg.Executable, spec.InputFile, err)
	}
	return nil
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.max; over > 0 {
		b.buf = append(b.buf[:0], b.buf[over:]...)
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return strings.TrimSpace(string(b.buf))
}
