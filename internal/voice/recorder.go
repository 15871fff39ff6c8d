package voice

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ExecRecorder shells out to an external capture binary (arecord by
// default) and reads WAV bytes from its stdout. The recorder runs until
// the context deadline kills it, which is the normal end of a
// fixed-length recording and not an error.
type ExecRecorder struct {
	Binary string
	Args   []string
}

func NewExecRecorder(binary string) *ExecRecorder {
	return &ExecRecorder{
		Binary: binary,
		Args:   []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "wav"},
	}
}

// Available reports whether the capture binary can be resolved, so the
// add-topic flow can hide the voice option entirely.
func (r *ExecRecorder) Available() bool {
	_, err := exec.LookPath(r.Binary)
	return err == nil
}

func (r *ExecRecorder) Record(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, r.Args...)
	cmd.Stdout = &buf

	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("recording audio: %w", err)
	}
	if buf.Len() == 0 {
		return nil, ErrTimeout
	}
	return buf.Bytes(), nil
}
