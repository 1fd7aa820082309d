package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var ErrRenderTimeout = errors.New("rendering timed out")

// RenderVideo writes a generated renderer script to a scratch
// directory, runs the external renderer against it with a hard
// wall-clock timeout and moves the produced video into the configured
// output directory. The scratch directory is removed on success,
// failure and timeout alike - only the final video survives.
func RenderVideo(script, fileName string) (outPath string, err error) {
	timeout := time.Duration(viper.GetInt("renderer.timeout")) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	scratch := filepath.Join(os.TempDir(), "render-"+uuid.NewString())
	if err := os.MkdirAll(scratch, 0o700); err != nil {
		return "", fmt.Errorf("failed to create scratch dir, %w", err)
	}
	defer os.RemoveAll(scratch)

	name := sanitizeFileName(fileName)

	scriptPath := filepath.Join(scratch, name+".py")
	if err := os.WriteFile(scriptPath, []byte(script), 0o600); err != nil {
		return "", fmt.Errorf("failed to write renderer script, %w", err)
	}

	cmd := exec.CommandContext(ctx,
		viper.GetString("renderer.command"),
		viper.GetString("renderer.quality"),
		"--media_dir", scratch,
		scriptPath,
	)

	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	zap.L().Debug("Running renderer", zap.String("cmd", cmd.String()))

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrRenderTimeout
		}

		zap.L().Error("Renderer failed", zap.Error(err), zap.String("stderr", stdErr.String()))
		return "", fmt.Errorf("renderer failed, %w", err)
	}

	produced, err := findVideo(scratch)
	if err != nil {
		return "", err
	}

	outDir := viper.GetString("renderer.output_dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir, %w", err)
	}

	outPath = filepath.Join(outDir, name+".mp4")
	if err := moveFile(produced, outPath); err != nil {
		return "", err
	}

	return outPath, nil
}

// The renderer buries its output under media/videos/<script>/<quality>,
// and the exact quality segment depends on flags. Walking the scratch
// tree for the first .mp4 is sturdier than reassembling that path.
func findVideo(root string) (string, error) {
	var found string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".mp4") {
			found = path
			return fs.SkipAll
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan renderer output, %w", err)
	}

	if found == "" {
		return "", errors.New("renderer produced no video file")
	}

	return found, nil
}

// Rename first, copy when the output dir sits on another filesystem
// than the scratch dir.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open rendered video, %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create output file, %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy rendered video, %w", err)
	}

	return nil
}

func sanitizeFileName(n string) string {
	n = strings.TrimSpace(n)
	n = strings.ReplaceAll(n, "/", "_")
	n = strings.ReplaceAll(n, "\\", "_")
	n = strings.ReplaceAll(n, "..", "_")

	if n == "" {
		n = "video-" + uuid.NewString()
	}

	return n
}
