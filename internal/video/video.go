package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"strings"

	"github.com/ivlev/focuscursor/internal/logging"
)

// Encoder opens a sink that consumes frames of one size in display order
type Encoder interface {
	Open(ctx context.Context, w, h int, fps float64) (FrameSink, error)
}

// FrameSink receives frames; Close flushes and reports the final error
type FrameSink interface {
	WriteFrame(img image.Image) error
	Close() error
}

// FFmpegEncoder streams raw RGBA frames to an ffmpeg process
type FFmpegEncoder struct {
	Binary  string // Defaults to "ffmpeg"
	Output  string
	Codec   string // e.g. libx264, h264_nvenc, h264_videotoolbox
	Quality int
}

func (e *FFmpegEncoder) Open(ctx context.Context, w, h int, fps float64) (FrameSink, error) {
	bin := e.Binary
	if bin == "" {
		bin = "ffmpeg"
	}
	args := e.buildFFmpegArgs(w, h, fps)
	logging.FromContext(ctx).Debug().Str("cmd", bin+" "+strings.Join(args, " ")).Msg("starting encoder")

	// rawvideo через stdin, без промежуточных файлов на диске
	cmd := exec.CommandContext(ctx, bin, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	return &ffmpegSink{cmd: cmd, stdin: stdin, out: &out, w: w, h: h}, nil
}

func (e *FFmpegEncoder) buildFFmpegArgs(w, h int, fps float64) []string {
	codec := e.Codec
	if codec == "" {
		codec = "libx264"
	}
	rate := fmt.Sprintf("%g", fps)

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", w, h),
		"-framerate", rate,
		"-i", "-",
		"-r", rate,
		"-pix_fmt", "yuv420p",
		"-c:v", codec,
	}

	// yuv420p требует четных размеров
	if w%2 != 0 || h%2 != 0 {
		args = append(args, "-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2")
	}

	// Качество в зависимости от энкодера
	switch codec {
	case "h264_videotoolbox":
		// VideoToolbox не везде поддерживает -q:v, используем битрейт
		bitrate := e.Quality * 100 // кбит/с, 75 -> 7.5 Мбит/с
		args = append(args, "-b:v", fmt.Sprintf("%dk", bitrate))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", e.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", e.Quality), "-preset", "medium")
	}

	args = append(args, e.Output)
	return args
}

type ffmpegSink struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	out    *bytes.Buffer
	w, h   int
	frames int
}

func (s *ffmpegSink) WriteFrame(img image.Image) error {
	if b := img.Bounds(); b.Dx() != s.w || b.Dy() != s.h {
		return fmt.Errorf("frame %d is %dx%d, encoder expects %dx%d", s.frames, b.Dx(), b.Dy(), s.w, s.h)
	}
	if err := writeRawRGBA(s.stdin, img); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	s.frames++
	return nil
}

func (s *ffmpegSink) Close() error {
	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w, output: %s", err, strings.TrimSpace(s.out.String()))
	}
	return nil
}

func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}
