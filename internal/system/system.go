package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// DefaultWorkers возвращает число физических ядер, при ошибке GOMAXPROCS
func DefaultWorkers(ctx context.Context) int {
	n, err := cpu.CountsWithContext(ctx, false)
	if err != nil || n < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// MemoryStats снимок памяти системы и текущего процесса
type MemoryStats struct {
	TotalBytes     uint64
	AvailableBytes uint64
	UsedPercent    float64
	ProcessRSS     uint64
}

// ReadMemoryStats измеряет потребление памяти системой и текущим процессом
func ReadMemoryStats(ctx context.Context) (MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, fmt.Errorf("virtual memory: %w", err)
	}
	stats := MemoryStats{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
		UsedPercent:    vm.UsedPercent,
	}

	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return stats, fmt.Errorf("process: %w", err)
	}
	info, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return stats, fmt.Errorf("process memory: %w", err)
	}
	stats.ProcessRSS = info.RSS
	return stats, nil
}

// FindLatestFile возвращает самый свежий файл в dir с расширением из exts
func FindLatestFile(dir string, exts []string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExtension(f.Name(), exts) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no %s files found in %s", strings.Join(exts, "/"), dir)
	}

	return latestFile, nil
}

// FindLatestImage: если path это файл, он возвращается как есть,
// для директории берется самое свежее изображение в ней.
func FindLatestImage(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		if !hasExtension(path, imageExtensions) {
			return "", fmt.Errorf("%s is not a jpeg or png image", path)
		}
		return path, nil
	}
	return FindLatestFile(path, imageExtensions)
}

func hasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Приоритеты:
// 1. MacOS (VideoToolbox)
// 2. NVIDIA (NVENC)
// libx264 остается программным запасным вариантом
var h264Encoders = []string{"h264_videotoolbox", "h264_nvenc"}

// GetBestH264Encoder выбирает аппаратный H.264 энкодер, если ffmpeg его поддерживает
func GetBestH264Encoder(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "ffmpeg", "-hide_banner", "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}
	return pickEncoder(string(out))
}

func pickEncoder(listing string) string {
	for _, name := range h264Encoders {
		if strings.Contains(listing, name) {
			return name
		}
	}
	return "libx264"
}
