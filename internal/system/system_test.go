package system

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagePoolClearsReusedFrames(t *testing.T) {
	p := NewImagePool()
	rect := image.Rect(0, 0, 4, 4)

	img := p.Get(rect)
	require.Equal(t, rect, img.Rect)
	img.Pix[0] = 255
	p.Put(img)

	again := p.Get(rect)
	assert.Equal(t, uint8(0), again.Pix[0])

	// unknown bounds are dropped without panicking
	p.Put(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	p.Put(nil)
}

func TestDefaultWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultWorkers(context.Background()), 1)
}

func TestReadMemoryStats(t *testing.T) {
	stats, err := ReadMemoryStats(context.Background())
	if err != nil {
		t.Skipf("memory stats unavailable: %v", err)
	}
	assert.Greater(t, stats.TotalBytes, uint64(0))
	assert.Greater(t, stats.ProcessRSS, uint64(0))
}

func TestFindLatestImage(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a.png", "b.JPG", "c.txt"}
	for i, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, nil, 0644))
		mod := time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	latest, err := FindLatestImage(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.JPG"), latest)

	file, err := FindLatestImage(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.png"), file)

	_, err = FindLatestImage(filepath.Join(dir, "c.txt"))
	assert.Error(t, err)

	_, err = FindLatestFile(dir, []string{".gif"})
	assert.Error(t, err)
}

func TestPickEncoder(t *testing.T) {
	tests := []struct {
		listing string
		want    string
	}{
		{" V....D h264_nvenc  NVIDIA NVENC H.264 encoder", "h264_nvenc"},
		{" V....D h264_videotoolbox VideoToolbox\n V....D h264_nvenc", "h264_videotoolbox"},
		{" V....D libx264 libx264 H.264", "libx264"},
		{"", "libx264"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pickEncoder(tt.listing))
	}
}
