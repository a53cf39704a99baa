package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/media"
	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/stretchr/testify/require"
)

func newProbeFixture() (*filesystem.MockFileSystem, *media.MockProber) {
	fs := filesystem.NewMockFileSystem()
	fs.AddSizedFile("/workspace/intro.mp4", nil, 52_428_800)

	prober := media.NewMockProber()
	prober.SetResult("/workspace/intro.mp4", &media.Metadata{
		Path:       "/workspace/intro.mp4",
		Type:       models.MediaVideo,
		Duration:   75*time.Minute + 3*time.Second,
		Width:      1920,
		Height:     1080,
		VideoCodec: "h264",
		AudioCodec: "aac",
		Size:       52_428_800,
	})
	return fs, prober
}

func TestProbe_TextReport(t *testing.T) {
	fs, prober := newProbeFixture()

	out, err := runCommand(t, fs, prober, Settings{}, "probe", "/workspace/intro.mp4")
	require.NoError(t, err)
	require.Contains(t, out, "1:15:03")
	require.Contains(t, out, "1920x1080")
	snaps.MatchSnapshot(t, out)
}

func TestProbe_JSON(t *testing.T) {
	fs, prober := newProbeFixture()

	out, err := runCommand(t, fs, prober, Settings{}, "probe", "/workspace/intro.mp4", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "/workspace/intro.mp4", got["path"])
	require.Equal(t, "video", got["type"])
	require.Equal(t, "1:15:03", got["duration"])
	require.InDelta(t, 4503.0, got["durationSeconds"], 1e-9)
	require.Equal(t, "h264", got["videoCodec"])
}

func TestProbe_CustomTemplate(t *testing.T) {
	fs, prober := newProbeFixture()
	fs.AddFile("/workspace/report.tmpl", []byte(`{{ .Name | upper }} {{ clock .Duration }} {{ bytes .Size }}`))

	out, err := runCommand(t, fs, prober, Settings{}, "probe", "/workspace/intro.mp4", "--template", "/workspace/report.tmpl")
	require.NoError(t, err)
	require.Equal(t, "INTRO.MP4 1:15:03 52 MB", out)
}

func TestProbe_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		noProber bool
		wantErr  string
	}{
		{name: "invalid format", args: []string{"probe", "/workspace/intro.mp4", "--format", "yaml"}, wantErr: `invalid format "yaml"`},
		{name: "missing file", args: []string{"probe", "/workspace/nope.mp4"}, wantErr: "file not found: /workspace/nope.mp4"},
		{name: "probing disabled", args: []string{"probe", "/workspace/intro.mp4"}, noProber: true, wantErr: "probing is disabled"},
		{name: "missing template", args: []string{"probe", "/workspace/intro.mp4", "--template", "/workspace/none.tmpl"}, wantErr: "failed to read template"},
		{name: "no result", args: []string{"probe", "/workspace/other.mov"}, wantErr: "failed to probe /workspace/other.mov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, prober := newProbeFixture()
			fs.AddFile("/workspace/other.mov", nil)

			var p media.Prober = prober
			if tt.noProber {
				p = nil
			}

			_, err := runCommand(t, fs, p, Settings{}, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
