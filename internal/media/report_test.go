package media

import (
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/stretchr/testify/require"
)

func sampleVideo() *Metadata {
	return &Metadata{
		Path:       "/footage/take_01.mp4",
		Type:       models.MediaVideo,
		Duration:   12480 * time.Millisecond,
		Width:      1920,
		Height:     1080,
		VideoCodec: "h264",
		AudioCodec: "aac",
		Size:       1500000,
	}
}

func TestRenderReport_Default(t *testing.T) {
	out, err := RenderReport(nil, sampleVideo())
	require.NoError(t, err)

	require.Equal(t, `take_01.mp4
  path:      /footage/take_01.mp4
  type:      video
  duration:  00:12
  video:     h264 1920x1080
  audio:     aac
  size:      1.5 MB
`, out)
}

func TestRenderReport_Snapshots(t *testing.T) {
	t.Run("audio only", func(t *testing.T) {
		out, err := RenderReport(nil, &Metadata{
			Path:     "/music/score.flac",
			Type:     models.MediaAudio,
			Duration: 2*time.Hour + 3*time.Minute,
		})
		require.NoError(t, err)
		snaps.MatchSnapshot(t, out)
	})

	t.Run("video without codecs", func(t *testing.T) {
		md := sampleVideo()
		md.VideoCodec = ""
		md.AudioCodec = ""
		out, err := RenderReport(nil, md)
		require.NoError(t, err)
		snaps.MatchSnapshot(t, out)
	})
}

func TestLoadReportTemplate(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/short.tmpl", []byte(`{{ .Name | upper }} {{ mmss .Duration }} {{ .Type.String | title }}`))
	fs.AddFile("/workspace/broken.tmpl", []byte(`{{ .Name `))

	tmpl, err := LoadReportTemplate(fs, "/workspace/short.tmpl")
	require.NoError(t, err)

	out, err := RenderReport(tmpl, sampleVideo())
	require.NoError(t, err)
	require.Equal(t, "TAKE_01.MP4 00:12 Video", out)

	_, err = LoadReportTemplate(fs, "/workspace/broken.tmpl")
	require.ErrorContains(t, err, "invalid report template")

	_, err = LoadReportTemplate(fs, "/workspace/missing.tmpl")
	require.Error(t, err)
}
