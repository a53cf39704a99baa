package media

import (
	"strconv"
	"strings"
	"time"

	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FFProbe implements Prober by shelling out to ffprobe
type FFProbe struct {
	run func(path string) (string, error)
}

// NewFFProbe creates a prober backed by the ffprobe binary on PATH
func NewFFProbe() *FFProbe {
	return &FFProbe{
		run: func(path string) (string, error) {
			return ffmpeg.Probe(path)
		},
	}
}

// Probe runs ffprobe on path and parses its JSON output
func (p *FFProbe) Probe(path string) (*Metadata, error) {
	raw, err := p.run(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error probing %s", path)
	}

	md, err := parseProbeOutput(path, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading probe output for %s", path)
	}
	return md, nil
}

func parseProbeOutput(path, raw string) (*Metadata, error) {
	if !gjson.Valid(raw) {
		return nil, errors.New("ffprobe returned invalid JSON")
	}
	doc := gjson.Parse(raw)

	var videoStream, audioStream gjson.Result
	for _, stream := range doc.Get("streams").Array() {
		switch stream.Get("codec_type").String() {
		case "video":
			// cover art is reported as a one-frame video stream
			if !videoStream.Exists() && stream.Get("disposition.attached_pic").Int() == 0 {
				videoStream = stream
			}
		case "audio":
			if !audioStream.Exists() {
				audioStream = stream
			}
		}
	}

	md := &Metadata{
		Path: path,
		Size: doc.Get("format.size").Int(),
	}

	primary := audioStream
	switch {
	case videoStream.Exists():
		md.Type = models.MediaVideo
		md.Width = int(videoStream.Get("width").Int())
		md.Height = int(videoStream.Get("height").Int())
		md.VideoCodec = videoStream.Get("codec_name").String()
		primary = videoStream
	case audioStream.Exists():
		md.Type = models.MediaAudio
	default:
		return nil, errors.New("no audio or video stream found")
	}
	if audioStream.Exists() {
		md.AudioCodec = audioStream.Get("codec_name").String()
	}

	seconds := primary.Get("duration").Float()
	if seconds <= 0 {
		seconds = doc.Get("format.duration").Float()
	}
	if seconds <= 0 {
		seconds = durationFromFrames(primary)
	}
	if seconds <= 0 {
		return nil, errors.New("could not determine duration")
	}
	md.Duration = time.Duration(seconds * float64(time.Second))

	return md, nil
}

func durationFromFrames(stream gjson.Result) float64 {
	frames := stream.Get("nb_frames").Float()
	if frames <= 0 {
		return 0
	}

	parts := strings.Split(stream.Get("r_frame_rate").String(), "/")
	if len(parts) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 || num == 0 {
		return 0
	}
	return frames / (num / den)
}
