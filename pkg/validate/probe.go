package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// FFProbeProber is the default Prober, shelling out to an ffprobe-compatible
// binary configured via config.Validate.ProbeBinary.
type FFProbeProber struct {
	Binary  string
	Timeout time.Duration
}

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
	Format  ffprobeFormat   `json:"format"`
}

type ffprobeStream struct {
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

// Probe runs the configured binary against path and extracts duration,
// codecs, and resolution from its JSON output. A non-zero exit or a probe
// that exceeds Timeout both surface as an error.
func (p *FFProbeProber) Probe(ctx context.Context, path string) (ProbeResult, error) {
	binary := p.Binary
	if binary == "" {
		binary = "ffprobe"
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-show_streams",
		"-show_format",
		"-of", "json",
		path,
	)
	out, err := cmd.Output()
	if ctx.Err() != nil {
		return ProbeResult{}, fmt.Errorf("probe timed out after %s: %w", timeout, ctx.Err())
	}
	if err != nil {
		return ProbeResult{}, fmt.Errorf("running %s: %w", binary, err)
	}

	var parsed ffprobeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return ProbeResult{}, fmt.Errorf("parsing probe output: %w", err)
	}

	var result ProbeResult
	if seconds, err := strconv.ParseFloat(parsed.Format.Duration, 64); err == nil {
		result.DurationMs = int64(seconds * 1000)
	}
	for _, s := range parsed.Streams {
		switch s.CodecType {
		case "video":
			if result.VideoCodec == "" {
				result.VideoCodec = s.CodecName
				result.Width = s.Width
				result.Height = s.Height
			}
		case "audio":
			if result.AudioCodec == "" {
				result.AudioCodec = s.CodecName
			}
		}
	}

	return result, nil
}
