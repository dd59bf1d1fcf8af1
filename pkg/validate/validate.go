// Package validate implements the five-stage pipeline that decides whether
// a mapped MediaFile is acceptable before it is upserted into the catalog.
package validate

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/semaphore"

	ingestio "github.com/ingestd/catalogsync/pkg/io"
	"github.com/ingestd/catalogsync/pkg/pathmap"
)

// DefaultProbeTimeout is the per-file media-probe timeout (spec: 30s).
const DefaultProbeTimeout = 30 * time.Second

// FailureKind enumerates the ways a file can fail validation.
type FailureKind string

const (
	FailurePathMapping  FailureKind = "PATH_MAPPING_FAILED"
	FailureFileNotFound FailureKind = "FILE_NOT_FOUND"
	FailureFileNotAccessible FailureKind = "FILE_NOT_ACCESSIBLE"
	FailureInvalidMetadata  FailureKind = "INVALID_METADATA"
	FailureInvalidCodec     FailureKind = "INVALID_CODEC"
)

var videoCodecAllowlist = map[string]bool{
	"h264": true, "h265": true, "hevc": true, "avc1": true,
	"x264": true, "x265": true, "mpeg2video": true, "mpeg4": true,
	"vp8": true, "vp9": true, "av1": true,
}

var audioCodecAllowlist = map[string]bool{
	"aac": true, "mp3": true, "ac3": true, "eac3": true, "dts": true,
	"flac": true, "pcm": true, "opus": true, "vorbis": true, "mp2": true,
	"wma": true,
}

// Input is one file to validate, as produced by pkg/ingestmap.
type Input struct {
	ServerID   int64
	LibraryID  int64
	RemotePath string
}

// Result is the outcome of validating one Input. Valid is true only when
// every stage passed; otherwise Kind and Message describe the failure.
type Result struct {
	Valid bool
	Kind  FailureKind

	Message string

	LocalPath  string
	Size       int64
	DurationMs int64
	VideoCodec string
	AudioCodec string
	Width      int32
	Height     int32
}

func fail(kind FailureKind, msg string) Result {
	return Result{Valid: false, Kind: kind, Message: msg}
}

// Prober invokes an external media-probe utility and extracts the
// properties the Validator needs. The default implementation shells out to
// ffprobe-compatible binaries; tests substitute a fake.
type Prober interface {
	Probe(ctx context.Context, path string) (ProbeResult, error)
}

// ProbeResult is what a Prober extracts from a media file.
type ProbeResult struct {
	DurationMs int64
	VideoCodec string
	AudioCodec string
	Width      int32
	Height     int32
}

// Validator runs the path-resolution -> filesystem -> probe -> codec ->
// duration pipeline described in spec §4.5.
type Validator struct {
	mapper   *pathmap.PathMapper
	fsys     ingestio.FileIO
	prober   Prober
	sem      *semaphore.Weighted
	capacity int64
}

// Option configures a Validator.
type Option func(*Validator)

// WithMaxConcurrency bounds how many probes run at once across a batch.
func WithMaxConcurrency(n int) Option {
	return func(v *Validator) {
		if n < 1 {
			n = 1
		}
		v.capacity = int64(n)
		v.sem = semaphore.NewWeighted(int64(n))
	}
}

// WithProber overrides the default ffprobe-backed Prober, mainly for tests.
func WithProber(p Prober) Option {
	return func(v *Validator) { v.prober = p }
}

// New builds a Validator. probeBinary and probeTimeout configure the
// default FFProbeProber when no WithProber override is given.
func New(mapper *pathmap.PathMapper, fsys ingestio.FileIO, probeBinary string, probeTimeout time.Duration, opts ...Option) *Validator {
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	v := &Validator{
		mapper:   mapper,
		fsys:     fsys,
		prober:   &FFProbeProber{Binary: probeBinary, Timeout: probeTimeout},
		sem:      semaphore.NewWeighted(1),
		capacity: 1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateOne runs the full pipeline for a single file.
func (v *Validator) ValidateOne(ctx context.Context, in Input) Result {
	localPath, err := v.mapper.Resolve(ctx, in.ServerID, in.LibraryID, in.RemotePath)
	if err != nil {
		return fail(FailurePathMapping, fmt.Sprintf("no path mapping matches %q", in.RemotePath))
	}

	info, err := v.fsys.Stat(localPath)
	if err != nil {
		return fail(FailureFileNotFound, fmt.Sprintf("file not found at %q", localPath))
	}
	if info.IsDir() || info.Size() == 0 {
		return fail(FailureFileNotAccessible, fmt.Sprintf("%q is not a readable regular file", localPath))
	}

	probe, err := v.prober.Probe(ctx, localPath)
	if err != nil {
		return fail(FailureInvalidMetadata, fmt.Sprintf("probing %q (%s): %v", localPath, humanize.Bytes(uint64(info.Size())), err))
	}

	if !videoCodecAllowlist[probe.VideoCodec] {
		return fail(FailureInvalidCodec, fmt.Sprintf("video codec %q is not allowed", probe.VideoCodec))
	}
	if probe.AudioCodec != "" && !audioCodecAllowlist[probe.AudioCodec] {
		return fail(FailureInvalidCodec, fmt.Sprintf("audio codec %q is not allowed", probe.AudioCodec))
	}

	if probe.DurationMs <= 0 {
		return fail(FailureInvalidMetadata, fmt.Sprintf("non-positive duration for %q", localPath))
	}

	return Result{
		Valid:      true,
		LocalPath:  localPath,
		Size:       info.Size(),
		DurationMs: probe.DurationMs,
		VideoCodec: probe.VideoCodec,
		AudioCodec: probe.AudioCodec,
		Width:      probe.Width,
		Height:     probe.Height,
	}
}

// ValidateBatch runs ValidateOne over every input with bounded concurrency,
// preserving the input order in the returned slice.
func (v *Validator) ValidateBatch(ctx context.Context, inputs []Input) ([]Result, error) {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		if err := v.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("validate: acquiring concurrency slot: %w", err)
		}
		go func(i int, in Input) {
			defer v.sem.Release(1)
			results[i] = v.ValidateOne(ctx, in)
		}(i, in)
	}
	// Drain by re-acquiring the full weight: this only succeeds once every
	// in-flight goroutine above has released its slot, i.e. once the whole
	// batch has completed.
	if err := v.sem.Acquire(ctx, v.capacity); err != nil {
		return nil, fmt.Errorf("validate: waiting for batch completion: %w", err)
	}
	v.sem.Release(v.capacity)
	return results, nil
}

// Summary aggregates ValidateBatch results by outcome.
type Summary struct {
	Valid  int
	Counts map[FailureKind]int
}

// Summarize counts results by status, for reporting to the Orchestrator.
func Summarize(results []Result) Summary {
	s := Summary{Counts: make(map[FailureKind]int)}
	for _, r := range results {
		if r.Valid {
			s.Valid++
			continue
		}
		s.Counts[r.Kind]++
	}
	return s
}
