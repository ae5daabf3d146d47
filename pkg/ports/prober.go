package ports

// VideoInfo describes the video track of a container file.
type VideoInfo struct {
	Codec      string // Sample entry type, e.g. "avc1", "mp4v"
	Width      int
	Height     int
	FrameCount int
	Timescale  uint32
	DurationMs int
	Fragmented bool
	FileSize   int64
}

// VideoProber reads container metadata without decoding frames.
type VideoProber interface {
	Probe(path string) (VideoInfo, error)
}
