// Package mp4probe reads video track metadata from MP4 files.
package mp4probe

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/frame2video/pkg/ports"
)

// ErrNoVideoTrack is returned when the file holds no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Prober implements ports.VideoProber with mp4ff.
type Prober struct {
	fs ports.FileSystem
}

// New creates a Prober that reads files through fs.
func New(fs ports.FileSystem) *Prober {
	return &Prober{fs: fs}
}

// Probe reads the first video track of the MP4 file at path.
func (p *Prober) Probe(path string) (ports.VideoInfo, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("read file: %w", err)
	}
	return ProbeBytes(data)
}

// ProbeBytes reads the first video track of in-memory MP4 data.
func ProbeBytes(data []byte) (ports.VideoInfo, error) {
	mp4File, err := mp4.DecodeFile(bytes.NewReader(data))
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}
	info, err := fromFile(mp4File)
	if err != nil {
		return info, err
	}
	info.FileSize = int64(len(data))
	return info, nil
}

func fromFile(mp4File *mp4.File) (ports.VideoInfo, error) {
	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	for _, trak := range moov.Traks {
		info, ok := fromTrack(trak)
		if !ok {
			continue
		}
		info.Fragmented = mp4File.IsFragmented()
		if info.Fragmented {
			info.FrameCount += fragmentSamples(mp4File, trak.Tkhd.TrackID)
		}
		if info.Timescale > 0 && info.FrameCount > 0 && info.DurationMs == 0 {
			info.DurationMs = fragmentDurationMs(mp4File, trak.Tkhd.TrackID, info.Timescale)
		}
		return info, nil
	}
	return ports.VideoInfo{}, ErrNoVideoTrack
}

func fromTrack(trak *mp4.TrakBox) (ports.VideoInfo, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return ports.VideoInfo{}, false
	}

	info := ports.VideoInfo{}
	if trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}
	if mdhd := trak.Mdia.Mdhd; mdhd != nil {
		info.Timescale = mdhd.Timescale
		if mdhd.Timescale > 0 {
			info.DurationMs = int(mdhd.Duration * 1000 / uint64(mdhd.Timescale))
		}
	}

	minf := trak.Mdia.Minf
	if minf == nil || minf.Stbl == nil {
		return info, true
	}
	stbl := minf.Stbl
	if stbl.Stsd != nil {
		for _, child := range stbl.Stsd.Children {
			info.Codec = child.Type()
			if vse, ok := child.(*mp4.VisualSampleEntryBox); ok && info.Width == 0 {
				info.Width = int(vse.Width)
				info.Height = int(vse.Height)
			}
			break
		}
	}
	if stbl.Stsz != nil {
		info.FrameCount = int(stbl.Stsz.SampleNumber)
	}
	return info, true
}

func fragmentSamples(mp4File *mp4.File, trackID uint32) int {
	n := 0
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd == nil || traf.Tfhd.TrackID != trackID {
					continue
				}
				for _, trun := range traf.Truns {
					n += int(trun.SampleCount())
				}
			}
		}
	}
	return n
}

func fragmentDurationMs(mp4File *mp4.File, trackID uint32, timescale uint32) int {
	var total uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd == nil || traf.Tfhd.TrackID != trackID {
					continue
				}
				for _, trun := range traf.Truns {
					total += trun.Duration(traf.Tfhd.DefaultSampleDuration)
				}
			}
		}
	}
	return int(total * 1000 / uint64(timescale))
}

// Ensure Prober implements ports.VideoProber
var _ ports.VideoProber = (*Prober)(nil)
