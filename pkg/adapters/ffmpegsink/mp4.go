package ffmpegsink

import (
	"fmt"
	"io"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/frame2video/pkg/codec"
)

// writeEmptyMP4 writes an ftyp and a moov holding one video track with no
// samples. Players and mp4 parsers accept it as a zero-length video.
func writeEmptyMP4(w io.Writer, c codec.Codec, width, height, fps int) error {
	timescale := uint32(fps * 1000)

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "und")

	trak := init.Moov.Trak
	entry := mp4.CreateVisualSampleEntryBox(c.SampleEntry, uint16(width), uint16(height), nil)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	trak.Tkhd.Width = mp4.Fixed32(width << 16)
	trak.Tkhd.Height = mp4.Fixed32(height << 16)

	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"})
	if err := ftyp.Encode(w); err != nil {
		return fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(w); err != nil {
		return fmt.Errorf("encode moov: %w", err)
	}
	return nil
}
