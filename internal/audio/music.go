package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// musicPattern is the looping background melody: a slow A-minor arpeggio
// with a rest at the end of each bar.
var musicPattern = []note{
	{220, 280}, {261.63, 280}, {329.63, 280}, {440, 280},
	{329.63, 280}, {261.63, 280}, {220, 560}, {0, 280},
	{196, 280}, {246.94, 280}, {293.66, 280}, {392, 280},
	{293.66, 280}, {246.94, 280}, {196, 560}, {0, 280},
}

// musicStreamer cycles musicPattern forever. beep.Loop needs a seekable
// streamer, which generated tones are not, so this rebuilds the sequence
// each time it drains.
type musicStreamer struct {
	cur beep.Streamer
}

func newMusicStreamer() *musicStreamer {
	return &musicStreamer{}
}

func (m *musicStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if m.cur == nil {
			m.cur = buildPattern()
		}
		sn, sok := m.cur.Stream(samples[n:])
		n += sn
		if !sok {
			m.cur = nil
		}
	}
	return n, true
}

func (m *musicStreamer) Err() error {
	return nil
}

// buildPattern assembles one pass of the melody.
func buildPattern() beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(musicPattern))
	for _, n := range musicPattern {
		d := sampleRate.N(time.Duration(n.ms) * time.Millisecond)
		if n.freq == 0 {
			streamers = append(streamers, beep.Silence(d))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			streamers = append(streamers, beep.Silence(d))
			continue
		}
		streamers = append(streamers, beep.Take(d, tone))
	}
	return beep.Seq(streamers...)
}
