package datalog

import "github.com/montanaflynn/stats"

// ChannelSummary describes one logged channel. Numeric channels carry
// min/max/mean over the values that parsed as numbers; non-numeric channels
// carry the total value count and a sample of the first value.
type ChannelSummary struct {
	// Name is the channel (header column) name
	Name string

	// Count is the number of summarised values: parsed numbers for numeric
	// channels, all recorded values otherwise
	Count int

	// Numeric reports whether the channel had any parseable numbers
	Numeric bool

	// Min, Max, and Mean are set only when Numeric is true
	Min  float64
	Max  float64
	Mean float64

	// Sample is the first recorded value; set only when Numeric is false
	Sample string
}

// Summary computes a per-channel summary in header order.
func (l *Log) Summary() []ChannelSummary {
	out := make([]ChannelSummary, 0, len(l.Headers))
	for _, ch := range l.Headers {
		out = append(out, l.summarize(ch))
	}
	return out
}

func (l *Log) summarize(channel string) ChannelSummary {
	nums := l.NumericValues(channel)
	if len(nums) == 0 {
		values := l.Values(channel)
		s := ChannelSummary{Name: channel, Count: len(values)}
		if len(values) > 0 {
			s.Sample = values[0]
		}
		return s
	}

	// stats errors only on empty input, which is excluded above.
	min, _ := stats.Min(nums)
	max, _ := stats.Max(nums)
	mean, _ := stats.Mean(nums)

	return ChannelSummary{
		Name:    channel,
		Count:   len(nums),
		Numeric: true,
		Min:     min,
		Max:     max,
		Mean:    mean,
	}
}
