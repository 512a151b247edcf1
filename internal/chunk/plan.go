package chunk

import (
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"strings"
)

const (
	DefaultInput     = "discours.mp3"
	DefaultMaxChunks = 10000

	// extraction length passed to -t for every chunk
	chunkLength = "00:00:30.0"
)

// DefaultTotal is the length of the default recording.
var DefaultTotal = Clock{Hours: 1, Minutes: 24, Seconds: 2}

// a single ffmpeg invocation extracting one chunk
type Command struct {
	Index  int
	Start  Clock
	Input  string
	Output string
}

func (c Command) String() string {
	return fmt.Sprintf(
		"ffmpeg -i %s -ss %s -t %s -c:a copy %s",
		c.Input,
		c.Start,
		chunkLength,
		c.Output,
	)
}

// Plan describes how a recording is cut into chunks.
type Plan struct {
	Input     string // source file name
	Total     Clock  // length of the source recording
	MaxChunks int    // hard cap on emitted commands
}

func DefaultPlan() Plan {
	return Plan{
		Input:     DefaultInput,
		Total:     DefaultTotal,
		MaxChunks: DefaultMaxChunks,
	}
}

// OutputName returns the chunk file name for index, built from the input's
// base name and extension.
func (p Plan) OutputName(index int) string {
	ext := filepath.Ext(p.Input)
	base := strings.TrimSuffix(filepath.Base(p.Input), ext)
	return fmt.Sprintf("%s-chunk%03d%s", base, index, ext)
}

func (p Plan) command(index int) Command {
	return Command{
		Index:  index,
		Start:  StartOf(index),
		Input:  p.Input,
		Output: p.OutputName(index),
	}
}

// Commands yields one command per chunk. The stop condition is checked after
// a chunk is yielded, so the chunk whose start reaches Total is included.
func (p Plan) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for i := 0; i < p.MaxChunks; i++ {
			cmd := p.command(i)
			if !yield(cmd) {
				return
			}
			if cmd.Start.Reaches(p.Total) {
				return
			}
		}
	}
}

// number of commands the plan produces
func (p Plan) Count() int {
	n := 0
	for range p.Commands() {
		n++
	}
	return n
}

// WriteTo writes each command on its own line.
func (p Plan) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for cmd := range p.Commands() {
		n, err := io.WriteString(w, cmd.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write chunk %d: %w", cmd.Index, err)
		}
	}
	return total, nil
}
