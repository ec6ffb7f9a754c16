// Package header merges the bridging headers generated for the simulator and
// device builds into one header that selects the right half at compile time.
package header

import (
	"bytes"
	"path/filepath"

	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Markers written around the two halves of a merged header.
const (
	BeginSimulator = "// begin simulator"
	SimulatorGuard = "#if TARGET_IPHONE_SIMULATOR"
	EndSimulator   = "// end simulator"
	Else           = "#else"
	BeginDevice    = "// begin device"
	EndDevice      = "// end device"
	EndIf          = "#endif"
)

// Merge returns a header that reproduces simulator when TARGET_IPHONE_SIMULATOR
// is set and device otherwise. Every input line is kept verbatim and in order;
// each output line ends with a newline.
func Merge(simulator, device []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(simulator) + len(device) + 128)

	writeLine(&buf, []byte(BeginSimulator))
	writeLine(&buf, []byte(SimulatorGuard))
	writeLines(&buf, simulator)
	writeLine(&buf, []byte(EndSimulator))
	writeLine(&buf, []byte(Else))
	writeLine(&buf, []byte(BeginDevice))
	writeLines(&buf, device)
	writeLine(&buf, []byte(EndDevice))
	writeLine(&buf, []byte(EndIf))

	return buf.Bytes()
}

func writeLines(buf *bytes.Buffer, content []byte) {
	for len(content) > 0 {
		idx := bytes.IndexByte(content, '\n')
		if idx < 0 {
			writeLine(buf, content)
			return
		}
		writeLine(buf, content[:idx])
		content = content[idx+1:]
	}
}

func writeLine(buf *bytes.Buffer, line []byte) {
	buf.Write(line)
	buf.WriteByte('\n')
}

var _ ports.HeaderMerger = (*Merger)(nil)

// Merger implements ports.HeaderMerger on top of a file system. It only ever
// writes to its output path.
type Merger struct {
	fs ports.FileSystem
}

// NewMerger creates a new Merger.
func NewMerger(fs ports.FileSystem) *Merger {
	return &Merger{fs: fs}
}

// Merge writes the merged header to output. When either input is absent nothing
// is written and ok is false.
func (m *Merger) Merge(simulatorHeader, deviceHeader, output string) (bool, error) {
	if !m.fs.Exists(simulatorHeader) || !m.fs.Exists(deviceHeader) {
		return false, nil
	}

	out := filepath.Clean(output)
	if out == filepath.Clean(simulatorHeader) || out == filepath.Clean(deviceHeader) {
		return false, zerr.With(zerr.New("merged header must not overwrite an input"), "output", output)
	}

	simulator, err := m.fs.ReadFile(simulatorHeader)
	if err != nil {
		return false, zerr.Wrap(err, "failed to read simulator header")
	}
	device, err := m.fs.ReadFile(deviceHeader)
	if err != nil {
		return false, zerr.Wrap(err, "failed to read device header")
	}

	if err := m.fs.WriteFile(output, Merge(simulator, device)); err != nil {
		return false, zerr.Wrap(err, "failed to write merged header")
	}
	return true, nil
}
