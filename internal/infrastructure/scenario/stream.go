package scenario

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

const maxLineSize = 1 << 20

// DecodeEvent parses one newline-delimited JSON event.
func DecodeEvent(line []byte) (entity.NativeEvent, error) {
	var event entity.NativeEvent
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		return entity.NativeEvent{}, err
	}
	return event, nil
}

// StreamEvents reads newline-delimited JSON events from r and sends them
// on events until r is exhausted or ctx is cancelled. Blank lines and
// lines starting with '#' are skipped. events is closed on return.
func StreamEvents(ctx context.Context, r io.Reader, events chan<- entity.NativeEvent) error {
	defer close(events)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		event, err := DecodeEvent(line)
		if err != nil {
			return fmt.Errorf("line %d: decode event: %w", lineNo, err)
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read events: %w", err)
	}
	return nil
}
