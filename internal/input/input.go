// Package input reads raw terminal bytes and turns them into per-frame key
// state plus ordered pointer events decoded from SGR mouse reports.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// maxEscapeLen bounds how many bytes one escape sequence may span.
const maxEscapeLen = 32

// Keys is the held-key state for one frame.
type Keys struct {
	Quit  bool
	Left  bool
	Right bool
	Space bool
	Enter bool
}

// PointerAction distinguishes pointer event kinds.
type PointerAction int

const (
	PointerPress   PointerAction = iota // Left button down
	PointerDrag                         // Motion with the left button held
	PointerRelease                      // Button up
)

// PointerEvent is one decoded mouse event in 0-based terminal cell
// coordinates.
type PointerEvent struct {
	Action PointerAction
	Col    int
	Row    int
}

// Input is everything read during one frame. Pointer events preserve their
// arrival order, which matters for press/drag/release sequences.
type Input struct {
	Keys
	Pointer []PointerEvent
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks parse state across
// frames, including escape sequences split between reads.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte
	pointer []PointerEvent
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The channel closes when the reader is exhausted.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking),
// parses them, and returns the resulting frame input. A closed stream
// reports Quit so the caller can tear the session down.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.pending
	s.pending = nil

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	s.consume(buf, now)
	return s.frame(now)
}

// consume parses buf and updates key state and pointer events. A trailing
// incomplete escape sequence is kept for the next frame; it resolves as
// soon as its remaining bytes arrive, or is consumed as a bare escape when
// other input follows instead.
func (s *Stream) consume(buf []byte, now time.Time) {
	i := 0
	for i < len(buf) {
		if buf[i] != 0x1b {
			s.applyByte(buf[i], now)
			i++
			continue
		}
		n := s.parseEscape(buf[i:], now)
		if n == 0 {
			tail := buf[i:]
			if len(tail) > maxEscapeLen {
				// Malformed flood, drop it rather than park it forever
				return
			}
			s.pending = append(s.pending[:0], tail...)
			return
		}
		i += n
	}
}

// frame builds the Input for this frame from the key hold windows and the
// pointer events collected so far.
func (s *Stream) frame(now time.Time) Input {
	in := Input{
		Keys: Keys{
			Quit:  s.closed || now.Sub(s.state.quit) < keyHoldDuration,
			Left:  now.Sub(s.state.left) < keyHoldDuration,
			Right: now.Sub(s.state.right) < keyHoldDuration,
			Space: now.Sub(s.state.space) < keyHoldDuration,
			Enter: now.Sub(s.state.enter) < keyHoldDuration,
		},
		Pointer: s.pointer,
	}
	s.pointer = nil
	return in
}

// parseEscape parses one escape-initiated sequence at the start of buf.
// It returns the number of bytes consumed, or 0 when the sequence is
// incomplete and more bytes are needed.
func (s *Stream) parseEscape(buf []byte, now time.Time) int {
	if len(buf) < 2 {
		return 0
	}
	switch buf[1] {
	case '[':
		return s.parseCSI(buf, now)
	case 'O':
		// SS3 arrows (application cursor mode)
		if len(buf) < 3 {
			return 0
		}
		s.applyArrow(buf[2], now)
		return 3
	default:
		// Bare escape or alt-modified key; neither is bound
		return 1
	}
}

// parseCSI parses a CSI sequence: SGR mouse reports and cursor keys.
func (s *Stream) parseCSI(buf []byte, now time.Time) int {
	if len(buf) < 3 {
		return 0
	}
	if buf[2] == '<' {
		return s.parseSGRMouse(buf, now)
	}

	// Scan to the final byte (0x40-0x7e)
	end := 2
	for end < len(buf) && end < maxEscapeLen {
		b := buf[end]
		if b >= 0x40 && b <= 0x7e {
			s.applyArrow(b, now)
			return end + 1
		}
		if b < 0x20 || b > 0x3f {
			return 1 // Not CSI syntax, consume the escape and resync
		}
		end++
	}
	if end >= maxEscapeLen {
		return 1
	}
	return 0
}

// parseSGRMouse parses ESC [ < Btn ; X ; Y M/m and queues a pointer event
// for left-button presses, drags, and releases. Scroll and the other
// buttons are consumed silently.
func (s *Stream) parseSGRMouse(buf []byte, now time.Time) int {
	end := 3
	for end < len(buf) && end < maxEscapeLen {
		if buf[end] == 'M' || buf[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(buf) || end >= maxEscapeLen {
		if end >= maxEscapeLen {
			return 1
		}
		return 0
	}

	btn, x, y, ok := parseSGRParams(buf[3:end])
	if !ok {
		return end + 1
	}

	// Bits 0-1: button (0=left, 1=middle, 2=right, 3=none), bit 5: motion,
	// bit 6: scroll. Modifier bits are irrelevant here.
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0

	ev := PointerEvent{Col: x - 1, Row: y - 1}
	switch {
	case isScroll:
		return end + 1
	case buf[end] == 'm':
		if buttonID != 0 && buttonID != 3 {
			return end + 1
		}
		ev.Action = PointerRelease
	case isMotion:
		if buttonID != 0 {
			return end + 1
		}
		ev.Action = PointerDrag
	default:
		if buttonID != 0 {
			return end + 1
		}
		ev.Action = PointerPress
	}
	s.pointer = append(s.pointer, ev)
	return end + 1
}

// parseSGRParams extracts btn, x, y from the "Btn;X;Y" parameter bytes.
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	part := 0
	val := 0
	for _, b := range data {
		switch {
		case b == ';':
			switch part {
			case 0:
				btn = val
			case 1:
				x = val
			default:
				return 0, 0, 0, false
			}
			part++
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}
	if part != 2 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}

// applyArrow maps a cursor-key final byte onto the key state.
func (s *Stream) applyArrow(b byte, now time.Time) {
	switch b {
	case 'C': // Right arrow
		s.state.right = now
	case 'D': // Left arrow
		s.state.left = now
	}
}

// applyByte updates the key state timestamps for a plain byte.
func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		s.state.quit = now
	case 'a', 'A', 'h', 'H':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case ' ':
		s.state.space = now
	case '\n', '\r':
		s.state.enter = now
	}
}
