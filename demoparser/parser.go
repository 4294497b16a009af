// This file contains the top-level entry points, mirroring
// repparser.ParseFile/Parse and its panic-recovering wrapper.

package demoparser

import (
	"log"
	"os"
	"runtime"

	"github.com/icza/csdemo/demo"
)

// ParseFile parses the HL2DEMO file named name, using DefaultConfig,
// streaming events to sink.
func ParseFile(name string, sink Sink) error {
	return ParseFileConfig(name, DefaultConfig(), sink)
}

// ParseFileConfig parses the HL2DEMO file named name under cfg,
// streaming events to sink.
func ParseFileConfig(name string, cfg Config, sink Sink) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return ParseConfig(data, cfg, sink)
}

// Parse parses data as an HL2DEMO byte stream, using DefaultConfig,
// streaming events to sink.
func Parse(data []byte, sink Sink) error {
	return ParseConfig(data, DefaultConfig(), sink)
}

// ParseConfig parses data as an HL2DEMO byte stream under cfg, streaming
// events to sink.
func ParseConfig(data []byte, cfg Config, sink Sink) error {
	return parseProtected(data, cfg, sink)
}

// parseProtected calls parse, but protects the call from panics: every
// fatal condition in this parser (spec.md §7) is raised as a panic
// carrying a *ParseError, recovered here and returned as a plain error.
// Any other panic (an implementation bug) is logged with its stack and
// reported as an Inconsistent ParseError.
func parseProtected(data []byte, cfg Config, sink Sink) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if pe, ok := rec.(*ParseError); ok {
				err = pe
				return
			}
			log.Printf("demoparser: unexpected panic: %v", rec)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("demoparser: stack: %s", buf[:n])
			err = &ParseError{Kind: Inconsistent, Msg: "internal error"}
		}
	}()

	return parse(data, cfg, sink)
}

// parse is the unguarded top-level driver: header, then the record
// demultiplexer loop, then OnEnd.
func parse(data []byte, cfg Config, sink Sink) error {
	r := newByteReader(data)

	h := parseHeader(r)
	state := demo.NewParserState()
	state.Header = h

	if err := sink.OnHeader(h); err != nil {
		return err
	}

	if err := run(r, state, cfg, sink); err != nil {
		return err
	}

	return sink.OnEnd()
}
