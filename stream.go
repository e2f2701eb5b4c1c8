// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the two pull streams that drain a parser. The
// event stream yields one owned event per call; the document stream
// composes whole documents. Both report exhaustion with io.EOF and keep
// reporting it once reached.

package yamlio

import (
	"io"

	"github.com/yamlio/yamlio/internal/libyaml"
)

// EventStream pulls parsing events from a parser one at a time.
type EventStream struct {
	parser Parser
	done   bool
}

// Next returns the next event of the stream. After the final event,
// Next returns io.EOF on this and every later call without touching the
// engine again. A parse failure is returned as *Error and does not end
// the stream: the engine retains its failure, so the following call
// reports it again.
func (s *EventStream) Next() (*Event, error) {
	if s.done {
		return nil, io.EOF
	}
	var raw libyaml.Event
	if !s.parser.parseOne(&raw) {
		return nil, s.parser.buildError()
	}
	if raw.Type == libyaml.NO_EVENT {
		s.done = true
		return nil, io.EOF
	}
	event := newEvent(&raw)
	raw.Delete()
	return event, nil
}

// DocumentStream composes whole documents from a parser.
type DocumentStream struct {
	composer
	started bool
	done    bool
	fail    *Error
}

// Next composes and returns the next document of the stream. After the
// final document, Next returns io.EOF on this and every later call.
// Engine failures are returned as *Error and re-queried on the
// following call, like event stream failures. A composition failure
// such as an undefined anchor is terminal: the same error is returned
// on every later call.
func (s *DocumentStream) Next() (*Document, error) {
	if s.done {
		return nil, io.EOF
	}
	if s.fail != nil {
		return nil, s.fail
	}
	if !s.started {
		if err := s.expect(libyaml.STREAM_START_EVENT); err != nil {
			return nil, s.compositionFailed(err)
		}
		s.started = true
	}
	kind, err := s.peek()
	if err != nil {
		return nil, s.compositionFailed(err)
	}
	if kind == libyaml.STREAM_END_EVENT {
		s.done = true
		return nil, io.EOF
	}
	doc, err := s.document()
	if err != nil {
		return nil, s.compositionFailed(err)
	}
	return doc, nil
}

// compositionFailed latches composer-built failures. Engine failures
// pass through so that repeat calls re-query the engine.
func (s *DocumentStream) compositionFailed(err error) error {
	if e, ok := err.(*Error); ok && e.Kind == ComposerError {
		s.fail = e
	}
	return err
}
