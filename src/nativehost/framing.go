// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package nativehost

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/certificate-info/src/internal/helper/gc"
	"github.com/goccy/go-json"
)

// MaxMessageSize is the largest message accepted in either direction.
const MaxMessageSize = 1 << 20

// ErrMessageTooLarge is returned for frames above [MaxMessageSize].
var ErrMessageTooLarge = errors.New("native message exceeds size limit")

// ReadMessage reads one frame and returns its JSON body.
// A clean end of input before a header yields io.EOF.
func ReadMessage(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("truncated message header: %w", err)
		}
		return nil, err
	}

	size := binary.LittleEndian.Uint32(header[:])
	if size > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}

	body, err := gc.ReadAll(io.LimitReader(r, int64(size)), int64(size))
	if err != nil {
		return nil, err
	}
	if len(body) != int(size) {
		return nil, fmt.Errorf("truncated message body: %w", io.ErrUnexpectedEOF)
	}
	return body, nil
}

// WriteMessage encodes v as JSON and writes it as one frame.
func WriteMessage(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode native message: %w", err)
	}
	if len(data) > MaxMessageSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(data))
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(data)))
	_, _ = buf.Write(header[:])
	_, _ = buf.Write(data)

	_, err = buf.WriteTo(w)
	return err
}
