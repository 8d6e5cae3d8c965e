// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

// Package gzipstream wraps payloads in gzip containers and extracts
// the embedded raw DEFLATE stream back out of them. Extraction is a
// mechanical container walk (RFC 1952 header fields plus the 8-byte
// trailer); it never decodes the compressed data and performs no
// magic-number or CRC verification.
package gzipstream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// FLG bits of the gzip header (RFC 1952 section 2.3). The optional
// fields they gate appear in the container in exactly this order:
// FEXTRA, FNAME, FCOMMENT, FHCRC.
const (
	flagHeaderCRC = 0x02
	flagExtra     = 0x04
	flagName      = 0x08
	flagComment   = 0x10
)

const (
	// headerSize is the fixed gzip header: magic[2] + method[1] +
	// FLG[1] + MTIME[4] + XFL[1] + OS[1].
	headerSize = 10

	// trailerSize is the gzip trailer: CRC32[4] + ISIZE[4].
	trailerSize = 8
)

// Compress reads the file at inputPath and writes it through a gzip
// encoder at the default level to outputPath. The encoder sets none
// of the optional header fields, but ExtractDeflate tolerates them
// regardless.
func Compress(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading payload %s: %w", inputPath, err)
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating gzip container %s: %w", outputPath, err)
	}

	encoder := gzip.NewWriter(output)
	if _, err := encoder.Write(data); err != nil {
		output.Close()
		return fmt.Errorf("compressing %s: %w", inputPath, err)
	}
	if err := encoder.Close(); err != nil {
		output.Close()
		return fmt.Errorf("finalizing gzip container %s: %w", outputPath, err)
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("writing gzip container %s: %w", outputPath, err)
	}
	return nil
}

// ExtractDeflate reads the gzip container at containerPath, locates
// the embedded DEFLATE stream, and writes it verbatim to outputPath.
// The container is trusted: malformed input yields an empty or
// truncated stream, never a hang, but is not reported as an error.
func ExtractDeflate(containerPath, outputPath string) error {
	container, err := os.ReadFile(containerPath)
	if err != nil {
		return fmt.Errorf("reading gzip container %s: %w", containerPath, err)
	}
	stream := deflatePayload(container)
	if err := os.WriteFile(outputPath, stream, 0o644); err != nil {
		return fmt.Errorf("writing deflate stream %s: %w", outputPath, err)
	}
	return nil
}

// deflatePayload returns the bytes between the gzip header (fixed
// part plus any optional fields) and the 8-byte trailer. A container
// too short to hold a header, or whose remainder after the header is
// no longer than the trailer, yields an empty result.
func deflatePayload(container []byte) []byte {
	if len(container) < headerSize {
		return nil
	}
	flags := container[3]
	cursor := headerSize

	if flags&flagExtra != 0 {
		if cursor+2 > len(container) {
			return nil
		}
		extraLength := int(binary.LittleEndian.Uint16(container[cursor:]))
		cursor += 2 + extraLength
	}
	if flags&flagName != 0 {
		cursor = skipTerminated(container, cursor)
	}
	if flags&flagComment != 0 {
		cursor = skipTerminated(container, cursor)
	}
	if flags&flagHeaderCRC != 0 {
		cursor += 2
	}

	if cursor >= len(container) {
		return nil
	}
	remainder := container[cursor:]
	if len(remainder) <= trailerSize {
		return nil
	}
	return remainder[: len(remainder)-trailerSize : len(remainder)-trailerSize]
}

// skipTerminated advances past a NUL-terminated field starting at
// offset. End of input terminates the scan even when no NUL byte is
// present — a missing terminator must not send the caller past the
// buffer or into an unbounded loop.
func skipTerminated(data []byte, offset int) int {
	if offset >= len(data) {
		return len(data)
	}
	index := bytes.IndexByte(data[offset:], 0)
	if index < 0 {
		return len(data)
	}
	return offset + index + 1
}
