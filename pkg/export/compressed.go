package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/golang/snappy"

	"github.com/dd0wney/ppigraph/pkg/network"
)

// Compressed edge-list file layout:
//
//	magic (4 bytes) | payload length (4 bytes) | crc32 (4 bytes) | snappy block
//
// The checksum covers the compressed block so corruption is caught before
// decompression.
var compressedMagic = [4]byte{'P', 'P', 'I', 'X'}

// WriteCompressedEdgeList writes the edge list snappy-compressed to path.
func WriteCompressedEdgeList(path string, net *network.Network) error {
	var payload bytes.Buffer
	if err := WriteEdgeList(&payload, net); err != nil {
		return err
	}

	compressed := snappy.Encode(nil, payload.Bytes())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, 12)
	copy(header[0:4], compressedMagic[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(compressed)))
	binary.LittleEndian.PutUint32(header[8:12], crc32.ChecksumIEEE(compressed))

	if _, err := f.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := f.Write(compressed); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return f.Sync()
}

// ReadCompressedEdgeList reads back a file written by WriteCompressedEdgeList
// and returns the uncompressed edge-list text.
func ReadCompressedEdgeList(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) < 12 {
		return nil, fmt.Errorf("%s: truncated header", path)
	}
	if !bytes.Equal(data[0:4], compressedMagic[:]) {
		return nil, fmt.Errorf("%s: bad magic", path)
	}

	length := binary.LittleEndian.Uint32(data[4:8])
	checksum := binary.LittleEndian.Uint32(data[8:12])
	payload := data[12:]
	if uint32(len(payload)) != length {
		return nil, fmt.Errorf("%s: payload length %d, header says %d", path, len(payload), length)
	}
	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, fmt.Errorf("%s: checksum mismatch", path)
	}

	decoded, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: decompress: %w", path, err)
	}
	return decoded, nil
}
