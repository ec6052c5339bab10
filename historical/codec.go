package historical

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Blob layout, all integers little endian:
//
//	magic "TZHB" | version u8 | reserved u8 | count u16
//	count x (offset u32, length u32)   offsets from the start of the blob
//	count zstd frames
//
// A frame decompresses to 10 byte records (instant i64, offset minutes i16).
const (
	blobVersion  = 1
	headerSize   = 8
	indexEntry   = 8
	recordSize   = 10
	maxZoneBytes = 1 << 20
)

var blobMagic = [4]byte{'T', 'Z', 'H', 'B'}

// ErrCorruptEmbeddedData reports historical data that does not decode. It
// means the binary was built from bad data; retrying cannot help.
var ErrCorruptEmbeddedData = errors.New("corrupt embedded timezone data")

var (
	decoderOnce sync.Once
	decoder     *zstd.Decoder
	decoderErr  error
)

func sharedDecoder() (*zstd.Decoder, error) {
	decoderOnce.Do(func() {
		decoder, decoderErr = zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(maxZoneBytes),
		)
	})
	return decoder, decoderErr
}

// EncodeRecords serializes t without compression.
func EncodeRecords(t Table) []byte {
	buf := make([]byte, 0, len(t)*recordSize)
	for _, tr := range t {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(tr.At))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(tr.Offset))
	}
	return buf
}

// DecodeRecords parses serialized records and checks the table invariants.
func DecodeRecords(p []byte) (Table, error) {
	if len(p) == 0 {
		return nil, errors.Wrap(ErrCorruptEmbeddedData, "empty transition table")
	}
	if len(p)%recordSize != 0 {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "payload of %d bytes is not a whole number of records", len(p))
	}
	t := make(Table, len(p)/recordSize)
	for i := range t {
		rec := p[i*recordSize:]
		t[i].At = int64(binary.LittleEndian.Uint64(rec))
		t[i].Offset = int16(binary.LittleEndian.Uint16(rec[8:]))
	}
	if !t.ascending() {
		return nil, errors.Wrap(ErrCorruptEmbeddedData, "transitions are not strictly ascending")
	}
	return t, nil
}

// Decompress decodes one zone frame.
func Decompress(frame []byte) (Table, error) {
	dec, err := sharedDecoder()
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "zstd decoder: %v", err)
	}
	raw, err := dec.DecodeAll(frame, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "decompress: %v", err)
	}
	return DecodeRecords(raw)
}

// Compress encodes t as one zone frame.
func Compress(t Table, level zstd.EncoderLevel) ([]byte, error) {
	if len(t) == 0 || !t.ascending() {
		return nil, fmt.Errorf("historical: table of %d transitions is empty or unordered", len(t))
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(EncodeRecords(t), nil), nil
}

// BuildBlob lays out compressed frames, one per zone in catalog order.
func BuildBlob(frames [][]byte) ([]byte, error) {
	if len(frames) > 0xffff {
		return nil, fmt.Errorf("historical: %d zones do not fit the blob index", len(frames))
	}
	size := headerSize + indexEntry*len(frames)
	for _, f := range frames {
		size += len(f)
	}
	if uint64(size) > 0xffffffff {
		return nil, fmt.Errorf("historical: blob of %d bytes is too large", size)
	}
	blob := make([]byte, 0, size)
	blob = append(blob, blobMagic[:]...)
	blob = append(blob, blobVersion, 0)
	blob = binary.LittleEndian.AppendUint16(blob, uint16(len(frames)))
	pos := headerSize + indexEntry*len(frames)
	for _, f := range frames {
		blob = binary.LittleEndian.AppendUint32(blob, uint32(pos))
		blob = binary.LittleEndian.AppendUint32(blob, uint32(len(f)))
		pos += len(f)
	}
	for _, f := range frames {
		blob = append(blob, f...)
	}
	return blob, nil
}
