package historical

import (
	_ "embed"
	"encoding/binary"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/tzlist/tzoffset/catalog"
)

// Source supplies the compressed historical frame of a zone.
type Source interface {
	CompressedBytesFor(id catalog.ID) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(id catalog.ID) ([]byte, error)

func (f SourceFunc) CompressedBytesFor(id catalog.ID) ([]byte, error) {
	return f(id)
}

// BlobSource serves frames out of a blob built by BuildBlob.
type BlobSource struct {
	blob  []byte
	index []frameRef
}

type frameRef struct {
	off, n uint32
}

// ParseBlob validates the blob header and index.
func ParseBlob(blob []byte) (*BlobSource, error) {
	if len(blob) < headerSize {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "blob of %d bytes is shorter than its header", len(blob))
	}
	if [4]byte(blob[:4]) != blobMagic {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "bad magic %q", blob[:4])
	}
	if blob[4] != blobVersion {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "unsupported blob version %d", blob[4])
	}
	count := int(binary.LittleEndian.Uint16(blob[6:8]))
	if len(blob) < headerSize+count*indexEntry {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "index of %d zones is truncated", count)
	}
	src := &BlobSource{blob: blob, index: make([]frameRef, count)}
	for i := range src.index {
		e := blob[headerSize+i*indexEntry:]
		ref := frameRef{
			off: binary.LittleEndian.Uint32(e),
			n:   binary.LittleEndian.Uint32(e[4:]),
		}
		if uint64(ref.off)+uint64(ref.n) > uint64(len(blob)) {
			return nil, errors.Wrapf(ErrCorruptEmbeddedData, "frame %d lies outside the blob", i)
		}
		src.index[i] = ref
	}
	return src, nil
}

// OpenFile reads and parses a blob file, for deployments that ship the
// historical data next to the binary.
func OpenFile(path string) (*BlobSource, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBlob(blob)
}

// Len returns the number of zones in the blob.
func (s *BlobSource) Len() int {
	return len(s.index)
}

// Size returns the blob size in bytes.
func (s *BlobSource) Size() int {
	return len(s.blob)
}

func (s *BlobSource) CompressedBytesFor(id catalog.ID) ([]byte, error) {
	if int(id) >= len(s.index) {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "no frame for zone id %d", id)
	}
	ref := s.index[id]
	return s.blob[ref.off : ref.off+ref.n : ref.off+ref.n], nil
}

//go:embed data/history.bin
var embeddedBlob []byte

var (
	embeddedOnce sync.Once
	embeddedSrc  *BlobSource
	embeddedErr  error
)

// Embedded returns the source backed by the blob compiled into the binary.
func Embedded() (*BlobSource, error) {
	embeddedOnce.Do(func() {
		src, err := ParseBlob(embeddedBlob)
		if err == nil && src.Len() != catalog.Len() {
			err = errors.Wrapf(ErrCorruptEmbeddedData, "blob has %d zones, catalog has %d", src.Len(), catalog.Len())
		}
		if err != nil {
			embeddedErr = err
			return
		}
		embeddedSrc = src
	})
	return embeddedSrc, embeddedErr
}
