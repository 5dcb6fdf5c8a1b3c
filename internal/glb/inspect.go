package glb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// Info summarises a binary glTF container without loading its geometry
// buffers into memory.
type Info struct {
	// TotalLength is the container length recorded in the header.
	TotalLength uint32

	// Version is the container version recorded in the header.
	Version uint32

	// Generator is the tool name from the asset header, if present.
	Generator string

	// VertexCount is the number of vertices in the first primitive.
	VertexCount int

	// TriangleCount is the number of triangles in the first primitive.
	TriangleCount int

	// HasNormals reports whether the primitive carries a NORMAL attribute.
	HasNormals bool

	// PositionMin and PositionMax are the POSITION accessor extents.
	PositionMin []float32
	PositionMax []float32
}

// DecodeInfo reads the header and JSON chunk of a binary glTF container
// and returns a summary. Malformed containers are reported as invalid
// input errors.
func DecodeInfo(r io.Reader) (*Info, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: short header: %v", domain.ErrInvalidInput, err)
	}

	magic := binary.LittleEndian.Uint32(header[0:4])
	if magic != headerMagic {
		return nil, fmt.Errorf("%w: not a glTF container", domain.ErrInvalidInput)
	}
	version := binary.LittleEndian.Uint32(header[4:8])
	if version != headerVersion {
		return nil, fmt.Errorf("%w: unsupported glTF version %d", domain.ErrInvalidInput, version)
	}
	total := binary.LittleEndian.Uint32(header[8:12])

	var chunkHeader [8]byte
	if _, err := io.ReadFull(r, chunkHeader[:]); err != nil {
		return nil, fmt.Errorf("%w: short chunk header: %v", domain.ErrInvalidInput, err)
	}
	chunkLength := binary.LittleEndian.Uint32(chunkHeader[0:4])
	chunkType := binary.LittleEndian.Uint32(chunkHeader[4:8])
	if chunkType != chunkTypeJSON {
		return nil, fmt.Errorf("%w: first chunk is not JSON", domain.ErrInvalidInput)
	}
	if chunkLength > total {
		return nil, fmt.Errorf("%w: JSON chunk longer than container", domain.ErrInvalidInput)
	}

	payload := make([]byte, chunkLength)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: short JSON chunk: %v", domain.ErrInvalidInput, err)
	}

	var doc document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON chunk: %v", domain.ErrInvalidInput, err)
	}

	info := &Info{
		TotalLength: total,
		Version:     version,
		Generator:   doc.Asset.Generator,
	}

	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("%w: container has no mesh primitive", domain.ErrInvalidInput)
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("%w: primitive has no POSITION attribute", domain.ErrInvalidInput)
	}
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: POSITION accessor out of range", domain.ErrInvalidInput)
	}
	pos := doc.Accessors[posIdx]
	info.VertexCount = pos.Count
	info.PositionMin = pos.Min
	info.PositionMax = pos.Max

	_, info.HasNormals = prim.Attributes["NORMAL"]

	if prim.Indices != nil {
		idx := *prim.Indices
		if idx < 0 || idx >= len(doc.Accessors) {
			return nil, fmt.Errorf("%w: index accessor out of range", domain.ErrInvalidInput)
		}
		info.TriangleCount = doc.Accessors[idx].Count / 3
	}

	return info, nil
}
