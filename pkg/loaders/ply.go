package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is an element declaration with its properties, in file order
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the triangle data loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle)
}

// LoadPLY loads a PLY file and returns its vertices and triangulated faces
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ReadPLY parses PLY data in any of the three standard encodings.
// Polygons with more than three vertices are split into a triangle fan.
func ReadPLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiValues{scanner: scanner}
	case "binary_little_endian":
		values = &binaryValues{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValues{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		if err := readElement(values, element, data); err != nil {
			return nil, fmt.Errorf("failed to read %s data: %w", element.Name, err)
		}
	}

	for _, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("face index %d out of range for %d vertices", index, len(data.Vertices))
		}
	}

	return data, nil
}

// parsePLYHeader parses the PLY header, leaving reader positioned at the body
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	first := true

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended before end_header: %w", err)
		}
		line = strings.TrimSpace(line)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element: %q", line)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Properties = append(current.Properties, prop)
		default:
			return nil, fmt.Errorf("unknown header keyword %q", parts[0])
		}
	}

	if header.Format == "" {
		return nil, fmt.Errorf("missing format line")
	}
	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}

	if getTypeSize(prop.Type) == 0 && getTypeSize(prop.DataType) == 0 {
		return PLYProperty{}, fmt.Errorf("unsupported data type in property %q", prop.Name)
	}
	return prop, nil
}

// maxListLength bounds list properties before allocating
const maxListLength = 1 << 16

// isWhole reports whether v is a finite integer value
func isWhole(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// readElement reads every instance of an element, keeping vertex positions and
// face index lists and skipping everything else
func readElement(values valueReader, element PLYElement, data *PLYData) error {
	for i := 0; i < element.Count; i++ {
		var position [3]float64
		for _, prop := range element.Properties {
			if prop.IsList {
				count, err := values.next(prop.ListType)
				if err != nil {
					return err
				}
				if !isWhole(count) || count < 0 || count > maxListLength {
					return fmt.Errorf("invalid list length %v in %s %d", count, element.Name, i)
				}
				indices := make([]int, int(count))
				for k := range indices {
					value, err := values.next(prop.DataType)
					if err != nil {
						return err
					}
					if !isWhole(value) || math.Abs(value) > math.MaxInt32 {
						return fmt.Errorf("invalid list value %v in %s %d", value, element.Name, i)
					}
					indices[k] = int(value)
				}
				if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
					if len(indices) < 3 {
						return fmt.Errorf("face %d has only %d vertices", i, len(indices))
					}
					for k := 1; k+1 < len(indices); k++ {
						data.Faces = append(data.Faces, indices[0], indices[k], indices[k+1])
					}
				}
				continue
			}

			value, err := values.next(prop.Type)
			if err != nil {
				return err
			}
			if element.Name == "vertex" {
				switch prop.Name {
				case "x":
					position[0] = value
				case "y":
					position[1] = value
				case "z":
					position[2] = value
				}
			}
		}
		if element.Name == "vertex" {
			data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
		}
	}
	return nil
}

// getTypeSize returns the size in bytes of a PLY data type, or 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}

// valueReader yields successive scalar values from a PLY body
type valueReader interface {
	next(dataType string) (float64, error)
}

type asciiValues struct {
	scanner *bufio.Scanner
}

func (a *asciiValues) next(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	value, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, a.scanner.Text())
	}
	return value, nil
}

type binaryValues struct {
	reader io.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *binaryValues) next(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	raw := b.buf[:size]
	if _, err := io.ReadFull(b.reader, raw); err != nil {
		return 0, err
	}

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(raw))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(raw)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(raw))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(raw)), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(raw))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(raw)), nil
	case "char", "int8":
		return float64(int8(raw[0])), nil
	default: // uchar, uint8
		return float64(raw[0]), nil
	}
}
