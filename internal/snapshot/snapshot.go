// Package snapshot reads the build inputs and writes the build outputs.
// Every file is JSON and follows the scraper file contracts.
package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentstation/kuniv/pkg/constants"
	"github.com/agentstation/kuniv/pkg/errors"
	"github.com/agentstation/kuniv/pkg/universities"
)

// Paths locates the four dataset files of one build.
type Paths struct {
	Universities string // input A
	Accredited   string // input B
	Final        string // output 1
	Metadata     string // output 2
}

// DefaultPaths returns the standard file layout under dataDir.
func DefaultPaths(dataDir string) Paths {
	return Paths{
		Universities: filepath.Join(dataDir, constants.UniversitiesFile),
		Accredited:   filepath.Join(dataDir, constants.AccreditedFile),
		Final:        filepath.Join(dataDir, constants.FinalFile),
		Metadata:     filepath.Join(dataDir, constants.MetadataFile),
	}
}

// CheckInputs verifies that both inputs exist. It reports the first one
// missing as an errors.MissingInputError.
func (p Paths) CheckInputs() error {
	inputs := []struct{ name, path string }{
		{"universities", p.Universities},
		{"accredited", p.Accredited},
	}
	for _, in := range inputs {
		info, err := os.Stat(in.path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.NewMissingInputError(in.name, in.path)
			}
			return errors.WrapIO("stat", in.path, err)
		}
		if info.IsDir() {
			return errors.NewMissingInputError(in.name, in.path)
		}
	}
	return nil
}

// LoadInputs reads both inputs. Nothing is read unless both exist.
func LoadInputs(p Paths) ([]universities.UniversityData, *universities.AccreditedSource, error) {
	if err := p.CheckInputs(); err != nil {
		return nil, nil, err
	}

	directory, err := ReadDirectory(p.Universities)
	if err != nil {
		return nil, nil, err
	}

	accredited, err := ReadAccredited(p.Accredited)
	if err != nil {
		return nil, nil, err
	}

	return directory, accredited, nil
}

// ReadDirectory reads input A.
func ReadDirectory(path string) ([]universities.UniversityData, error) {
	data, err := readFile("universities", path)
	if err != nil {
		return nil, err
	}
	return DecodeDirectory(data, path)
}

// DecodeDirectory parses input A. file only labels errors.
func DecodeDirectory(data []byte, file string) ([]universities.UniversityData, error) {
	var rows []universities.UniversityData
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	if rows == nil {
		return nil, errors.NewParseError("json", file, "expected an array of institutions", nil)
	}
	return rows, nil
}

// ReadAccredited reads input B.
func ReadAccredited(path string) (*universities.AccreditedSource, error) {
	data, err := readFile("accredited", path)
	if err != nil {
		return nil, err
	}
	return DecodeAccredited(data, path)
}

// DecodeAccredited parses input B.
func DecodeAccredited(data []byte, file string) (*universities.AccreditedSource, error) {
	var src universities.AccreditedSource
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	return &src, nil
}

// DecodeFinal parses output 1.
func DecodeFinal(data []byte, file string) ([]universities.University, error) {
	var records []universities.University
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	return records, nil
}

// DecodeMetadata parses output 2.
func DecodeMetadata(data []byte, file string) (universities.LibraryMetadata, error) {
	var meta universities.LibraryMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return universities.LibraryMetadata{}, errors.WrapParse("json", file, err)
	}
	return meta, nil
}

// ReadFinal reads output 1 from disk.
func ReadFinal(path string) ([]universities.University, error) {
	data, err := readFile("final", path)
	if err != nil {
		return nil, err
	}
	return DecodeFinal(data, path)
}

// ReadMetadata reads output 2 from disk.
func ReadMetadata(path string) (universities.LibraryMetadata, error) {
	data, err := readFile("metadata", path)
	if err != nil {
		return universities.LibraryMetadata{}, err
	}
	return DecodeMetadata(data, path)
}

// WriteOutputs writes the merged dataset and its summary. Each file is
// replaced in one rename, so readers never observe a partial file.
func WriteOutputs(p Paths, records []universities.University, meta universities.LibraryMetadata) error {
	if records == nil {
		records = []universities.University{}
	}
	if err := writeJSON(p.Final, records); err != nil {
		return err
	}
	return writeJSON(p.Metadata, meta)
}

func readFile(input, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewMissingInputError(input, path)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return data, nil
}

// Encode renders v the way every output file is written: two-space
// indentation, no HTML escaping, trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return errors.WrapResource("encode", "snapshot", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tmp.Name(), constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
