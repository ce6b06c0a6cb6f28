package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// files with this suffix are snappy block-compressed
const COMPRESSED_SUFFIX = ".sz"

func IsCompressed(file string) bool {
	return strings.HasSuffix(file, COMPRESSED_SUFFIX)
}

// Writes data to file, compressing it if the file name ends with ".sz".
func WriteBytesToFile(data []byte, file string) error {
	if IsCompressed(file) {
		data = snappy.Encode(nil, data)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

// Reads the file, decompressing it if the file name ends with ".sz".
func ReadBytesFromFile(file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("file not found: %s: %w", file, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	if !IsCompressed(file) {
		return data, nil
	}
	decoded, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", file, err)
	}
	return decoded, nil
}

func WriteJSONToFile[T any](value T, file string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return WriteBytesToFile(data, file)
}

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := ReadBytesFromFile(file)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", file, err)
	}
	return value, nil
}

func FileExists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}
