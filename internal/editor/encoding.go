// Package editor provides the file-handling shell around the reflow engine:
// input encoding detection/decoding and backups for in-place formatting.
package editor

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/goerz/fmtlatex/internal/logger"
	"github.com/goerz/fmtlatex/internal/types"
)

// Encoding identifies a detected input encoding.
type Encoding string

const (
	EncodingUTF8    Encoding = "UTF-8"
	EncodingUTF8BOM Encoding = "UTF-8-BOM"
	EncodingUTF16LE Encoding = "UTF-16LE"
	EncodingUTF16BE Encoding = "UTF-16BE"
	EncodingGBK     Encoding = "GBK"
	EncodingUnknown Encoding = "UNKNOWN"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectEncoding detects the encoding of raw input bytes by BOM sniffing
// and validity checks.
func DetectEncoding(data []byte) Encoding {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return EncodingUTF8BOM
	}
	if len(data) >= 2 && bytes.Equal(data[:2], []byte{0xFF, 0xFE}) {
		return EncodingUTF16LE
	}
	if len(data) >= 2 && bytes.Equal(data[:2], []byte{0xFE, 0xFF}) {
		return EncodingUTF16BE
	}
	if utf8.Valid(data) {
		return EncodingUTF8
	}
	if isValidGBK(data) {
		return EncodingGBK
	}
	return EncodingUnknown
}

// isValidGBK checks if data is valid GBK encoding
func isValidGBK(data []byte) bool {
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return false
	}
	return utf8.Valid(decoded)
}

// DecodeToUTF8 detects the encoding of data and returns its content as
// plain UTF-8 (no BOM), together with the detected encoding. Unknown
// encodings are an error: the formatter must not reflow bytes it cannot
// interpret as text.
func DecodeToUTF8(data []byte) (string, Encoding, error) {
	enc := DetectEncoding(data)
	logger.Debug("detected input encoding", logger.String("encoding", string(enc)))
	return decodeAs(data, enc)
}

// decodeAs converts data to UTF-8 assuming the given encoding.
func decodeAs(data []byte, enc Encoding) (string, Encoding, error) {
	switch enc {
	case EncodingUTF8:
		return string(data), enc, nil
	case EncodingUTF8BOM:
		return string(data[3:]), enc, nil
	case EncodingUTF16LE:
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", enc, types.NewAppError(types.ErrEncoding, "failed to decode UTF-16LE input", err)
		}
		return string(decoded), enc, nil
	case EncodingUTF16BE:
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", enc, types.NewAppError(types.ErrEncoding, "failed to decode UTF-16BE input", err)
		}
		return string(decoded), enc, nil
	case EncodingGBK:
		decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
		if err != nil {
			return "", enc, types.NewAppError(types.ErrEncoding, "failed to decode GBK input", err)
		}
		return string(decoded), enc, nil
	default:
		return "", enc, types.NewAppError(types.ErrEncoding, "input is not valid text in a supported encoding", nil)
	}
}
