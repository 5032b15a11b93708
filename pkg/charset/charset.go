package charset

import (
	"bytes"
	"io"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// AnyToUTF8 decodes tag or file bytes of unknown encoding into UTF-8.
// Total: detection failures and low-confidence guesses fall back to
// UTF-8 with invalid bytes replaced instead of returning an error.
func AnyToUTF8(data []byte) []byte {
	if len(data) == 0 {
		return data
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	// 置信度太低时按 UTF-8 处理
	if err != nil || result.Confidence < 70 {
		return lossyUTF8(data)
	}
	if result.Charset == "UTF-8" {
		return bytes.TrimPrefix(data, bom)
	}

	encoding, err := ianaindex.MIB.Encoding(result.Charset)
	if err != nil || encoding == nil {
		return lossyUTF8(data)
	}
	transformed, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), encoding.NewDecoder()))
	if err != nil {
		return lossyUTF8(data)
	}
	return bytes.TrimPrefix(transformed, bom)
}

func lossyUTF8(data []byte) []byte {
	return bytes.ToValidUTF8(bytes.TrimPrefix(data, bom), []byte("�"))
}
