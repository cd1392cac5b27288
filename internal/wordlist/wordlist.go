// Package wordlist reads word lists: one word per line, optionally gzip or xz
// compressed, in any charset the detector recognizes.
package wordlist

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/saintfish/chardet"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the path that makes Load read the standard input.
const Stdin = "-"

const utf8BOM = "\xef\xbb\xbf"

// Load reads the words of a word-list file.
func Load(path string) ([]string, error) {
	if path == Stdin {
		return Read(os.Stdin, "")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	return Read(file, path)
}

// Read reads the words from r. The name selects the decompressor by its
// extension (.gz, .xz); any other name reads r as is.
func Read(r io.Reader, name string) ([]string, error) {
	src, err := decompress(r, name)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %q: %w", name, err)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode word list %q: %w", name, err)
	}

	return Split(text), nil
}

// Split returns the words of text, one per line. Lines are trimmed; blank lines
// and lines starting with '#' are skipped.
func Split(text string) []string {
	var words []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	return words
}

func decompress(r io.Reader, name string) (io.Reader, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %q: %w", name, err)
		}
		return gz, nil
	case strings.HasSuffix(name, ".xz"):
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open xz stream %q: %w", name, err)
		}
		return xzr, nil
	default:
		return r, nil
	}
}

// decode converts raw text to UTF-8. Valid UTF-8 is kept as is; anything else
// goes through charset detection.
func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), utf8BOM), nil
	}

	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		log.Debug().Err(err).Msg("Charset detection failed, keeping raw bytes")
		return string(raw), nil
	}

	log.Debug().
		Str("charset", result.Charset).
		Int("confidence", result.Confidence).
		Msg("Detected word list charset")

	enc := lookupEncoding(result.Charset)
	if enc == nil {
		log.Warn().Str("charset", result.Charset).Msg("Unsupported charset, keeping raw bytes")
		return string(raw), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}

	return strings.TrimPrefix(string(decoded), utf8BOM), nil
}

// lookupEncoding maps a detector charset name to a decoder.
func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(charset) {
	case "utf-8":
		return encoding.Nop
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "gb-18030", "gb18030", "gbk", "gb2312":
		return simplifiedchinese.GB18030
	case "big5":
		return traditionalchinese.Big5
	case "shift_jis":
		return japanese.ShiftJIS
	case "euc-jp":
		return japanese.EUCJP
	case "iso-8859-1":
		return charmap.ISO8859_1
	case "windows-1252":
		return charmap.Windows1252
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil
	}

	return enc
}
