package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/qiniu/iconv"
	log "github.com/sirupsen/logrus"
)

var charsetPattern = regexp.MustCompile(`charset=([A-Za-z0-9._:-]+)`)

// DetectCharset returns the charset declared in the PO header
// (Content-Type: text/plain; charset=XXX), or "" when none is declared.
func DetectCharset(content string) string {
	m := charsetPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}

func sameEncoding(enc1, enc2 string) bool {
	normalize := func(s string) string {
		return strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(s), "-", ""), "_", "")
	}
	return normalize(enc1) == normalize(enc2)
}

// DecodeContent returns data as a UTF-8 string, converting with iconv when
// the PO header declares a different charset. Content without a charset
// declaration is only checked for valid UTF-8.
func DecodeContent(data []byte) (string, error) {
	content := string(data)
	charset := DetectCharset(content)

	if charset == "" || sameEncoding(charset, "UTF-8") {
		if !utf8.ValidString(content) {
			return "", fmt.Errorf("input is not valid UTF-8\nHint: Declare the charset in the PO header Content-Type line")
		}
		return content, nil
	}

	log.Infof("converting input from %s to UTF-8", charset)
	cd, err := iconv.Open("UTF-8", charset)
	if err != nil {
		return "", fmt.Errorf("iconv.Open failed for charset %s: %w", charset, err)
	}
	defer cd.Close()

	converted, _, err := cd.Conv(data, make([]byte, len(data)*4))
	if err != nil {
		return "", fmt.Errorf("failed to convert input from %s to UTF-8: %w", charset, err)
	}
	return string(converted), nil
}
