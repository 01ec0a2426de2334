package pdf

import "fmt"

// Version identifies the PDF version a document is written against, and with
// it the revision of the Standard Security Handler used when the document is
// encrypted.
type Version int

const (
	// V1_3 is the default version: RC4-40 (V=1, R=2) when encrypted.
	V1_3 Version = iota
	V1_4
	V1_5
	V1_6
	V1_7
	// V1_7ext3 selects Adobe extension level 3: AES-256 (V=5, R=5).
	V1_7ext3
)

// secParams describes the Standard Security Handler parameters implied by a
// document version, per the table in section 4.6 of the security core design.
type secParams struct {
	algV     int
	algR     int
	keyBits  int
	cipher   cipherType
}

var versionSecParams = map[Version]secParams{
	V1_3:     {algV: 1, algR: 2, keyBits: 40, cipher: cipherRC4},
	V1_4:     {algV: 2, algR: 3, keyBits: 128, cipher: cipherRC4},
	V1_5:     {algV: 2, algR: 3, keyBits: 128, cipher: cipherRC4},
	V1_6:     {algV: 4, algR: 4, keyBits: 128, cipher: cipherAES},
	V1_7:     {algV: 4, algR: 4, keyBits: 128, cipher: cipherAES},
	V1_7ext3: {algV: 5, algR: 5, keyBits: 256, cipher: cipherAES},
}

// header returns the literal bytes written as the first line of the file.
func (v Version) header() string {
	switch v {
	case V1_3:
		return "%PDF-1.3\n"
	case V1_4:
		return "%PDF-1.4\n"
	case V1_5:
		return "%PDF-1.5\n"
	case V1_6:
		return "%PDF-1.6\n"
	case V1_7, V1_7ext3:
		return "%PDF-1.7\n"
	default:
		return "%PDF-1.3\n"
	}
}

func (v Version) String() string {
	switch v {
	case V1_3:
		return "1.3"
	case V1_4:
		return "1.4"
	case V1_5:
		return "1.5"
	case V1_6:
		return "1.6"
	case V1_7:
		return "1.7"
	case V1_7ext3:
		return "1.7ext3"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// ParseVersion converts one of the accepted version strings ("1.3" through
// "1.7ext3") into a Version value.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1.3", "":
		return V1_3, nil
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	case "1.6":
		return V1_6, nil
	case "1.7":
		return V1_7, nil
	case "1.7ext3":
		return V1_7ext3, nil
	default:
		return 0, &VersionError{s}
	}
}

// extensionLevel reports the Adobe extension level a Catalog should
// advertise via /Extensions, or 0 if none applies.
func (v Version) extensionLevel() int {
	if v == V1_7ext3 {
		return 3
	}
	return 0
}
