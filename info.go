package pdf

import (
	"crypto/md5"
	"fmt"
	"time"
)

// Info holds the values of the document information dictionary (the
// trailer's /Info entry).
type Info struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate time.Time
	ModDate      time.Time
	Trapped      Name
}

// infoFields lists the Info fields in the fixed order generateFileID and
// asDict walk them in; both the dictionary key order and the file-ID
// derivation depend on this order being stable.
var infoFields = []string{
	"Title", "Author", "Subject", "Keywords", "Creator", "Producer",
	"CreationDate", "ModDate", "Trapped",
}

func (info *Info) fieldString(name string) (string, bool) {
	switch name {
	case "Title":
		return info.Title, info.Title != ""
	case "Author":
		return info.Author, info.Author != ""
	case "Subject":
		return info.Subject, info.Subject != ""
	case "Keywords":
		return info.Keywords, info.Keywords != ""
	case "Creator":
		return info.Creator, info.Creator != ""
	case "Producer":
		return info.Producer, info.Producer != ""
	case "CreationDate":
		if info.CreationDate.IsZero() {
			return "", false
		}
		return Date(info.CreationDate).pdfString(), true
	case "ModDate":
		if info.ModDate.IsZero() {
			return "", false
		}
		return Date(info.ModDate).pdfString(), true
	case "Trapped":
		return string(info.Trapped), info.Trapped != ""
	default:
		return "", false
	}
}

func (info *Info) asDict() Dict {
	d := NewDict()
	if info == nil {
		return d
	}
	for _, name := range infoFields {
		s, ok := info.fieldString(name)
		if !ok {
			continue
		}
		switch name {
		case "CreationDate":
			d.Set(Name(name), Date(info.CreationDate))
		case "ModDate":
			d.Set(Name(name), Date(info.ModDate))
		case "Trapped":
			d.Set(Name(name), info.Trapped)
		default:
			d.Set(Name(name), TextString(s))
		}
	}
	return d
}

// generateFileID computes the two (identical) file-ID halves from the
// document information dictionary and its creation timestamp, following
// "creationDateMillis + '\n' + for each key in order: key + ': ' +
// stringify(value) + '\n'".
func generateFileID(info *Info) [16]byte {
	var creationMillis int64
	if info != nil && !info.CreationDate.IsZero() {
		creationMillis = info.CreationDate.UnixMilli()
	}

	h := md5.New()
	fmt.Fprintf(h, "%d\n", creationMillis)
	if info != nil {
		for _, name := range infoFields {
			s, ok := info.fieldString(name)
			if !ok {
				continue
			}
			fmt.Fprintf(h, "%s: %s\n", name, s)
		}
	}

	var out [16]byte
	copy(out[:], h.Sum(nil))
	return out
}
