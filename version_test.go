package pdf

import "testing"

func TestParseVersionRoundTrip(t *testing.T) {
	cases := []string{"1.3", "1.4", "1.5", "1.6", "1.7", "1.7ext3"}
	for _, s := range cases {
		v, err := ParseVersion(s)
		if err != nil {
			t.Errorf("ParseVersion(%q): %v", s, err)
			continue
		}
		if v.String() != s {
			t.Errorf("ParseVersion(%q).String() = %q", s, v.String())
		}
	}
}

func TestParseVersionDefaultsEmptyToV1_3(t *testing.T) {
	v, err := ParseVersion("")
	if err != nil {
		t.Fatal(err)
	}
	if v != V1_3 {
		t.Errorf("ParseVersion(\"\") = %v, want V1_3", v)
	}
}

func TestParseVersionRejectsUnknown(t *testing.T) {
	_, err := ParseVersion("2.0")
	if _, ok := err.(*VersionError); !ok {
		t.Errorf("err = %v, want *VersionError", err)
	}
}

func TestExtensionLevel(t *testing.T) {
	if V1_7.extensionLevel() != 0 {
		t.Errorf("V1_7.extensionLevel() = %d, want 0", V1_7.extensionLevel())
	}
	if V1_7ext3.extensionLevel() != 3 {
		t.Errorf("V1_7ext3.extensionLevel() = %d, want 3", V1_7ext3.extensionLevel())
	}
}
