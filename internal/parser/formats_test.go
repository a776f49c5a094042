package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPropertiesParser(t *testing.T) {
	content := `# Comment
! Also a comment
download.label=Scarica adesso
settings.title = Impostazioni
continued.value=prima parte \
    seconda parte
colon.key: con i due punti
`
	path := writeTestFile(t, "test.properties", content)

	result, err := NewPropertiesParser().Parse(path, "toolkit/test.properties")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []StringEntry{
		{ID: "toolkit/test.properties:download.label", Text: "Scarica adesso"},
		{ID: "toolkit/test.properties:settings.title", Text: "Impostazioni"},
		{ID: "toolkit/test.properties:continued.value", Text: "prima parte seconda parte"},
		{ID: "toolkit/test.properties:colon.key", Text: "con i due punti"},
	}
	if diff := cmp.Diff(want, result.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestDTDParser(t *testing.T) {
	content := `<!-- Localization entities -->
<!ENTITY window.title "Gestione certificati">
<!ENTITY  spaced.entity   'apici singoli'  >
<!-- <!ENTITY commented.out "ignorato"> -->
<!ENTITY multi.line
         "valore su due righe">
`
	path := writeTestFile(t, "test.dtd", content)

	result, err := NewDTDParser().Parse(path, "security/test.dtd")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []StringEntry{
		{ID: "security/test.dtd:window.title", Text: "Gestione certificati"},
		{ID: "security/test.dtd:spaced.entity", Text: "apici singoli"},
		{ID: "security/test.dtd:multi.line", Text: "valore su due righe"},
	}
	if diff := cmp.Diff(want, result.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestIncParser(t *testing.T) {
	content := `#define MOZ_LANGPACK_CREATOR Mozilla Italia
# plain comment, not a define
#define seamonkey_slogan Il browser completo
#define EMPTY_MARKER
`
	path := writeTestFile(t, "defines.inc", content)

	result, err := NewIncParser().Parse(path, "defines.inc")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []StringEntry{
		{ID: "defines.inc:MOZ_LANGPACK_CREATOR", Text: "Mozilla Italia"},
		{ID: "defines.inc:seamonkey_slogan", Text: "Il browser completo"},
	}
	if diff := cmp.Diff(want, result.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestINIParser(t *testing.T) {
	content := `; installer strings
[Strings]
WelcomeTitle=Benvenuto in %MOZ_APP_DISPLAYNAME%
# another comment
[Other]
Another = con sezione diversa
`
	path := writeTestFile(t, "setup.ini", content)

	result, err := NewINIParser().Parse(path, "installer/setup.ini")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// INI entry IDs use the bare key, without the section.
	want := []StringEntry{
		{ID: "installer/setup.ini:WelcomeTitle", Text: "Benvenuto in %MOZ_APP_DISPLAYNAME%"},
		{ID: "installer/setup.ini:Another", Text: "con sezione diversa"},
	}
	if diff := cmp.Diff(want, result.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}
