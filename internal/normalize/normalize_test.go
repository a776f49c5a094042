package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		ext  string
		want string
	}{
		{
			name: "placeholder replaced by whitespace",
			text: "Vai su { $url } per maggiori informazioni",
			ext:  ".ftl",
			want: "Vai su   per maggiori informazioni",
		},
		{
			name: "markup stripped to text content",
			text: "Leggi la <a href=\"%S\">guida</a> completa",
			ext:  ".dtd",
			want: "Leggi la  guida  completa",
		},
		{
			name: "ellipsis removed",
			text: "Caricamento…",
			ext:  ".ftl",
			want: "Caricamento ",
		},
		{
			name: "escaped newline collapsed",
			text: `prima riga\nseconda riga`,
			ext:  ".properties",
			want: "prima riga seconda riga",
		},
		{
			name: "slash and equals padded",
			text: "profilo/impostazioni tema=scuro",
			ext:  ".ini",
			want: "profilo impostazioni tema = scuro",
		},
		{
			name: "plain prose untouched",
			text: "Una frase senza artifici",
			ext:  ".ftl",
			want: "Una frase senza artifici",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.text, tt.ext)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeInvalidUTF8(t *testing.T) {
	if _, err := Normalize("testo\xff\xfe", ".ftl"); err == nil {
		t.Error("expected error for invalid UTF-8 input")
	}
}

func TestIsEmptyPlaceholder(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{`{""}`, true},
		{`{ "" }`, true},
		{``, false},
		{`{" "}`, false},
		{`testo`, false},
	}

	for _, tt := range tests {
		if got := IsEmptyPlaceholder(tt.text); got != tt.want {
			t.Errorf("IsEmptyPlaceholder(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "no markup",
			text: "niente da togliere",
			want: "niente da togliere",
		},
		{
			name: "nested tags",
			text: "<p>uno <b>due</b> tre</p>",
			want: "uno  due  tre",
		},
		{
			name: "attributes discarded",
			text: `<img alt="descrizione">resto`,
			want: "resto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.text); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
