package i18n

import "testing"

func TestGetCatalog(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", DefaultLocale},
		{"en-US", DefaultLocale},
		{"en", DefaultLocale},
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"pt-BR,pt;q=0.9", "pt-BR"},
		{"ja", DefaultLocale},
		{"%%", DefaultLocale},
	}
	for _, tt := range tests {
		if got := GetCatalog(tt.locale).Locale(); got != tt.want {
			t.Errorf("GetCatalog(%q).Locale() = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUS {
		if _, ok := ptBR[code]; !ok {
			t.Errorf("pt-BR is missing %s", code)
		}
	}
	if len(enUS) != len(ptBR) {
		t.Fatalf("en-US has %d messages, pt-BR has %d", len(enUS), len(ptBR))
	}
}

func TestFormat(t *testing.T) {
	cat := GetCatalog("en-US")
	if got := cat.Format(CodeVehicleNotFound, map[string]string{"VehicleID": "cruiser"}); got != "No vehicle cruiser in the roster." {
		t.Fatalf("Format() = %q", got)
	}
	if got := GetCatalog("pt-BR").Format(CodeInvalidMethod, map[string]string{"Method": "JUMP"}); got != "JUMP não é uma manobra de perseguição." {
		t.Fatalf("Format() = %q", got)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"greet":  "hello {{.Name}}",
		"broken": "{{ if .Name }}",
		"call":   "{{ call .Name }}",
	})

	if got := cat.Format("unknown", nil); got != "unknown" {
		t.Fatalf("missing code = %q, want the code", got)
	}
	if got := cat.Format("greet", nil); got != "hello <no value>" {
		t.Fatalf("missing metadata = %q", got)
	}
	if got := cat.Format("broken", nil); got != "{{ if .Name }}" {
		t.Fatalf("parse error = %q, want raw template", got)
	}
	if got := cat.Format("call", map[string]string{"Name": "X"}); got != "{{ call .Name }}" {
		t.Fatalf("execute error = %q, want raw template", got)
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("x-test", map[Code]string{"code": "ok"})
	RegisterCatalog("x-test", custom)
	t.Cleanup(func() {
		catalogsMu.Lock()
		delete(catalogs, "x-test")
		catalogsMu.Unlock()
	})
	if got := GetCatalog("x-test"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
