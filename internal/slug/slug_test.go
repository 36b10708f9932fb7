package slug

import (
	"errors"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "spaces become hyphens",
			title: "mi primer articulo",
			want:  "mi-primer-articulo",
		},
		{
			name:  "accents are transliterated",
			title: "Análisis de Redes",
			want:  "analisis-de-redes",
		},
		{
			name:  "enye and diaeresis",
			title: "El Niño y el pingüino",
			want:  "el-nino-y-el-pinguino",
		},
		{
			name:  "uppercase accents",
			title: "ÉTICA EN IA",
			want:  "etica-en-ia",
		},
		{
			name:  "punctuation collapses into one hyphen",
			title: "Redes: teoría & práctica!",
			want:  "redes-teoria-practica",
		},
		{
			name:  "underscores separate words",
			title: "notas_de_clase",
			want:  "notas-de-clase",
		},
		{
			name:  "leading and trailing separators trimmed",
			title: "  ¿Qué es la entropía?  ",
			want:  "que-es-la-entropia",
		},
		{
			name:  "digits survive",
			title: "Informe 2026 v2",
			want:  "informe-2026-v2",
		},
		{
			name:  "already a slug",
			title: "analisis-de-redes",
			want:  "analisis-de-redes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Make(tt.title)
			if err != nil {
				t.Fatalf("Make(%q) error: %v", tt.title, err)
			}
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	titles := []string{"Análisis de Redes", "Ética en IA: dilemas", "informe 2026"}
	for _, title := range titles {
		first, err := Make(title)
		if err != nil {
			t.Fatalf("Make(%q) error: %v", title, err)
		}
		second, err := Make(first)
		if err != nil {
			t.Fatalf("Make(%q) error: %v", first, err)
		}
		if first != second {
			t.Errorf("Make not idempotent: %q → %q → %q", title, first, second)
		}
	}
}

func TestMakeEmptyResult(t *testing.T) {
	for _, title := range []string{"", "   ", "!!!", "¿¿??", "---", "···"} {
		_, err := Make(title)
		if !errors.Is(err, ErrEmptySlug) {
			t.Errorf("Make(%q) error = %v, want ErrEmptySlug", title, err)
		}
	}
}
