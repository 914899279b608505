package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  spaced  out  ", "spaced-out"},
		{"Go 1.24 çıktı!", "go-1-24-cikti"},
		{"Yazılım Güncellemeleri", "yazilim-guncellemeleri"},
		{"ÇĞIİÖŞÜ", "cgiiosu"},
		{"already-a-slug", "already-a-slug"},
		{"???", "icerik"},
		{"", "icerik"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FromTitle(tc.in), "input %q", tc.in)
	}
}

func TestFromTitleDeterministic(t *testing.T) {
	inputs := []string{"Bir Başlık", "another title", "Üçüncü İçerik 123"}
	for _, in := range inputs {
		first := FromTitle(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, FromTitle(in))
		}
	}
}
