package constants

import "testing"

func TestAsStringSlice(t *testing.T) {
	got := AsStringSlice()
	want := []string{"Venta", "Queja", "Factura"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeExt(t *testing.T) {
	cases := []struct{ in, want string }{
		{".PDF", "pdf"},
		{".txt", "txt"},
		{"DOCX", "docx"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeExt(tc.in); got != tc.want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
