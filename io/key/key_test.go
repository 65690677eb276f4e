// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"testing"
)

func TestModifiersContain(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Contain(ModCtrl) {
		t.Error("ctrl not contained")
	}
	if !m.Contain(ModCtrl | ModShift) {
		t.Error("ctrl|shift not contained")
	}
	if m.Contain(ModAlt) {
		t.Error("alt contained")
	}
}

func TestModifiersString(t *testing.T) {
	for _, tc := range []struct {
		mods Modifiers
		res  string
	}{
		{0, ""},
		{ModCtrl, "ModCtrl"},
		{ModCtrl | ModAlt, "ModCtrl|ModAlt"},
		{ModShift | ModSuper, "ModShift|ModSuper"},
	} {
		if want, got := tc.res, tc.mods.String(); want != got {
			t.Errorf("got %q; want %q", got, want)
		}
	}
}
