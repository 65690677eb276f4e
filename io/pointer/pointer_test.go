// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		res  string
	}{
		{Cancel, "Cancel"},
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Drag, "Drag"},
		{Enter, "Enter"},
		{Leave, "Leave"},
		{Scroll, "Scroll"},
		{Enter | Leave, "Enter|Leave"},
		{Press | Release, "Press|Release"},
		{Enter | Leave | Press | Release, "Press|Release|Enter|Leave"},
		{Move | Scroll, "Move|Scroll"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.kind.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestButtonsContain(t *testing.T) {
	b := ButtonPrimary | ButtonTertiary
	if !b.Contain(ButtonPrimary) {
		t.Error("primary not contained")
	}
	if b.Contain(ButtonSecondary) {
		t.Error("secondary contained")
	}
	if !b.Contain(ButtonPrimary | ButtonTertiary) {
		t.Error("primary|tertiary not contained")
	}
	if want, got := "ButtonPrimary|ButtonTertiary", b.String(); want != got {
		t.Errorf("got %q; want %q", got, want)
	}
}
