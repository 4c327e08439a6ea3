package lsg

import (
	"reflect"
	"testing"

	"github.com/labbrick/lsg-go/internal/bindings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodNamesMatchConversion(t *testing.T) {
	for _, mn := range MethodNames {
		want := exportedName(mn.Native)
		if irregular, ok := irregularNames[mn.Native]; ok {
			want = irregular
		}
		assert.Equal(t, want, mn.Method, "entry for %s", mn.Native)
	}
}

func TestMethodNamesAreUnique(t *testing.T) {
	natives := map[string]bool{}
	methods := map[string]bool{}
	for _, mn := range MethodNames {
		require.False(t, natives[mn.Native], "native %s listed twice", mn.Native)
		require.False(t, methods[mn.Method], "method %s listed twice", mn.Method)
		natives[mn.Native] = true
		methods[mn.Method] = true
	}
}

func TestMethodNamesCoverDeclarationTable(t *testing.T) {
	declared := map[string]bool{}
	for _, sym := range bindings.Symbols() {
		declared[sym] = true
	}
	require.Len(t, MethodNames, len(declared))
	for _, mn := range MethodNames {
		assert.True(t, declared[mn.Native], "%s is not in the declaration table", mn.Native)
	}
}

func TestEveryListedMethodExists(t *testing.T) {
	typ := reflect.TypeOf((*Library)(nil))
	for _, mn := range MethodNames {
		_, ok := typ.MethodByName(mn.Method)
		assert.True(t, ok, "Library has no method %s (for %s)", mn.Method, mn.Native)
	}
}

func TestConversionCollapsesDoubledSeparator(t *testing.T) {
	assert.Equal(t, "GetRFOn", exportedName("fnLSG_GetRF_On"))
	assert.Equal(t, "SetTestMode", exportedName("fnLSG_SetTestMode"))
}
