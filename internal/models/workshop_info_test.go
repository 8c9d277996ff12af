package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestServicesCodec_RoundTrip(t *testing.T) {
	in := []string{"Denting", "Painting", "A.C", "Auto Electrician", `quote "x", comma`, "اردو"}

	raw, err := EncodeServices(in)
	require.NoError(t, err)

	out, err := DecodeServices(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeServices_Nil(t *testing.T) {
	raw, err := EncodeServices(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestDecodeServices_EmptyAndNull(t *testing.T) {
	for _, raw := range []datatypes.JSON{nil, datatypes.JSON("null"), datatypes.JSON("[]")} {
		out, err := DecodeServices(raw)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestDecodeServices_Invalid(t *testing.T) {
	_, err := DecodeServices(datatypes.JSON(`{"not":"a list"}`))
	assert.Error(t, err)
}
