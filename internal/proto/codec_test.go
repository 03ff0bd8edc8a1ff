package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_UpdateProfileOmitsUnsetFields(t *testing.T) {
	name := "Asha"
	data, err := jsonCodec{}.Marshal(&UpdateProfileRequest{FirstName: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Asha"}`, string(data))

	var got UpdateProfileRequest
	require.NoError(t, jsonCodec{}.Unmarshal(data, &got))
	assert.Nil(t, got.Password)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, name, *got.FirstName)
}
