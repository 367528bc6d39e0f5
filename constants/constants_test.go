package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	for _, name := range []string{
		"HARMONYKIT_INDEX_PATH", "HARMONYKIT_LANGUAGE", "HARMONYKIT_TRACE",
		"HARMONYKIT_CHUNK_SIZE", "HARMONYKIT_ADDR", "HARMONYKIT_DYNAMODB_TABLE",
	} {
		t.Setenv(name, "")
	}

	assert := assert.New(t)
	assert.Equal("./out", GetIndexDir())
	assert.Equal("nederlands", GetLanguage())
	assert.False(TraceEnabled())
	assert.Equal(PreferredChunkSize, GetChunkSize())
	assert.Equal(":8080", GetAddr())
	assert.Equal("harmonykit-index", GetDynamoDBTable())
}

func TestOverrides(t *testing.T) {
	t.Setenv("HARMONYKIT_INDEX_PATH", "/tmp/idx")
	t.Setenv("HARMONYKIT_TRACE", "TRUE")
	t.Setenv("HARMONYKIT_CHUNK_SIZE", "512")
	t.Setenv("HARMONYKIT_DYNAMODB_ENDPOINT", "http://dynamo:8000")

	assert := assert.New(t)
	assert.Equal("/tmp/idx", GetIndexDir())
	assert.True(TraceEnabled())
	assert.Equal(512, GetChunkSize())
	assert.Equal("http://dynamo:8000", GetDynamoDBEndpoint())

	t.Setenv("HARMONYKIT_CHUNK_SIZE", "lots")
	assert.Equal(PreferredChunkSize, GetChunkSize())
}
