// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tonicgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	const doc = `
protoPath: crate::protos
codecPath: ::my::Codec
buildClient: false
buildServer: true
buildTransport: false
moduleIndex: true
outDir: gen/rust
`
	opts, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	options := newOptions(opts)
	assert.Equal(t, "crate::protos", options.protoPath)
	assert.Equal(t, "::my::Codec", options.codecPath)
	assert.False(t, options.buildClient)
	assert.True(t, options.buildServer)
	assert.False(t, options.buildTransport)
	assert.True(t, options.moduleIndex)
	assert.Equal(t, "gen/rust", options.outDir)
}

func TestLoadConfigPartial(t *testing.T) {
	opts, err := LoadConfig(strings.NewReader("buildClient: false\n"))
	require.NoError(t, err)

	// Absent keys keep their defaults.
	options := newOptions(opts)
	assert.False(t, options.buildClient)
	assert.True(t, options.buildServer)
	assert.True(t, options.buildTransport)
	assert.Equal(t, "super", options.protoPath)
}

func TestLoadConfigEmpty(t *testing.T) {
	tests := []struct {
		desc string
		give string
	}{
		{"no input", ""},
		{"empty document", "---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			opts, err := LoadConfig(strings.NewReader(tt.give))
			require.NoError(t, err)
			assert.Empty(t, opts)
		})
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("protoPaths: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "protoPaths")
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("\t{nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse configuration")
}

func TestLoadConfigWrongType(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("buildClient: [1, 2]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}
