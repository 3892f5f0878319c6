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
	"fmt"
	"io"

	"github.com/uber-go/mapdecode"
	yaml "gopkg.in/yaml.v2"
)

const _tagName = "config"

// generatorConfig mirrors the options a build script can set from YAML.
// Pointer fields distinguish absent keys from zero values so that unset
// keys keep their defaults.
type generatorConfig struct {
	ProtoPath      *string `config:"protoPath"`
	CodecPath      *string `config:"codecPath"`
	BuildClient    *bool   `config:"buildClient"`
	BuildServer    *bool   `config:"buildServer"`
	BuildTransport *bool   `config:"buildTransport"`
	ModuleIndex    *bool   `config:"moduleIndex"`
	OutDir         *string `config:"outDir"`
}

// LoadConfig reads generator options from YAML.
//
//	protoPath: crate::protos
//	buildClient: false
//	moduleIndex: true
//	outDir: gen/rust
//
// Unknown keys are an error. An empty document yields no options.
func LoadConfig(r io.Reader) ([]Option, error) {
	var data map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse configuration: %v", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var config generatorConfig
	if err := mapdecode.Decode(&config, data, mapdecode.TagName(_tagName)); err != nil {
		return nil, fmt.Errorf("load configuration: %v", err)
	}
	return config.options(), nil
}

func (c generatorConfig) options() []Option {
	var opts []Option
	if c.ProtoPath != nil {
		opts = append(opts, ProtoPath(*c.ProtoPath))
	}
	if c.CodecPath != nil {
		opts = append(opts, CodecPath(*c.CodecPath))
	}
	if c.BuildClient != nil {
		opts = append(opts, BuildClient(*c.BuildClient))
	}
	if c.BuildServer != nil {
		opts = append(opts, BuildServer(*c.BuildServer))
	}
	if c.BuildTransport != nil {
		opts = append(opts, BuildTransport(*c.BuildTransport))
	}
	if c.ModuleIndex != nil {
		opts = append(opts, ModuleIndex(*c.ModuleIndex))
	}
	if c.OutDir != nil {
		opts = append(opts, OutDir(*c.OutDir))
	}
	return opts
}
