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

	"go.uber.org/zap"
)

const (
	defaultProtoPath = "super"
	defaultCodecPath = "::tonic_codec_protobuf::ProtobufCodecV3"
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	protoPath      string
	codecPath      string
	fileName       func(pkg string, service string) string
	buildClient    bool
	buildServer    bool
	buildTransport bool
	moduleIndex    bool
	outDir         string
	logger         *zap.Logger
}

func newOptions(opts []Option) *options {
	options := &options{
		protoPath:      defaultProtoPath,
		codecPath:      defaultCodecPath,
		fileName:       defaultFileName,
		buildClient:    true,
		buildServer:    true,
		buildTransport: true,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = zap.NewNop()
	}
	return options
}

func defaultFileName(pkg string, service string) string {
	return fmt.Sprintf("%s_%s", pkg, service)
}

// ProtoPath sets the Rust path prefix under which generated code reaches
// the prost message types.
//
// The default is "super", the parent module of the generated file.
func ProtoPath(path string) Option {
	return func(options *options) {
		options.protoPath = path
	}
}

// CodecPath sets the fully qualified Rust path of the codec every generated
// client and server instantiates per call.
//
// The default is "::tonic_codec_protobuf::ProtobufCodecV3".
func CodecPath(path string) Option {
	return func(options *options) {
		options.codecPath = path
	}
}

// FileName sets how an output file's base name derives from a service's
// flattened package and name. The base name is converted to snake_case
// before the .rs extension is added.
//
// The default is "<package>_<service>".
func FileName(f func(pkg string, service string) string) Option {
	return func(options *options) {
		options.fileName = f
	}
}

// BuildClient controls whether client modules are generated.
//
// The default is true.
func BuildClient(enabled bool) Option {
	return func(options *options) {
		options.buildClient = enabled
	}
}

// BuildServer controls whether server modules are generated.
//
// The default is true.
func BuildServer(enabled bool) Option {
	return func(options *options) {
		options.buildServer = enabled
	}
}

// BuildTransport controls whether generated clients carry the connect
// constructor tied to tonic's transport channel.
//
// The default is true.
func BuildTransport(enabled bool) Option {
	return func(options *options) {
		options.buildTransport = enabled
	}
}

// ModuleIndex controls whether a mod.rs declaring every generated module is
// written next to the generated files.
//
// The default is false.
func ModuleIndex(enabled bool) Option {
	return func(options *options) {
		options.moduleIndex = enabled
	}
}

// OutDir sets the directory generated files are written into.
//
// The default is the OUT_DIR environment variable, which Cargo sets for
// build scripts.
func OutDir(dir string) Option {
	return func(options *options) {
		options.outDir = dir
	}
}

// Logger sets a logger to use for internal logging.
//
// The default is to not write any logs.
func Logger(logger *zap.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}
