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

// Package tonicgen compiles protobuf service descriptors into Rust source
// for the tonic gRPC framework.
//
// A Generator consumes a FileDescriptorSet, either in memory through Compile
// or from a serialized descriptor file through CompileFile, and writes one
// Rust source file per service. Each file carries a client module and a
// server module: the client wraps a tonic channel with one async method per
// RPC, and the server exposes an async trait for the service with a tower
// Service adapter that routes requests by URI path. Which halves are
// generated, where message types resolve from, and which codec the bindings
// construct are all controlled with Options.
//
// Generated bindings do not hardcode an encoding. Every call site constructs
// the codec named by CodecPath, so the same service definition can speak
// protobuf, JSON, or any other tonic codec. The codec package provides the
// matching Go implementations for services that cross between the two
// runtimes.
//
// Generators are typically driven from a build script with the output
// directory taken from the OUT_DIR environment variable, mirroring how Rust
// build scripts locate their generated sources. Options may also be loaded
// from a YAML document with LoadConfig for builds that keep generation
// settings in configuration rather than code.
package tonicgen
