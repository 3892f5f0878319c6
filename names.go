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
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
)

// identifierName converts a protobuf identifier to the convention Rust uses
// for callables and file names (snake_case).
func identifierName(s string) string {
	return strcase.ToSnake(s)
}

// typeName converts a protobuf identifier to the convention Rust uses for
// type names (UpperCamelCase).
func typeName(s string) string {
	return strcase.ToCamel(s)
}

// moduleOf resolves a dotted package path to the single Rust module name
// used as a service's package: its last segment. Intermediate levels are
// flattened away, so "google.example.v1" resolves to "v1". Generated type
// paths and wire routes both build on the flattened name.
func moduleOf(path string) string {
	parts := strings.Split(path, ".")
	return parts[len(parts)-1]
}

// rustTypePath maps a dotted protobuf type path to a Rust path fragment,
// for example ".store.OrderRequest" to "::store::OrderRequest". Namespace
// segments pass through verbatim, the final segment is type-cased, and an
// empty leading segment (the absolute-path marker protoc emits) contributes
// nothing. Callers prepend the configured proto root, so a path with a
// single segment resolves directly under the root.
func rustTypePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty message type path")
	}
	parts := strings.Split(path, ".")
	var b strings.Builder
	for _, part := range parts[:len(parts)-1] {
		if part == "" {
			// Absolute-path marker, not a namespace.
			continue
		}
		b.WriteString("::")
		b.WriteString(part)
	}
	b.WriteString("::")
	b.WriteString(typeName(parts[len(parts)-1]))
	return b.String(), nil
}

// sanitizeIdent escapes identifiers that collide with a Rust keyword so
// generated code stays compilable. Most keywords become raw identifiers;
// the few names the raw syntax does not accept get a trailing underscore
// instead.
func sanitizeIdent(s string) string {
	if !rustKeywords[s] {
		return s
	}
	switch s {
	case "crate", "self", "Self", "super":
		return s + "_"
	}
	return "r#" + s
}

// rustKeywords holds the strict and reserved keyword sets across Rust
// editions.
var rustKeywords = map[string]bool{
	"as":       true,
	"async":    true,
	"await":    true,
	"break":    true,
	"const":    true,
	"continue": true,
	"crate":    true,
	"dyn":      true,
	"else":     true,
	"enum":     true,
	"extern":   true,
	"false":    true,
	"fn":       true,
	"for":      true,
	"if":       true,
	"impl":     true,
	"in":       true,
	"let":      true,
	"loop":     true,
	"match":    true,
	"mod":      true,
	"move":     true,
	"mut":      true,
	"pub":      true,
	"ref":      true,
	"return":   true,
	"self":     true,
	"Self":     true,
	"static":   true,
	"struct":   true,
	"super":    true,
	"trait":    true,
	"true":     true,
	"type":     true,
	"unsafe":   true,
	"use":      true,
	"where":    true,
	"while":    true,

	"abstract": true,
	"become":   true,
	"box":      true,
	"do":       true,
	"final":    true,
	"macro":    true,
	"override": true,
	"priv":     true,
	"try":      true,
	"typeof":   true,
	"unsized":  true,
	"virtual":  true,
	"yield":    true,
}
