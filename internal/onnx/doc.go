// Package onnx holds the ONNX IR messages, generated from onnx.proto, and the helpers that
// build them: nodes, attributes, tensors, value infos, graphs and models.
package onnx

//go:generate protoc --go_out=. --go_opt=paths=source_relative onnx.proto
