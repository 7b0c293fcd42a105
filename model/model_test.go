package model_test

import (
	"testing"

	"github.com/SAM0619TJ/Tiny-rasterizer/model"
)

func TestScreenQuadCoversViewport(t *testing.T) {
	data := model.Flatten(model.ScreenQuad[:])
	if len(data) != 8 {
		t.Fatalf("expected 8 floats, got %d", len(data))
	}

	expected := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	for idx := range expected {
		if data[idx] != expected[idx] {
			t.Errorf("component %d: expected %f, got %f", idx, expected[idx], data[idx])
		}
	}
}

func TestVertexStride(t *testing.T) {
	if model.VertexStride != 8 {
		t.Errorf("expected stride 8, got %d", model.VertexStride)
	}
	if model.QuadVertexCount != 4 {
		t.Errorf("expected 4 vertices, got %d", model.QuadVertexCount)
	}
}
