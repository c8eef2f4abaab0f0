// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// OrnamentVertexShader transforms mesh vertices into clip space.
//
//go:embed ornament.vert
var OrnamentVertexShader string

// OrnamentFragmentShader lights ornaments with ambient, directional and
// point lights.
//
//go:embed ornament.frag
var OrnamentFragmentShader string
