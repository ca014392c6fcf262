//go:build !nogl
// +build !nogl

package opengl

// GLSL sources for the circle program, keyed by file name.
//
// The vertex shader forwards each particle untouched. The geometry shader
// expands the particle point into a quad of side 2r in simulation space
// and maps it to clip space through the viewport. The fragment shader
// keeps only the fragments inside the unit disk, leaving a filled circle.
var shaderSource = map[string]string{
	"circle.vert": `#version 330 core

layout(location = 0) in vec2 pos;
layout(location = 1) in float radius;
layout(location = 2) in vec4 color;

out VertexData {
	float radius;
	vec4 color;
} vertex;

void main() {
	gl_Position = vec4(pos, 0, 1);
	vertex.radius = radius;
	vertex.color = color;
}
`,

	"circle.geom": `#version 330 core

layout(points) in;
layout(triangle_strip, max_vertices = 4) out;

uniform vec2 vp[2];

in VertexData {
	float radius;
	vec4 color;
} vertex[];

out FragData {
	vec2 local;
	vec4 color;
} frag;

vec4 clip(vec2 p) {
	return vec4(2 * (p - vp[0]) / (vp[1] - vp[0]) - 1, 0, 1);
}

void corner(vec2 c, float r, vec2 offset) {
	frag.local = offset;
	frag.color = vertex[0].color;
	gl_Position = clip(c + r * offset);
	EmitVertex();
}

void main() {
	vec2 c = gl_in[0].gl_Position.xy;
	float r = vertex[0].radius;
	corner(c, r, vec2(-1, -1));
	corner(c, r, vec2(1, -1));
	corner(c, r, vec2(-1, 1));
	corner(c, r, vec2(1, 1));
	EndPrimitive();
}
`,

	"circle.frag": `#version 330 core

in FragData {
	vec2 local;
	vec4 color;
} frag;

out vec4 outColor;

void main() {
	if (dot(frag.local, frag.local) > 1) {
		discard;
	}
	outColor = frag.color;
}
`,
}
