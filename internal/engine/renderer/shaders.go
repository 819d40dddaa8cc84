package renderer

// litVertexShader transforms positions and passes world-space normals.
const litVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
	vec4 world = uModel * vec4(aPosition, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uViewProj * world;
}
`

// litFragmentShader shades with an ambient term plus one point light.
const litFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uAmbient;
uniform vec3 uLightPos;
uniform vec3 uLightColor;
uniform float uLightIntensity;
uniform float uLightRange;

out vec4 FragColor;

void main() {
	vec3 toLight = uLightPos - vWorldPos;
	float dist = length(toLight);
	float diffuse = max(dot(normalize(vNormal), toLight / max(dist, 0.0001)), 0.0);

	// Inverse-square falloff, cut to zero at the light range
	float falloff = clamp(1.0 - pow(dist / uLightRange, 4.0), 0.0, 1.0);
	float attenuation = uLightIntensity * falloff * falloff / (dist * dist + 1.0);

	vec3 lit = uAmbient + uLightColor * diffuse * attenuation;
	FragColor = vec4(uColor * lit, 1.0);
}
`

// lineVertexShader transforms positions only.
const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * uModel * vec4(aPosition, 1.0);
}
`

// lineFragmentShader draws a flat colour.
const lineFragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`
