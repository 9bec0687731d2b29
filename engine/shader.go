package engine

// GLSL sources for the forward-rendering program. The uniform names form
// the contract consumed by scene.Manager: model/view/projection,
// objectColor, objectTexture, bUseTexture, bUseLighting, UVscale, the
// material struct and the lightSources array.

const VertexShaderSource = `
#version 410 core

layout(location = 0) in vec3 vertexPosition;
layout(location = 1) in vec3 vertexNormal;
layout(location = 2) in vec2 vertexUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentUV;

void main() {
	fragmentPosition = vec3(model * vec4(vertexPosition, 1.0));
	fragmentNormal = mat3(transpose(inverse(model))) * vertexNormal;
	fragmentUV = vertexUV * UVscale;

	gl_Position = projection * view * vec4(fragmentPosition, 1.0);
}`

const FragmentShaderSource = `
#version 410 core

#define TOTAL_LIGHTS 4

struct LightSource {
	vec3 position;
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
};

struct ObjectMaterial {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentUV;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform LightSource lightSources[TOTAL_LIGHTS];
uniform ObjectMaterial material;

out vec4 outFragmentColor;

void main() {
	vec4 baseColor = bUseTexture ? texture(objectTexture, fragmentUV) : objectColor;

	if (!bUseLighting) {
		outFragmentColor = baseColor;
		return;
	}

	vec3 normal = normalize(fragmentNormal);
	vec3 viewDir = normalize(viewPosition - fragmentPosition);

	vec3 phong = vec3(0.0);
	for (int i = 0; i < TOTAL_LIGHTS; i++) {
		vec3 ambient = lightSources[i].ambientColor * material.ambientStrength * material.ambientColor;

		vec3 lightDir = normalize(lightSources[i].position - fragmentPosition);
		float diff = max(dot(normal, lightDir), 0.0);
		vec3 diffuse = diff * lightSources[i].diffuseColor * material.diffuseColor;

		// flat-color draws carry no material; fall back to the light's
		// own focal strength for the specular exponent
		float exponent = material.shininess > 0.0 ? material.shininess : lightSources[i].focalStrength;
		vec3 reflectDir = reflect(-lightDir, normal);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), exponent);
		vec3 specular = lightSources[i].specularIntensity * spec * lightSources[i].specularColor * material.specularColor;

		phong += ambient + diffuse + specular;
	}

	outFragmentColor = vec4(phong, 1.0) * baseColor;
}`
